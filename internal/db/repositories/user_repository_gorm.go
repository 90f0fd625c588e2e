package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

type UserRepositoryGORM struct {
	db *gorm.DB
}

// NewUserRepositoryGORM creates a new GORM-based user repository
func NewUserRepositoryGORM(db *gorm.DB) *UserRepositoryGORM {
	return &UserRepositoryGORM{db: db}
}

func (r *UserRepositoryGORM) Create(ctx context.Context, user *gormModels.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepositoryGORM) GetByID(ctx context.Context, id string) (*gormModels.User, error) {
	var user gormModels.User

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

func (r *UserRepositoryGORM) GetByEmail(ctx context.Context, email string) (*gormModels.User, error) {
	var user gormModels.User

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// GetWithBadges retrieves a user with earned badges preloaded.
func (r *UserRepositoryGORM) GetWithBadges(ctx context.Context, id string) (*gormModels.User, error) {
	var user gormModels.User

	err := r.db.WithContext(ctx).
		Preload("Badges").
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to fetch user with badges: %w", err)
	}

	return &user, nil
}

// CountReferrals counts users who signed up naming this user as referrer.
func (r *UserRepositoryGORM) CountReferrals(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.User{}).
		Where("referred_by = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count referrals: %w", err)
	}
	return count, nil
}

func (r *UserRepositoryGORM) MarkApplied(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.User{}).
		Where("id = ?", userID).
		Update("has_applied", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark user applied: %w", err)
	}
	return nil
}
