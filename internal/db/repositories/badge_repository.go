package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"summit-sheriff/recruiting/internal/constants"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

type BadgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{db: db}
}

// ErrBadgeExists marks an insert rejected by the (user, badge type)
// unique index.
var ErrBadgeExists = errors.New("badge already awarded")

// AwardIfAbsent inserts a badge row unless the user already holds the
// badge type. The unique index is the real guard; the duplicate-key
// error is folded into ErrBadgeExists so concurrent triggers stay
// idempotent.
func (r *BadgeRepository) AwardIfAbsent(ctx context.Context, badge *gormModels.UserBadge) error {
	err := r.db.WithContext(ctx).Create(badge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return ErrBadgeExists
		}
		return fmt.Errorf("failed to insert badge: %w", err)
	}
	return nil
}

func (r *BadgeRepository) Has(ctx context.Context, userID string, badgeType constants.BadgeType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.UserBadge{}).
		Where("user_id = ? AND badge_type = ?", userID, badgeType).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check badge: %w", err)
	}
	return count > 0, nil
}

func (r *BadgeRepository) ListByUser(ctx context.Context, userID string) ([]gormModels.UserBadge, error) {
	var badges []gormModels.UserBadge
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_at ASC").
		Find(&badges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	return badges, nil
}

func (r *BadgeRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.UserBadge{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count badges: %w", err)
	}
	return count, nil
}

// isUniqueViolation covers drivers that don't translate duplicate-key
// errors into gorm.ErrDuplicatedKey (sqlite in tests, older pq).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
