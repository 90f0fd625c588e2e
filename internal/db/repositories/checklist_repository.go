package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

func (r *ChecklistRepository) Items(ctx context.Context) ([]gormModels.ChecklistItem, error) {
	var items []gormModels.ChecklistItem
	err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch checklist items: %w", err)
	}
	return items, nil
}

func (r *ChecklistRepository) GetItem(ctx context.Context, itemID string) (*gormModels.ChecklistItem, error) {
	var item gormModels.ChecklistItem
	err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("checklist item not found")
		}
		return nil, fmt.Errorf("failed to fetch checklist item: %w", err)
	}
	return &item, nil
}

func (r *ChecklistRepository) ProgressByUser(ctx context.Context, userID string) ([]gormModels.UserChecklistProgress, error) {
	var progress []gormModels.UserChecklistProgress
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&progress).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch checklist progress: %w", err)
	}
	return progress, nil
}

func (r *ChecklistRepository) GetProgress(ctx context.Context, userID, itemID string) (*gormModels.UserChecklistProgress, error) {
	var progress gormModels.UserChecklistProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&progress).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to fetch checklist progress row: %w", err)
	}
	return &progress, nil
}

func (r *ChecklistRepository) Insert(ctx context.Context, progress *gormModels.UserChecklistProgress) error {
	if err := r.db.WithContext(ctx).Create(progress).Error; err != nil {
		return fmt.Errorf("failed to insert checklist progress: %w", err)
	}
	return nil
}

func (r *ChecklistRepository) Save(ctx context.Context, progress *gormModels.UserChecklistProgress) error {
	if err := r.db.WithContext(ctx).Save(progress).Error; err != nil {
		return fmt.Errorf("failed to save checklist progress: %w", err)
	}
	return nil
}
