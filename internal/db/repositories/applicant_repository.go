package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"summit-sheriff/recruiting/internal/constants"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

type ApplicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

func (r *ApplicantRepository) Insert(ctx context.Context, applicant *gormModels.Applicant) error {
	if err := r.db.WithContext(ctx).Create(applicant).Error; err != nil {
		return fmt.Errorf("failed to insert applicant: %w", err)
	}
	return nil
}

func (r *ApplicantRepository) GetByID(ctx context.Context, id string) (*gormModels.Applicant, error) {
	var applicant gormModels.Applicant
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&applicant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("applicant not found")
		}
		return nil, fmt.Errorf("failed to fetch applicant: %w", err)
	}
	return &applicant, nil
}

func (r *ApplicantRepository) List(ctx context.Context, status constants.ApplicantStatus, search string, limit, offset int) ([]gormModels.Applicant, int64, error) {
	q := r.db.WithContext(ctx).Model(&gormModels.Applicant{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR tracking_number LIKE ?", like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count applicants: %w", err)
	}

	var applicants []gormModels.Applicant
	err := q.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&applicants).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applicants: %w", err)
	}

	return applicants, total, nil
}

func (r *ApplicantRepository) Save(ctx context.Context, applicant *gormModels.Applicant) error {
	if err := r.db.WithContext(ctx).Save(applicant).Error; err != nil {
		return fmt.Errorf("failed to save applicant: %w", err)
	}
	return nil
}

func (r *ApplicantRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&gormModels.Applicant{}).
		Select("status, COUNT(*)").
		Group("status").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to count applicants by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
