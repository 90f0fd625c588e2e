package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Insert(ctx context.Context, donation *gormModels.Donation) error {
	if err := r.db.WithContext(ctx).Create(donation).Error; err != nil {
		return fmt.Errorf("failed to insert donation: %w", err)
	}
	return nil
}

// Stats aggregates the counters the badge evaluator reads: donation
// count, lifetime cents, largest single donation, recurring flag.
type DonationStats struct {
	Count         int64
	LifetimeCents int64
	LargestCents  int64
	HasRecurring  bool
}

func (r *DonationRepository) StatsByUser(ctx context.Context, userID string) (*DonationStats, error) {
	var stats DonationStats

	row := r.db.WithContext(ctx).
		Model(&gormModels.Donation{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount_cents), 0) AS lifetime_cents, COALESCE(MAX(amount_cents), 0) AS largest_cents").
		Where("user_id = ?", userID).
		Row()
	if err := row.Scan(&stats.Count, &stats.LifetimeCents, &stats.LargestCents); err != nil {
		return nil, fmt.Errorf("failed to aggregate donations: %w", err)
	}

	var recurring int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.Donation{}).
		Where("user_id = ? AND is_recurring = ?", userID, true).
		Count(&recurring).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count recurring donations: %w", err)
	}
	stats.HasRecurring = recurring > 0

	return &stats, nil
}

// ActiveRules returns active point rules in ascending bracket order.
// The first rule whose range contains the amount wins; overlapping
// ranges therefore resolve by comparison order, not by error.
func (r *DonationRepository) ActiveRules(ctx context.Context) ([]gormModels.DonationPointRule, error) {
	var rules []gormModels.DonationPointRule
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("min_amount_cents ASC").
		Find(&rules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch donation rules: %w", err)
	}
	return rules, nil
}

func (r *DonationRepository) SaveRule(ctx context.Context, rule *gormModels.DonationPointRule) error {
	if err := r.db.WithContext(ctx).Save(rule).Error; err != nil {
		return fmt.Errorf("failed to save donation rule: %w", err)
	}
	return nil
}

// ActiveCampaigns returns campaigns whose window contains now. The
// original site filtered on start_date >= now(), which excluded every
// running campaign; the comparison here is the corrected one.
func (r *DonationRepository) ActiveCampaigns(ctx context.Context, now time.Time) ([]gormModels.DonationCampaign, error) {
	var campaigns []gormModels.DonationCampaign
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND (end_date IS NULL OR end_date >= ?)", true, now, now).
		Order("start_date ASC").
		Find(&campaigns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *DonationRepository) SaveCampaign(ctx context.Context, campaign *gormModels.DonationCampaign) error {
	if err := r.db.WithContext(ctx).Save(campaign).Error; err != nil {
		return fmt.Errorf("failed to save campaign: %w", err)
	}
	return nil
}

// DeactivateExpired flips is_active off for campaigns whose end date
// has passed. Called by the campaign status job.
func (r *DonationRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&gormModels.DonationCampaign{}).
		Where("is_active = ? AND end_date IS NOT NULL AND end_date < ?", true, now).
		Update("is_active", false)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to deactivate campaigns: %w", res.Error)
	}
	return res.RowsAffected, nil
}
