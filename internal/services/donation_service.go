package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/db/repositories"
	"summit-sheriff/recruiting/internal/logging"
	"summit-sheriff/recruiting/internal/metrics"
	"summit-sheriff/recruiting/internal/models/dtos"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

type DonationService struct {
	donations *repositories.DonationRepository
	points    *PointsService
	badges    *BadgeService
	metrics   *metrics.MetricsRegistry
}

func NewDonationService(
	donations *repositories.DonationRepository,
	points *PointsService,
	badges *BadgeService,
	metricsReg *metrics.MetricsRegistry,
) *DonationService {
	return &DonationService{
		donations: donations,
		points:    points,
		badges:    badges,
		metrics:   metricsReg,
	}
}

// Record calculates points for a donation, persists it, credits the
// user and runs the badge pass. Rule lookup failure aborts before any
// side effect; an amount outside every bracket still records the
// donation at zero points.
func (s *DonationService) Record(ctx context.Context, userID string, req *dtos.RecordDonationReq) (*dtos.DonationPointsResponse, error) {
	if req.AmountCents <= 0 {
		return nil, fmt.Errorf("donation amount must be positive")
	}

	points, ruleName, err := s.calculatePoints(ctx, req.AmountCents, req.IsRecurring, req.CampaignID)
	if err != nil {
		return nil, err
	}

	donation := gormModels.Donation{
		UserID:        userID,
		CampaignID:    req.CampaignID,
		AmountCents:   req.AmountCents,
		IsRecurring:   req.IsRecurring,
		PointsAwarded: points,
	}
	if err := s.donations.Insert(ctx, &donation); err != nil {
		return nil, err
	}

	newTotal := 0
	if points > 0 {
		description := fmt.Sprintf("Donation of $%.2f", float64(req.AmountCents)/100)
		newTotal, err = s.points.AwardDonation(ctx, userID, points, description)
		if err != nil {
			return nil, err
		}
	}

	newBadges, err := s.badges.CheckAndAward(ctx, userID, constants.TriggerDonation)
	if err != nil {
		// The donation and points already landed; surface the badge
		// failure in logs and let the next donation retry the pass.
		logging.Error("Badge pass failed after donation", "user_id", userID, "error", err.Error())
	}

	if s.metrics != nil {
		s.metrics.DonationsRecordedTotal.Inc()
	}
	logging.Info("Donation recorded",
		"user_id", userID,
		"amount_cents", req.AmountCents,
		"points", points,
		"rule", ruleName,
	)

	resp := &dtos.DonationPointsResponse{
		Success:    true,
		DonationID: donation.ID,
		Points:     points,
		NewTotal:   newTotal,
	}
	for _, b := range newBadges {
		resp.NewBadges = append(resp.NewBadges, BadgeView(&b))
	}
	return resp, nil
}

// calculatePoints finds the first active bracket containing the amount
// and applies the recurring and campaign multipliers, rounding down.
func (s *DonationService) calculatePoints(ctx context.Context, amountCents int64, recurring bool, campaignID *string) (int, string, error) {
	rules, err := s.donations.ActiveRules(ctx)
	if err != nil {
		return 0, "", err
	}

	var matched *gormModels.DonationPointRule
	for i := range rules {
		r := &rules[i]
		if amountCents < r.MinAmountCents {
			continue
		}
		if r.MaxAmountCents > 0 && amountCents > r.MaxAmountCents {
			continue
		}
		matched = r
		break
	}
	if matched == nil {
		return 0, "", nil
	}

	dollars := float64(amountCents) / 100
	value := dollars * float64(matched.PointsPerDollar)
	if recurring && matched.RecurringMultiplier > 0 {
		value *= matched.RecurringMultiplier
	}

	if campaignID != nil && *campaignID != "" {
		multiplier, err := s.campaignMultiplier(ctx, *campaignID)
		if err != nil {
			return 0, "", err
		}
		value *= multiplier
	}

	return int(math.Floor(value)), matched.Name, nil
}

// campaignMultiplier returns the campaign's point multiplier when the
// campaign is currently running, 1 otherwise. A donation against an
// expired campaign is still accepted at the base rate.
func (s *DonationService) campaignMultiplier(ctx context.Context, campaignID string) (float64, error) {
	campaigns, err := s.donations.ActiveCampaigns(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	for _, c := range campaigns {
		if c.ID == campaignID && c.PointMultiplier > 0 {
			return c.PointMultiplier, nil
		}
	}
	return 1, nil
}

func (s *DonationService) ActiveCampaigns(ctx context.Context) ([]dtos.CampaignResponse, error) {
	campaigns, err := s.donations.ActiveCampaigns(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	out := make([]dtos.CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, dtos.CampaignResponse{
			ID:              c.ID,
			Name:            c.Name,
			StartDate:       c.StartDate,
			EndDate:         c.EndDate,
			PointMultiplier: c.PointMultiplier,
		})
	}
	return out, nil
}

func (s *DonationService) SaveRule(ctx context.Context, req *dtos.SaveDonationRuleReq) (*gormModels.DonationPointRule, error) {
	if req.MinAmountCents < 0 || (req.MaxAmountCents > 0 && req.MaxAmountCents < req.MinAmountCents) {
		return nil, fmt.Errorf("invalid rule bracket")
	}
	rule := gormModels.DonationPointRule{
		ID:                  req.ID,
		Name:                req.Name,
		MinAmountCents:      req.MinAmountCents,
		MaxAmountCents:      req.MaxAmountCents,
		PointsPerDollar:     req.PointsPerDollar,
		RecurringMultiplier: req.RecurringMultiplier,
		CampaignID:          req.CampaignID,
		IsActive:            req.IsActive,
	}
	if err := s.donations.SaveRule(ctx, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}
