package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/db/repositories"
	"summit-sheriff/recruiting/internal/models/dtos"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

func newDonationService(t *testing.T) (*DonationService, *repositories.DonationRepository, *fakeLedger) {
	t.Helper()
	db := newTestDB(t)

	donationRepo := repositories.NewDonationRepository(db)
	badgeSvc := NewBadgeService(
		repositories.NewBadgeRepository(db),
		donationRepo,
		repositories.NewTriviaRepository(db),
		repositories.NewChecklistRepository(db),
		nil, nil,
	)
	ledger := newFakeLedger()
	pointsSvc := NewPointsService(ledger, nil, nil)

	return NewDonationService(donationRepo, pointsSvc, badgeSvc, nil), donationRepo, ledger
}

func seedStandardRules(t *testing.T, repo *repositories.DonationRepository) {
	t.Helper()
	ctx := context.Background()
	rules := []gormModels.DonationPointRule{
		{Name: "Standard", MinAmountCents: 100, MaxAmountCents: 99_99, PointsPerDollar: 1, RecurringMultiplier: 1.5, IsActive: true},
		{Name: "Supporter", MinAmountCents: 100_00, MaxAmountCents: 499_99, PointsPerDollar: 2, RecurringMultiplier: 1.5, IsActive: true},
		{Name: "Champion", MinAmountCents: 500_00, MaxAmountCents: 0, PointsPerDollar: 3, RecurringMultiplier: 1.5, IsActive: true},
	}
	for i := range rules {
		require.NoError(t, repo.SaveRule(ctx, &rules[i]))
	}
}

func TestRecordDonationBasicBracket(t *testing.T) {
	svc, repo, ledger := newDonationService(t)
	seedStandardRules(t, repo)

	resp, err := svc.Record(context.Background(), "donor-1", &dtos.RecordDonationReq{AmountCents: 50_00})
	require.NoError(t, err)

	// $50 in the 1 point/dollar bracket.
	assert.Equal(t, 50, resp.Points)
	assert.Equal(t, 50, resp.NewTotal)
	assert.True(t, resp.Success)

	entries := ledger.entriesFor("donor-1")
	require.Len(t, entries, 1)
	assert.Equal(t, constants.ActionDonation, entries[0].Action)
}

func TestRecordDonationRecurringMultiplier(t *testing.T) {
	svc, repo, _ := newDonationService(t)
	seedStandardRules(t, repo)

	resp, err := svc.Record(context.Background(), "donor-2", &dtos.RecordDonationReq{
		AmountCents: 200_00,
		IsRecurring: true,
	})
	require.NoError(t, err)

	// $200 at 2 points/dollar with the 1.5x recurring multiplier.
	assert.Equal(t, 600, resp.Points)
}

func TestRecordDonationFloorsFractionalPoints(t *testing.T) {
	svc, repo, _ := newDonationService(t)
	seedStandardRules(t, repo)

	resp, err := svc.Record(context.Background(), "donor-3", &dtos.RecordDonationReq{AmountCents: 25_50})
	require.NoError(t, err)

	// $25.50 at 1 point/dollar rounds down.
	assert.Equal(t, 25, resp.Points)
}

func TestRecordDonationOutsideBrackets(t *testing.T) {
	svc, repo, ledger := newDonationService(t)
	seedStandardRules(t, repo)

	// 50 cents sits below every bracket: recorded, zero points.
	resp, err := svc.Record(context.Background(), "donor-4", &dtos.RecordDonationReq{AmountCents: 50})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Points)
	assert.NotEmpty(t, resp.DonationID)
	assert.Empty(t, ledger.entriesFor("donor-4"))
}

func TestRecordDonationCampaignMultiplier(t *testing.T) {
	svc, repo, _ := newDonationService(t)
	seedStandardRules(t, repo)
	ctx := context.Background()

	end := time.Now().Add(48 * time.Hour)
	campaign := gormModels.DonationCampaign{
		Name:            "Double Points Week",
		StartDate:       time.Now().Add(-time.Hour),
		EndDate:         &end,
		PointMultiplier: 2,
		IsActive:        true,
	}
	require.NoError(t, repo.SaveCampaign(ctx, &campaign))

	resp, err := svc.Record(ctx, "donor-5", &dtos.RecordDonationReq{
		AmountCents: 50_00,
		CampaignID:  &campaign.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 100, resp.Points)
}

func TestRecordDonationExpiredCampaignFallsBackToBaseRate(t *testing.T) {
	svc, repo, _ := newDonationService(t)
	seedStandardRules(t, repo)
	ctx := context.Background()

	end := time.Now().Add(-time.Hour)
	campaign := gormModels.DonationCampaign{
		Name:            "Ended Campaign",
		StartDate:       time.Now().Add(-72 * time.Hour),
		EndDate:         &end,
		PointMultiplier: 3,
		IsActive:        true,
	}
	require.NoError(t, repo.SaveCampaign(ctx, &campaign))

	resp, err := svc.Record(ctx, "donor-6", &dtos.RecordDonationReq{
		AmountCents: 50_00,
		CampaignID:  &campaign.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 50, resp.Points)
}

func TestRecordDonationAwardsBadges(t *testing.T) {
	svc, repo, _ := newDonationService(t)
	seedStandardRules(t, repo)

	resp, err := svc.Record(context.Background(), "donor-7", &dtos.RecordDonationReq{AmountCents: 150_00})
	require.NoError(t, err)

	types := make(map[string]bool)
	for _, b := range resp.NewBadges {
		types[b.BadgeType] = true
	}
	assert.True(t, types[string(constants.BadgeFirstDonation)], "expected first-donation badge")
	assert.True(t, types[string(constants.BadgeBigDonation)], "expected big-donation badge")
}

func TestRecordDonationRejectsNonPositiveAmount(t *testing.T) {
	svc, repo, _ := newDonationService(t)
	seedStandardRules(t, repo)

	_, err := svc.Record(context.Background(), "donor-8", &dtos.RecordDonationReq{AmountCents: 0})
	assert.Error(t, err)
}

func TestActiveCampaignsExcludesFuture(t *testing.T) {
	_, repo, _ := newDonationService(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCampaign(ctx, &gormModels.DonationCampaign{
		Name:      "Running",
		StartDate: time.Now().Add(-time.Hour),
		IsActive:  true,
	}))
	require.NoError(t, repo.SaveCampaign(ctx, &gormModels.DonationCampaign{
		Name:      "Future",
		StartDate: time.Now().Add(48 * time.Hour),
		IsActive:  true,
	}))

	campaigns, err := repo.ActiveCampaigns(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "Running", campaigns[0].Name)
}
