package services

import (
	"context"
	"testing"

	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/db/repositories"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

func newBadgeService(t *testing.T) (*BadgeService, *testRepos) {
	t.Helper()
	db := newTestDB(t)
	repos := &testRepos{
		badges:    repositories.NewBadgeRepository(db),
		donations: repositories.NewDonationRepository(db),
		trivia:    repositories.NewTriviaRepository(db),
		checklist: repositories.NewChecklistRepository(db),
	}
	svc := NewBadgeService(repos.badges, repos.donations, repos.trivia, repos.checklist, nil, nil)
	return svc, repos
}

type testRepos struct {
	badges    *repositories.BadgeRepository
	donations *repositories.DonationRepository
	trivia    *repositories.TriviaRepository
	checklist *repositories.ChecklistRepository
}

func TestCheckAndAwardFirstDonation(t *testing.T) {
	svc, repos := newBadgeService(t)
	ctx := context.Background()
	userID := "user-1"

	if err := repos.donations.Insert(ctx, &gormModels.Donation{UserID: userID, AmountCents: 25_00}); err != nil {
		t.Fatalf("insert donation: %v", err)
	}

	awarded, err := svc.CheckAndAward(ctx, userID, constants.TriggerDonation)
	if err != nil {
		t.Fatalf("CheckAndAward: %v", err)
	}

	if len(awarded) != 1 {
		t.Fatalf("expected 1 badge, got %d", len(awarded))
	}
	if awarded[0].BadgeType != constants.BadgeFirstDonation {
		t.Errorf("expected first-donation, got %s", awarded[0].BadgeType)
	}
	if awarded[0].Requirement != "1 donation" {
		t.Errorf("expected requirement snapshot, got %q", awarded[0].Requirement)
	}
}

func TestCheckAndAwardMultipleThresholdsAtOnce(t *testing.T) {
	svc, repos := newBadgeService(t)
	ctx := context.Background()
	userID := "user-2"

	// One $300 donation crosses first-donation, big-donation and the
	// $250 lifetime tier in a single pass.
	if err := repos.donations.Insert(ctx, &gormModels.Donation{UserID: userID, AmountCents: 300_00}); err != nil {
		t.Fatalf("insert donation: %v", err)
	}

	awarded, err := svc.CheckAndAward(ctx, userID, constants.TriggerDonation)
	if err != nil {
		t.Fatalf("CheckAndAward: %v", err)
	}

	types := make(map[constants.BadgeType]bool)
	for _, b := range awarded {
		types[b.BadgeType] = true
	}
	for _, want := range []constants.BadgeType{
		constants.BadgeFirstDonation,
		constants.BadgeBigDonation,
		constants.BadgeLifetime250,
	} {
		if !types[want] {
			t.Errorf("expected badge %s to be awarded", want)
		}
	}
	if len(awarded) != 3 {
		t.Errorf("expected exactly 3 badges, got %d", len(awarded))
	}
}

func TestCheckAndAwardIsIdempotent(t *testing.T) {
	svc, repos := newBadgeService(t)
	ctx := context.Background()
	userID := "user-3"

	if err := repos.donations.Insert(ctx, &gormModels.Donation{UserID: userID, AmountCents: 10_00}); err != nil {
		t.Fatalf("insert donation: %v", err)
	}

	first, err := svc.CheckAndAward(ctx, userID, constants.TriggerDonation)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 badge on first pass, got %d", len(first))
	}

	second, err := svc.CheckAndAward(ctx, userID, constants.TriggerDonation)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("expected no badges on second pass, got %d", len(second))
	}

	all, err := repos.badges.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 badge row, got %d", len(all))
	}
}

func TestTriviaBadges(t *testing.T) {
	svc, repos := newBadgeService(t)
	ctx := context.Background()
	userID := "user-4"

	session := &gormModels.GameSession{
		UserID:       userID,
		CorrectCount: 7,
		MaxStreak:    5,
	}
	if err := repos.trivia.CreateSession(ctx, session); err != nil {
		t.Fatalf("create session: %v", err)
	}
	now := session.CreatedAt
	session.CompletedAt = &now
	if err := repos.trivia.SaveSession(ctx, session); err != nil {
		t.Fatalf("save session: %v", err)
	}

	awarded, err := svc.CheckAndAward(ctx, userID, constants.TriggerTrivia)
	if err != nil {
		t.Fatalf("CheckAndAward: %v", err)
	}

	types := make(map[constants.BadgeType]bool)
	for _, b := range awarded {
		types[b.BadgeType] = true
	}
	if !types[constants.BadgeTriviaRookie] {
		t.Error("expected trivia-rookie for first completed game")
	}
	if !types[constants.BadgeTriviaStreak] {
		t.Error("expected trivia-streak for a best streak of 5")
	}
	if types[constants.BadgeTriviaScholar] {
		t.Error("did not expect trivia-scholar at 7 correct answers")
	}
}

func TestAwardManualDuplicate(t *testing.T) {
	svc, _ := newBadgeService(t)
	ctx := context.Background()
	userID := "user-5"

	if _, err := svc.AwardManual(ctx, userID, constants.BadgeRecurringSupport, "recurring donation"); err != nil {
		t.Fatalf("first manual award: %v", err)
	}
	_, err := svc.AwardManual(ctx, userID, constants.BadgeRecurringSupport, "recurring donation")
	if err != repositories.ErrBadgeExists {
		t.Errorf("expected ErrBadgeExists, got %v", err)
	}
}
