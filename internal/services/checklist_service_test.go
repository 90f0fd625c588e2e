package services

import (
	"context"
	"testing"

	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/db/repositories"
	"summit-sheriff/recruiting/internal/models/dtos"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

func newChecklistService(t *testing.T) (*ChecklistService, *repositories.BadgeRepository, *fakeLedger) {
	t.Helper()
	db := newTestDB(t)

	checklistRepo := repositories.NewChecklistRepository(db)
	badgeRepo := repositories.NewBadgeRepository(db)
	badgeSvc := NewBadgeService(
		badgeRepo,
		repositories.NewDonationRepository(db),
		repositories.NewTriviaRepository(db),
		checklistRepo,
		nil, nil,
	)
	ledger := newFakeLedger()
	svc := NewChecklistService(checklistRepo, NewPointsService(ledger, nil, nil), badgeSvc)

	items := []gormModels.ChecklistItem{
		{ID: "drivers-license", Title: "Valid driver's license", Required: true, SortOrder: 1},
		{ID: "diploma", Title: "High school diploma or GED", Required: true, SortOrder: 2},
		{ID: "references", Title: "Three personal references", Required: false, SortOrder: 3},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("seed checklist item: %v", err)
		}
	}

	return svc, badgeRepo, ledger
}

func TestChecklistTogglePaysOnce(t *testing.T) {
	svc, _, ledger := newChecklistService(t)
	ctx := context.Background()
	userID := "recruit-1"

	resp, err := svc.Toggle(ctx, userID, &dtos.ChecklistToggleReq{ItemID: "drivers-license", Checked: true})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if resp.CheckedCount != 1 {
		t.Errorf("expected 1 checked item, got %d", resp.CheckedCount)
	}
	if resp.PointsAwarded != constants.PointsPerChecklistItem {
		t.Errorf("expected %d awarded points, got %d", constants.PointsPerChecklistItem, resp.PointsAwarded)
	}

	// Uncheck then recheck: the progress row remembers the payout.
	if _, err := svc.Toggle(ctx, userID, &dtos.ChecklistToggleReq{ItemID: "drivers-license", Checked: false}); err != nil {
		t.Fatalf("uncheck: %v", err)
	}
	resp, err = svc.Toggle(ctx, userID, &dtos.ChecklistToggleReq{ItemID: "drivers-license", Checked: true})
	if err != nil {
		t.Fatalf("recheck: %v", err)
	}
	if resp.PointsAwarded != constants.PointsPerChecklistItem {
		t.Errorf("expected payout to stay at %d, got %d", constants.PointsPerChecklistItem, resp.PointsAwarded)
	}
	if entries := ledger.entriesFor(userID); len(entries) != 1 {
		t.Errorf("expected exactly 1 ledger entry, got %d", len(entries))
	}
}

func TestChecklistUncheckUntouchedItemIsNoop(t *testing.T) {
	svc, _, ledger := newChecklistService(t)
	ctx := context.Background()

	resp, err := svc.Toggle(ctx, "recruit-2", &dtos.ChecklistToggleReq{ItemID: "diploma", Checked: false})
	if err != nil {
		t.Fatalf("uncheck: %v", err)
	}
	if resp.CheckedCount != 0 {
		t.Errorf("expected nothing checked, got %d", resp.CheckedCount)
	}
	if len(ledger.entriesFor("recruit-2")) != 0 {
		t.Error("expected no ledger entries for a no-op uncheck")
	}
}

func TestChecklistCompletionBadge(t *testing.T) {
	svc, badgeRepo, _ := newChecklistService(t)
	ctx := context.Background()
	userID := "recruit-3"

	// Both required items; the optional one stays unchecked.
	if _, err := svc.Toggle(ctx, userID, &dtos.ChecklistToggleReq{ItemID: "drivers-license", Checked: true}); err != nil {
		t.Fatalf("check 1: %v", err)
	}

	badges, err := badgeRepo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(badges) != 0 {
		t.Fatalf("expected no badge before all required items, got %d", len(badges))
	}

	resp, err := svc.Toggle(ctx, userID, &dtos.ChecklistToggleReq{ItemID: "diploma", Checked: true})
	if err != nil {
		t.Fatalf("check 2: %v", err)
	}
	if !resp.Complete {
		t.Error("expected checklist marked complete")
	}

	badges, err = badgeRepo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(badges) != 1 || badges[0].BadgeType != constants.BadgeChecklistComplete {
		t.Errorf("expected the checklist-complete badge, got %+v", badges)
	}
}

func TestChecklistOverviewMergesProgress(t *testing.T) {
	svc, _, _ := newChecklistService(t)
	ctx := context.Background()
	userID := "recruit-4"

	if _, err := svc.Toggle(ctx, userID, &dtos.ChecklistToggleReq{ItemID: "references", Checked: true}); err != nil {
		t.Fatalf("check: %v", err)
	}

	resp, err := svc.Overview(ctx, userID)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if len(resp.Items) != 3 {
		t.Fatalf("expected the full catalog, got %d items", len(resp.Items))
	}
	if resp.RequiredCount != 2 {
		t.Errorf("expected 2 required items, got %d", resp.RequiredCount)
	}
	if resp.Complete {
		t.Error("optional item alone must not complete the checklist")
	}
	for _, item := range resp.Items {
		if item.ID == "references" && !item.Checked {
			t.Error("expected references to show checked")
		}
	}
}
