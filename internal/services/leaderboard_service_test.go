package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/db/repositories"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

func newLeaderboardService(t *testing.T) (*LeaderboardService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewLeaderboardService(
		repositories.NewLeaderboardRepository(db),
		repositories.NewBadgeRepository(db),
		repositories.NewUserRepositoryGORM(db),
		nil, nil,
	)
	return svc, db
}

func seedRankedUser(t *testing.T, db *gorm.DB, id, name string, points int, createdAt time.Time) {
	t.Helper()
	user := gormModels.User{
		ID:          id,
		Email:       id + "@example.com",
		DisplayName: name,
		Points:      points,
		IsActive:    true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
	// autoCreateTime overrides the struct value on insert.
	if err := db.Model(&gormModels.User{}).Where("id = ?", id).Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("backdate user %s: %v", id, err)
	}
}

func TestLeaderboardFallbackWhenEmpty(t *testing.T) {
	svc, _ := newLeaderboardService(t)

	resp, err := svc.Fetch(context.Background(), "all", "points", "", 10, 0, "")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if len(resp.Entries) != 5 {
		t.Fatalf("expected 5 seeded entries, got %d", len(resp.Entries))
	}
	wantScores := []int{85, 65, 45, 35, 25}
	for i, entry := range resp.Entries {
		if !entry.IsMock {
			t.Errorf("entry %d should be flagged as mock", i)
		}
		if entry.Points != wantScores[i] {
			t.Errorf("entry %d: expected %d points, got %d", i, wantScores[i], entry.Points)
		}
		if entry.Rank != i+1 {
			t.Errorf("entry %d: expected rank %d, got %d", i, i+1, entry.Rank)
		}
	}
	if resp.Total != 0 {
		t.Errorf("mock entries must not count toward the total, got %d", resp.Total)
	}
}

func TestLeaderboardRankingAndTieBreak(t *testing.T) {
	svc, db := newLeaderboardService(t)
	ctx := context.Background()

	now := time.Now()
	seedRankedUser(t, db, "u-late", "Late Tie", 50, now)
	seedRankedUser(t, db, "u-top", "Top Scorer", 100, now)
	seedRankedUser(t, db, "u-early", "Early Tie", 50, now.Add(-time.Hour))

	resp, err := svc.Fetch(ctx, "all", "points", "", 10, 0, "")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if len(resp.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(resp.Entries))
	}
	if resp.Total != 3 {
		t.Errorf("expected total 3, got %d", resp.Total)
	}

	order := []string{"u-top", "u-early", "u-late"}
	for i, want := range order {
		if resp.Entries[i].UserID != want {
			t.Errorf("rank %d: expected %s, got %s", i+1, want, resp.Entries[i].UserID)
		}
		if resp.Entries[i].Rank != i+1 {
			t.Errorf("rank %d: got rank field %d", i+1, resp.Entries[i].Rank)
		}
		if resp.Entries[i].IsMock {
			t.Errorf("rank %d: real entry flagged as mock", i+1)
		}
	}
}

func TestLeaderboardMarksCurrentUser(t *testing.T) {
	svc, db := newLeaderboardService(t)
	ctx := context.Background()

	seedRankedUser(t, db, "u-me", "Me", 40, time.Now())
	seedRankedUser(t, db, "u-them", "Them", 60, time.Now())

	resp, err := svc.Fetch(ctx, "all", "points", "", 10, 0, "u-me")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	for _, entry := range resp.Entries {
		if entry.UserID == "u-me" && !entry.IsCurrentUser {
			t.Error("expected the viewer's row to be marked")
		}
		if entry.UserID != "u-me" && entry.IsCurrentUser {
			t.Errorf("entry %s wrongly marked as current user", entry.UserID)
		}
	}
}

func TestLeaderboardSearchFilters(t *testing.T) {
	svc, db := newLeaderboardService(t)
	ctx := context.Background()

	seedRankedUser(t, db, "u-1", "Dana Whitfield", 10, time.Now())
	seedRankedUser(t, db, "u-2", "Sam Porter", 20, time.Now())

	resp, err := svc.Fetch(ctx, "all", "points", "whit", 10, 0, "")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if len(resp.Entries) != 1 || resp.Entries[0].UserID != "u-1" {
		t.Fatalf("expected only the matching user, got %+v", resp.Entries)
	}
	if resp.Total != 1 {
		t.Errorf("expected filtered total 1, got %d", resp.Total)
	}
}

func TestLeaderboardBadgeDecoration(t *testing.T) {
	svc, db := newLeaderboardService(t)
	ctx := context.Background()

	seedRankedUser(t, db, "u-badged", "Badged", 30, time.Now())
	badgeRepo := repositories.NewBadgeRepository(db)
	for _, bt := range []constants.BadgeType{constants.BadgeFirstDonation, constants.BadgeTriviaRookie} {
		badge := gormModels.UserBadge{UserID: "u-badged", BadgeType: bt, Requirement: "test"}
		if err := badgeRepo.AwardIfAbsent(ctx, &badge); err != nil {
			t.Fatalf("insert badge: %v", err)
		}
	}

	resp, err := svc.Fetch(ctx, "all", "points", "", 10, 0, "")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if len(resp.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(resp.Entries))
	}
	if resp.Entries[0].BadgeCount != 2 {
		t.Errorf("expected 2 badges, got %d", resp.Entries[0].BadgeCount)
	}
}
