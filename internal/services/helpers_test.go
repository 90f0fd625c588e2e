package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"summit-sheriff/recruiting/internal/models/entities"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	// A pooled second connection would see an empty :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&gormModels.User{},
		&gormModels.UserBadge{},
		&gormModels.Donation{},
		&gormModels.DonationPointRule{},
		&gormModels.DonationCampaign{},
		&gormModels.TriviaQuestion{},
		&gormModels.GameSession{},
		&gormModels.GameAnswer{},
		&gormModels.Applicant{},
		&gormModels.ChecklistItem{},
		&gormModels.UserChecklistProgress{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// fakeLedger is an in-memory Ledger so service tests run without the
// sqlx/postgres pair.
type fakeLedger struct {
	mu      sync.Mutex
	entries []entities.PointAward
	totals  map[string]*entities.UserTotals
	failAll bool
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{totals: make(map[string]*entities.UserTotals)}
}

func (f *fakeLedger) Award(ctx context.Context, award *entities.PointAward, donation bool) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failAll {
		return 0, context.DeadlineExceeded
	}

	award.CreatedAt = time.Now()
	f.entries = append(f.entries, *award)

	totals, ok := f.totals[award.UserID]
	if !ok {
		totals = &entities.UserTotals{UserID: award.UserID}
		f.totals[award.UserID] = totals
	}
	totals.Points += award.Points
	if totals.Points < 0 {
		totals.Points = 0
	}
	if donation {
		totals.DonationPoints += award.Points
		if totals.DonationPoints < 0 {
			totals.DonationPoints = 0
		}
	}
	return totals.Points, nil
}

func (f *fakeLedger) GetTotals(ctx context.Context, userID string) (*entities.UserTotals, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if totals, ok := f.totals[userID]; ok {
		copied := *totals
		return &copied, nil
	}
	return &entities.UserTotals{UserID: userID}, nil
}

func (f *fakeLedger) History(ctx context.Context, userID string, limit, offset int) ([]entities.PointAward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.PointAward
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].UserID == userID {
			out = append(out, f.entries[i])
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeLedger) SumSince(ctx context.Context, userID string, since time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sum := 0
	for _, e := range f.entries {
		if e.UserID == userID && !e.CreatedAt.Before(since) {
			sum += e.Points
		}
	}
	return sum, nil
}

func (f *fakeLedger) entriesFor(userID string) []entities.PointAward {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.PointAward
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}
