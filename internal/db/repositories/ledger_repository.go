package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/models/entities"
)

// LedgerRepository owns the append-only points ledger. The ledger
// insert and the totals update happen in one transaction so a crash
// can never leave a logged award missing from the total.
type LedgerRepository struct {
	db *sqlx.DB
}

func NewLedgerRepository(db *sqlx.DB) *LedgerRepository {
	return &LedgerRepository{db}
}

// Award appends a ledger row and increments the user's running total,
// returning the new total. When donation is true the donation_points
// counter moves by the same delta.
func (r *LedgerRepository) Award(ctx context.Context, award *entities.PointAward, donation bool) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin award tx: %w", err)
	}
	defer tx.Rollback()

	if award.ID == "" {
		award.ID = uuid.NewString()
	}

	var createdAt time.Time
	if err := tx.QueryRowxContext(ctx, constants.InsertPointAward,
		award.ID,
		award.UserID,
		award.Points,
		award.Action,
		award.Description,
	).Scan(&createdAt); err != nil {
		return 0, fmt.Errorf("failed to insert point award: %w", err)
	}
	award.CreatedAt = createdAt

	var newTotal int
	if err := tx.QueryRowxContext(ctx, constants.IncrementUserPoints,
		award.UserID, award.Points,
	).Scan(&newTotal); err != nil {
		return 0, fmt.Errorf("failed to update user points: %w", err)
	}

	if donation {
		var donationTotal int
		if err := tx.QueryRowxContext(ctx, constants.IncrementUserDonationPoints,
			award.UserID, award.Points,
		).Scan(&donationTotal); err != nil {
			return 0, fmt.Errorf("failed to update donation points: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit award tx: %w", err)
	}

	return newTotal, nil
}

func (r *LedgerRepository) GetTotals(ctx context.Context, userID string) (*entities.UserTotals, error) {
	var totals entities.UserTotals
	if err := r.db.QueryRowxContext(ctx, constants.GetUserTotals, userID).StructScan(&totals); err != nil {
		return nil, fmt.Errorf("failed to fetch user totals: %w", err)
	}
	return &totals, nil
}

func (r *LedgerRepository) History(ctx context.Context, userID string, limit, offset int) ([]entities.PointAward, error) {
	awards := []entities.PointAward{}
	if err := r.db.SelectContext(ctx, &awards, constants.GetPointAwardsByUser, userID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to fetch point history: %w", err)
	}
	return awards, nil
}

// SumSince totals a user's ledger deltas from a point in time, used by
// timeframe-windowed leaderboards.
func (r *LedgerRepository) SumSince(ctx context.Context, userID string, since time.Time) (int, error) {
	var sum int
	if err := r.db.QueryRowxContext(ctx, constants.SumPointAwardsSince, userID, since).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum point awards: %w", err)
	}
	return sum, nil
}
