package entities

import "time"

// PointAward is one append-only ledger row. Rows are never mutated or
// deleted; totals can be re-derived by summing a user's rows.
type PointAward struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Points      int       `db:"points"`
	Action      string    `db:"action"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// UserTotals is the denormalized running total pair on the users row.
type UserTotals struct {
	UserID         string `db:"id"`
	Points         int    `db:"points"`
	DonationPoints int    `db:"donation_points"`
}
