package gorm

import "time"

// PointAward is the append-only ledger. Rows are written through the
// sqlx repository inside a transaction with the totals update; the
// GORM model exists for migration and admin reads.
type PointAward struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	UserID      string    `gorm:"column:user_id;type:uuid;index"`
	Points      int       `gorm:"column:points"`
	Action      string    `gorm:"column:action;index"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (PointAward) TableName() string {
	return "point_awards"
}
