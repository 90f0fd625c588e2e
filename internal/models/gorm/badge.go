package gorm

import (
	"time"

	"summit-sheriff/recruiting/internal/constants"
)

// UserBadge is an awarded badge instance. The composite unique index is
// what makes badge awards idempotent under concurrent triggers.
type UserBadge struct {
	ID        string              `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string              `gorm:"column:user_id;type:uuid;uniqueIndex:idx_user_badge"`
	BadgeType constants.BadgeType `gorm:"column:badge_type;uniqueIndex:idx_user_badge"`
	Progress  int                 `gorm:"column:progress;default:100"`
	// Requirement snapshot at award time, e.g. "5 donations".
	Requirement string    `gorm:"column:requirement"`
	EarnedAt    time.Time `gorm:"column:earned_at;autoCreateTime"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
