package gorm

import (
	"time"

	"summit-sheriff/recruiting/internal/constants"
)

type User struct {
	ID             string             `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	Email          string             `gorm:"column:email;uniqueIndex"`
	DisplayName    string             `gorm:"column:display_name"`
	PasswordHash   string             `gorm:"column:password_hash"`
	Role           constants.UserRole `gorm:"column:role;default:'RECRUIT'"`
	Points         int                `gorm:"column:points;default:0"`
	DonationPoints int                `gorm:"column:donation_points;default:0"`
	ReferredBy     *string            `gorm:"column:referred_by;type:uuid"`
	HasApplied     bool               `gorm:"column:has_applied;default:false"`
	IsActive       bool               `gorm:"column:is_active;default:true"`
	CreatedAt      time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time          `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Badges []UserBadge `gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}
