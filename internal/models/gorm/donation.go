package gorm

import "time"

// Donation is a recorded contribution. Amounts are whole cents.
type Donation struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        string    `gorm:"column:user_id;type:uuid;index"`
	CampaignID    *string   `gorm:"column:campaign_id;type:uuid"`
	AmountCents   int64     `gorm:"column:amount_cents"`
	IsRecurring   bool      `gorm:"column:is_recurring;default:false"`
	PointsAwarded int       `gorm:"column:points_awarded;default:0"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Donation) TableName() string {
	return "donations"
}

// DonationPointRule maps a donation amount bracket to a points rate.
// Brackets are evaluated in ascending min_amount order; the first
// active rule whose range contains the amount wins.
type DonationPointRule struct {
	ID                  string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	Name                string    `gorm:"column:name"`
	MinAmountCents      int64     `gorm:"column:min_amount_cents"`
	MaxAmountCents      int64     `gorm:"column:max_amount_cents"` // 0 means unbounded
	PointsPerDollar     int       `gorm:"column:points_per_dollar"`
	RecurringMultiplier float64   `gorm:"column:recurring_multiplier;default:1"`
	CampaignID          *string   `gorm:"column:campaign_id;type:uuid"`
	IsActive            bool      `gorm:"column:is_active;default:true"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (DonationPointRule) TableName() string {
	return "donation_point_rules"
}

type DonationCampaign struct {
	ID              string     `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	Name            string     `gorm:"column:name"`
	StartDate       time.Time  `gorm:"column:start_date"`
	EndDate         *time.Time `gorm:"column:end_date"`
	PointMultiplier float64    `gorm:"column:point_multiplier;default:1"`
	IsActive        bool       `gorm:"column:is_active;default:true"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (DonationCampaign) TableName() string {
	return "donation_campaigns"
}
