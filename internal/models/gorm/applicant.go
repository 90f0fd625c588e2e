package gorm

import (
	"time"

	"summit-sheriff/recruiting/internal/constants"
)

// Applicant is a recruitment-funnel record. Status changes come only
// from admin actions; there are no automated transitions.
type Applicant struct {
	ID             string                    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID         *string                   `gorm:"column:user_id;type:uuid;index"`
	FirstName      string                    `gorm:"column:first_name"`
	LastName       string                    `gorm:"column:last_name"`
	Email          string                    `gorm:"column:email;index"`
	Phone          string                    `gorm:"column:phone"`
	TrackingNumber string                    `gorm:"column:tracking_number;uniqueIndex"`
	ReferralSource string                    `gorm:"column:referral_source"`
	Status         constants.ApplicantStatus `gorm:"column:status;default:'pending'"`
	Notes          string                    `gorm:"column:notes;type:text"`
	CreatedAt      time.Time                 `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time                 `gorm:"column:updated_at;autoUpdateTime"`
}

func (Applicant) TableName() string {
	return "applicants"
}
