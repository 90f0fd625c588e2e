package gorm

import "time"

// ApiKey authenticates service-to-service callers (the donation
// webhook relay, outreach tooling). Rows are minted by cmd/api_key_gen
// and flipped off to revoke.
type ApiKey struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Status    bool      `gorm:"column:status;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ApiKey) TableName() string {
	return "api_keys"
}
