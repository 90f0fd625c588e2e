package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"summit-sheriff/recruiting/internal/logging"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

var PgDB *gorm.DB

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&gormModels.User{},
		&gormModels.PointAward{},
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
		&gormModels.ApiKey{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	PgDB = db
	logging.Info("Connected to Postgres via GORM")
	return db, nil
}
