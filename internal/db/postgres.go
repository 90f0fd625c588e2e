package db

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"summit-sheriff/recruiting/internal/logging"
)

// DB is the sqlx handle backing the points ledger and API key lookups.
// The gorm handle in orm.go shares the same database.
var DB *sqlx.DB

func InitPostgres() error {
	host := os.Getenv("PG_HOST")
	port := os.Getenv("PG_PORT")
	user := os.Getenv("PG_USER")
	dbname := os.Getenv("PG_DB")
	password := os.Getenv("PG_PASSWORD")
	sslmode := os.Getenv("PG_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, password, host, port, dbname, sslmode)

	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			DB.SetMaxOpenConns(25)
			DB.SetMaxIdleConns(5)
			DB.SetConnMaxLifetime(30 * time.Minute)
			logging.Info("Postgres connected", "host", host, "database", dbname)
			return nil
		}
		logging.Warn("Postgres connection failed, retrying", "attempt", i+1, "error", err.Error())
		time.Sleep(500 * time.Millisecond)
	}
	return err
}
