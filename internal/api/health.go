package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck. Postgres down takes the
// whole service down; Redis down only degrades it, since the cache and
// the engagement stream are both optional on the request path.
func HealthCheckHandler(db *sqlx.DB, queue *common.RedisQueueService, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]entities.ServiceStatus)
		overallStatus := string(constants.HealthOk)

		pgStatus := string(constants.HealthOk)
		pgDetails := "Postgres connected"
		if err := db.Ping(); err != nil {
			pgStatus = string(constants.HealthDown)
			pgDetails = err.Error()
			overallStatus = string(constants.HealthDown)
		}
		services["postgres"] = entities.ServiceStatus{
			Status:  pgStatus,
			Details: pgDetails,
		}

		redisStatus := string(constants.HealthOk)
		redisDetails := "Redis connected"
		if err := queue.Ping(r.Context()); err != nil {
			redisStatus = string(constants.HealthDown)
			redisDetails = err.Error()
			if overallStatus == string(constants.HealthOk) {
				overallStatus = string(constants.HealthDegraded)
			}
		}
		services["redis"] = entities.ServiceStatus{
			Status:  redisStatus,
			Details: redisDetails,
		}

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
