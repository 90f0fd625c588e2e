package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"summit-sheriff/recruiting/internal/api"
	"summit-sheriff/recruiting/internal/db"
	"summit-sheriff/recruiting/internal/jobs"
	"summit-sheriff/recruiting/internal/logging"
	"summit-sheriff/recruiting/internal/metrics"
	"summit-sheriff/recruiting/internal/middleware"
	"summit-sheriff/recruiting/internal/workers"
)

func RegisterRoutes(upSince time.Time) http.Handler {

	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-User-Id", "X-Chat-Session", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	deps, err := api.InitDependencies(metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, deps.Services.RedisQueue, upSince))

	handlers := api.NewHandlers(deps)

	jobs.InitializeJobs(
		context.Background(),
		deps.Repo.Donations,
		deps.Repo.Trivia,
	)

	workers.InitWorkers(
		context.Background(),
		deps.Services.RedisQueue,
		deps.Services.Cache,
		metricsReg,
	)

	RegisterAPIRoutes(r, metricsReg, deps, handlers)

	return r
}
