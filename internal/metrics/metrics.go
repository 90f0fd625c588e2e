package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the recruiting API
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	PointsAwardedTotal      prometheus.CounterVec
	BadgesAwardedTotal      prometheus.CounterVec
	TriviaGamesTotal        prometheus.CounterVec
	DonationsRecordedTotal  prometheus.Counter
	LeaderboardFallbacks    prometheus.Counter
	ChatMessagesTotal       prometheus.CounterVec
	ApplicantsByStatus      prometheus.GaugeVec
	EngagementQueueDepth    prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recruiting_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recruiting_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "recruiting_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recruiting_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recruiting_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recruiting_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recruiting_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		PointsAwardedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recruiting_points_awarded_total",
				Help: "Total engagement points awarded by action label",
			},
			[]string{"action"},
		),
		BadgesAwardedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recruiting_badges_awarded_total",
				Help: "Total badges issued by badge type",
			},
			[]string{"badge_type"},
		),
		TriviaGamesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recruiting_trivia_games_total",
				Help: "Trivia games by lifecycle event (started, completed, shared)",
			},
			[]string{"event"},
		),
		DonationsRecordedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recruiting_donations_recorded_total",
				Help: "Total donation records processed",
			},
		),
		LeaderboardFallbacks: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "recruiting_leaderboard_fallbacks_total",
				Help: "Times the leaderboard served seeded example entries",
			},
		),
		ChatMessagesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recruiting_chat_messages_total",
				Help: "Chat responder messages by matched topic",
			},
			[]string{"topic"},
		),
		ApplicantsByStatus: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "recruiting_applicants_by_status",
				Help: "Current applicant count per funnel status",
			},
			[]string{"status"},
		),
		EngagementQueueDepth: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "recruiting_engagement_queue_depth",
				Help: "Pending entries in the engagement event stream",
			},
		),
	}
}
