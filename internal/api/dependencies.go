package api

import (
	"os"

	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/db"
	"summit-sheriff/recruiting/internal/db/repositories"
	"summit-sheriff/recruiting/internal/logging"
	"summit-sheriff/recruiting/internal/metrics"
	"summit-sheriff/recruiting/internal/services"
)

type Repositories struct {
	Ledger     *repositories.LedgerRepository
	Keys       *repositories.KeysRepo
	UserGorm   *repositories.UserRepositoryGORM
	Badges     *repositories.BadgeRepository
	Donations  *repositories.DonationRepository
	Trivia     *repositories.TriviaRepository
	Checklist  *repositories.ChecklistRepository
	Applicants *repositories.ApplicantRepository
	Board      *repositories.LeaderboardRepository
}

type Services struct {
	Cache        common.CacheInterface
	RedisQueue   *common.RedisQueueService
	Tokens       *common.TokenService
	Points       *services.PointsService
	Badges       *services.BadgeService
	Donations    *services.DonationService
	Leaderboard  *services.LeaderboardService
	Trivia       *services.TriviaService
	Chat         *services.ChatService
	Checklist    *services.ChecklistService
	Applicants   *services.ApplicantService
	Registration *services.RegistrationService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Ledger:     repositories.NewLedgerRepository(db.DB),
		Keys:       repositories.NewApiKeysRepo(db.DB),
		UserGorm:   repositories.NewUserRepositoryGORM(db.PgDB),
		Badges:     repositories.NewBadgeRepository(db.PgDB),
		Donations:  repositories.NewDonationRepository(db.PgDB),
		Trivia:     repositories.NewTriviaRepository(db.PgDB),
		Checklist:  repositories.NewChecklistRepository(db.PgDB),
		Applicants: repositories.NewApplicantRepository(db.PgDB),
		Board:      repositories.NewLeaderboardRepository(db.PgDB),
	}

	tokens, err := common.NewTokenService()
	if err != nil {
		return nil, err
	}

	// Redis backs the engagement stream always; it backs the cache only
	// when CACHE_BACKEND=redis, so single-instance deployments stay on
	// the in-memory cache.
	redisClient := common.NewRedisClient()
	queueSvc := common.NewRedisQueueService(redisClient)

	var cacheSvc common.CacheInterface
	if os.Getenv("CACHE_BACKEND") == "redis" {
		cacheSvc = common.NewRedisCacheService(redisClient)
		logging.Info("Using Redis cache backend")
	} else {
		cacheSvc = common.NewCacheService(600, 120)
	}

	pointsSvc := services.NewPointsService(repos.Ledger, metricsReg, queueSvc)
	badgeSvc := services.NewBadgeService(repos.Badges, repos.Donations, repos.Trivia, repos.Checklist, metricsReg, queueSvc)

	svcs := &Services{
		Cache:        cacheSvc,
		RedisQueue:   queueSvc,
		Tokens:       tokens,
		Points:       pointsSvc,
		Badges:       badgeSvc,
		Donations:    services.NewDonationService(repos.Donations, pointsSvc, badgeSvc, metricsReg),
		Leaderboard:  services.NewLeaderboardService(repos.Board, repos.Badges, repos.UserGorm, cacheSvc, metricsReg),
		Trivia:       services.NewTriviaService(repos.Trivia, pointsSvc, badgeSvc, cacheSvc, metricsReg),
		Chat:         services.NewChatService(cacheSvc, metricsReg),
		Checklist:    services.NewChecklistService(repos.Checklist, pointsSvc, badgeSvc),
		Applicants:   services.NewApplicantService(repos.Applicants, repos.UserGorm, metricsReg),
		Registration: services.NewRegistrationService(repos.UserGorm, pointsSvc, tokens),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
