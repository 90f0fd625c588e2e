package services

import (
	"context"
	"fmt"
	"time"

	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/logging"
	"summit-sheriff/recruiting/internal/metrics"
	"summit-sheriff/recruiting/internal/models/entities"
)

// Ledger is the points ledger contract. Implemented by
// repositories.LedgerRepository; tests substitute an in-memory fake.
type Ledger interface {
	Award(ctx context.Context, award *entities.PointAward, donation bool) (int, error)
	GetTotals(ctx context.Context, userID string) (*entities.UserTotals, error)
	History(ctx context.Context, userID string, limit, offset int) ([]entities.PointAward, error)
	SumSince(ctx context.Context, userID string, since time.Time) (int, error)
}

type PointsService struct {
	ledger  Ledger
	metrics *metrics.MetricsRegistry
	queue   *common.RedisQueueService
}

func NewPointsService(ledger Ledger, metricsReg *metrics.MetricsRegistry, queue *common.RedisQueueService) *PointsService {
	return &PointsService{
		ledger:  ledger,
		metrics: metricsReg,
		queue:   queue,
	}
}

// Award appends a ledger entry and moves the user's total, returning
// the new total. Zero and negative deltas are legal; the ledger keeps
// the true delta even when the total clamps at zero.
func (s *PointsService) Award(ctx context.Context, userID string, points int, action, description string) (int, error) {
	return s.award(ctx, userID, points, action, description, false)
}

// AwardDonation moves both the points total and the donation_points
// counter.
func (s *PointsService) AwardDonation(ctx context.Context, userID string, points int, description string) (int, error) {
	return s.award(ctx, userID, points, constants.ActionDonation, description, true)
}

func (s *PointsService) award(ctx context.Context, userID string, points int, action, description string, donation bool) (int, error) {
	if userID == "" {
		return 0, fmt.Errorf("user id is required")
	}
	if action == "" {
		action = constants.ActionManualAward
	}

	award := &entities.PointAward{
		UserID:      userID,
		Points:      points,
		Action:      action,
		Description: description,
	}

	newTotal, err := s.ledger.Award(ctx, award, donation)
	if err != nil {
		return 0, fmt.Errorf("failed to award points: %w", err)
	}

	if s.metrics != nil {
		s.metrics.PointsAwardedTotal.WithLabelValues(action).Add(float64(points))
	}
	s.publishEvent(ctx, &common.EngagementEvent{
		Type:       "points_awarded",
		UserID:     userID,
		Action:     action,
		Points:     points,
		OccurredAt: time.Now(),
	})

	logging.Info("Points awarded",
		"user_id", userID,
		"points", points,
		"action", action,
		"new_total", newTotal,
	)

	return newTotal, nil
}

func (s *PointsService) GetTotals(ctx context.Context, userID string) (*entities.UserTotals, error) {
	return s.ledger.GetTotals(ctx, userID)
}

// WeeklyPoints totals the user's ledger deltas over the trailing seven
// days.
func (s *PointsService) WeeklyPoints(ctx context.Context, userID string) (int, error) {
	return s.ledger.SumSince(ctx, userID, time.Now().AddDate(0, 0, -7))
}

func (s *PointsService) History(ctx context.Context, userID string, limit, offset int) ([]entities.PointAward, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.ledger.History(ctx, userID, limit, offset)
}

// publishEvent pushes to the engagement stream best-effort; the award
// path never fails on queue trouble.
func (s *PointsService) publishEvent(ctx context.Context, event *common.EngagementEvent) {
	if s.queue == nil {
		return
	}
	if err := s.queue.EnqueueEvent(ctx, constants.EngagementStream, event); err != nil {
		logging.Warn("Failed to enqueue engagement event", "type", event.Type, "error", err.Error())
	}
}
