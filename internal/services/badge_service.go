package services

import (
	"context"
	"errors"
	"time"

	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/db/repositories"
	"summit-sheriff/recruiting/internal/logging"
	"summit-sheriff/recruiting/internal/metrics"
	"summit-sheriff/recruiting/internal/models/dtos"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

type BadgeService struct {
	badges    *repositories.BadgeRepository
	donations *repositories.DonationRepository
	trivia    *repositories.TriviaRepository
	checklist *repositories.ChecklistRepository
	metrics   *metrics.MetricsRegistry
	queue     *common.RedisQueueService
}

func NewBadgeService(
	badges *repositories.BadgeRepository,
	donations *repositories.DonationRepository,
	trivia *repositories.TriviaRepository,
	checklist *repositories.ChecklistRepository,
	metricsReg *metrics.MetricsRegistry,
	queue *common.RedisQueueService,
) *BadgeService {
	return &BadgeService{
		badges:    badges,
		donations: donations,
		trivia:    trivia,
		checklist: checklist,
		metrics:   metricsReg,
		queue:     queue,
	}
}

// CheckAndAward evaluates every rule in the trigger's family against
// fresh counters and awards each newly crossed threshold. Returns the
// badges granted by this pass. A rule already held is skipped via the
// unique-index guard, so concurrent calls stay correct.
func (s *BadgeService) CheckAndAward(ctx context.Context, userID string, trigger constants.BadgeTrigger) ([]gormModels.UserBadge, error) {
	counters, err := s.loadCounters(ctx, userID, trigger)
	if err != nil {
		return nil, err
	}

	var awarded []gormModels.UserBadge
	for _, rule := range RulesForTrigger(trigger) {
		if !rule.Met(counters) {
			continue
		}

		badge := gormModels.UserBadge{
			UserID:      userID,
			BadgeType:   rule.Type,
			Progress:    100,
			Requirement: rule.Requirement,
		}
		err := s.badges.AwardIfAbsent(ctx, &badge)
		if errors.Is(err, repositories.ErrBadgeExists) {
			continue
		}
		if err != nil {
			return awarded, err
		}

		awarded = append(awarded, badge)
		if s.metrics != nil {
			s.metrics.BadgesAwardedTotal.WithLabelValues(string(rule.Type)).Inc()
		}
		s.publishEvent(ctx, userID, rule.Type)
		logging.Info("Badge awarded", "user_id", userID, "badge_type", rule.Type)
	}

	return awarded, nil
}

// AwardManual grants a badge directly, for admin use. Granting a badge
// the user already holds is not an error.
func (s *BadgeService) AwardManual(ctx context.Context, userID string, badgeType constants.BadgeType, requirement string) (*gormModels.UserBadge, error) {
	badge := gormModels.UserBadge{
		UserID:      userID,
		BadgeType:   badgeType,
		Progress:    100,
		Requirement: requirement,
	}
	err := s.badges.AwardIfAbsent(ctx, &badge)
	if errors.Is(err, repositories.ErrBadgeExists) {
		return nil, repositories.ErrBadgeExists
	}
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.BadgesAwardedTotal.WithLabelValues(string(badgeType)).Inc()
	}
	s.publishEvent(ctx, userID, badgeType)
	return &badge, nil
}

func (s *BadgeService) ListByUser(ctx context.Context, userID string) ([]dtos.BadgeResponse, error) {
	badges, err := s.badges.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dtos.BadgeResponse, 0, len(badges))
	for _, b := range badges {
		out = append(out, BadgeView(&b))
	}
	return out, nil
}

// BadgeView shapes a badge row for API responses.
func BadgeView(b *gormModels.UserBadge) dtos.BadgeResponse {
	name, description := BadgeDisplayName(b.BadgeType)
	return dtos.BadgeResponse{
		BadgeType:   string(b.BadgeType),
		Name:        name,
		Description: description,
		Progress:    b.Progress,
		Requirement: b.Requirement,
		EarnedAt:    b.EarnedAt,
	}
}

func (s *BadgeService) loadCounters(ctx context.Context, userID string, trigger constants.BadgeTrigger) (*BadgeCounters, error) {
	counters := &BadgeCounters{}

	switch trigger {
	case constants.TriggerDonation:
		stats, err := s.donations.StatsByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		counters.DonationCount = stats.Count
		counters.LifetimeCents = stats.LifetimeCents
		counters.LargestCents = stats.LargestCents
		counters.HasRecurring = stats.HasRecurring

	case constants.TriggerTrivia:
		stats, err := s.trivia.StatsByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		counters.GamesCompleted = stats.GamesCompleted
		counters.TotalCorrect = stats.TotalCorrect
		counters.BestStreak = stats.BestStreak

	case constants.TriggerChecklist:
		items, err := s.checklist.Items(ctx)
		if err != nil {
			return nil, err
		}
		progress, err := s.checklist.ProgressByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		checked := make(map[string]bool, len(progress))
		for _, p := range progress {
			if p.Checked {
				checked[p.ItemID] = true
			}
		}
		for _, item := range items {
			if !item.Required {
				continue
			}
			counters.RequiredItems++
			if checked[item.ID] {
				counters.CheckedRequired++
			}
		}
	}

	return counters, nil
}

func (s *BadgeService) publishEvent(ctx context.Context, userID string, badgeType constants.BadgeType) {
	if s.queue == nil {
		return
	}
	event := &common.EngagementEvent{
		Type:       "badge_awarded",
		UserID:     userID,
		BadgeType:  string(badgeType),
		OccurredAt: time.Now(),
	}
	if err := s.queue.EnqueueEvent(ctx, constants.EngagementStream, event); err != nil {
		logging.Warn("Failed to enqueue badge event", "badge_type", badgeType, "error", err.Error())
	}
}
