package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/db/repositories"
	"summit-sheriff/recruiting/internal/logging"
	"summit-sheriff/recruiting/internal/metrics"
	"summit-sheriff/recruiting/internal/models/dtos"
)

type LeaderboardService struct {
	board   *repositories.LeaderboardRepository
	badges  *repositories.BadgeRepository
	users   *repositories.UserRepositoryGORM
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

func NewLeaderboardService(
	board *repositories.LeaderboardRepository,
	badges *repositories.BadgeRepository,
	users *repositories.UserRepositoryGORM,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *LeaderboardService {
	return &LeaderboardService{
		board:   board,
		badges:  badges,
		users:   users,
		cache:   cache,
		metrics: metricsReg,
	}
}

// Fetch returns the ranked board for a timeframe and category. When the
// query fails or returns nothing, seeded example entries are served so
// the board is never empty; those are flagged and excluded from the
// total.
func (s *LeaderboardService) Fetch(ctx context.Context, timeframe, category, search string, limit, offset int, currentUserID string) (*dtos.LeaderboardResponse, error) {
	timeframe = normalizeTimeframe(timeframe)
	category = normalizeCategory(category)
	if limit <= 0 || limit > constants.LeaderboardMaxLimit {
		limit = constants.LeaderboardDefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	search = common.NormalizeSearch(search)

	ctx, cancel := context.WithTimeout(ctx, constants.LeaderboardFetchTimeout)
	defer cancel()

	// Only the first unfiltered page is cached; it is the one every
	// visitor loads.
	cacheKey := ""
	if search == "" && offset == 0 && s.cache != nil {
		cacheKey = fmt.Sprintf("%s%s:%s:%d", constants.CachePrefixLeaderboard, timeframe, category, limit)
		if cached, found := s.cache.Get(cacheKey); found {
			if resp, ok := cached.(*dtos.LeaderboardResponse); ok {
				if s.metrics != nil {
					s.metrics.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixLeaderboard)).Inc()
				}
				return decorateCurrentUser(resp, currentUserID), nil
			}
		}
		if s.metrics != nil {
			s.metrics.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixLeaderboard)).Inc()
		}
	}

	ranked, total, err := s.board.FetchRanked(ctx, category, sinceFor(timeframe), search, limit, offset)
	if err != nil {
		logging.Error("Leaderboard query failed, serving fallback", "error", err.Error())
		return s.fallback(timeframe, category, currentUserID), nil
	}
	if len(ranked) == 0 && offset == 0 && search == "" {
		return s.fallback(timeframe, category, currentUserID), nil
	}

	entries := make([]dtos.LeaderboardEntry, len(ranked))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, user := range ranked {
		g.Go(func() error {
			badgeCount, err := s.badges.CountByUser(gctx, user.ID)
			if err != nil {
				return err
			}
			referralCount, err := s.users.CountReferrals(gctx, user.ID)
			if err != nil {
				return err
			}
			entries[i] = dtos.LeaderboardEntry{
				Rank:          offset + i + 1,
				UserID:        user.ID,
				DisplayName:   user.DisplayName,
				Points:        user.Score,
				BadgeCount:    int(badgeCount),
				ReferralCount: int(referralCount),
				HasApplied:    user.HasApplied,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logging.Error("Leaderboard decoration failed, serving fallback", "error", err.Error())
		return s.fallback(timeframe, category, currentUserID), nil
	}

	resp := &dtos.LeaderboardResponse{
		Entries:   entries,
		Total:     total,
		Timeframe: timeframe,
		Category:  category,
	}
	if cacheKey != "" {
		s.cache.Set(cacheKey, resp, constants.LeaderboardCacheTTL)
	}
	return decorateCurrentUser(resp, currentUserID), nil
}

// fallback serves five seeded example entries with deliberately low
// scores, so the first real participants outrank them immediately.
// Mock rows never count toward the total.
func (s *LeaderboardService) fallback(timeframe, category, currentUserID string) *dtos.LeaderboardResponse {
	if s.metrics != nil {
		s.metrics.LeaderboardFallbacks.Inc()
	}

	names := []string{"Alex R.", "Jordan M.", "Casey T.", "Riley P.", "Morgan S."}
	scores := []int{85, 65, 45, 35, 25}

	entries := make([]dtos.LeaderboardEntry, len(names))
	for i := range names {
		entries[i] = dtos.LeaderboardEntry{
			Rank:        i + 1,
			UserID:      fmt.Sprintf("mock-%d", i+1),
			DisplayName: names[i],
			Points:      scores[i],
			IsMock:      true,
		}
	}

	return decorateCurrentUser(&dtos.LeaderboardResponse{
		Entries:   entries,
		Total:     0,
		Timeframe: timeframe,
		Category:  category,
	}, currentUserID)
}

// decorateCurrentUser marks the viewer's own row without mutating the
// cached copy.
func decorateCurrentUser(resp *dtos.LeaderboardResponse, currentUserID string) *dtos.LeaderboardResponse {
	if currentUserID == "" {
		return resp
	}
	out := *resp
	out.Entries = make([]dtos.LeaderboardEntry, len(resp.Entries))
	copy(out.Entries, resp.Entries)
	for i := range out.Entries {
		out.Entries[i].IsCurrentUser = out.Entries[i].UserID == currentUserID
	}
	return &out
}

func normalizeTimeframe(timeframe string) string {
	switch timeframe {
	case "weekly", "monthly":
		return timeframe
	default:
		return "all"
	}
}

func normalizeCategory(category string) string {
	switch category {
	case "badges", "referrals":
		return category
	default:
		return "points"
	}
}

// sinceFor maps a timeframe to its window start; zero means all-time.
func sinceFor(timeframe string) time.Time {
	now := time.Now()
	switch timeframe {
	case "weekly":
		return now.AddDate(0, 0, -7)
	case "monthly":
		return now.AddDate(0, -1, 0)
	default:
		return time.Time{}
	}
}
