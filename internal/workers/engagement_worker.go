package workers

import (
	"context"
	"fmt"
	"os"
	"time"

	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/logging"
	"summit-sheriff/recruiting/internal/metrics"
)

// EngagementWorker drains the engagement event stream. The synchronous
// award paths only publish; everything downstream of an award that can
// be late happens here: cache invalidation and the queue depth gauge.
type EngagementWorker struct {
	queue        *common.RedisQueueService
	cache        common.CacheInterface
	metrics      *metrics.MetricsRegistry
	consumerName string
}

func NewEngagementWorker(queue *common.RedisQueueService, cache common.CacheInterface, metricsReg *metrics.MetricsRegistry) *EngagementWorker {
	host, _ := os.Hostname()
	return &EngagementWorker{
		queue:        queue,
		cache:        cache,
		metrics:      metricsReg,
		consumerName: fmt.Sprintf("engagement-%s-%d", host, os.Getpid()),
	}
}

// Start blocks on the stream until ctx is cancelled.
func (w *EngagementWorker) Start(ctx context.Context) {
	if err := w.queue.CreateConsumerGroup(ctx, constants.EngagementStream, constants.EngagementConsumerGroup); err != nil {
		logging.Warn("Failed to create consumer group", "error", err.Error())
	}

	logging.Info("Engagement worker started", "consumer", w.consumerName)

	lastClaim := time.Now()
	for {
		select {
		case <-ctx.Done():
			logging.Info("Engagement worker stopping")
			return
		default:
		}

		// Pick up events abandoned by dead consumers.
		if time.Since(lastClaim) >= staleClaimInterval {
			w.claimStale(ctx)
			lastClaim = time.Now()
		}

		event, messageID, err := w.queue.DequeueEvent(ctx, constants.EngagementStream, constants.EngagementConsumerGroup, w.consumerName, 5*time.Second)
		if err != nil {
			logging.Warn("Engagement dequeue failed", "error", err.Error())
			time.Sleep(2 * time.Second)
			continue
		}
		if event == nil {
			continue
		}

		w.handle(ctx, event)

		if err := w.queue.AckEvent(ctx, constants.EngagementStream, constants.EngagementConsumerGroup, messageID); err != nil {
			logging.Warn("Failed to ack engagement event", "message_id", messageID, "error", err.Error())
		}
	}
}

const staleClaimInterval = time.Minute

func (w *EngagementWorker) claimStale(ctx context.Context) {
	events, messageIDs, err := w.queue.ClaimStaleEvents(ctx, constants.EngagementStream, constants.EngagementConsumerGroup, w.consumerName, staleClaimInterval)
	if err != nil {
		logging.Warn("Stale event claim failed", "error", err.Error())
		return
	}
	for i, event := range events {
		w.handle(ctx, event)
		if err := w.queue.AckEvent(ctx, constants.EngagementStream, constants.EngagementConsumerGroup, messageIDs[i]); err != nil {
			logging.Warn("Failed to ack claimed event", "message_id", messageIDs[i], "error", err.Error())
		}
	}
	if len(events) > 0 {
		logging.Info("Reclaimed stale engagement events", "count", len(events))
	}
}

func (w *EngagementWorker) handle(ctx context.Context, event *common.EngagementEvent) {
	// Any award shifts the standings; drop the cached first pages so
	// the next board read is fresh.
	if w.cache != nil {
		for _, timeframe := range []string{"all", "weekly", "monthly"} {
			for _, category := range []string{"points", "badges", "referrals"} {
				key := fmt.Sprintf("%s%s:%s:%d", constants.CachePrefixLeaderboard, timeframe, category, constants.LeaderboardDefaultLimit)
				w.cache.Delete(key)
			}
		}
		w.cache.Delete(string(constants.CachePrefixUserTotals) + event.UserID)
	}

	if w.metrics != nil {
		if depth, err := w.queue.GetQueueLength(ctx, constants.EngagementStream); err == nil {
			w.metrics.EngagementQueueDepth.Set(float64(depth))
		}
	}

	logging.Debug("Engagement event processed",
		"type", event.Type,
		"user_id", event.UserID,
		"action", event.Action,
	)
}

// StartStreamTrimmer bounds the stream length so an idle consumer can
// never let it grow without limit.
func StartStreamTrimmer(ctx context.Context, queue *common.RedisQueueService, interval time.Duration, maxLen int64) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := queue.TrimStream(ctx, constants.EngagementStream, maxLen); err != nil {
					logging.Warn("Stream trim failed", "error", err.Error())
				}
			}
		}
	}()
}
