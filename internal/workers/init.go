package workers

import (
	"context"
	"time"

	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/metrics"
)

type WorkersContainer struct {
	Engagement *EngagementWorker
}

func InitWorkers(
	ctx context.Context,
	queue *common.RedisQueueService,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *WorkersContainer {
	engagement := NewEngagementWorker(queue, cache, metricsReg)

	go engagement.Start(ctx)
	StartStreamTrimmer(ctx, queue, 10*time.Minute, 10000)

	return &WorkersContainer{
		Engagement: engagement,
	}
}
