package jobs

import (
	"context"
	"time"

	"summit-sheriff/recruiting/internal/db/repositories"
	"summit-sheriff/recruiting/internal/logging"
)

// CampaignStatusJob deactivates donation campaigns whose end date has
// passed, so the active-campaign query and the point multiplier agree.
type CampaignStatusJob struct {
	donations *repositories.DonationRepository
}

func NewCampaignStatusJob(donations *repositories.DonationRepository) *CampaignStatusJob {
	return &CampaignStatusJob{donations: donations}
}

func (j *CampaignStatusJob) Run(ctx context.Context) {
	expired, err := j.donations.DeactivateExpired(ctx, time.Now())
	if err != nil {
		logging.Error("Campaign status job failed", "error", err.Error())
		return
	}
	if expired > 0 {
		logging.Info("Campaigns deactivated", "count", expired)
	}
}

// RunScheduled runs the job on a fixed interval until ctx is cancelled.
func (j *CampaignStatusJob) RunScheduled(ctx context.Context, interval time.Duration) {
	j.Run(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Run(ctx)
		}
	}
}
