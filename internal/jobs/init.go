package jobs

import (
	"context"
	"time"

	"summit-sheriff/recruiting/internal/db/repositories"
)

type JobsContainer struct {
	CampaignStatus *CampaignStatusJob
	SessionCleanup *SessionCleanupJob
}

// InitializeJobs initializes and starts all background jobs
func InitializeJobs(
	ctx context.Context,
	donations *repositories.DonationRepository,
	trivia *repositories.TriviaRepository,
) *JobsContainer {
	campaignJob := NewCampaignStatusJob(donations)
	cleanupJob := NewSessionCleanupJob(trivia)

	go campaignJob.RunScheduled(ctx, 1*time.Hour)
	go cleanupJob.RunScheduled(ctx, 1*time.Hour)

	return &JobsContainer{
		CampaignStatus: campaignJob,
		SessionCleanup: cleanupJob,
	}
}
