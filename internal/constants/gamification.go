package constants

import "time"

// Point values for engagement actions. Changing them changes scores
// going forward but never rewrites the ledger.
const (
	PointsPerTriviaQuestion = 10
	PointsPerTriviaGame     = 50
	PointsPerTriviaShare    = 25
	PointsPerChecklistItem  = 2
)

// Trivia timing and streak tuning.
const (
	TriviaQuestionsPerGame   = 10
	TriviaQuestionTimeLimit  = 30 * time.Second
	TriviaChallengeTimeLimit = 15 * time.Second
	TriviaSharePromptAfter   = 2 // zero-based question index
)

// Streak bonus multipliers, applied as score = base * (1 + streak + time).
const (
	TriviaStreakBonusTier1 = 0.5 // streak >= 2
	TriviaStreakBonusTier2 = 2.0 // streak >= 3
	TriviaStreakBonusTier3 = 3.0 // streak >= 5
)

// Point action labels written to the ledger.
const (
	ActionTriviaGame     = "trivia_game"
	ActionTriviaShare    = "trivia_share"
	ActionDonation       = "donation"
	ActionChecklistItem  = "checklist_item"
	ActionManualAward    = "manual_award"
	ActionReferralSigned = "referral_signed"
)

// BadgeType identifies a badge rule. At most one badge row may exist
// per (user, badge type).
type BadgeType string

const (
	BadgeFirstDonation     BadgeType = "first-donation"
	BadgeBigDonation       BadgeType = "big-donation"
	BadgeDonationCount5    BadgeType = "donation-milestone-5"
	BadgeDonationCount10   BadgeType = "donation-milestone-10"
	BadgeDonationCount25   BadgeType = "donation-milestone-25"
	BadgeLifetime250       BadgeType = "lifetime-250"
	BadgeLifetime500       BadgeType = "lifetime-500"
	BadgeLifetime1000      BadgeType = "lifetime-1000"
	BadgeRecurringSupport  BadgeType = "recurring-supporter"
	BadgeTriviaRookie      BadgeType = "trivia-rookie"
	BadgeTriviaScholar     BadgeType = "trivia-scholar"
	BadgeTriviaStreak      BadgeType = "trivia-streak"
	BadgeChecklistComplete BadgeType = "checklist-complete"
)

// BadgeTrigger names the event that caused a badge evaluation pass.
type BadgeTrigger string

const (
	TriggerDonation  BadgeTrigger = "donation"
	TriggerTrivia    BadgeTrigger = "trivia"
	TriggerChecklist BadgeTrigger = "checklist"
)

// Applicant funnel statuses. Transitions are admin-driven only.
type ApplicantStatus string

const (
	ApplicantPending    ApplicantStatus = "pending"
	ApplicantContacted  ApplicantStatus = "contacted"
	ApplicantInterested ApplicantStatus = "interested"
	ApplicantApplied    ApplicantStatus = "applied"
	ApplicantHired      ApplicantStatus = "hired"
	ApplicantRejected   ApplicantStatus = "rejected"
	ApplicantStarted    ApplicantStatus = "started"
)

var ValidApplicantStatuses = map[ApplicantStatus]bool{
	ApplicantPending:    true,
	ApplicantContacted:  true,
	ApplicantInterested: true,
	ApplicantApplied:    true,
	ApplicantHired:      true,
	ApplicantRejected:   true,
	ApplicantStarted:    true,
}

// Leaderboard tuning.
const (
	LeaderboardDefaultLimit = 10
	LeaderboardMaxLimit     = 100
	LeaderboardFetchTimeout = 5 * time.Second
	LeaderboardCacheTTL     = 60 * time.Second
)

type CachePrefix string

const (
	CachePrefixLeaderboard CachePrefix = "leaderboard:"
	CachePrefixTriviaBank  CachePrefix = "trivia:bank:"
	CachePrefixChatSession CachePrefix = "chat:session:"
	CachePrefixUserTotals  CachePrefix = "user:totals:"
	CachePrefixCampaigns   CachePrefix = "campaigns:active"
)

const (
	TriviaBankCacheTTL         = 10 * time.Minute
	TriviaQuestionFetchTimeout = 10 * time.Second
)

// EngagementStream is the redis stream engagement events are pushed to.
const (
	EngagementStream        = "recruiting:engagement"
	EngagementConsumerGroup = "engagement-workers"
)
