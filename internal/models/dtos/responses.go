package dtos

import "time"

// APIResponse is the standard JSON envelope for every endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

type AuthResponse struct {
	Token       string `json:"token"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type UserPointsResponse struct {
	UserID         string `json:"user_id"`
	Points         int    `json:"points"`
	DonationPoints int    `json:"donation_points"`
	WeeklyPoints   int    `json:"weekly_points"`
}

type UserDetailsResponse struct {
	UserID         string          `json:"user_id"`
	Email          string          `json:"email"`
	DisplayName    string          `json:"display_name"`
	Role           string          `json:"role"`
	Points         int             `json:"points"`
	DonationPoints int             `json:"donation_points"`
	HasApplied     bool            `json:"has_applied"`
	ReferralCount  int             `json:"referral_count"`
	Badges         []BadgeResponse `json:"badges"`
	CreatedAt      time.Time       `json:"created_at"`
}

type PointAwardResponse struct {
	Success  bool `json:"success"`
	Points   int  `json:"points"`
	NewTotal int  `json:"new_total"`
}

type PointHistoryEntry struct {
	Points      int       `json:"points"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type BadgeResponse struct {
	BadgeType   string    `json:"badge_type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Progress    int       `json:"progress"`
	Requirement string    `json:"requirement"`
	EarnedAt    time.Time `json:"earned_at"`
}

type DonationPointsResponse struct {
	Success    bool            `json:"success"`
	DonationID string          `json:"donation_id"`
	Points     int             `json:"points"`
	NewTotal   int             `json:"new_total"`
	NewBadges  []BadgeResponse `json:"new_badges,omitempty"`
}

type CampaignResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	PointMultiplier float64    `json:"point_multiplier"`
}

// LeaderboardEntry is a derived, never-persisted aggregate. Mock
// entries fill the board when real data is sparse and are always
// flagged so clients can label them.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        string `json:"user_id"`
	DisplayName   string `json:"display_name"`
	Points        int    `json:"points"`
	BadgeCount    int    `json:"badge_count"`
	ReferralCount int    `json:"referral_count"`
	HasApplied    bool   `json:"has_applied"`
	IsCurrentUser bool   `json:"is_current_user"`
	IsMock        bool   `json:"is_mock"`
}

type LeaderboardResponse struct {
	Entries   []LeaderboardEntry `json:"entries"`
	Total     int64              `json:"total"`
	Timeframe string             `json:"timeframe"`
	Category  string             `json:"category"`
}

// TriviaQuestionView is a question as shown to the player. The correct
// index is withheld until the answer is scored.
type TriviaQuestionView struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Difficulty  string   `json:"difficulty"`
	Category    string   `json:"category"`
	ImageURL    *string  `json:"image_url,omitempty"`
	TimeLimitMs int64    `json:"time_limit_ms"`
}

type StartGameResponse struct {
	SessionID string               `json:"session_id"`
	Mode      string               `json:"mode"`
	Questions []TriviaQuestionView `json:"questions"`
}

type SubmitAnswerResponse struct {
	Correct      bool   `json:"correct"`
	CorrectIndex int    `json:"correct_index"`
	Explanation  string `json:"explanation"`
	PointsEarned int    `json:"points_earned"`
	Streak       int    `json:"streak"`
	Score        int    `json:"score"`
	ShowShare    bool   `json:"show_share"`
	GameOver     bool   `json:"game_over"`
}

type CompleteGameResponse struct {
	Score        int            `json:"score"`
	CorrectCount int            `json:"correct_count"`
	MaxStreak    int            `json:"max_streak"`
	ByCategory   map[string]int `json:"by_category"`
	NewTotal     int            `json:"new_total"`
}

type ChatMessageResponse struct {
	Reply        string   `json:"reply"`
	QuickReplies []string `json:"quick_replies"`
	Topic        string   `json:"topic"`
	// RequiresAuth is set when the free-question allowance is spent.
	RequiresAuth bool `json:"requires_auth"`
}

type ChecklistItemView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Checked     bool   `json:"checked"`
}

type ChecklistResponse struct {
	Items         []ChecklistItemView `json:"items"`
	CheckedCount  int                 `json:"checked_count"`
	RequiredCount int                 `json:"required_count"`
	Complete      bool                `json:"complete"`
	PointsAwarded int                 `json:"points_awarded"`
}

type ApplicantResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	TrackingNumber string    `json:"tracking_number"`
	ReferralSource string    `json:"referral_source"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}
