package dtos

type RegisterUserReq struct {
	Email       string  `json:"email"`
	DisplayName string  `json:"display_name"`
	Password    string  `json:"password"`
	ReferredBy  *string `json:"referred_by,omitempty"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AwardPointsReq struct {
	UserID      string `json:"user_id"`
	Points      int    `json:"points"`
	Action      string `json:"action"`
	Description string `json:"description"`
}

type AwardBadgeReq struct {
	UserID  string `json:"user_id"`
	Trigger string `json:"trigger"`
}

type RecordDonationReq struct {
	AmountCents int64   `json:"amount_cents"`
	IsRecurring bool    `json:"is_recurring"`
	CampaignID  *string `json:"campaign_id,omitempty"`
}

type StartGameReq struct {
	Category string `json:"category"`
	Mode     string `json:"mode"` // "normal" or "challenge"
}

type SubmitAnswerReq struct {
	SessionID     string `json:"session_id"`
	QuestionIndex int    `json:"question_index"`
	// AnswerIndex -1 means the timer expired with no selection.
	AnswerIndex int   `json:"answer_index"`
	ElapsedMs   int64 `json:"elapsed_ms"`
}

type CompleteGameReq struct {
	SessionID string `json:"session_id"`
}

type ShareGameReq struct {
	SessionID string `json:"session_id"`
	Platform  string `json:"platform"`
}

type ChatMessageReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChecklistToggleReq struct {
	ItemID  string `json:"item_id"`
	Checked bool   `json:"checked"`
}

type CreateApplicantReq struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ReferralSource string `json:"referral_source"`
}

type UpdateApplicantStatusReq struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type SaveDonationRuleReq struct {
	ID                  string  `json:"id,omitempty"`
	Name                string  `json:"name"`
	MinAmountCents      int64   `json:"min_amount_cents"`
	MaxAmountCents      int64   `json:"max_amount_cents"`
	PointsPerDollar     int     `json:"points_per_dollar"`
	RecurringMultiplier float64 `json:"recurring_multiplier"`
	CampaignID          *string `json:"campaign_id,omitempty"`
	IsActive            bool    `json:"is_active"`
}
