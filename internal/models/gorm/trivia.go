package gorm

import "time"

// TriviaQuestion is immutable reference data loaded per game session.
// Options are stored as a JSON array; CorrectIndex points into it.
type TriviaQuestion struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	Question     string    `gorm:"column:question"`
	OptionsJSON  string    `gorm:"column:options_json;type:text"`
	CorrectIndex int       `gorm:"column:correct_index"`
	Explanation  string    `gorm:"column:explanation"`
	Difficulty   string    `gorm:"column:difficulty;default:'easy'"`
	Category     string    `gorm:"column:category;index"`
	ImageURL     *string   `gorm:"column:image_url"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (TriviaQuestion) TableName() string {
	return "trivia_questions"
}

// GameSession tracks one trivia round server-side: question order,
// per-question answers, streak and running score.
type GameSession struct {
	ID              string     `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID          string     `gorm:"column:user_id;type:uuid;index"`
	Category        string     `gorm:"column:category"`
	Mode            string     `gorm:"column:mode;default:'normal'"`
	QuestionIDsJSON string     `gorm:"column:question_ids_json;type:text"`
	CurrentIndex    int        `gorm:"column:current_index;default:0"`
	Streak          int        `gorm:"column:streak;default:0"`
	MaxStreak       int        `gorm:"column:max_streak;default:0"`
	CorrectCount    int        `gorm:"column:correct_count;default:0"`
	Score           int        `gorm:"column:score;default:0"`
	SharePrompted   bool       `gorm:"column:share_prompted;default:false"`
	ShareAwarded    bool       `gorm:"column:share_awarded;default:false"`
	CompletedAt     *time.Time `gorm:"column:completed_at"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}

// GameAnswer records one submitted answer within a session.
type GameAnswer struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	SessionID     string    `gorm:"column:session_id;type:uuid;uniqueIndex:idx_session_question"`
	QuestionIndex int       `gorm:"column:question_index;uniqueIndex:idx_session_question"`
	// Plain text, not uuid: backup question ids are synthetic.
	QuestionID    string    `gorm:"column:question_id"`
	AnswerIndex   int       `gorm:"column:answer_index"`
	Correct       bool      `gorm:"column:correct"`
	ElapsedMs     int64     `gorm:"column:elapsed_ms"`
	PointsEarned  int       `gorm:"column:points_earned"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (GameAnswer) TableName() string {
	return "game_answers"
}
