package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

type TriviaRepository struct {
	db *gorm.DB
}

func NewTriviaRepository(db *gorm.DB) *TriviaRepository {
	return &TriviaRepository{db: db}
}

// ActiveQuestions returns the active question bank, optionally filtered
// by category.
func (r *TriviaRepository) ActiveQuestions(ctx context.Context, category string) ([]gormModels.TriviaQuestion, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	var questions []gormModels.TriviaQuestion
	if err := q.Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch trivia questions: %w", err)
	}
	return questions, nil
}

func (r *TriviaRepository) QuestionsByIDs(ctx context.Context, ids []string) ([]gormModels.TriviaQuestion, error) {
	var questions []gormModels.TriviaQuestion
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch questions by id: %w", err)
	}
	return questions, nil
}

func (r *TriviaRepository) CreateSession(ctx context.Context, session *gormModels.GameSession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create game session: %w", err)
	}
	return nil
}

func (r *TriviaRepository) GetSession(ctx context.Context, sessionID string) (*gormModels.GameSession, error) {
	var session gormModels.GameSession
	err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&session).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to fetch game session: %w", err)
	}
	return &session, nil
}

func (r *TriviaRepository) SaveSession(ctx context.Context, session *gormModels.GameSession) error {
	if err := r.db.WithContext(ctx).Save(session).Error; err != nil {
		return fmt.Errorf("failed to save game session: %w", err)
	}
	return nil
}

func (r *TriviaRepository) RecordAnswer(ctx context.Context, answer *gormModels.GameAnswer) error {
	if err := r.db.WithContext(ctx).Create(answer).Error; err != nil {
		return fmt.Errorf("failed to record answer: %w", err)
	}
	return nil
}

func (r *TriviaRepository) AnswersBySession(ctx context.Context, sessionID string) ([]gormModels.GameAnswer, error) {
	var answers []gormModels.GameAnswer
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("question_index ASC").
		Find(&answers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch answers: %w", err)
	}
	return answers, nil
}

// UserStats aggregates the counters the badge evaluator reads.
type TriviaStats struct {
	GamesCompleted int64
	TotalCorrect   int64
	BestStreak     int64
}

func (r *TriviaRepository) StatsByUser(ctx context.Context, userID string) (*TriviaStats, error) {
	var stats TriviaStats

	row := r.db.WithContext(ctx).
		Model(&gormModels.GameSession{}).
		Select("COUNT(*) AS games_completed, COALESCE(SUM(correct_count), 0) AS total_correct, COALESCE(MAX(max_streak), 0) AS best_streak").
		Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Row()
	if err := row.Scan(&stats.GamesCompleted, &stats.TotalCorrect, &stats.BestStreak); err != nil {
		return nil, fmt.Errorf("failed to aggregate trivia stats: %w", err)
	}

	return &stats, nil
}

// CorrectByCategory tallies a finished session's correct answers per
// question category.
func (r *TriviaRepository) CorrectByCategory(ctx context.Context, sessionID string) (map[string]int, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&gormModels.GameAnswer{}).
		Select("trivia_questions.category, COUNT(*)").
		Joins("JOIN trivia_questions ON trivia_questions.id = game_answers.question_id").
		Where("game_answers.session_id = ? AND game_answers.correct = ?", sessionID, true).
		Group("trivia_questions.category").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to tally categories: %w", err)
	}
	defer rows.Close()

	byCategory := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan category tally: %w", err)
		}
		byCategory[category] = count
	}
	return byCategory, rows.Err()
}

// StaleOpenSessions finds sessions started before cutoff and never
// completed, for the cleanup job.
func (r *TriviaRepository) StaleOpenSessions(ctx context.Context, cutoff time.Time, limit int) ([]gormModels.GameSession, error) {
	var sessions []gormModels.GameSession
	err := r.db.WithContext(ctx).
		Where("completed_at IS NULL AND created_at < ?", cutoff).
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stale sessions: %w", err)
	}
	return sessions, nil
}
