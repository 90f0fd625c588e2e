package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/db/repositories"
	"summit-sheriff/recruiting/internal/logging"
	"summit-sheriff/recruiting/internal/metrics"
	"summit-sheriff/recruiting/internal/models/dtos"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

var (
	ErrSessionNotFound = errors.New("game session not found")
	ErrSessionClosed   = errors.New("game session already completed")
	ErrWrongQuestion   = errors.New("answer does not match the current question")
)

type TriviaService struct {
	trivia  *repositories.TriviaRepository
	points  *PointsService
	badges  *BadgeService
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

func NewTriviaService(
	trivia *repositories.TriviaRepository,
	points *PointsService,
	badges *BadgeService,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *TriviaService {
	return &TriviaService{
		trivia:  trivia,
		points:  points,
		badges:  badges,
		cache:   cache,
		metrics: metricsReg,
	}
}

// StartGame draws a shuffled question set, opens a server-side session
// and returns the questions with correct indexes withheld. When the
// bank cannot be loaded the built-in backup set keeps the game playable.
func (s *TriviaService) StartGame(ctx context.Context, userID string, req *dtos.StartGameReq) (*dtos.StartGameResponse, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.TriviaQuestionFetchTimeout)
	defer cancel()

	usedBackup := false
	bank, err := s.loadBank(ctx, req.Category)
	if err != nil || len(bank) == 0 {
		if err != nil {
			logging.Warn("Question bank unavailable, using backup set", "error", err.Error())
		}
		bank = backupQuestions()
		usedBackup = true
	}

	rand.Shuffle(len(bank), func(i, j int) { bank[i], bank[j] = bank[j], bank[i] })
	count := constants.TriviaQuestionsPerGame
	if len(bank) < count {
		count = len(bank)
	}
	drawn := bank[:count]

	ids := make([]string, count)
	for i, q := range drawn {
		ids[i] = q.ID
	}
	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode question ids: %w", err)
	}

	mode := req.Mode
	if mode != "challenge" {
		mode = "normal"
	}

	session := gormModels.GameSession{
		UserID:          userID,
		Category:        req.Category,
		Mode:            mode,
		QuestionIDsJSON: string(idsJSON),
	}
	if err := s.trivia.CreateSession(ctx, &session); err != nil {
		return nil, false, err
	}

	limitMs := timeLimitFor(mode).Milliseconds()
	views := make([]dtos.TriviaQuestionView, count)
	for i, q := range drawn {
		views[i] = questionView(&q, limitMs)
	}

	if s.metrics != nil {
		s.metrics.TriviaGamesTotal.WithLabelValues("started").Inc()
	}
	logging.Info("Trivia game started", "user_id", userID, "session_id", session.ID, "mode", mode)

	return &dtos.StartGameResponse{
		SessionID: session.ID,
		Mode:      mode,
		Questions: views,
	}, usedBackup, nil
}

// SubmitAnswer scores one answer against the session's current
// question. A timeout submission (answer index -1) or an answer past
// the time limit counts as wrong and resets the streak.
func (s *TriviaService) SubmitAnswer(ctx context.Context, userID string, req *dtos.SubmitAnswerReq) (*dtos.SubmitAnswerResponse, error) {
	session, err := s.ownedOpenSession(ctx, userID, req.SessionID)
	if err != nil {
		return nil, err
	}
	if req.QuestionIndex != session.CurrentIndex {
		return nil, ErrWrongQuestion
	}

	ids, err := decodeQuestionIDs(session.QuestionIDsJSON)
	if err != nil {
		return nil, err
	}
	if session.CurrentIndex >= len(ids) {
		return nil, ErrSessionClosed
	}

	question, err := s.questionByID(ctx, ids[session.CurrentIndex])
	if err != nil {
		return nil, err
	}

	limit := timeLimitFor(session.Mode)
	correct := req.AnswerIndex >= 0 &&
		req.AnswerIndex == question.CorrectIndex &&
		req.ElapsedMs <= limit.Milliseconds()

	earned := 0
	if correct {
		session.Streak++
		if session.Streak > session.MaxStreak {
			session.MaxStreak = session.Streak
		}
		session.CorrectCount++
		earned = questionScore(session.Streak, req.ElapsedMs, limit)
		session.Score += earned
	} else {
		session.Streak = 0
	}

	answer := gormModels.GameAnswer{
		SessionID:     session.ID,
		QuestionIndex: req.QuestionIndex,
		QuestionID:    question.ID,
		AnswerIndex:   req.AnswerIndex,
		Correct:       correct,
		ElapsedMs:     req.ElapsedMs,
		PointsEarned:  earned,
	}
	if err := s.trivia.RecordAnswer(ctx, &answer); err != nil {
		return nil, err
	}

	session.CurrentIndex++
	showShare := false
	if session.CurrentIndex == constants.TriviaSharePromptAfter+1 && !session.SharePrompted {
		session.SharePrompted = true
		showShare = true
	}
	if err := s.trivia.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return &dtos.SubmitAnswerResponse{
		Correct:      correct,
		CorrectIndex: question.CorrectIndex,
		Explanation:  question.Explanation,
		PointsEarned: earned,
		Streak:       session.Streak,
		Score:        session.Score,
		ShowShare:    showShare,
		GameOver:     session.CurrentIndex >= len(ids),
	}, nil
}

// Complete closes the session, pays out the accumulated score plus the
// completion bonus in one ledger entry and runs the trivia badge pass.
// Calling it twice returns ErrSessionClosed; the payout happens once.
func (s *TriviaService) Complete(ctx context.Context, userID string, sessionID string) (*dtos.CompleteGameResponse, error) {
	session, err := s.ownedOpenSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session.CompletedAt = &now
	if err := s.trivia.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	payout := session.Score + constants.PointsPerTriviaGame
	description := fmt.Sprintf("Trivia game: %d correct, best streak %d", session.CorrectCount, session.MaxStreak)
	newTotal, err := s.points.Award(ctx, userID, payout, constants.ActionTriviaGame, description)
	if err != nil {
		return nil, err
	}

	if _, err := s.badges.CheckAndAward(ctx, userID, constants.TriggerTrivia); err != nil {
		logging.Error("Badge pass failed after trivia game", "user_id", userID, "error", err.Error())
	}

	byCategory, err := s.trivia.CorrectByCategory(ctx, session.ID)
	if err != nil {
		logging.Warn("Category tally failed", "session_id", session.ID, "error", err.Error())
		byCategory = map[string]int{}
	}

	if s.metrics != nil {
		s.metrics.TriviaGamesTotal.WithLabelValues("completed").Inc()
	}
	logging.Info("Trivia game completed",
		"user_id", userID,
		"session_id", session.ID,
		"score", session.Score,
		"payout", payout,
	)

	return &dtos.CompleteGameResponse{
		Score:        session.Score,
		CorrectCount: session.CorrectCount,
		MaxStreak:    session.MaxStreak,
		ByCategory:   byCategory,
		NewTotal:     newTotal,
	}, nil
}

// Share pays the share bonus once per session. Sharing again, or
// sharing a session that never reached the prompt, earns nothing.
func (s *TriviaService) Share(ctx context.Context, userID string, req *dtos.ShareGameReq) (int, error) {
	session, err := s.trivia.GetSession(ctx, req.SessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}
	if session.UserID != userID {
		return 0, ErrSessionNotFound
	}
	if !session.SharePrompted || session.ShareAwarded {
		return 0, nil
	}

	session.ShareAwarded = true
	if err := s.trivia.SaveSession(ctx, session); err != nil {
		return 0, err
	}

	description := fmt.Sprintf("Shared trivia result on %s", req.Platform)
	if _, err := s.points.Award(ctx, userID, constants.PointsPerTriviaShare, constants.ActionTriviaShare, description); err != nil {
		return 0, err
	}

	if s.metrics != nil {
		s.metrics.TriviaGamesTotal.WithLabelValues("shared").Inc()
	}
	return constants.PointsPerTriviaShare, nil
}

func (s *TriviaService) ownedOpenSession(ctx context.Context, userID, sessionID string) (*gormModels.GameSession, error) {
	session, err := s.trivia.GetSession(ctx, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	if session.CompletedAt != nil {
		return nil, ErrSessionClosed
	}
	return session, nil
}

// loadBank reads the active question bank through the cache.
func (s *TriviaService) loadBank(ctx context.Context, category string) ([]gormModels.TriviaQuestion, error) {
	if s.cache == nil {
		return s.trivia.ActiveQuestions(ctx, category)
	}

	key := fmt.Sprintf("%s%s", constants.CachePrefixTriviaBank, category)
	cached, err := s.cache.GetOrSet(key, constants.TriviaBankCacheTTL, func() (any, error) {
		return s.trivia.ActiveQuestions(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	bank, ok := cached.([]gormModels.TriviaQuestion)
	if !ok {
		return s.trivia.ActiveQuestions(ctx, category)
	}
	// Copy before shuffling so the cached slice keeps its order.
	out := make([]gormModels.TriviaQuestion, len(bank))
	copy(out, bank)
	return out, nil
}

func (s *TriviaService) questionByID(ctx context.Context, id string) (*gormModels.TriviaQuestion, error) {
	for _, q := range backupQuestions() {
		if q.ID == id {
			return &q, nil
		}
	}
	questions, err := s.trivia.QuestionsByIDs(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("question %s not found", id)
	}
	return &questions[0], nil
}

// questionScore applies the streak and speed bonuses:
// base * (1 + streakBonus + timeBonus), rounded to nearest.
func questionScore(streak int, elapsedMs int64, limit time.Duration) int {
	streakBonus := 0.0
	switch {
	case streak >= 5:
		streakBonus = constants.TriviaStreakBonusTier3
	case streak >= 3:
		streakBonus = constants.TriviaStreakBonusTier2
	case streak >= 2:
		streakBonus = constants.TriviaStreakBonusTier1
	}

	limitMs := limit.Milliseconds()
	timeBonus := 0.0
	if elapsedMs >= 0 && elapsedMs < limitMs {
		timeBonus = float64(limitMs-elapsedMs) / float64(limitMs)
	}

	return int(math.Round(constants.PointsPerTriviaQuestion * (1 + streakBonus + timeBonus)))
}

func timeLimitFor(mode string) time.Duration {
	if mode == "challenge" {
		return constants.TriviaChallengeTimeLimit
	}
	return constants.TriviaQuestionTimeLimit
}

func questionView(q *gormModels.TriviaQuestion, limitMs int64) dtos.TriviaQuestionView {
	var options []string
	if err := json.Unmarshal([]byte(q.OptionsJSON), &options); err != nil {
		options = nil
	}
	return dtos.TriviaQuestionView{
		ID:          q.ID,
		Question:    q.Question,
		Options:     options,
		Difficulty:  q.Difficulty,
		Category:    q.Category,
		ImageURL:    q.ImageURL,
		TimeLimitMs: limitMs,
	}
}

func decodeQuestionIDs(idsJSON string) ([]string, error) {
	var ids []string
	if err := json.Unmarshal([]byte(idsJSON), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode question ids: %w", err)
	}
	return ids, nil
}
