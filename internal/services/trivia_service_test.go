package services

import (
	"context"
	"fmt"
	"testing"

	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/db/repositories"
	"summit-sheriff/recruiting/internal/models/dtos"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

func TestQuestionScoreBaseline(t *testing.T) {
	// Single correct answer, no streak, timer fully spent.
	got := questionScore(1, constants.TriviaQuestionTimeLimit.Milliseconds(), constants.TriviaQuestionTimeLimit)
	if got != constants.PointsPerTriviaQuestion {
		t.Errorf("expected %d, got %d", constants.PointsPerTriviaQuestion, got)
	}
}

func TestQuestionScoreStreakAndSpeed(t *testing.T) {
	limit := constants.TriviaQuestionTimeLimit

	// Streak of 3 answered in 1s: 10 * (1 + 2.0 + ~0.97) = 40.
	got := questionScore(3, 1000, limit)
	if got != 40 {
		t.Errorf("streak 3 fast answer: expected 40, got %d", got)
	}

	// Streak of 5 with the timer fully spent: 10 * (1 + 3.0) = 40.
	got = questionScore(5, limit.Milliseconds(), limit)
	if got != 40 {
		t.Errorf("streak 5 slow answer: expected 40, got %d", got)
	}

	// Streak of 2 with the timer fully spent: 10 * (1 + 0.5) = 15.
	got = questionScore(2, limit.Milliseconds(), limit)
	if got != 15 {
		t.Errorf("streak 2 slow answer: expected 15, got %d", got)
	}
}

func newTriviaService(t *testing.T) (*TriviaService, *repositories.TriviaRepository, *fakeLedger) {
	t.Helper()
	db := newTestDB(t)

	triviaRepo := repositories.NewTriviaRepository(db)
	badgeSvc := NewBadgeService(
		repositories.NewBadgeRepository(db),
		repositories.NewDonationRepository(db),
		triviaRepo,
		repositories.NewChecklistRepository(db),
		nil, nil,
	)
	ledger := newFakeLedger()
	pointsSvc := NewPointsService(ledger, nil, nil)

	return NewTriviaService(triviaRepo, pointsSvc, badgeSvc, nil, nil), triviaRepo, ledger
}

func TestTriviaGameFlow(t *testing.T) {
	db := newTestDB(t)
	triviaRepo := repositories.NewTriviaRepository(db)
	badgeSvc := NewBadgeService(
		repositories.NewBadgeRepository(db),
		repositories.NewDonationRepository(db),
		triviaRepo,
		repositories.NewChecklistRepository(db),
		nil, nil,
	)
	ledger := newFakeLedger()
	svc := NewTriviaService(triviaRepo, NewPointsService(ledger, nil, nil), badgeSvc, nil, nil)
	ctx := context.Background()
	userID := "player-1"

	for i := 0; i < 12; i++ {
		q := gormModels.TriviaQuestion{
			Question:     fmt.Sprintf("Question %d", i),
			OptionsJSON:  `["a","b","c","d"]`,
			CorrectIndex: i % 4,
			Category:     "requirements",
			Difficulty:   "easy",
			IsActive:     true,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}
	}

	start, usedBackup, err := svc.StartGame(ctx, userID, &dtos.StartGameReq{Category: "all"})
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	if usedBackup {
		t.Fatal("expected the seeded bank, not the backup set")
	}
	if len(start.Questions) != constants.TriviaQuestionsPerGame {
		t.Fatalf("expected %d questions, got %d", constants.TriviaQuestionsPerGame, len(start.Questions))
	}
	for _, q := range start.Questions {
		if len(q.Options) != 4 {
			t.Errorf("expected 4 options, got %d", len(q.Options))
		}
	}

	correctFor := func(idx int) int {
		qs, err := triviaRepo.QuestionsByIDs(ctx, []string{start.Questions[idx].ID})
		if err != nil || len(qs) != 1 {
			t.Fatalf("lookup question %d: %v", idx, err)
		}
		return qs[0].CorrectIndex
	}

	// Q0 correct.
	resp, err := svc.SubmitAnswer(ctx, userID, &dtos.SubmitAnswerReq{
		SessionID:     start.SessionID,
		QuestionIndex: 0,
		AnswerIndex:   correctFor(0),
		ElapsedMs:     5000,
	})
	if err != nil {
		t.Fatalf("submit 0: %v", err)
	}
	if !resp.Correct || resp.Streak != 1 {
		t.Errorf("expected correct with streak 1, got correct=%v streak=%d", resp.Correct, resp.Streak)
	}

	// Q1 timed out: wrong, streak resets.
	resp, err = svc.SubmitAnswer(ctx, userID, &dtos.SubmitAnswerReq{
		SessionID:     start.SessionID,
		QuestionIndex: 1,
		AnswerIndex:   -1,
		ElapsedMs:     constants.TriviaQuestionTimeLimit.Milliseconds(),
	})
	if err != nil {
		t.Fatalf("submit 1: %v", err)
	}
	if resp.Correct || resp.Streak != 0 {
		t.Errorf("expected timeout to reset streak, got correct=%v streak=%d", resp.Correct, resp.Streak)
	}
	if resp.PointsEarned != 0 {
		t.Errorf("expected 0 points for a timeout, got %d", resp.PointsEarned)
	}

	// Share before the prompt earns nothing.
	points, err := svc.Share(ctx, userID, &dtos.ShareGameReq{SessionID: start.SessionID, Platform: "facebook"})
	if err != nil {
		t.Fatalf("early share: %v", err)
	}
	if points != 0 {
		t.Errorf("expected no share bonus before the prompt, got %d", points)
	}

	// Q2 correct; the prompt fires after this question.
	resp, err = svc.SubmitAnswer(ctx, userID, &dtos.SubmitAnswerReq{
		SessionID:     start.SessionID,
		QuestionIndex: 2,
		AnswerIndex:   correctFor(2),
		ElapsedMs:     3000,
	})
	if err != nil {
		t.Fatalf("submit 2: %v", err)
	}
	if !resp.ShowShare {
		t.Error("expected share prompt after the third question")
	}

	// Share pays once.
	points, err = svc.Share(ctx, userID, &dtos.ShareGameReq{SessionID: start.SessionID, Platform: "facebook"})
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if points != constants.PointsPerTriviaShare {
		t.Errorf("expected %d share points, got %d", constants.PointsPerTriviaShare, points)
	}
	points, err = svc.Share(ctx, userID, &dtos.ShareGameReq{SessionID: start.SessionID, Platform: "twitter"})
	if err != nil {
		t.Fatalf("second share: %v", err)
	}
	if points != 0 {
		t.Errorf("expected second share to pay nothing, got %d", points)
	}

	// Out-of-order submission is rejected.
	if _, err := svc.SubmitAnswer(ctx, userID, &dtos.SubmitAnswerReq{
		SessionID:     start.SessionID,
		QuestionIndex: 5,
		AnswerIndex:   0,
	}); err != ErrWrongQuestion {
		t.Errorf("expected ErrWrongQuestion, got %v", err)
	}

	// Play out the remaining questions.
	for i := 3; i < constants.TriviaQuestionsPerGame; i++ {
		if _, err := svc.SubmitAnswer(ctx, userID, &dtos.SubmitAnswerReq{
			SessionID:     start.SessionID,
			QuestionIndex: i,
			AnswerIndex:   correctFor(i),
			ElapsedMs:     5000,
		}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	complete, err := svc.Complete(ctx, userID, start.SessionID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if complete.CorrectCount != 9 {
		t.Errorf("expected 9 correct, got %d", complete.CorrectCount)
	}
	if complete.ByCategory["requirements"] != 9 {
		t.Errorf("expected 9 correct in requirements, got %d", complete.ByCategory["requirements"])
	}

	// One payout entry for the game plus one for the share.
	entries := ledger.entriesFor(userID)
	gamePayouts := 0
	for _, e := range entries {
		if e.Action == constants.ActionTriviaGame {
			gamePayouts++
			if e.Points != complete.Score+constants.PointsPerTriviaGame {
				t.Errorf("expected payout %d, got %d", complete.Score+constants.PointsPerTriviaGame, e.Points)
			}
		}
	}
	if gamePayouts != 1 {
		t.Errorf("expected exactly one game payout, got %d", gamePayouts)
	}

	// Completing again pays nothing.
	if _, err := svc.Complete(ctx, userID, start.SessionID); err != ErrSessionClosed {
		t.Errorf("expected ErrSessionClosed, got %v", err)
	}
	if len(ledger.entriesFor(userID)) != len(entries) {
		t.Error("second completion must not add ledger entries")
	}
}

func TestStartGameFallsBackToBackupSet(t *testing.T) {
	svc, _, _ := newTriviaService(t)

	// Empty bank: the built-in set keeps the game playable.
	start, usedBackup, err := svc.StartGame(context.Background(), "player-2", &dtos.StartGameReq{})
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	if !usedBackup {
		t.Error("expected backup set with an empty bank")
	}
	if len(start.Questions) == 0 {
		t.Error("expected backup questions")
	}
}

func TestChallengeModeTimeLimit(t *testing.T) {
	svc, _, _ := newTriviaService(t)

	start, _, err := svc.StartGame(context.Background(), "player-3", &dtos.StartGameReq{Mode: "challenge"})
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	if start.Mode != "challenge" {
		t.Errorf("expected challenge mode, got %s", start.Mode)
	}
	for _, q := range start.Questions {
		if q.TimeLimitMs != constants.TriviaChallengeTimeLimit.Milliseconds() {
			t.Errorf("expected %dms limit, got %d", constants.TriviaChallengeTimeLimit.Milliseconds(), q.TimeLimitMs)
		}
	}
}

func TestSessionOwnership(t *testing.T) {
	db := newTestDB(t)
	triviaRepo := repositories.NewTriviaRepository(db)
	badgeSvc := NewBadgeService(
		repositories.NewBadgeRepository(db),
		repositories.NewDonationRepository(db),
		triviaRepo,
		repositories.NewChecklistRepository(db),
		nil, nil,
	)
	svc := NewTriviaService(triviaRepo, NewPointsService(newFakeLedger(), nil, nil), badgeSvc, nil, nil)
	ctx := context.Background()

	start, _, err := svc.StartGame(ctx, "owner", &dtos.StartGameReq{})
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}

	if _, err := svc.Complete(ctx, "intruder", start.SessionID); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound for foreign session, got %v", err)
	}
}
