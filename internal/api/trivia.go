package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"summit-sheriff/recruiting/internal/auth"
	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/models/dtos"
	"summit-sheriff/recruiting/internal/services"
)

// StartTriviaGame handles POST /api/v1/trivia/start
func (h *Handlers) StartTriviaGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.StartGameReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, usedBackup, err := h.deps.Services.Trivia.StartGame(r.Context(), claims.UserID(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusError, http.StatusInternalServerError)
			return
		}

		message := ""
		if usedBackup {
			message = constants.MsgBackupQuestions
		}
		common.RespondSuccess(w, initTime, message, resp)
	}
}

// SubmitTriviaAnswer handles POST /api/v1/trivia/submit
func (h *Handlers) SubmitTriviaAnswer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.SubmitAnswerReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := h.deps.Services.Trivia.SubmitAnswer(r.Context(), claims.UserID(), &req)
		if err != nil {
			respondTriviaError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", resp)
	}
}

// CompleteTriviaGame handles POST /api/v1/trivia/complete
func (h *Handlers) CompleteTriviaGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.CompleteGameReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := h.deps.Services.Trivia.Complete(r.Context(), claims.UserID(), req.SessionID)
		if err != nil {
			respondTriviaError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Game completed", resp)
	}
}

// ShareTriviaGame handles POST /api/v1/trivia/share
func (h *Handlers) ShareTriviaGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.ShareGameReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		points, err := h.deps.Services.Trivia.Share(r.Context(), claims.UserID(), &req)
		if err != nil {
			respondTriviaError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", map[string]int{"points_awarded": points})
	}
}

func respondTriviaError(w http.ResponseWriter, initTime time.Time, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		common.RespondError(w, initTime, err, constants.StatusSessionNotFound, http.StatusNotFound)
	case errors.Is(err, services.ErrSessionClosed):
		common.RespondError(w, initTime, err, constants.StatusSessionClosed, http.StatusConflict)
	case errors.Is(err, services.ErrWrongQuestion):
		common.RespondError(w, initTime, err, "Out-of-order answer", http.StatusConflict)
	default:
		common.RespondError(w, initTime, err, constants.StatusError, http.StatusInternalServerError)
	}
}
