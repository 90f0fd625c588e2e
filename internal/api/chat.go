package api

import (
	"encoding/json"
	"net/http"
	"time"

	"summit-sheriff/recruiting/internal/auth"
	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/models/dtos"
)

// ChatMessage handles POST /api/v1/chat/message. Open to anonymous
// visitors; the service enforces the one-free-question allowance.
func (h *Handlers) ChatMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ChatMessageReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		sessionID := r.Header.Get("X-Chat-Session")
		authenticated := auth.GetUserClaims(r.Context()) != nil

		resp, err := h.deps.Services.Chat.Respond(r.Context(), authenticated, sessionID, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid message", http.StatusBadRequest)
			return
		}

		// Spent free question: the prompt payload rides a 401 so clients
		// can branch on the status alone.
		if resp.RequiresAuth {
			common.RespondSuccess(w, initTime, "", resp, http.StatusUnauthorized)
			return
		}

		common.RespondSuccess(w, initTime, "", resp)
	}
}
