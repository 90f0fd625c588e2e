package api

import (
	"net/http"
	"strconv"
	"time"

	"summit-sheriff/recruiting/internal/auth"
	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
)

// GetLeaderboard handles GET /api/v1/leaderboard. Public; signed-in
// viewers get their own row flagged.
func (h *Handlers) GetLeaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		q := r.URL.Query()
		limit, _ := strconv.Atoi(q.Get("limit"))
		offset, _ := strconv.Atoi(q.Get("offset"))

		currentUserID := ""
		if claims := auth.GetUserClaims(r.Context()); claims != nil {
			currentUserID = claims.UserID()
		}

		resp, err := h.deps.Services.Leaderboard.Fetch(
			r.Context(),
			q.Get("timeframe"),
			q.Get("category"),
			q.Get("search"),
			limit,
			offset,
			currentUserID,
		)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgConnectionIssue, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", resp)
	}
}
