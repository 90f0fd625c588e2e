package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"summit-sheriff/recruiting/internal/auth"
	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/models/dtos"
)

// AwardPoints handles POST /api/v1/points/award (admin). Manual
// corrections land in the ledger like any other award; negative deltas
// are allowed and the user's total clamps at zero.
func (h *Handlers) AwardPoints() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AwardPointsReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.UserID == "" {
			common.RespondError(w, initTime, nil, "user_id is required", http.StatusBadRequest)
			return
		}

		newTotal, err := h.deps.Services.Points.Award(r.Context(), req.UserID, req.Points, req.Action, req.Description)
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusError, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Points awarded", dtos.PointAwardResponse{
			Success:  true,
			Points:   req.Points,
			NewTotal: newTotal,
		})
	}
}

// PointHistory handles GET /api/v1/user/points/history
func (h *Handlers) PointHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		awards, err := h.deps.Services.Points.History(r.Context(), claims.UserID(), limit, offset)
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusError, http.StatusInternalServerError)
			return
		}

		entries := make([]dtos.PointHistoryEntry, 0, len(awards))
		for _, a := range awards {
			entries = append(entries, dtos.PointHistoryEntry{
				Points:      a.Points,
				Action:      a.Action,
				Description: a.Description,
				CreatedAt:   a.CreatedAt,
			})
		}

		common.RespondSuccess(w, initTime, "", entries)
	}
}
