package api

import (
	"encoding/json"
	"net/http"
	"time"

	"summit-sheriff/recruiting/internal/auth"
	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/models/dtos"
)

// GetChecklist handles GET /api/v1/checklist
func (h *Handlers) GetChecklist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		resp, err := h.deps.Services.Checklist.Overview(r.Context(), claims.UserID())
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusError, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", resp)
	}
}

// ToggleChecklistItem handles POST /api/v1/checklist/toggle
func (h *Handlers) ToggleChecklistItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.ChecklistToggleReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.ItemID == "" {
			common.RespondError(w, initTime, nil, "item_id is required", http.StatusBadRequest)
			return
		}

		resp, err := h.deps.Services.Checklist.Toggle(r.Context(), claims.UserID(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusError, http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "", resp)
	}
}
