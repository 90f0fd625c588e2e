package api

import (
	"encoding/json"
	"net/http"
	"time"

	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/models/dtos"
	"summit-sheriff/recruiting/internal/services"
)

// AwardBadges handles POST /api/v1/badges/award (admin). Runs the rule
// pass for one trigger family against the named user; the response
// lists only badges granted by this call.
func (h *Handlers) AwardBadges() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AwardBadgeReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.UserID == "" {
			common.RespondError(w, initTime, nil, "user_id is required", http.StatusBadRequest)
			return
		}

		trigger := constants.BadgeTrigger(req.Trigger)
		switch trigger {
		case constants.TriggerDonation, constants.TriggerTrivia, constants.TriggerChecklist:
		default:
			common.RespondError(w, initTime, nil, "Unknown badge trigger", http.StatusBadRequest)
			return
		}

		awarded, err := h.deps.Services.Badges.CheckAndAward(r.Context(), req.UserID, trigger)
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusError, http.StatusInternalServerError)
			return
		}

		views := make([]dtos.BadgeResponse, 0, len(awarded))
		for i := range awarded {
			views = append(views, services.BadgeView(&awarded[i]))
		}

		common.RespondSuccess(w, initTime, "", views)
	}
}
