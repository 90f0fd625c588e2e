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

// RecordDonation handles POST /api/v1/donations/record
func (h *Handlers) RecordDonation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.RecordDonationReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := h.deps.Services.Donations.Record(r.Context(), claims.UserID(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusError, http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Donation recorded", resp)
	}
}

// GetCampaigns handles GET /api/v1/campaigns
func (h *Handlers) GetCampaigns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		campaigns, err := h.deps.Services.Donations.ActiveCampaigns(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusError, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", campaigns)
	}
}

// SaveDonationRule handles POST /api/v1/admin/donations/rules (admin)
func (h *Handlers) SaveDonationRule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SaveDonationRuleReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		rule, err := h.deps.Services.Donations.SaveRule(r.Context(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusError, http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Rule saved", rule)
	}
}
