package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"summit-sheriff/recruiting/internal/auth"
	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/models/dtos"
)

// CreateApplicant handles POST /api/v1/applicants. The public interest
// form posts here; a signed-in user gets linked to the record.
func (h *Handlers) CreateApplicant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateApplicantReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		userID := ""
		if claims := auth.GetUserClaims(r.Context()); claims != nil {
			userID = claims.UserID()
		}

		resp, err := h.deps.Services.Applicants.Create(r.Context(), &req, userID)
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusInsertFailed, http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Interest received", resp, http.StatusCreated)
	}
}

// ListApplicants handles GET /api/v1/admin/applicants (admin)
func (h *Handlers) ListApplicants() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		q := r.URL.Query()
		limit, _ := strconv.Atoi(q.Get("limit"))
		offset, _ := strconv.Atoi(q.Get("offset"))

		applicants, total, err := h.deps.Services.Applicants.List(r.Context(), q.Get("status"), q.Get("search"), limit, offset)
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusError, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", map[string]any{
			"applicants": applicants,
			"total":      total,
		})
	}
}

// GetApplicant handles GET /api/v1/admin/applicants/{applicant_id} (admin)
func (h *Handlers) GetApplicant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		resp, err := h.deps.Services.Applicants.Get(r.Context(), chi.URLParam(r, "applicant_id"))
		if err != nil {
			common.RespondError(w, initTime, err, "Applicant not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "", resp)
	}
}

// UpdateApplicantStatus handles PUT /api/v1/admin/applicants/{applicant_id}/status (admin)
func (h *Handlers) UpdateApplicantStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())

		var req dtos.UpdateApplicantStatusReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		adminID := ""
		if claims != nil {
			adminID = claims.UserID()
		}

		resp, err := h.deps.Services.Applicants.UpdateStatus(r.Context(), chi.URLParam(r, "applicant_id"), &req, adminID)
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusError, http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Status updated", resp)
	}
}
