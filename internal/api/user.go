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

// RegisterUser handles POST /api/v1/user/register
func (h *Handlers) RegisterUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RegisterUserReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := h.deps.Services.Registration.Register(r.Context(), &req)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				common.RespondError(w, initTime, err, constants.StatusAlreadyRegistered, http.StatusConflict)
				return
			}
			common.RespondError(w, initTime, err, constants.StatusInsertFailed, http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Account created", resp, http.StatusCreated)
	}
}

// LoginUser handles POST /api/v1/user/login
func (h *Handlers) LoginUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := h.deps.Services.Registration.Login(r.Context(), &req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				common.RespondError(w, initTime, err, constants.StatusInvalidCredentials, http.StatusUnauthorized)
				return
			}
			common.RespondError(w, initTime, err, constants.StatusError, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Signed in", resp)
	}
}

// GetUserDetails handles GET /api/v1/user/details
func (h *Handlers) GetUserDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		profile, err := h.deps.Services.Registration.Profile(r.Context(), claims.UserID())
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusUserNotFound, http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "", profile)
	}
}

// GetUserPoints handles GET /api/v1/user/points
func (h *Handlers) GetUserPoints() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		totals, err := h.deps.Services.Points.GetTotals(r.Context(), claims.UserID())
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusUserNotFound, http.StatusNotFound)
			return
		}

		weekly, err := h.deps.Services.Points.WeeklyPoints(r.Context(), claims.UserID())
		if err != nil {
			// The weekly figure is decoration; the totals still stand.
			weekly = 0
		}

		common.RespondSuccess(w, initTime, "", dtos.UserPointsResponse{
			UserID:         totals.UserID,
			Points:         totals.Points,
			DonationPoints: totals.DonationPoints,
			WeeklyPoints:   weekly,
		})
	}
}

// GetUserBadges handles GET /api/v1/user/badges
func (h *Handlers) GetUserBadges() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		badges, err := h.deps.Services.Badges.ListByUser(r.Context(), claims.UserID())
		if err != nil {
			common.RespondError(w, initTime, err, constants.StatusError, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", badges)
	}
}
