package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/db/repositories"
	"summit-sheriff/recruiting/internal/logging"
	"summit-sheriff/recruiting/internal/metrics"
	"summit-sheriff/recruiting/internal/models/dtos"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

type ApplicantService struct {
	applicants *repositories.ApplicantRepository
	users      *repositories.UserRepositoryGORM
	metrics    *metrics.MetricsRegistry
}

func NewApplicantService(
	applicants *repositories.ApplicantRepository,
	users *repositories.UserRepositoryGORM,
	metricsReg *metrics.MetricsRegistry,
) *ApplicantService {
	return &ApplicantService{
		applicants: applicants,
		users:      users,
		metrics:    metricsReg,
	}
}

// Create registers an interest-form submission as a pending applicant
// with a fresh tracking number.
func (s *ApplicantService) Create(ctx context.Context, req *dtos.CreateApplicantReq, userID string) (*dtos.ApplicantResponse, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return nil, fmt.Errorf("first name, last name and email are required")
	}

	applicant := gormModels.Applicant{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          strings.TrimSpace(req.Phone),
		ReferralSource: req.ReferralSource,
		TrackingNumber: newTrackingNumber(),
		Status:         constants.ApplicantPending,
	}
	if userID != "" {
		applicant.UserID = &userID
	}
	if err := s.applicants.Insert(ctx, &applicant); err != nil {
		return nil, err
	}

	if userID != "" {
		if err := s.users.MarkApplied(ctx, userID); err != nil {
			logging.Warn("Failed to flag user as applied", "user_id", userID, "error", err.Error())
		}
	}

	s.refreshStatusGauge(ctx)
	logging.Info("Applicant created",
		"applicant_id", applicant.ID,
		"tracking_number", applicant.TrackingNumber,
		"referral_source", applicant.ReferralSource,
	)
	return applicantView(&applicant), nil
}

// UpdateStatus moves an applicant through the funnel. Any valid status
// is reachable from any other; the funnel is admin-driven, not a state
// machine.
func (s *ApplicantService) UpdateStatus(ctx context.Context, id string, req *dtos.UpdateApplicantStatusReq, adminID string) (*dtos.ApplicantResponse, error) {
	status := constants.ApplicantStatus(req.Status)
	if !constants.ValidApplicantStatuses[status] {
		return nil, fmt.Errorf("invalid applicant status: %s", req.Status)
	}

	applicant, err := s.applicants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := applicant.Status
	applicant.Status = status
	if req.Notes != "" {
		applicant.Notes = req.Notes
	}
	if err := s.applicants.Save(ctx, applicant); err != nil {
		return nil, err
	}

	s.refreshStatusGauge(ctx)
	logging.Info("Applicant status changed",
		"applicant_id", applicant.ID,
		"from", previous,
		"to", status,
		"admin_id", adminID,
	)
	return applicantView(applicant), nil
}

func (s *ApplicantService) List(ctx context.Context, status, search string, limit, offset int) ([]dtos.ApplicantResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}

	applicants, total, err := s.applicants.List(ctx, constants.ApplicantStatus(status), search, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dtos.ApplicantResponse, 0, len(applicants))
	for i := range applicants {
		out = append(out, *applicantView(&applicants[i]))
	}
	return out, total, nil
}

func (s *ApplicantService) Get(ctx context.Context, id string) (*dtos.ApplicantResponse, error) {
	applicant, err := s.applicants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return applicantView(applicant), nil
}

func (s *ApplicantService) refreshStatusGauge(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	counts, err := s.applicants.CountByStatus(ctx)
	if err != nil {
		logging.Warn("Failed to refresh applicant gauge", "error", err.Error())
		return
	}
	for status := range constants.ValidApplicantStatuses {
		s.metrics.ApplicantsByStatus.WithLabelValues(string(status)).Set(float64(counts[string(status)]))
	}
}

// newTrackingNumber builds a short reference an applicant can quote on
// the phone, e.g. SC-4F2A9C1D.
func newTrackingNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "SC-" + strings.ToUpper(raw[:8])
}

func applicantView(a *gormModels.Applicant) *dtos.ApplicantResponse {
	return &dtos.ApplicantResponse{
		ID:             a.ID,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Email:          a.Email,
		Phone:          a.Phone,
		TrackingNumber: a.TrackingNumber,
		ReferralSource: a.ReferralSource,
		Status:         string(a.Status),
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
	}
}
