package services

import (
	"context"
	"regexp"
	"testing"

	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/db/repositories"
	"summit-sheriff/recruiting/internal/models/dtos"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

func newApplicantService(t *testing.T) (*ApplicantService, *repositories.UserRepositoryGORM) {
	t.Helper()
	db := newTestDB(t)
	users := repositories.NewUserRepositoryGORM(db)
	return NewApplicantService(repositories.NewApplicantRepository(db), users, nil), users
}

var trackingNumberPattern = regexp.MustCompile(`^SC-[0-9A-F]{8}$`)

func TestCreateApplicant(t *testing.T) {
	svc, _ := newApplicantService(t)

	resp, err := svc.Create(context.Background(), &dtos.CreateApplicantReq{
		FirstName:      "  Dana ",
		LastName:       "Whitfield",
		Email:          "Dana.W@Example.com",
		Phone:          "555-0142",
		ReferralSource: "career_fair",
	}, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if resp.FirstName != "Dana" {
		t.Errorf("expected trimmed first name, got %q", resp.FirstName)
	}
	if resp.Email != "dana.w@example.com" {
		t.Errorf("expected lowercased email, got %q", resp.Email)
	}
	if !trackingNumberPattern.MatchString(resp.TrackingNumber) {
		t.Errorf("unexpected tracking number format: %q", resp.TrackingNumber)
	}
	if resp.Status != string(constants.ApplicantPending) {
		t.Errorf("expected pending status, got %q", resp.Status)
	}
}

func TestCreateApplicantRequiresNameAndEmail(t *testing.T) {
	svc, _ := newApplicantService(t)

	_, err := svc.Create(context.Background(), &dtos.CreateApplicantReq{FirstName: "Only"}, "")
	if err == nil {
		t.Error("expected a validation error")
	}
}

func TestCreateApplicantMarksLinkedUser(t *testing.T) {
	svc, users := newApplicantService(t)
	ctx := context.Background()

	user := gormModels.User{Email: "recruit@example.com", DisplayName: "Recruit", IsActive: true}
	if err := users.Create(ctx, &user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, err := svc.Create(ctx, &dtos.CreateApplicantReq{
		FirstName: "R",
		LastName:  "C",
		Email:     "recruit@example.com",
	}, user.ID); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !updated.HasApplied {
		t.Error("expected the linked user flagged as applied")
	}
}

func TestUpdateApplicantStatus(t *testing.T) {
	svc, _ := newApplicantService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dtos.CreateApplicantReq{
		FirstName: "Sam",
		LastName:  "Porter",
		Email:     "sam@example.com",
	}, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, created.ID, &dtos.UpdateApplicantStatusReq{
		Status: string(constants.ApplicantContacted),
		Notes:  "left a voicemail",
	}, "admin-1")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != string(constants.ApplicantContacted) {
		t.Errorf("expected contacted status, got %q", updated.Status)
	}
	if updated.Notes != "left a voicemail" {
		t.Errorf("expected notes saved, got %q", updated.Notes)
	}

	if _, err := svc.UpdateStatus(ctx, created.ID, &dtos.UpdateApplicantStatusReq{Status: "bogus"}, "admin-1"); err == nil {
		t.Error("expected an error for an unknown status")
	}
}

func TestListApplicantsFiltersByStatus(t *testing.T) {
	svc, _ := newApplicantService(t)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := svc.Create(ctx, &dtos.CreateApplicantReq{
			FirstName: "F",
			LastName:  "L",
			Email:     email,
		}, ""); err != nil {
			t.Fatalf("Create %s: %v", email, err)
		}
	}

	all, total, err := svc.List(ctx, "", "", 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 || total != 3 {
		t.Fatalf("expected 3 applicants, got %d (total %d)", len(all), total)
	}

	if _, err := svc.UpdateStatus(ctx, all[0].ID, &dtos.UpdateApplicantStatusReq{
		Status: string(constants.ApplicantHired),
	}, "admin-1"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	hired, total, err := svc.List(ctx, string(constants.ApplicantHired), "", 0, 0)
	if err != nil {
		t.Fatalf("List hired: %v", err)
	}
	if len(hired) != 1 || total != 1 {
		t.Errorf("expected 1 hired applicant, got %d (total %d)", len(hired), total)
	}
}
