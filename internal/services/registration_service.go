package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/db/repositories"
	"summit-sheriff/recruiting/internal/logging"
	"summit-sheriff/recruiting/internal/models/dtos"
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// referralSignupPoints is credited to the referrer when someone they
// referred creates an account.
const referralSignupPoints = 25

type RegistrationService struct {
	users  *repositories.UserRepositoryGORM
	points *PointsService
	tokens *common.TokenService
}

func NewRegistrationService(
	users *repositories.UserRepositoryGORM,
	points *PointsService,
	tokens *common.TokenService,
) *RegistrationService {
	return &RegistrationService{
		users:  users,
		points: points,
		tokens: tokens,
	}
}

// Register creates an account and signs the new user in. A referrer,
// when named and real, earns the referral point bonus.
func (s *RegistrationService) Register(ctx context.Context, req *dtos.RegisterUserReq) (*dtos.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := gormModels.User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		Role:         constants.RoleRecruit,
		IsActive:     true,
	}
	if req.ReferredBy != nil && *req.ReferredBy != "" {
		if _, err := s.users.GetByID(ctx, *req.ReferredBy); err == nil {
			user.ReferredBy = req.ReferredBy
		}
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}

	if user.ReferredBy != nil {
		description := fmt.Sprintf("Referral signup: %s", displayName)
		if _, err := s.points.Award(ctx, *user.ReferredBy, referralSignupPoints, constants.ActionReferralSigned, description); err != nil {
			logging.Warn("Failed to credit referrer", "referrer_id", *user.ReferredBy, "error", err.Error())
		}
	}

	logging.Info("User registered", "user_id", user.ID, "referred", user.ReferredBy != nil)
	return s.authResponse(&user)
}

// Login verifies credentials and mints a session token. Wrong email and
// wrong password return the same error.
func (s *RegistrationService) Login(ctx context.Context, req *dtos.LoginReq) (*dtos.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// Profile returns the signed-in user's account view with earned badges
// and referral count.
func (s *RegistrationService) Profile(ctx context.Context, userID string) (*dtos.UserDetailsResponse, error) {
	user, err := s.users.GetWithBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	referrals, err := s.users.CountReferrals(ctx, userID)
	if err != nil {
		logging.Warn("Referral count failed", "user_id", userID, "error", err.Error())
		referrals = 0
	}

	badges := make([]dtos.BadgeResponse, 0, len(user.Badges))
	for i := range user.Badges {
		badges = append(badges, BadgeView(&user.Badges[i]))
	}

	return &dtos.UserDetailsResponse{
		UserID:         user.ID,
		Email:          user.Email,
		DisplayName:    user.DisplayName,
		Role:           string(user.Role),
		Points:         user.Points,
		DonationPoints: user.DonationPoints,
		HasApplied:     user.HasApplied,
		ReferralCount:  int(referrals),
		Badges:         badges,
		CreatedAt:      user.CreatedAt,
	}, nil
}

func (s *RegistrationService) authResponse(user *gormModels.User) (*dtos.AuthResponse, error) {
	token, err := s.tokens.Mint(user.ID, user.DisplayName, user.Role)
	if err != nil {
		return nil, err
	}
	return &dtos.AuthResponse{
		Token:       token,
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
	}, nil
}
