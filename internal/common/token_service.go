package common

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"summit-sheriff/recruiting/internal/constants"
)

const sessionTokenTTL = 7 * 24 * time.Hour

// TokenService mints and verifies session JWTs. The signing secret
// comes from SESSION_SECRET; a process-local random default would
// invalidate sessions across restarts, so startup fails without it
// outside development.
type TokenService struct {
	secret []byte
	issuer string
}

type sessionTokenClaims struct {
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

func NewTokenService() (*TokenService, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		if os.Getenv("APP_ENV") == "production" {
			return nil, fmt.Errorf("SESSION_SECRET not set")
		}
		secret = "dev-session-secret"
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: "summit-sheriff-recruiting",
	}, nil
}

// Mint issues a signed session token for the user.
func (t *TokenService) Mint(userID, displayName string, role constants.UserRole) (string, error) {
	now := time.Now()
	claims := sessionTokenClaims{
		DisplayName: displayName,
		Role:        string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, returning the user id,
// display name and role.
func (t *TokenService) Verify(tokenStr string) (userID, displayName, role string, err error) {
	var claims sessionTokenClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithIssuer(t.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", "", "", fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return "", "", "", fmt.Errorf("invalid session token")
	}

	return claims.Subject, claims.DisplayName, claims.Role, nil
}
