package auth

import "summit-sheriff/recruiting/internal/constants"

// UserClaims is the common interface handlers read from the request
// context regardless of how the caller authenticated.
type UserClaims interface {
	UserID() string
	Role() string
	Source() string
	DisplayName() string
}

// SessionClaims come from a verified session JWT.
type SessionClaims struct {
	UserUUID   string
	RoleValue  constants.UserRole
	DisplayVal string
}

func (c *SessionClaims) UserID() string      { return c.UserUUID }
func (c *SessionClaims) Role() string        { return string(c.RoleValue) }
func (c *SessionClaims) Source() string      { return "SESSION" }
func (c *SessionClaims) DisplayName() string { return c.DisplayVal }

// APIKeyClaims come from a service-to-service API key; the acting user
// is named by the X-User-Id header.
type APIKeyClaims struct {
	UserUUID   string
	RoleValue  constants.UserRole
	DisplayVal string
}

func (c *APIKeyClaims) UserID() string      { return c.UserUUID }
func (c *APIKeyClaims) Role() string        { return string(c.RoleValue) }
func (c *APIKeyClaims) Source() string      { return "API_KEY" }
func (c *APIKeyClaims) DisplayName() string { return c.DisplayVal }
