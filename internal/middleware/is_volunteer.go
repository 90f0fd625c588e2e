package middleware

import (
	"net/http"

	"summit-sheriff/recruiting/internal/auth"
	"summit-sheriff/recruiting/internal/constants"
)

// IsVolunteerMiddleware admits volunteers and above. Volunteers run
// outreach events and may record donations on behalf of supporters.
func IsVolunteerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims == nil || !constants.RoleAtLeast(claims.Role(), constants.RoleVolunteer) {
				http.Error(w, "Forbidden. Volunteer access required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
