package middleware

import (
	"net/http"

	"summit-sheriff/recruiting/internal/auth"
	"summit-sheriff/recruiting/internal/constants"
)

func IsAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims == nil || !constants.RoleAtLeast(claims.Role(), constants.RoleAdmin) {
				http.Error(w, "Forbidden. Admin access required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
