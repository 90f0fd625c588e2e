package middleware

import (
	"net/http"
	"strings"

	"summit-sheriff/recruiting/internal/auth"
	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/db/repositories"
)

// AuthMiddleware accepts either a session bearer token or a
// service-to-service API key and puts the resolved claims on the
// request context.
func AuthMiddleware(tokens *common.TokenService, keysRepo *repositories.KeysRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get("X-API-Key")

			var claims auth.UserClaims

			switch {
			case strings.HasPrefix(authHeader, "Bearer "):
				token := strings.TrimPrefix(authHeader, "Bearer ")
				userID, displayName, role, err := tokens.Verify(token)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid session", http.StatusUnauthorized)
					return
				}
				claims = &auth.SessionClaims{
					UserUUID:   userID,
					RoleValue:  constants.UserRole(role),
					DisplayVal: displayName,
				}

			case apiKey != "":
				keyRes, err := keysRepo.GetStatus(r.Context(), apiKey)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid API Key", http.StatusUnauthorized)
					return
				}
				if !keyRes.Status {
					http.Error(w, "Unauthorized. Inactive API Key", http.StatusUnauthorized)
					return
				}
				// API keys act with admin scope for the user named in
				// the header.
				claims = &auth.APIKeyClaims{
					UserUUID:  r.Header.Get("X-User-Id"),
					RoleValue: constants.RoleAdmin,
				}

			default:
				http.Error(w, "Unauthorized. Missing credentials", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware resolves claims when credentials are present
// but lets anonymous requests through. Used by the chat endpoint and
// the public leaderboard.
func OptionalAuthMiddleware(tokens *common.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token := strings.TrimPrefix(authHeader, "Bearer ")
				if userID, displayName, role, err := tokens.Verify(token); err == nil {
					ctx := auth.SetUserClaims(r.Context(), &auth.SessionClaims{
						UserUUID:   userID,
						RoleValue:  constants.UserRole(role),
						DisplayVal: displayName,
					})
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
