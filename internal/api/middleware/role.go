package middleware

import (
	"net/http"

	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/service"
)

// RequireAdmin allows only users whose role may review other users' data.
// It expects DeviceGuard to have placed the user in the context; otherwise
// it loads the user itself (the WebSocket route skips the guard).
func RequireAdmin(authService *service.AuthService) func(http.Handler) http.Handler {
	return requireRole(authService, func(r domain.Role) bool { return r.IsAdmin() })
}

// RequireCentralAdmin allows only central admins (user approval, role changes).
func RequireCentralAdmin(authService *service.AuthService) func(http.Handler) http.Handler {
	return requireRole(authService, func(r domain.Role) bool { return r == domain.RoleCentralAdmin })
}

func requireRole(authService *service.AuthService, allowed func(domain.Role) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetCurrentUser(r.Context())
			if !ok {
				userID, idOK := GetUserID(r.Context())
				if !idOK {
					writeError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				loaded, err := authService.GetUserByID(r.Context(), userID)
				if err != nil {
					writeError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				user = loaded
			}

			if !allowed(user.Role) {
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
