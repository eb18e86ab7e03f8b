package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/service"
	"github.com/google/uuid"
)

// DeviceCookieName identifies the browser for the single-active-session
// guard. The cookie is deliberately not httpOnly: the frontend reads it to
// show "logged in elsewhere" hints.
const DeviceCookieName = "boe_device_id"

const (
	DeviceIDKey    contextKey = "deviceID"
	CurrentUserKey contextKey = "currentUser"
)

// EnsureDeviceCookie assigns a device identifier on first contact and puts
// it in the request context on every request.
func EnsureDeviceCookie(maxAgeDays int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			deviceID := ""
			if cookie, err := r.Cookie(DeviceCookieName); err == nil && cookie.Value != "" {
				deviceID = cookie.Value
			} else {
				deviceID = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     DeviceCookieName,
					Value:    deviceID,
					Path:     "/",
					MaxAge:   maxAgeDays * 24 * 60 * 60,
					HttpOnly: false,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), DeviceIDKey, deviceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DeviceGuard enforces the single-active-session lock: the request's device
// cookie must match the user's active device and the token's session must
// still be the active one. It also places the loaded user in the context
// for downstream role checks.
func DeviceGuard(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			deviceID, _ := GetDeviceID(r.Context())

			user, err := authService.GetUserByID(r.Context(), userID)
			if err != nil {
				log.Printf("ERROR [middleware.DeviceGuard] failed to load user: %v", err)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if user.ActiveDeviceID == nil || *user.ActiveDeviceID == "" {
				// Lock released (logged out); token no longer usable.
				writeError(w, http.StatusUnauthorized, "session expired")
				return
			}
			if *user.ActiveDeviceID != deviceID {
				writeError(w, http.StatusUnauthorized, domain.ErrDeviceConflict.Error())
				return
			}
			if sessionID, ok := GetSessionID(r.Context()); ok {
				if user.ActiveSessionID == nil || *user.ActiveSessionID != sessionID {
					writeError(w, http.StatusUnauthorized, domain.ErrDeviceConflict.Error())
					return
				}
			}

			ctx := context.WithValue(r.Context(), CurrentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetDeviceID(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDKey).(string)
	return deviceID, ok
}

func GetCurrentUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(CurrentUserKey).(*domain.User)
	return user, ok
}

// writeError emits the JSON error body used across the API.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
