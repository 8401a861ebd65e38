package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/parth-samanta/LogMyFit/internal/ctxkeys"
	"github.com/parth-samanta/LogMyFit/internal/service"
)

// openAPIPaths are reachable without a session.
var openAPIPaths = map[string]bool{
	"/api/health": true,
	"/api/signup": true,
	"/api/login":  true,
}

// SessionAuth gates every /api/* path except health, signup, and login.
// It resolves the session cookie to a session row, re-validates that the
// stored username still maps to a user (a deleted user must not keep a
// working session), and injects the user id and username into the request
// context. Anything short of that is a 401.
func SessionAuth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if !strings.HasPrefix(path, "/api/") || openAPIPaths[path] {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := service.SessionToken(r)
			if !ok {
				unauthorized(w)
				return
			}

			userID, username, err := authService.ResolveSession(token)
			if err != nil {
				slog.Debug("session rejected", "path", path, "error", err)
				authService.ClearSessionCookie(w)
				unauthorized(w)
				return
			}

			ctx := ctxkeys.WithUserID(r.Context(), userID)
			ctx = ctxkeys.WithUsername(ctx, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
}
