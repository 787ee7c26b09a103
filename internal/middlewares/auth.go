package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/blog-platform/internal/logger"
	"github.com/sbilibin2017/blog-platform/internal/sessions"
)

// SessionGetter defines the minimal interface needed by the middleware
type SessionGetter interface {
	Get(ctx context.Context, token string) (int64, error)
}

// SessionMiddleware returns a middleware that resolves the session cookie
// to a user id and stores it in the request context. Requests without a
// valid session are rejected with 401.
func SessionMiddleware(store SessionGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cookie, err := r.Cookie(sessions.CookieName)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeNotAuthenticated(w)
				return
			}

			userID, err := store.Get(ctx, cookie.Value)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeNotAuthenticated(w)
				return
			}

			ctx = setUserIDToContext(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeNotAuthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Not authenticated"})
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userIDKey = contextKey{}

// setUserIDToContext stores the authenticated user id in the context
func setUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from the
// context. Returns false if the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
