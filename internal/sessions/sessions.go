package sessions

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned by Get when the token is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// CookieName is the cookie under which the session token travels.
const CookieName = "session_id"

// Store maps opaque session tokens to authenticated user ids.
// Implementations must be safe for concurrent use.
type Store interface {
	Begin(ctx context.Context, userID int64) (string, error) // Creates a session, returns its token
	Get(ctx context.Context, token string) (int64, error)    // Resolves a token to a user id
	End(ctx context.Context, token string) error             // Destroys a session; no-op for unknown tokens
}
