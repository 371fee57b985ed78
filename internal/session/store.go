package session

import (
	"context"
	"time"
)

// Session binds an opaque token to the claims of an authenticated
// user. It intentionally stores identity pointers only, no auth state.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store defines how sessions are stored and retrieved. Implementations
// must be safe for concurrent use. Get returns (nil, nil) for an
// unknown token; Delete is idempotent.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, sessionID string) error
}
