package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateGoogleID = errors.New("google id already linked")
	ErrStoreUnavailable  = errors.New("account store unavailable")
)

// Store is the account store. Implementations must be safe for
// concurrent use from independent requests.
type Store interface {
	// Create persists a new record, assigning u.ID when empty.
	Create(ctx context.Context, u *User) error

	// FindByUsername looks up a record by username, case-insensitive.
	// Returns ErrNotFound when no record matches.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByGoogleID looks up a record by external Google identifier.
	// Returns ErrNotFound when no record matches.
	FindByGoogleID(ctx context.Context, googleID string) (*User, error)
}
