package credentials

import (
	"context"
	"errors"
	"strings"

	"github.com/rahulbhardwaj94/IMDB-Clone/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyUsername      = errors.New("username must not be empty")
	ErrEmptyGoogleID      = errors.New("google id must not be empty")
)

// Service owns local credential verification and the find-or-create
// operation for Google sign-in. It is the only writer of account
// records.
type Service struct {
	users user.Store
}

func NewService(users user.Store) *Service {
	return &Service{users: users}
}

// Register creates a locally-registered account. Fails with
// user.ErrDuplicateUsername when the username is already taken.
func (s *Service) Register(
	ctx context.Context,
	username string,
	password string,
) (*user.User, error) {

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	hash, version, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Username:     username,
		PasswordHash: hash,
		HashVersion:  version,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate verifies a local login attempt. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *Service) Authenticate(
	ctx context.Context,
	username string,
	password string,
) (*user.User, error) {

	u, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, user.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	// Accounts created by Google sign-in carry no local credentials.
	if !u.Local() {
		return nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// FindOrCreateByGoogleID returns the account bound to the given
// external identifier, creating it on first sight. Idempotent: two
// calls with the same id always yield the same account.
func (s *Service) FindOrCreateByGoogleID(
	ctx context.Context,
	googleID string,
) (*user.User, error) {

	if googleID == "" {
		return nil, ErrEmptyGoogleID
	}

	u, err := s.users.FindByGoogleID(ctx, googleID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, err
	}

	u = &user.User{GoogleID: googleID}
	createErr := s.users.Create(ctx, u)
	if createErr == nil {
		return u, nil
	}

	// Lost a race with a concurrent first sign-in for the same id.
	if errors.Is(createErr, user.ErrDuplicateGoogleID) {
		return s.users.FindByGoogleID(ctx, googleID)
	}

	return nil, createErr
}
