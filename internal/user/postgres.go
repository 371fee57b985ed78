package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/rahulbhardwaj94/IMDB-Clone/internal/db"
)

const pqUniqueViolation = "23505"

// PostgresStore persists accounts in Postgres.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, u *User) error {
	if u.Username == "" && u.GoogleID == "" {
		return errors.New("user: record has no identity path")
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, hash_version, google_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		u.ID,
		nullable(u.Username),
		nullable(u.PasswordHash),
		nullable(u.HashVersion),
		nullable(u.GoogleID),
		u.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			if strings.Contains(pqErr.Constraint, "google") {
				return ErrDuplicateGoogleID
			}
			return ErrDuplicateUsername
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}

func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	return s.findOne(ctx, `
		SELECT id, username, password_hash, hash_version, google_id, created_at
		FROM users
		WHERE LOWER(username) = LOWER($1)
	`, username)
}

func (s *PostgresStore) FindByGoogleID(ctx context.Context, googleID string) (*User, error) {
	return s.findOne(ctx, `
		SELECT id, username, password_hash, hash_version, google_id, created_at
		FROM users
		WHERE google_id = $1
	`, googleID)
}

func (s *PostgresStore) findOne(ctx context.Context, query string, arg any) (*User, error) {
	var (
		u        User
		username sql.NullString
		hash     sql.NullString
		version  sql.NullString
		googleID sql.NullString
	)

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID,
		&username,
		&hash,
		&version,
		&googleID,
		&u.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	u.Username = username.String
	u.PasswordHash = hash.String
	u.HashVersion = version.String
	u.GoogleID = googleID.String

	return &u, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
