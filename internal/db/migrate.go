package db

import (
	"context"
	"database/sql"
)

const usersMigration = `
CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY,
    username text,
    password_hash text,
    hash_version text,
    google_id text,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW(),
    CONSTRAINT users_identity_present
        CHECK (username IS NOT NULL OR google_id IS NOT NULL)
);

CREATE UNIQUE INDEX IF NOT EXISTS users_username_lower_unique
ON users (LOWER(username))
WHERE username IS NOT NULL;

CREATE UNIQUE INDEX IF NOT EXISTS users_google_id_unique
ON users (google_id)
WHERE google_id IS NOT NULL;
`

// RunMigration applies the idempotent startup schema.
func RunMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, usersMigration)
	return err
}
