package db

import "database/sql"

// DB wraps *sql.DB so higher layers depend on this package
// rather than on database/sql directly.
type DB struct {
	*sql.DB
}
