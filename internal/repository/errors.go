package repository

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// Repository-level sentinel errors. The service layer translates them into the
// application errors so that business logic never sees driver errors such as
// sql.ErrNoRows or sqlite3.Error.
var (
	// ErrNotFound is returned when a query for a single entity finds no rows.
	ErrNotFound = errors.New("repository: not found")

	// ErrDuplicateKey is returned when an insert collides with an existing key.
	ErrDuplicateKey = errors.New("repository: duplicate key")
)

// isUniqueViolation reports whether err is a SQLite primary key or unique
// constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
