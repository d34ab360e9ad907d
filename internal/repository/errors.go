package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error code for unique_violation
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation on an index whose name mentions the given column. The unique
// indexes are the real enforcement for slug/email/tenant uniqueness; any
// service-level pre-check is only there for a friendlier message, so a
// concurrent insert losing the race still surfaces as the typed duplicate
// error instead of a generic failure.
func isUniqueViolation(err error, column string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != uniqueViolationCode {
		return false
	}
	return strings.Contains(pgErr.ConstraintName, column)
}
