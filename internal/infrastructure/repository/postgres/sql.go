package postgres

import (
	"database/sql"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation = "unique_violation"

	teamsNameUniqueIndex = "teams_name_active_uidx"
)

func isNotFound(err error) bool {
	return crerr.Is(err, sql.ErrNoRows)
}

// isUniqueViolation reports whether err is a postgres unique violation on
// constraint. An empty constraint matches any unique violation.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !crerr.As(err, &pqErr) {
		return false
	}
	if pqErr.Code.Name() != pqUniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
