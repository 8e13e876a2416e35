package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
// Queries are written with "?" placeholders and passed through Rebind.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Rebind(query string) string
}

var (
	_ DBTX = (*sqlx.DB)(nil)
	_ DBTX = (*sqlx.Tx)(nil)
)

// isUniqueViolation recognises duplicate key errors from Postgres (23505)
// and Oracle (ORA-00001).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "ORA-00001")
}

// fetchFirst renders the row limit clause understood by both Postgres and
// Oracle 12c+. limit <= 0 means no cap.
func fetchFirst(limit int) string {
	if limit <= 0 {
		return ""
	}
	return fmt.Sprintf(" FETCH FIRST %d ROWS ONLY", limit)
}

// boolArg binds a boolean for the driver: Oracle stores flags as NUMBER(1).
func boolArg(driver string, b bool) interface{} {
	if driver != "oracle" {
		return b
	}
	if b {
		return 1
	}
	return 0
}
