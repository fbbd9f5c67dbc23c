package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

const sqlStateUndefinedTable = "42P01"

// NewDatabaseError classifies a failure reading entity. Postgres errors are
// matched on SQLSTATE; anything that never reached the server is a connection
// failure.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	switch {
	case isConnectionFailure(cause):
		return &ApiErr{
			StatusCode: http.StatusServiceUnavailable,
			err:        ErrDatabaseConnection,
			Details:    "Unable to connect to database",
			Cause:      cause,
		}
	case pgCode(cause) == sqlStateUndefinedTable:
		return &ApiErr{
			StatusCode: http.StatusInternalServerError,
			err:        fmt.Errorf("%s table missing: %w", entity, ErrDatabaseQuery),
			Details:    details,
			Cause:      cause,
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

func IsDatabaseConnectionError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection)
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isConnectionFailure(err error) bool {
	if err == nil {
		return false
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	// class 08: connection exception
	if code := pgCode(err); code != "" {
		return strings.HasPrefix(code, "08")
	}
	return strings.Contains(err.Error(), "failed to connect")
}
