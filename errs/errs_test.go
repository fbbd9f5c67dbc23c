package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(NewUnknownProjectError("x")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(fmt.Errorf("wrapped: %w", NewUnknownEventError("fly"))))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain")))
}

func TestUnknownProjectIsNotFound(t *testing.T) {
	err := NewUnknownProjectError("ghost")

	assert.True(t, IsNotFound(err))
	assert.True(t, IsUnknownProject(err))
	assert.Contains(t, err.Error(), `"ghost"`)
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsBadRequest(NewBadRequestError("missing projectID")))
	assert.True(t, IsInvalidJSONError(NewInvalidJSONError(errors.New("eof"))))
	assert.True(t, IsNoProjectBound(NewNoProjectBoundError()))
	assert.True(t, IsDuplicateProjectID(NewDuplicateProjectIDError("a", 0, 2)))
	assert.True(t, IsSessionNotFound(NewSessionNotFoundError()))
	assert.False(t, IsUnknownEvent(NewBadRequestError("x")))
}

func TestGetFullError(t *testing.T) {
	inner := NewDuplicateProjectIDError("a", 0, 1)
	outer := NewInvalidCatalogError(inner)

	full := outer.GetFullError()
	assert.Contains(t, full, "invalid catalog")
	assert.Contains(t, full, "duplicate project id")
	assert.True(t, IsInvalidCatalog(outer))
}

func TestNewDatabaseError(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantStatus int
		wantConn   bool
	}{
		{"missing table", fmt.Errorf("find: %w", &pgconn.PgError{Code: "42P01", Message: `relation "projects" does not exist`}), http.StatusInternalServerError, false},
		{"connection exception", &pgconn.PgError{Code: "08006"}, http.StatusServiceUnavailable, true},
		{"dial failure", errors.New("failed to connect to `host=db`: dial error"), http.StatusServiceUnavailable, true},
		{"other", &pgconn.PgError{Code: "42601", Message: "syntax error"}, http.StatusInternalServerError, false},
		{"no cause", nil, http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("find", "projects", tt.cause)
			assert.Equal(t, tt.wantStatus, err.StatusCode)
			assert.Equal(t, tt.wantConn, IsDatabaseConnectionError(err))
			if !tt.wantConn {
				assert.ErrorIs(t, err, ErrDatabaseQuery)
			}
		})
	}
}
