package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Showcase & catalog errors
var (
	ErrNoProjectBound     = errors.New("no project bound to modal")
	ErrUnknownProject     = errors.New("unknown project")
	ErrUnknownEvent       = errors.New("unknown showcase event")
	ErrDuplicateProjectID = errors.New("duplicate project id")
	ErrInvalidCatalog     = errors.New("invalid catalog")
	ErrSessionNotFound    = errors.New("session not found")
)

// NewNoProjectBoundError is returned when something tries to open the modal
// without a project record.
func NewNoProjectBoundError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrNoProjectBound,
		Details:    "a project must be selected before the modal can open",
		Field:      "projectId",
	}
}

func NewUnknownProjectError(id string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("project %q %w: %w", id, ErrNotFound, ErrUnknownProject),
		Field:      "projectId",
	}
}

func NewUnknownEventError(eventType string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnknownEvent,
		Details:    fmt.Sprintf("unsupported event type %q", eventType),
		Field:      "type",
	}
}

func NewDuplicateProjectIDError(id string, first, second int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDuplicateProjectID,
		Details:    fmt.Sprintf("id %q used by entries %d and %d", id, first, second),
		Field:      "id",
	}
}

func NewInvalidCatalogError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrInvalidCatalog,
		Cause:      cause,
	}
}

func NewSessionNotFoundError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrSessionNotFound,
	}
}

func IsNoProjectBound(err error) bool {
	return errors.Is(err, ErrNoProjectBound)
}

func IsUnknownProject(err error) bool {
	return errors.Is(err, ErrUnknownProject)
}

func IsUnknownEvent(err error) bool {
	return errors.Is(err, ErrUnknownEvent)
}

func IsDuplicateProjectID(err error) bool {
	return errors.Is(err, ErrDuplicateProjectID)
}

func IsInvalidCatalog(err error) bool {
	return errors.Is(err, ErrInvalidCatalog)
}

func IsSessionNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}
