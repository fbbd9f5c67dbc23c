package showcase

import (
	"strings"

	"github.com/rpupo63/portfolio-showcase/errs"
)

// EventType names a discrete user action.
type EventType string

const (
	EventSelect   EventType = "select"
	EventNext     EventType = "next"
	EventPrev     EventType = "prev"
	EventZoom     EventType = "zoom"
	EventUnzoom   EventType = "unzoom"
	EventCancel   EventType = "cancel"
	EventClose    EventType = "close"
	EventBackdrop EventType = "backdrop"
)

// Event is one user action fed to the controller.
type Event struct {
	Type      EventType `json:"type"`
	ProjectID string    `json:"projectId,omitempty"`
}

// ParseEventType normalises a wire event name.
func ParseEventType(s string) (EventType, error) {
	t := EventType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case EventSelect, EventNext, EventPrev, EventZoom, EventUnzoom, EventCancel, EventClose, EventBackdrop:
		return t, nil
	}
	return "", errs.NewUnknownEventError(s)
}

// Outcome is what a single event did.
type Outcome string

const (
	OutcomeIgnored  Outcome = "ignored"
	OutcomeOpened   Outcome = "opened"
	OutcomeMoved    Outcome = "moved"
	OutcomeZoomed   Outcome = "zoomed"
	OutcomeUnzoomed Outcome = "unzoomed"
	OutcomeClosed   Outcome = "closed"
)

// Phase is the modal state.
type Phase string

const (
	PhaseClosed Phase = "closed"
	PhaseOpen   Phase = "open"
	PhaseZoomed Phase = "zoomed"
)

// Snapshot is the observable state after an event.
type Snapshot struct {
	Phase        Phase  `json:"phase"`
	ProjectID    string `json:"projectId,omitempty"`
	ModalOpen    bool   `json:"modalOpen"`
	ImageIndex   int    `json:"imageIndex"`
	ImageCount   int    `json:"imageCount"`
	Zoomed       bool   `json:"zoomed"`
	ScrollLocked bool   `json:"scrollLocked"`
}

// Result pairs the outcome of an event with the state it left behind.
type Result struct {
	Outcome  Outcome  `json:"outcome"`
	Snapshot Snapshot `json:"state"`
}
