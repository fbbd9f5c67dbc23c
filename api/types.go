package api

import (
	"github.com/rpupo63/portfolio-showcase/catalog"
	"github.com/rpupo63/portfolio-showcase/showcase"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	pageHandler     pageHandler
	projectHandler  projectHandler
	showcaseHandler showcaseHandler
	wsHandler       wsHandler
	healthHandler   healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// ProjectCollection is the body of GET /api/projects.
type ProjectCollection struct {
	Projects []catalog.Project `json:"projects"`
	Total    int               `json:"total"`
}

// EventRequest is one event posted to the JSON or WebSocket endpoints.
type EventRequest struct {
	Type      string `json:"type"`
	ProjectID string `json:"projectId,omitempty"`
}

// ShowcaseResponse is the state of the caller's session.
type ShowcaseResponse struct {
	SessionID string            `json:"sessionId"`
	State     showcase.Snapshot `json:"state"`
}

// EventResponse reports what one event did.
type EventResponse struct {
	SessionID string            `json:"sessionId"`
	Outcome   showcase.Outcome  `json:"outcome"`
	State     showcase.Snapshot `json:"state"`
}

// SocketMessage is what the WebSocket endpoint writes back for every frame.
type SocketMessage struct {
	Type      string             `json:"type"`
	SessionID string             `json:"sessionId,omitempty"`
	Outcome   showcase.Outcome   `json:"outcome,omitempty"`
	State     *showcase.Snapshot `json:"state,omitempty"`
	Error     string             `json:"error,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Projects int    `json:"projects"`
	Sessions int    `json:"sessions"`
}
