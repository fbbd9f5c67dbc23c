package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-showcase/errs"
	"github.com/rpupo63/portfolio-showcase/sessions"
	"github.com/rpupo63/portfolio-showcase/showcase"
)

type showcaseHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *sessions.Store
	cookies   sessionMiddleware
}

func newShowcaseHandler(store *sessions.Store, cookies sessionMiddleware) showcaseHandler {
	logger := log.With().Str("handlerName", "showcaseHandler").Logger()

	return showcaseHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		cookies:   cookies,
	}
}

// getState reports the caller's showcase state.
func (h showcaseHandler) getState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := ctxGetSession(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ShowcaseResponse{
			SessionID: sess.ID,
			State:     sess.Snapshot(),
		})
	}
}

// postEvent applies one JSON event.
func (h showcaseHandler) postEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := ctxGetSession(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		ev, err := decodeEvent(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		result, err := sess.Dispatch(ev, h.store.Now())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, EventResponse{
			SessionID: sess.ID,
			Outcome:   result.Outcome,
			State:     result.Snapshot,
		})
	}
}

// endSession tears the caller's session down, restoring scroll.
func (h showcaseHandler) endSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := ctxGetSession(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.store.Delete(sess.ID); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.cookies.clearCookie(w)
		w.WriteHeader(http.StatusNoContent)
	}
}

func decodeEvent(r *http.Request) (showcase.Event, error) {
	var req EventRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return showcase.Event{}, errs.NewInvalidJSONError(err)
	}
	return toEvent(req)
}

func toEvent(req EventRequest) (showcase.Event, error) {
	eventType, err := showcase.ParseEventType(req.Type)
	if err != nil {
		return showcase.Event{}, err
	}
	return showcase.Event{Type: eventType, ProjectID: req.ProjectID}, nil
}
