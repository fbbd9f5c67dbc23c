package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-showcase/catalog"
	"github.com/rpupo63/portfolio-showcase/errs"
	"github.com/rpupo63/portfolio-showcase/sessions"
	"github.com/rpupo63/portfolio-showcase/showcase"
)

type pageHandler struct {
	responder Responder
	logger    zerolog.Logger
	renderer  *renderer
	site      catalog.Site
	store     *sessions.Store
}

func newPageHandler(rd *renderer, site catalog.Site, store *sessions.Store) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		renderer:  rd,
		site:      site,
		store:     store,
	}
}

// renderPage renders the whole portfolio, including the modal if the session
// left it open.
func (h pageHandler) renderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := ctxGetSession(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteHTML(w, h.renderer, "page", newPageData(h.site, sess.View()))
	}
}

// postEvent applies one form-encoded event and answers with the modal
// fragment for HTMX to swap in.
func (h pageHandler) postEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := ctxGetSession(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed form body"))
			return
		}

		eventType, err := showcase.ParseEventType(r.FormValue("type"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		result, err := sess.Dispatch(showcase.Event{
			Type:      eventType,
			ProjectID: r.FormValue("projectId"),
		}, h.store.Now())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Debug().
			Str("sessionID", sess.ID).
			Str("event", string(eventType)).
			Str("outcome", string(result.Outcome)).
			Msg("showcase event")

		h.responder.WriteHTML(w, h.renderer, "modal", sess.View())
	}
}
