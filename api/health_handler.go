package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-showcase/catalog"
	"github.com/rpupo63/portfolio-showcase/sessions"
)

type healthHandler struct {
	responder   Responder
	startupTime time.Time
	catalog     *catalog.Catalog
	store       *sessions.Store
}

func newHealthHandler(startupTime time.Time, cat *catalog.Catalog, store *sessions.Store) healthHandler {
	return healthHandler{
		responder:   NewResponder(log.With().Str("handlerName", "healthHandler").Logger()),
		startupTime: startupTime,
		catalog:     cat,
		store:       store,
	}
}

func (h healthHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, HealthResponse{
			Status:   "ok",
			Uptime:   time.Since(h.startupTime).Round(time.Second).String(),
			Projects: h.catalog.Len(),
			Sessions: h.store.Len(),
		})
	}
}
