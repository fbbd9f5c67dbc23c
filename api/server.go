package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-showcase/catalog"
	"github.com/rpupo63/portfolio-showcase/config"
	"github.com/rpupo63/portfolio-showcase/sessions"
)

// Dependencies are the long-lived pieces the HTTP layer renders from.
type Dependencies struct {
	Catalog *catalog.Catalog
	Site    catalog.Site
	Store   *sessions.Store
}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(settings config.Settings, deps Dependencies) (Server, error) {
	startupTime := time.Now()

	router, err := newRouter(deps, withSettings(settings), withStartupTime(startupTime))
	if err != nil {
		return Server{}, fmt.Errorf("failed to build router: %w", err)
	}

	server := &http.Server{
		Addr:         settings.Address(),
		Handler:      router,
		ReadTimeout:  settings.ReadTimeout,
		WriteTimeout: settings.WriteTimeout,
		IdleTimeout:  settings.IdleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	settings    config.Settings
	startupTime time.Time
}

func withSettings(s config.Settings) func(*router) {
	return func(r *router) {
		r.settings = s
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(deps Dependencies, opts ...func(*router)) (*chi.Mux, error) {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	rd, err := newRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	cookies := newSessionMiddleware(deps.Store, router.settings.CookieSecure, router.settings.SessionTTL)
	handlers := initializeHandlers(deps, rd, cookies, router)

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(RequestLogger)

	chiRouter.Get("/health", handlers.healthHandler.getHealth())
	setupAssetRoutes(chiRouter, router.settings.AssetsDir)
	setupPageRoutes(chiRouter, handlers, cookies)
	setupAPIRoutes(chiRouter, handlers, cookies, router.settings.AcceptedOrigins)

	return chiRouter, nil
}

// Start serves until the server is shut down. A graceful shutdown is not an
// error.
func (s Server) Start() error {
	log.Info().Msgf("Server started on: %s", s.Addr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}

// StartupTime reports when the server was built.
func (s Server) StartupTime() time.Time {
	return s.startupTime
}
