package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/portfolio-showcase/api"
	"github.com/rpupo63/portfolio-showcase/config"
	"github.com/rpupo63/portfolio-showcase/sessions"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	cmd := &cli.Command{
		Name:   "portfolio-showcase",
		Usage:  "Server-rendered portfolio with a per-visitor project showcase",
		Flags:  commonFlags(),
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the portfolio (default)",
				Action: serve,
			},
			{
				Name:  "catalog",
				Usage: "Inspect the project catalog",
				Commands: []*cli.Command{
					{
						Name:   "check",
						Usage:  "Load and validate the configured catalog, then print a summary",
						Action: checkCatalog,
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("application error")
		os.Exit(1)
	}
}

// commonFlags are declared on the root command and shared by every subcommand.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "catalog-source",
			Aliases: []string{"s"},
			Usage:   "Where projects come from: embedded, file or postgres",
			Value:   config.CatalogEmbedded,
			Sources: cli.EnvVars("CATALOG_SOURCE"),
		},
		&cli.StringFlag{
			Name:    "catalog-path",
			Aliases: []string{"c"},
			Usage:   "YAML catalog file for the file source",
			Sources: cli.EnvVars("CATALOG_PATH"),
		},
		&cli.StringFlag{
			Name:    "site-path",
			Usage:   "YAML file holding the site profile; the built-in profile when empty",
			Sources: cli.EnvVars("SITE_PATH"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "trace, debug, info, warn or error",
			Value:   "info",
			Sources: cli.EnvVars("LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "json or console",
			Value:   "json",
			Sources: cli.EnvVars("LOG_FORMAT"),
		},
	}
}

// loadSettings reads the environment and lets flags override it.
func loadSettings(cmd *cli.Command) (config.Settings, error) {
	settings := config.Load(config.New())
	settings.CatalogSource = cmd.String("catalog-source")
	settings.CatalogPath = cmd.String("catalog-path")
	settings.SitePath = cmd.String("site-path")
	settings.LogLevel = cmd.String("log-level")
	settings.LogFormat = cmd.String("log-format")

	if err := settings.Validate(); err != nil {
		return config.Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := setupLogging(settings); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

func setupLogging(settings config.Settings) error {
	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	if settings.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	log.Info().Str("source", settings.CatalogSource).Msg("Initializing app...")

	loaded, err := loadCatalog(ctx, settings)
	if err != nil {
		return err
	}
	defer loaded.Close()

	store := sessions.NewStore(loaded.Catalog, sessions.WithTTL(settings.SessionTTL))
	defer store.Shutdown()

	server, err := api.NewServer(settings, api.Dependencies{
		Catalog: loaded.Catalog,
		Site:    loaded.Site,
		Store:   store,
	})
	if err != nil {
		return fmt.Errorf("error initializing server: %w", err)
	}

	// Listen for interrupt signals to gracefully shutdown the server
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		return sessions.NewJanitor(store, settings.SessionSweepInterval).Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		server.ShutdownGracefully(settings.ShutdownTimeout)
		log.Info().Dur("uptime", time.Since(server.StartupTime())).Int("openSessions", store.Len()).Msg("Server stopped")
		return nil
	})

	return g.Wait()
}
