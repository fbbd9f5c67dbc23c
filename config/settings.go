package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Catalog sources.
const (
	CatalogEmbedded = "embedded"
	CatalogFile     = "file"
	CatalogPostgres = "postgres"
)

// Settings is the typed view of the environment the server runs with.
type Settings struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	AcceptedOrigins []string

	LogLevel  string
	LogFormat string

	CatalogSource      string
	CatalogPath        string
	SitePath           string
	DatabaseDSN        string
	DatabaseReplicaDSN string

	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	CookieSecure         bool

	AssetsDir string
}

// Load reads Settings from an env map as returned by New.
func Load(c map[string]string) Settings {
	return Settings{
		Port:            GetInt(c, "PORT", 8080),
		ReadTimeout:     time.Duration(GetInt(c, "READ_TIMEOUT_SECONDS", 15)) * time.Second,
		WriteTimeout:    time.Duration(GetInt(c, "WRITE_TIMEOUT_SECONDS", 15)) * time.Second,
		IdleTimeout:     time.Duration(GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second,
		ShutdownTimeout: time.Duration(GetInt(c, "SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		AcceptedOrigins: GetList(c, "ACCEPTED_ORIGINS", nil),

		LogLevel:  GetString(c, "LOG_LEVEL", "info"),
		LogFormat: GetString(c, "LOG_FORMAT", "json"),

		CatalogSource:      GetString(c, "CATALOG_SOURCE", CatalogEmbedded),
		CatalogPath:        GetString(c, "CATALOG_PATH", ""),
		SitePath:           GetString(c, "SITE_PATH", ""),
		DatabaseDSN:        GetString(c, "DATABASE_DSN", ""),
		DatabaseReplicaDSN: GetString(c, "DATABASE_REPLICA_DSN", ""),

		SessionTTL:           GetDuration(c, "SESSION_TTL", 30*time.Minute),
		SessionSweepInterval: GetDuration(c, "SESSION_SWEEP_INTERVAL", time.Minute),
		CookieSecure:         GetBool(c, "COOKIE_SECURE", false),

		AssetsDir: GetString(c, "ASSETS_DIR", ""),
	}
}

// Address is the listen address for the HTTP server.
func (s Settings) Address() string {
	return fmt.Sprintf("0.0.0.0:%d", s.Port)
}

func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&s.LogFormat, validation.In("json", "console")),
		validation.Field(&s.CatalogSource, validation.Required, validation.In(CatalogEmbedded, CatalogFile, CatalogPostgres)),
		validation.Field(&s.CatalogPath, validation.When(s.CatalogSource == CatalogFile, validation.Required)),
		validation.Field(&s.DatabaseDSN, validation.When(s.CatalogSource == CatalogPostgres, validation.Required)),
		validation.Field(&s.SessionTTL, validation.Min(time.Second)),
		validation.Field(&s.SessionSweepInterval, validation.Min(time.Second)),
	)
}
