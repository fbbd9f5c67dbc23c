package sessions

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Janitor periodically sweeps idle sessions out of a Store.
type Janitor struct {
	store    *Store
	interval time.Duration
	logger   zerolog.Logger
}

// NewJanitor creates a sweeper. A non-positive interval defaults to one minute.
func NewJanitor(store *Store, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Janitor{
		store:    store,
		interval: interval,
		logger:   log.With().Str("component", "janitor").Logger(),
	}
}

// Run sweeps until ctx is cancelled. It always returns nil so it can sit in an
// errgroup next to the server.
func (j *Janitor) Run(ctx context.Context) error {
	j.logger.Info().Dur("interval", j.interval).Msg("session janitor started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor stopped")
			return nil
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *Janitor) sweep() {
	removed := j.store.Sweep(j.store.Now())
	if removed == 0 {
		j.logger.Debug().Int("live", j.store.Len()).Msg("no idle sessions")
		return
	}
	j.logger.Info().
		Int("removed", removed).
		Int("live", j.store.Len()).
		Msg("idle sessions swept")
}
