package client

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/internal/service"
)

type App struct {
	sessions service.SessionService
	ui       UI
	workers  Workers
	logger   *logger.Logger
}

// NewApp returns the client runtime. workers may be nil.
func NewApp(sessions service.SessionService, ui UI, workers Workers, log *logger.Logger) (*App, error) {
	if sessions == nil {
		return nil, ErrNilSessions
	}
	if ui == nil {
		return nil, ErrNilUI
	}
	return &App{sessions: sessions, ui: ui, workers: workers, logger: log}, nil
}

// Run restores the session and runs the UI and the workers side by side.
// Leaving the UI stops the workers; a failing worker stops the UI and its
// error is returned.
func (a *App) Run(ctx context.Context) error {
	log := a.logger.With().Str("func", "App.Run").Logger()

	if err := a.sessions.Hydrate(ctx); err != nil {
		// the store is marked hydrated anyway, so pages resolve as anonymous
		log.Warn().Err(err).Msg("persisted session was not restored")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	if a.workers != nil {
		g.Go(func() error {
			if err := a.workers.Run(gctx); err != nil {
				return fmt.Errorf("background workers: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		return a.ui.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Msg("client stopped")
	return nil
}
