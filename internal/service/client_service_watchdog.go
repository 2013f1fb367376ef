package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/internal/session"
)

// DefaultWatchdogInterval is used when Start gets a non-positive interval.
const DefaultWatchdogInterval = time.Minute

type clientSessionWatchdog struct {
	sessions  SessionService
	navigator Navigator
	now       func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSessionWatchdog returns an idle watchdog. Once started it ends a
// session whose JWT has passed its expiry, the same way a 401 would, so the
// user is not left on a page whose next request is bound to fail.
func NewClientSessionWatchdog(sessions SessionService, navigator Navigator, log *logger.Logger) ClientSessionWatchdog {
	return &clientSessionWatchdog{sessions: sessions, navigator: navigator, now: time.Now, logger: log}
}

func (w *clientSessionWatchdog) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultWatchdogInterval
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.check(jobCtx)
			}
		}
	}()
}

func (w *clientSessionWatchdog) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *clientSessionWatchdog) check(ctx context.Context) {
	token := w.sessions.Token()
	if token == "" || !session.IsExpired(token, w.now()) {
		return
	}

	w.logger.Info().Str("func", "clientSessionWatchdog.check").Msg("token expired, ending session")
	if err := w.sessions.Logout(ctx); err != nil {
		w.logger.Err(err).Str("func", "clientSessionWatchdog.check").Msg("failed to persist cleared session")
	}
	w.navigator.RedirectToLogin()
}
