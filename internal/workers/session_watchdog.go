package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pro-network/internal/service"
)

// SessionWatchdog runs a [service.ClientSessionWatchdog] as a worker.
type SessionWatchdog struct {
	watchdog service.ClientSessionWatchdog
	interval time.Duration
}

func NewSessionWatchdog(watchdog service.ClientSessionWatchdog, interval time.Duration) *SessionWatchdog {
	return &SessionWatchdog{watchdog: watchdog, interval: interval}
}

func (s *SessionWatchdog) Run(ctx context.Context) error {
	s.watchdog.Start(ctx, s.interval)
	<-ctx.Done()
	s.watchdog.Stop()
	return nil
}
