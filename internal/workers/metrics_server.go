package workers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-pro-network/internal/logger"
)

const metricsShutdownTimeout = 5 * time.Second

// MetricsServer serves the metrics router until its context ends.
type MetricsServer struct {
	server *http.Server

	mu    sync.Mutex
	addr  net.Addr
	ready chan struct{}

	logger *logger.Logger
}

// NewMetricsServer returns a server for handler on address. Nothing is bound
// before Run.
func NewMetricsServer(address string, handler http.Handler, log *logger.Logger) *MetricsServer {
	return &MetricsServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		ready:  make(chan struct{}),
		logger: log,
	}
}

func (m *MetricsServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", m.server.Addr)
	if err != nil {
		return fmt.Errorf("metrics server listen on %s: %w", m.server.Addr, err)
	}

	m.mu.Lock()
	m.addr = ln.Addr()
	close(m.ready)
	m.mu.Unlock()

	m.logger.Info().Str("address", ln.Addr().String()).Msg("Launching metrics server")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- m.server.Serve(ln)
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()

	if err = m.server.Shutdown(shutdownCtx); err != nil {
		m.logger.Err(err).Msg("metrics server shutdown")
	}
	<-serveErr

	m.logger.Info().Msg("metrics server stopped")
	return nil
}

// Ready is closed once the listener is bound.
func (m *MetricsServer) Ready() <-chan struct{} {
	return m.ready
}

// Addr returns the bound address, or nil before Ready.
func (m *MetricsServer) Addr() net.Addr {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addr
}
