package config

import (
	"fmt"
	"time"
)

// Defaults applied to fields left empty by every source.
const (
	DefaultAPIURL         = "http://localhost:4000"
	DefaultRequestTimeout = 15 * time.Second
	DefaultSessionDSN     = "pronet-session.db"
	DefaultSessionCheck   = time.Minute
)

// ClientAdapter holds settings of the REST transport.
type ClientAdapter struct {
	// HTTPAddress is the API base URL.
	HTTPAddress string
	// RequestTimeout is the per-request timeout.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// SessionKey seals the persisted token when non-empty.
	SessionKey string
}

// ClientMetrics holds the optional metrics endpoint address.
type ClientMetrics struct {
	Address string
}

// ClientWorkers holds background job settings.
type ClientWorkers struct {
	SessionCheckInterval time.Duration
}

// ClientConfig is the client view assembled from [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Metrics ClientMetrics
	Workers ClientWorkers
	LogFile string
}

// GetClientConfig builds, defaults and validates the client configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.API.URL,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:         ClientDB{DSN: cfg.Storage.DB.DSN},
			SessionKey: cfg.App.SessionKey,
		},
		Metrics: ClientMetrics{Address: cfg.Metrics.Address},
		Workers: ClientWorkers{SessionCheckInterval: cfg.Workers.SessionCheckInterval},
		LogFile: cfg.Log.File,
	}

	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = DefaultAPIURL
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = DefaultSessionDSN
	}
	if clientCfg.Workers.SessionCheckInterval == 0 {
		clientCfg.Workers.SessionCheckInterval = DefaultSessionCheck
	}

	return clientCfg
}
