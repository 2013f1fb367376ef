// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container populated from every
// source. Struct tags drive caarlos0/env lookups.
type StructuredConfig struct {
	// API holds the REST backend location and request timeout.
	API API `envPrefix:"API_"`

	// App holds client application secrets.
	App App `envPrefix:"APP_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Metrics holds the optional Prometheus endpoint settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// API describes the REST backend.
type API struct {
	// URL is the base URL every endpoint path is appended to.
	// Env: API_URL
	URL string `env:"URL"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// App holds client application secrets.
type App struct {
	// SessionKey, when set, seals the persisted bearer token at rest.
	// Env: APP_SESSION_KEY
	SessionKey string `env:"SESSION_KEY"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB is the local SQLite session database.
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection string.
type DB struct {
	// DSN is the SQLite file path or DSN.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Metrics configures the optional Prometheus endpoint.
type Metrics struct {
	// Address is the host:port to serve /metrics on. Empty disables it.
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// Log configures log output.
type Log struct {
	// File is the log file path. Empty means next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Workers configures background jobs.
type Workers struct {
	// SessionCheckInterval is how often the stored token's expiry is checked.
	// Env: WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
}

// GetStructuredConfig loads and merges configuration from env, JSON file and
// the given command-line arguments.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON(args...).
		withFlags(args).
		build()
}
