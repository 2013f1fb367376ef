// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG":              "/path/to/config.json",
		"API_URL":             "https://api.example.com",
		"API_REQUEST_TIMEOUT": "30s",
		"APP_SESSION_KEY":     "secret",
		"STORAGE_DB_DSN":      "/tmp/session.db",
		"METRICS_ADDRESS":     "localhost:9100",
		"LOG_FILE":            "/tmp/client.log",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "https://api.example.com", cfg.API.URL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "secret", cfg.App.SessionKey)
	assert.Equal(t, "/tmp/session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9100", cfg.Metrics.Address)
	assert.Equal(t, "/tmp/client.log", cfg.Log.File)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"API_URL": "http://10.0.0.1:4000",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "http://10.0.0.1:4000", cfg.API.URL)
	assert.Zero(t, cfg.API.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"API_REQUEST_TIMEOUT": "not-a-duration",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
