package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidAdapterConfigs indicates an unusable API URL or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an unusable session database DSN
	// (in-memory databases cannot keep the session across restarts).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidMetricsConfigs indicates a malformed metrics address.
	ErrInvalidMetricsConfigs = errors.New("invalid metrics configuration")
	// ErrInvalidWorkersConfigs indicates a negative job interval.
	ErrInvalidWorkersConfigs = errors.New("invalid workers configuration")
)
