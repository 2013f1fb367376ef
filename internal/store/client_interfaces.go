package store

import (
	"context"

	"github.com/MKhiriev/go-pro-network/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the single session record of the client.
type SessionRepository interface {
	// Load returns the record stored under namespace or
	// [ErrLocalSessionNotFound].
	Load(ctx context.Context, namespace string) (models.PersistedSession, error)

	// Save upserts the record. A cleared session is stored as an empty row.
	Save(ctx context.Context, record models.PersistedSession) error

	// Delete removes the record stored under namespace, if any.
	Delete(ctx context.Context, namespace string) error
}

// PreferenceRepository keeps small client-side settings as raw strings.
type PreferenceRepository interface {
	// Load returns the value stored under key or [ErrPreferenceNotFound].
	Load(ctx context.Context, key string) (string, error)

	// Save upserts value under key.
	Save(ctx context.Context, key, value string) error
}
