package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pro-network/internal/config"
	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/models"
)

func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	cfg := config.ClientStorage{
		DB:         config.ClientDB{DSN: filepath.Join(t.TempDir(), "nested", "session.db")},
		SessionKey: "local-secret",
	}

	storages, err := NewClientStorages(cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	ctx := context.Background()
	repo := storages.SessionRepository

	_, err = repo.Load(ctx, testNamespace)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	user := &models.User{ID: "u1", Email: "ada@example.com", Profile: &models.Profile{ID: "p1", Name: "Ada"}}
	require.NoError(t, repo.Save(ctx, models.PersistedSession{
		Namespace: testNamespace,
		Session:   models.Session{User: user, Token: "tok-1"},
	}))

	got, err := repo.Load(ctx, testNamespace)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.Session.Token)
	assert.Equal(t, user, got.Session.User)

	// the token column holds the sealed form only
	var raw string
	require.NoError(t, storages.db.QueryRowContext(ctx, "SELECT token FROM sessions").Scan(&raw))
	assert.NotEqual(t, "tok-1", raw)

	require.NoError(t, repo.Save(ctx, models.PersistedSession{Namespace: testNamespace}))
	got, err = repo.Load(ctx, testNamespace)
	require.NoError(t, err)
	assert.Equal(t, models.Session{}, got.Session)

	require.NoError(t, repo.Delete(ctx, testNamespace))
	_, err = repo.Load(ctx, testNamespace)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestClientStorages_WithoutSessionKey(t *testing.T) {
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "s.db")}}

	storages, err := NewClientStorages(cfg, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, storages.Close())
}
