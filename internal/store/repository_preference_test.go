package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pro-network/internal/config"
	"github.com/MKhiriev/go-pro-network/internal/logger"
)

func TestPreferenceRepository_LoadErrors(t *testing.T) {
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPreferenceRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop())

	m.ExpectQuery("SELECT value FROM preferences").
		WithArgs("feedPreferences").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	_, err = repo.Load(context.Background(), "feedPreferences")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)

	m.ExpectQuery("SELECT value FROM preferences").WillReturnError(errors.New("locked"))
	_, err = repo.Load(context.Background(), "feedPreferences")
	assert.ErrorIs(t, err, ErrExecutingQuery)

	assert.NoError(t, m.ExpectationsWereMet())
}

func TestPreferenceRepository_SQLiteUpsert(t *testing.T) {
	storages, err := NewClientStorages(config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "prefs.db")},
	}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	ctx := context.Background()
	repo := storages.Preferences

	require.NoError(t, repo.Save(ctx, "feedPreferences", `["web"]`))
	require.NoError(t, repo.Save(ctx, "feedPreferences", `["web","jobs"]`))

	got, err := repo.Load(ctx, "feedPreferences")
	require.NoError(t, err)
	assert.Equal(t, `["web","jobs"]`, got)
}
