package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pro-network/internal/config"
	"github.com/MKhiriev/go-pro-network/internal/crypto"
	"github.com/MKhiriev/go-pro-network/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// SessionRepository keeps the durable {user, token} record.
	SessionRepository SessionRepository
	// Preferences keeps client-side settings such as the feed categories.
	Preferences PreferenceRepository

	db *DB
}

// NewClientStorages opens the SQLite session database, applies migrations and
// wires the session repository. When cfg.SessionKey is set the persisted
// token is sealed with it.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	sealer := crypto.NewPlainSealer()
	if cfg.SessionKey != "" {
		if sealer, err = crypto.NewTokenSealer(cfg.SessionKey); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("token sealer: %w", err)
		}
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, sealer, log),
		Preferences:       NewPreferenceRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
