// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pro-network/internal/crypto"
	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/models"
)

type sessionRepository struct {
	db     *DB
	sealer crypto.TokenSealer
	logger *logger.Logger
}

// NewSessionRepository returns a SQLite-backed [SessionRepository]. The token
// passes through sealer on its way in and out of the database.
func NewSessionRepository(db *DB, sealer crypto.TokenSealer, log *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, sealer: sealer, logger: log}
}

func (r *sessionRepository) Load(ctx context.Context, namespace string) (models.PersistedSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadSessionQuery(namespace)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Load").Msg("error building query")
		return models.PersistedSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		record   models.PersistedSession
		userJSON sql.NullString
		sealed   string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&record.Namespace, &userJSON, &sealed, &record.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PersistedSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Load").Msg("error scanning session row")
		return models.PersistedSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if sealed != "" {
		token, openErr := r.sealer.Open(sealed)
		if openErr != nil {
			log.Err(openErr).Str("func", "sessionRepository.Load").Msg("persisted token cannot be opened")
			return models.PersistedSession{}, fmt.Errorf("%w: %w", ErrCorruptedSession, openErr)
		}
		record.Session.Token = token
	}

	if userJSON.Valid && userJSON.String != "" {
		var user models.User
		if err = json.Unmarshal([]byte(userJSON.String), &user); err != nil {
			log.Err(err).Str("func", "sessionRepository.Load").Msg("persisted user cannot be decoded")
			return models.PersistedSession{}, fmt.Errorf("%w: %w", ErrCorruptedSession, err)
		}
		record.Session.User = &user
	}

	return record, nil
}

func (r *sessionRepository) Save(ctx context.Context, record models.PersistedSession) error {
	log := logger.FromContext(ctx)

	var userJSON *string
	if record.Session.User != nil && record.Session.Token != "" {
		raw, err := json.Marshal(record.Session.User)
		if err != nil {
			return fmt.Errorf("error encoding user: %w", err)
		}
		s := string(raw)
		userJSON = &s
	}

	var sealed string
	if record.Session.Token != "" {
		var err error
		if sealed, err = r.sealer.Seal(record.Session.Token); err != nil {
			log.Err(err).Str("func", "sessionRepository.Save").Msg("error sealing token")
			return fmt.Errorf("error sealing token: %w", err)
		}
	}

	updatedAt := record.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	query, args, err := buildSaveSessionQuery(record.Namespace, userJSON, sealed, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, namespace string) error {
	query, args, err := buildDeleteSessionQuery(namespace)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.Delete").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
