package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pro-network/internal/logger"
)

type preferenceRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPreferenceRepository(db *DB, log *logger.Logger) PreferenceRepository {
	return &preferenceRepository{db: db, logger: log}
}

func (r *preferenceRepository) Load(ctx context.Context, key string) (string, error) {
	query, args, err := buildLoadPreferenceQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrPreferenceNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "preferenceRepository.Load").Str("key", key).Msg("error loading preference")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *preferenceRepository) Save(ctx context.Context, key, value string) error {
	query, args, err := buildSavePreferenceQuery(key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "preferenceRepository.Save").Str("key", key).Msg("error saving preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
