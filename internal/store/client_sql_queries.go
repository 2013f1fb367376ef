// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionsTable    = "sessions"
	preferencesTable = "preferences"
)

func buildLoadSessionQuery(namespace string) (string, []any, error) {
	return sq.Select("namespace", "user_json", "token", "updated_at").
		From(sessionsTable).
		Where(sq.Eq{"namespace": namespace}).
		Limit(1).
		ToSql()
}

func buildSaveSessionQuery(namespace string, userJSON *string, token string, updatedAt time.Time) (string, []any, error) {
	return sq.Insert(sessionsTable).
		Columns("namespace", "user_json", "token", "updated_at").
		Values(namespace, userJSON, token, updatedAt).
		Suffix("ON CONFLICT(namespace) DO UPDATE SET " +
			"user_json = excluded.user_json, " +
			"token = excluded.token, " +
			"updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteSessionQuery(namespace string) (string, []any, error) {
	return sq.Delete(sessionsTable).
		Where(sq.Eq{"namespace": namespace}).
		ToSql()
}

func buildLoadPreferenceQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From(preferencesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildSavePreferenceQuery(key, value string, updatedAt time.Time) (string, []any, error) {
	return sq.Insert(preferencesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}
