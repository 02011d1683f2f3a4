// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/gmc-client/internal/logger"
)

// sqliteStore is the SQLite-backed implementation of [KeyValueStore]. Each
// key is one row of the "session" table created by the embedded migrations.
type sqliteStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteStore constructs a [KeyValueStore] on top of an already migrated
// database connection.
func NewSQLiteStore(db *DB, logger *logger.Logger) KeyValueStore {
	logger.Debug().Msg("creating sqlite session store")
	return &sqliteStore{
		db:     db,
		logger: logger,
	}
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectValueQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*sqliteStore.Get").Msg("error building query")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*sqliteStore.Get").Str("key", key).Msg("error reading value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := upsertValueQuery(key, value)
	if err != nil {
		log.Err(err).Str("func", "*sqliteStore.Set").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteStore.Set").Str("key", key).Msg("error writing value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteStore) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteValueQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*sqliteStore.Remove").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteStore.Remove").Str("key", key).Msg("error deleting value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
