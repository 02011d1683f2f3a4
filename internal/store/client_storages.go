package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gmc-client/internal/config"
	"github.com/MKhiriev/gmc-client/internal/logger"
)

// ClientStorages groups the client-side storage. Currently it holds only the
// session key-value store.
type ClientStorages struct {
	// Session persists the session keys between runs.
	Session KeyValueStore

	db *DB
}

// NewClientStorages initialises the session store selected by
// cfg.Session.Backend:
//   - "memory": a process-local map;
//   - "file": a JSON file at cfg.Session.DSN;
//   - "sqlite": a SQLite database at cfg.Session.DSN, migrated on open.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("backend", cfg.Session.Backend).Msg("creating new storages...")

	switch cfg.Session.Backend {
	case "memory":
		return &ClientStorages{Session: NewMemoryStore()}, nil
	case "file":
		s, err := NewFileStore(cfg.Session.DSN)
		if err != nil {
			return nil, fmt.Errorf("file session store error: %w", err)
		}
		return &ClientStorages{Session: s}, nil
	case "sqlite":
		db, err := NewConnectSQLite(ctx, cfg.Session.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &ClientStorages{Session: NewSQLiteStore(db, logger), db: db}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Session.Backend)
	}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
