package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/tootline/internal/config"
	"github.com/MKhiriev/tootline/internal/logger"
)

// Storages groups the local repositories handed to the service layer.
type Storages struct {
	Snapshots SnapshotRepository

	db *DB
}

// NewStorages opens the SQLite file at cfg.DB.DSN, creating it when
// missing, applies pending migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Snapshots: NewSnapshotRepository(db, log),
		db:        db,
	}, nil
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
