package store

import (
	"database/sql"

	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
