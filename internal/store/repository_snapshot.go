// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/models"
	sq "github.com/Masterminds/squirrel"
)

const snapshotsTable = "timeline_snapshots"

type snapshotRepository struct {
	db     *DB
	qb     sq.StatementBuilderType
	now    func() time.Time
	logger *logger.Logger
}

func NewSnapshotRepository(db *DB, log *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		db:     db,
		qb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now:    time.Now,
		logger: log,
	}
}

// SaveSnapshot deletes the previous snapshot and inserts statuses in one
// transaction.
func (r *snapshotRepository) SaveSnapshot(ctx context.Context, timeline string, statuses []models.Status) error {
	deleteQuery, deleteArgs, err := r.qb.Delete(snapshotsTable).Where(sq.Eq{"timeline": timeline}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var insertQuery string
	var insertArgs []any
	if len(statuses) > 0 {
		savedAt := r.now().Unix()
		insert := r.qb.Insert(snapshotsTable).Columns("timeline", "position", "status_id", "payload", "saved_at")
		for i, s := range statuses {
			payload, err := json.Marshal(s)
			if err != nil {
				return fmt.Errorf("%w: status %s: %w", ErrEncodingPayload, s.ID, err)
			}
			insert = insert.Values(timeline, i, s.ID, string(payload), savedAt)
		}
		if insertQuery, insertArgs, err = insert.ToSql(); err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: delete snapshot: %w", ErrExecutingStatement, err)
	}
	if insertQuery != "" {
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: insert snapshot: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	r.logger.Debug().Str("timeline", timeline).Int("statuses", len(statuses)).Msg("snapshot saved")
	return nil
}

func (r *snapshotRepository) LoadSnapshot(ctx context.Context, timeline string) ([]models.Status, error) {
	query, args, err := r.qb.Select("payload").
		From(snapshotsTable).
		Where(sq.Eq{"timeline": timeline}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	statuses := make([]models.Status, 0)
	for rows.Next() {
		var payload string
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		var s models.Status
		if err = json.Unmarshal([]byte(payload), &s); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		statuses = append(statuses, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return statuses, nil
}

func (r *snapshotRepository) DeleteSnapshot(ctx context.Context, timeline string) error {
	query, args, err := r.qb.Delete(snapshotsTable).Where(sq.Eq{"timeline": timeline}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
