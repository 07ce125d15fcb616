package store

import (
	"context"

	"github.com/MKhiriev/tootline/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/snapshot_repository_mock.go -package=mock

// SnapshotRepository stores the head of a timeline keyed by
// models.TimelineRef.Key().
type SnapshotRepository interface {
	// SaveSnapshot replaces the stored snapshot of timeline with statuses,
	// keeping their order.
	SaveSnapshot(ctx context.Context, timeline string, statuses []models.Status) error
	// LoadSnapshot returns the stored statuses in order, or an empty slice.
	LoadSnapshot(ctx context.Context, timeline string) ([]models.Status, error)
	DeleteSnapshot(ctx context.Context, timeline string) error
}
