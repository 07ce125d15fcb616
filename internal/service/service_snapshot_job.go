package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/internal/store"
	"github.com/MKhiriev/tootline/internal/workers"
	"github.com/MKhiriev/tootline/models"
)

// SnapshotHead is the number of leading statuses stored per feed.
const SnapshotHead = 40

type snapshotJob struct {
	repo   store.SnapshotRepository
	logger *logger.Logger

	mu      sync.Mutex
	sources map[string]ItemsSource

	runMu   sync.Mutex
	workers *workers.Workers
}

// NewSnapshotJob creates a job that stores tracked feeds in repo. The job is
// idle until Start is called.
func NewSnapshotJob(repo store.SnapshotRepository, log *logger.Logger) SnapshotJob {
	if log == nil {
		log = logger.Nop()
	}
	return &snapshotJob{
		repo:    repo,
		logger:  log.WithComponent("snapshots"),
		sources: make(map[string]ItemsSource),
	}
}

func (j *snapshotJob) Track(key string, src ItemsSource) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.sources[key] = src
}

// Untrack stores the feed one last time before forgetting it.
func (j *snapshotJob) Untrack(key string) {
	j.mu.Lock()
	src, ok := j.sources[key]
	delete(j.sources, key)
	j.mu.Unlock()

	if ok {
		if err := j.save(context.Background(), key, src); err != nil {
			j.logger.Warn().Err(err).Str("timeline", key).Msg("final snapshot failed")
		}
	}
}

func (j *snapshotJob) SaveAll(ctx context.Context) error {
	j.mu.Lock()
	sources := maps.Clone(j.sources)
	j.mu.Unlock()

	var errs []error
	for _, key := range slices.Sorted(maps.Keys(sources)) {
		if err := j.save(ctx, key, sources[key]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (j *snapshotJob) save(ctx context.Context, key string, src ItemsSource) error {
	items := head(src.Items(), SnapshotHead)
	if len(items) == 0 {
		return nil
	}
	if err := j.repo.SaveSnapshot(ctx, key, items); err != nil {
		return fmt.Errorf("snapshot %s: %w", key, err)
	}
	return nil
}

func head(items []models.Status, n int) []models.Status {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// Start stops any previously running job and saves every interval until ctx
// is cancelled or Stop is called.
func (j *snapshotJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	ticker := workers.NewTicker("snapshots", interval, j.SaveAll, j.logger)
	ws := workers.New(ticker)

	j.runMu.Lock()
	j.workers = ws
	j.runMu.Unlock()

	ws.Start(ctx)
}

// Stop halts the periodic save and waits for it to finish. Safe to call when
// the job is not running.
func (j *snapshotJob) Stop() {
	j.runMu.Lock()
	ws := j.workers
	j.workers = nil
	j.runMu.Unlock()

	if ws != nil {
		ws.Stop()
	}
}
