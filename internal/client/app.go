// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/tootline/internal/config"
	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/internal/service"
)

// ErrNoUI is returned by NewApp when no front end is supplied.
var ErrNoUI = errors.New("client: ui is required")

// App owns the process lifecycle: it starts the snapshot job, runs the UI
// and flushes snapshots and storage on exit.
type App struct {
	services *service.Services
	ui       UI
	closer   io.Closer
	cfg      config.Workers
	logger   *logger.Logger
}

// NewApp creates an App. closer, usually the local storages, is closed after
// the UI exits and may be nil.
func NewApp(services *service.Services, ui UI, closer io.Closer, cfg config.Workers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client: services are required")
	}
	if ui == nil {
		return nil, ErrNoUI
	}
	if log == nil {
		log = logger.Nop()
	}
	if cfg.SnapshotInterval <= 0 {
		cfg.SnapshotInterval = config.DefaultSnapshotInterval
	}

	return &App{
		services: services,
		ui:       ui,
		closer:   closer,
		cfg:      cfg,
		logger:   log.WithComponent("app"),
	}, nil
}

// Run blocks until the UI exits or the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) (err error) {
	if job := a.services.SnapshotJob; job != nil {
		job.Start(ctx, a.cfg.SnapshotInterval)
		defer func() {
			job.Stop()
			if saveErr := job.SaveAll(context.Background()); saveErr != nil {
				a.logger.Warn().Err(saveErr).Msg("final snapshot save failed")
			}
		}()
	}

	defer func() {
		if a.closer == nil {
			return
		}
		if closeErr := a.closer.Close(); closeErr != nil {
			a.logger.Err(closeErr).Msg("closing storages")
			err = errors.Join(err, closeErr)
		}
	}()

	a.logger.Info().Msg("ui started")
	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	a.logger.Info().Msg("ui stopped")

	return nil
}
