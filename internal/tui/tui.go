// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the bubbletea front end: a timeline screen with tabs,
// threads and modal overlays for composing, confirming and attaching media.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/internal/service"
	"github.com/MKhiriev/tootline/models"
)

// Options configures the timeline screen.
type Options struct {
	// Tabs cycled with tab. Defaults to DefaultTabs.
	Tabs []models.TimelineRef
	// Start is the kind of the tab shown first.
	Start models.TimelineKind
	// Lookahead is how close to the end the cursor gets before the next page
	// is requested.
	Lookahead int
	BuildInfo models.AppBuildInfo
}

func DefaultTabs() []models.TimelineRef {
	return []models.TimelineRef{
		{Kind: models.TimelineHome},
		{Kind: models.TimelineLocal},
		{Kind: models.TimelinePublic},
	}
}

type TUI struct {
	services *service.Services
	opts     Options
	logger   *logger.Logger
}

func New(services *service.Services, opts Options, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{services: services, opts: opts, logger: log.WithComponent("tui")}, nil
}

// Run shows the timeline screen until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	pumpCtx, stopPump := context.WithCancel(ctx)
	defer stopPump()
	go func() {
		for {
			select {
			case <-pumpCtx.Done():
				return
			case <-model.changes:
				program.Send(feedChangedMsg{})
			}
		}
	}()

	final, err := program.Run()
	if final, ok := final.(appModel); ok {
		final.closeViews()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Msg("tui stopped")
		return err
	}
	return nil
}
