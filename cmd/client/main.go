package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/tootline/internal/adapter"
	"github.com/MKhiriev/tootline/internal/client"
	"github.com/MKhiriev/tootline/internal/config"
	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/internal/service"
	"github.com/MKhiriev/tootline/internal/store"
	"github.com/MKhiriev/tootline/internal/tui"
	"github.com/MKhiriev/tootline/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("tootline", os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("tootline", cfg.Log.File)

	instance, err := adapter.NewHTTPInstanceAdapter(cfg.Instance, buildInfo.UserAgent(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create instance adapter")
	}

	var (
		snapshots store.SnapshotRepository
		closer    io.Closer
	)
	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Warn().Err(err).Msg("local cache unavailable, running without snapshots")
	} else {
		snapshots = storages.Snapshots
		closer = storages
	}

	services := service.NewServices(instance, snapshots, client.NewLiveChannelFactory(cfg.Instance, log), cfg.Timeline.PageSize, log)

	ui, err := tui.New(services, tui.Options{
		Start:     models.TimelineKind(cfg.Timeline.Default),
		Lookahead: cfg.Timeline.Lookahead,
		BuildInfo: buildInfo,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, closer, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
