package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-pro-network/internal/adapter"
	"github.com/MKhiriev/go-pro-network/internal/catalog"
	"github.com/MKhiriev/go-pro-network/internal/client"
	"github.com/MKhiriev/go-pro-network/internal/config"
	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/internal/metrics"
	"github.com/MKhiriev/go-pro-network/internal/service"
	"github.com/MKhiriev/go-pro-network/internal/session"
	"github.com/MKhiriev/go-pro-network/internal/store"
	"github.com/MKhiriev/go-pro-network/internal/tui"
	"github.com/MKhiriev/go-pro-network/internal/workers"
	"github.com/MKhiriev/go-pro-network/models"
)

const appRole = "pronet-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New(os.Stderr, appRole)
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// the terminal is taken by the UI from here on
	log = logger.NewClientLogger(appRole, cfg.LogFile)
	log.Info().
		Str("api", cfg.Adapter.HTTPAddress).
		Str("db", cfg.Storage.DB.DSN).
		Bool("sealed", cfg.Storage.SessionKey != "").
		Str("metrics", cfg.Metrics.Address).
		Msg("received configs")

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	sessions := service.NewClientSessionService(session.NewStore(), storages.SessionRepository, log)
	navigator := tui.NewNavigator()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	serverAdapter, err := adapter.NewHTTPServerAdapter(
		cfg.Adapter,
		sessions,
		service.EndSession(sessions, navigator, log),
		collector,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	content, err := catalog.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("load catalog")
	}

	services := service.NewClientServices(sessions, serverAdapter, storages, content, navigator, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services, navigator, buildInfo, log)

	jobs := []workers.Worker{workers.NewSessionWatchdog(services.Watchdog, cfg.Workers.SessionCheckInterval)}
	if cfg.Metrics.Address != "" {
		jobs = append(jobs, workers.NewMetricsServer(cfg.Metrics.Address, metrics.NewRouter(registry), log))
	}

	app, err := client.NewApp(sessions, ui, workers.NewWorkers(jobs...), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := app.Run(ctx)
	stop()

	if err = storages.Close(); err != nil {
		log.Err(err).Msg("close local storage")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("client run error")
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
