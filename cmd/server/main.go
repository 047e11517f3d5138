package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-employee-keeper/internal/config"
	"github.com/MKhiriev/go-employee-keeper/internal/handler"
	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/internal/metrics"
	"github.com/MKhiriev/go-employee-keeper/internal/server"
	"github.com/MKhiriev/go-employee-keeper/internal/service"
	"github.com/MKhiriev/go-employee-keeper/internal/store"
	"github.com/MKhiriev/go-employee-keeper/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-employee-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("schema", cfg.Storage.DB.Name).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	// bootstrap failures are logged and counted, the server still starts
	if failed := store.Bootstrap(ctx, db, collector); failed > 0 {
		log.Warn().Int("failed_steps", failed).Msg("schema bootstrap incomplete")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, collector, metrics.Handler(registry), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, db)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
