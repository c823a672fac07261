package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/device-event-logger/internal/adapter"
	"github.com/MKhiriev/device-event-logger/internal/client"
	"github.com/MKhiriev/device-event-logger/internal/config"
	"github.com/MKhiriev/device-event-logger/internal/logger"
	"github.com/MKhiriev/device-event-logger/internal/service"
	"github.com/MKhiriev/device-event-logger/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("device-event-logger")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("api_url", cfg.Adapter.APIURL).
		Str("device_id", cfg.Stream.DeviceID).
		Str("events_log", cfg.Log.EventsFile).
		Msg("received configs")

	cloudAdapter, err := adapter.NewHTTPCloudAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create cloud adapter")
	}

	eventStore, err := store.NewFileEventStore(cfg.Log.EventsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("open events log")
	}

	app, err := client.NewApp(service.NewServices(cloudAdapter, log), eventStore, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init listener app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = app.Run(ctx)
	stop()

	if closeErr := eventStore.Close(); closeErr != nil {
		log.Error().Err(closeErr).Msg("close events log")
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		os.Exit(1)
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
