package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/gmc-client/internal/adapter"
	"github.com/MKhiriev/gmc-client/internal/cli"
	"github.com/MKhiriev/gmc-client/internal/config"
	"github.com/MKhiriev/gmc-client/internal/events"
	"github.com/MKhiriev/gmc-client/internal/logger"
	"github.com/MKhiriev/gmc-client/internal/service"
	"github.com/MKhiriev/gmc-client/internal/session"
	"github.com/MKhiriev/gmc-client/internal/store"
	"github.com/MKhiriev/gmc-client/internal/tui"
	"github.com/MKhiriev/gmc-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		return 2
	}

	log := logger.NewClientLogger("gmc-client", cfg.Log.File).WithLevel(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create local storage")
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("close local storage")
		}
	}()

	sessions := session.NewManager(storages.Session)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, sessions, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	bus := events.NewBus()
	services := service.NewClientServices(serverAdapter, sessions, bus)
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app := cli.NewApp(services, bus, tui.New(log), build, log)
	if err = app.Run(ctx, cfg.Args); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			return 2
		}
		log.Error().Err(err).Strs("args", cfg.Args).Msg("command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	return 0
}
