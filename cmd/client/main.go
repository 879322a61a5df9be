package main

import (
	"context"
	"fmt"

	"github.com/nstepanov/lockbox/internal/adapter"
	"github.com/nstepanov/lockbox/internal/client"
	"github.com/nstepanov/lockbox/internal/config"
	"github.com/nstepanov/lockbox/internal/crypto"
	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/service"
	"github.com/nstepanov/lockbox/internal/store"
	"github.com/nstepanov/lockbox/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("lockbox-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	localStore, err := store.NewLocalStore(context.Background(), config.Cache{Path: cfg.Storage.CachePath}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if cerr := localStore.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("error closing local storage")
		}
	}()

	services := service.NewClientServices(localStore, serverAdapter, crypto.NewKeyForge())

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
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
