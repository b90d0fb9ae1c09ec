package main

import (
	"github.com/sirupsen/logrus"

	"github.com/kaay-diunde/backend/internal/api"
	"github.com/kaay-diunde/backend/internal/catalog"
	"github.com/kaay-diunde/backend/internal/config"
	"github.com/kaay-diunde/backend/internal/engine"
)

func main() {
	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "search-api")

	entry.Info("Starting Storefront Search API Service")

	// 1. Config
	cfg := config.Load()

	// 2. Catalog collaborator
	client := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.RequestTimeout, entry)

	// 3. Engine (snapshot + search entry points)
	eng := engine.NewEngine(cfg, entry, client)
	eng.Start()
	defer eng.Stop()

	// 4. API Server
	server := api.NewServer(eng, entry)

	entry.Infof("Storefront Search API ready on %s", cfg.Server.ListenAddr)
	if err := server.Start(cfg.Server.ListenAddr); err != nil {
		entry.Fatal(err)
	}
}
