package main

import (
	"fmt"

	"github.com/amirasaad/accounts/config"
	"github.com/amirasaad/accounts/infra/initializer"
	"github.com/amirasaad/accounts/webapi"
	log "github.com/charmbracelet/log"
)

// @title Account REST API Service
// @version 1.0
// @description CRUD microservice exposing Account records over HTTP
// @host localhost:8000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := initializer.SetupLogger(config.LogConfig{
		Format:     "text",
		Prefix:     "accounts",
		TimeFormat: "15:04:05",
	})

	cfg, err := config.LoadAppConfig(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Rebuild the logger with the configured level and format
	logger = initializer.SetupLogger(cfg.Log)

	deps, err := initializer.InitializeDependencies(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app := webapi.SetupApp(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Scheme,
	)

	return app.Listen(addr)
}
