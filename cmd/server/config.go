package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/geekshop-api/internal/config"
)

// loadAppConfig loads the application configuration from config.yaml in the
// working directory and GEEKSHOP_* environment variables.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("auth_required_for_writes", cfg.Auth.RequireForWrites))
	return cfg, nil
}
