package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/geekshop-api/internal/config"
	"github.com/phrazzld/geekshop-api/internal/platform/logger"
)

// setupAppLogger configures the process-wide JSON logger from the server config.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return l, nil
}
