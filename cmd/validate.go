package cmd

import (
	"errors"
	"fmt"

	"github.com/kubev2v/dequeue/internal/config"
	"github.com/kubev2v/dequeue/internal/server"
	"github.com/kubev2v/dequeue/pkg/collection"
)

func validateConfiguration(cfg *config.Configuration) error {
	if _, err := collection.ParseMode(cfg.Queue.Mode); err != nil {
		return err
	}

	if cfg.Queue.HistorySize < 0 {
		return fmt.Errorf("invalid history-size %d: must not be negative", cfg.Queue.HistorySize)
	}

	return nil
}

func validateRunConfiguration(cfg *config.Configuration) error {
	if err := validateConfiguration(cfg); err != nil {
		return err
	}

	if cfg.Run.JobsFile == "" {
		return errors.New("jobs-file cannot be empty")
	}

	if cfg.Run.BatchSize < 0 {
		return fmt.Errorf("invalid batch-size %d: must not be negative", cfg.Run.BatchSize)
	}

	return nil
}

func validateServeConfiguration(cfg *config.Configuration) error {
	if err := validateConfiguration(cfg); err != nil {
		return err
	}

	switch cfg.Server.ServerMode {
	case server.DevServer, server.ProductionServer:
	default:
		return fmt.Errorf("invalid server mode %q: must be '%s' or '%s'", cfg.Server.ServerMode, server.DevServer, server.ProductionServer)
	}

	if cfg.Server.HTTPPort < 1 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http-port %d: must be between 1 and 65535", cfg.Server.HTTPPort)
	}

	if cfg.Auth.Enabled && cfg.Auth.JWTFilePath == "" {
		return errors.New("authentication-jwt-filepath must be set when authentication is enabled")
	}

	return nil
}
