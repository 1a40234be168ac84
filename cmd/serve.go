package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/kubev2v/dequeue/internal/config"
	"github.com/kubev2v/dequeue/internal/handlers"
	"github.com/kubev2v/dequeue/internal/server"
	"github.com/kubev2v/dequeue/internal/services"
	"github.com/kubev2v/dequeue/pkg/collection"
)

func NewServeCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a work queue of jobs over HTTP",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			setupViper(envPrefix)
			cobraflags.PresetRequiredFlags(envPrefix, make(map[*pflag.Flag]bool), cmd)
			return validateServeConfiguration(cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}

	registerQueueFlags(cmd.Flags(), cfg)
	cmd.Flags().IntVar(&cfg.Queue.HistorySize, "history-size", cfg.Queue.HistorySize, "Number of consumed job results kept")
	cmd.Flags().IntVar(&cfg.Server.HTTPPort, "server-http-port", cfg.Server.HTTPPort, "HTTP port")
	cmd.Flags().StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "Server mode: dev (HTTP) or prod (HTTPS)")
	cmd.Flags().DurationVar(&cfg.Server.ShutdownTimeout, "server-shutdown-timeout", cfg.Server.ShutdownTimeout, "Time allowed for in-flight requests on shutdown")
	cmd.Flags().BoolVar(&cfg.Auth.Enabled, "authentication-enabled", cfg.Auth.Enabled, "Require a JWT bearer token on every request")
	cmd.Flags().StringVar(&cfg.Auth.JWTFilePath, "authentication-jwt-filepath", cfg.Auth.JWTFilePath, "Path to the HS256 signing key")

	return cmd
}

// serve runs the API server until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, cfg *config.Configuration) error {
	log := zap.S().Named("serve")

	mode, err := collection.ParseMode(cfg.Queue.Mode)
	if err != nil {
		return err
	}

	h := handlers.New(services.NewQueueService(mode, cfg.Queue.HistorySize))

	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		handlers.RegisterHandlers(router, h)
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	log.Infow("server started", "port", cfg.Server.HTTPPort, "configuration", cfg.DebugMap())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	srv.Stop(shutdownCtx)

	return nil
}
