package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/kubev2v/dequeue/cmd"
	"github.com/kubev2v/dequeue/internal/config"
	srvErrors "github.com/kubev2v/dequeue/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.NewConfigurationWithOptionsAndDefaults()

	if err := cmd.NewRootCommand(cfg).ExecuteContext(ctx); err != nil {
		_ = zap.S().Sync()
		stop()
		if srvErrors.IsJobFailedError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
