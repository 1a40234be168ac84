package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/kubev2v/dequeue/internal/config"
	"github.com/kubev2v/dequeue/internal/models"
	"github.com/kubev2v/dequeue/internal/report"
	"github.com/kubev2v/dequeue/internal/runner"
	"github.com/kubev2v/dequeue/internal/services"
	"github.com/kubev2v/dequeue/pkg/collection"
	srvErrors "github.com/kubev2v/dequeue/pkg/errors"
)

func NewRunCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every job of a jobs file through a work queue",
		Example: `  dequeue run --jobs-file jobs.yaml
  dequeue run --jobs-file jobs.yaml --mode filo --batch-size 4 --report-file report.xlsx`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			setupViper(envPrefix)
			cobraflags.PresetRequiredFlags(envPrefix, make(map[*pflag.Flag]bool), cmd)
			return validateRunConfiguration(cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJobs(cmd.Context(), cfg, cmd.Flags().Changed("mode"), cmd.OutOrStdout())
		},
	}

	registerQueueFlags(cmd.Flags(), cfg)
	cmd.Flags().StringVar(&cfg.Run.JobsFile, "jobs-file", cfg.Run.JobsFile, "Path to the YAML jobs file")
	cmd.Flags().IntVar(&cfg.Run.BatchSize, "batch-size", cfg.Run.BatchSize, "Run jobs concurrently in batches of this size (0 runs them one at a time)")
	cmd.Flags().StringVar(&cfg.Run.ReportFile, "report-file", cfg.Run.ReportFile, "Write an xlsx report of the results to this path")

	return cmd
}

func registerQueueFlags(flags *pflag.FlagSet, cfg *config.Configuration) {
	flags.StringVar(&cfg.Queue.Mode, "mode", cfg.Queue.Mode, "Queue mode: fifo or filo")
}

// runJobs queues the jobs of the jobs file and drains the queue. The mode of
// the jobs file applies unless --mode was given.
func runJobs(ctx context.Context, cfg *config.Configuration, modeFlagSet bool, out io.Writer) error {
	log := zap.S().Named("run")

	file, err := runner.LoadJobs(cfg.Run.JobsFile)
	if err != nil {
		return err
	}

	modeName := cfg.Queue.Mode
	if !modeFlagSet && file.Mode != "" {
		modeName = file.Mode
	}
	mode, err := collection.ParseMode(modeName)
	if err != nil {
		return err
	}

	queueSrv := services.NewQueueService(mode, len(file.Jobs))
	for _, job := range file.Jobs {
		if _, err := queueSrv.Add(job); err != nil {
			return err
		}
	}

	log.Infow("running jobs", "count", len(file.Jobs), "mode", mode, "batch_size", cfg.Run.BatchSize)

	if err := queueSrv.Drain(ctx, cfg.Run.BatchSize, func(r models.JobResult) {
		report.Print(out, r)
	}); err != nil {
		return fmt.Errorf("run interrupted: %w", err)
	}

	results := queueSrv.History()
	if cfg.Run.ReportFile != "" {
		if err := report.WriteXLSX(cfg.Run.ReportFile, results); err != nil {
			return err
		}
		log.Infow("report written", "path", cfg.Run.ReportFile)
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return srvErrors.NewJobFailedError(failed, len(results))
	}

	log.Infow("all jobs succeeded", "count", len(results))
	return nil
}
