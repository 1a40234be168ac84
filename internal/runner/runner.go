package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kubev2v/dequeue/internal/models"
	"github.com/kubev2v/dequeue/pkg/workqueue"
)

// maxOutput bounds the output kept for a single job.
const maxOutput = 4096

var (
	validate   = validator.New(validator.WithRequiredStructEnabled())
	httpClient = &http.Client{}

	errConfiguredToFail = errors.New("job configured to fail")
)

// Prepare validates a job definition and assigns an ID when it has none.
func Prepare(job *models.Job) error {
	if err := validate.Struct(job); err != nil {
		return fmt.Errorf("invalid job %q: %w", job.Name, err)
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	return nil
}

// NewWorkItem wraps a job as deferred work. The job is the item's only bound
// argument.
func NewWorkItem(job models.Job) workqueue.WorkItem[models.JobResult] {
	return workqueue.NewWorkItem(Run, job)
}

// Run executes the job bound as its single argument. The returned result
// always identifies the job and carries timings, also when err is not nil.
func Run(ctx context.Context, args ...any) (models.JobResult, error) {
	if len(args) != 1 {
		return models.JobResult{}, fmt.Errorf("expected one job argument, got %d", len(args))
	}
	job, ok := args[0].(models.Job)
	if !ok {
		return models.JobResult{}, fmt.Errorf("unexpected job argument of type %T", args[0])
	}

	if job.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, job.Timeout)
		defer cancel()
	}

	result := models.JobResult{
		JobID:     job.ID,
		Name:      job.Name,
		Kind:      job.Kind,
		StartedAt: time.Now(),
	}

	zap.S().Named("runner").Debugw("running job", "id", job.ID, "name", job.Name, "kind", job.Kind)

	var err error
	switch job.Kind {
	case models.JobKindExec:
		result.Output, result.ExitCode, err = runExec(ctx, job)
	case models.JobKindHTTP:
		result.Output, result.ExitCode, err = runHTTP(ctx, job)
	case models.JobKindSleep:
		err = runSleep(ctx, job)
	default:
		err = fmt.Errorf("unknown job kind %q", job.Kind)
	}
	result.Duration = time.Since(result.StartedAt)

	if err != nil {
		result.Error = err.Error()
		zap.S().Named("runner").Warnw("job failed", "id", job.ID, "name", job.Name, "error", err)
		return result, err
	}

	zap.S().Named("runner").Debugw("job succeeded", "id", job.ID, "name", job.Name, "duration", result.Duration)
	return result, nil
}

func runExec(ctx context.Context, job models.Job) (string, int, error) {
	cmd := exec.CommandContext(ctx, job.Command, job.Args...)
	out, err := cmd.CombinedOutput()

	code := -1
	if cmd.ProcessState != nil {
		code = cmd.ProcessState.ExitCode()
	}

	output := truncate(strings.TrimSpace(string(out)))
	if err != nil {
		return output, code, fmt.Errorf("command %q failed: %w", job.Command, err)
	}
	return output, code, nil
}

func runHTTP(ctx context.Context, job models.Job) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, job.URL, nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("request to %s failed: %w", job.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxOutput))
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	output := strings.TrimSpace(string(body))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return output, resp.StatusCode, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, job.URL)
	}
	return output, resp.StatusCode, nil
}

func runSleep(ctx context.Context, job models.Job) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(job.Duration):
	}

	if job.Fail {
		return errConfiguredToFail
	}
	return nil
}

func truncate(s string) string {
	if len(s) <= maxOutput {
		return s
	}
	return s[:maxOutput]
}
