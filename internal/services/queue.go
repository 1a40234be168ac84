package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/kubev2v/dequeue/internal/models"
	"github.com/kubev2v/dequeue/internal/runner"
	"github.com/kubev2v/dequeue/pkg/collection"
	srvErrors "github.com/kubev2v/dequeue/pkg/errors"
	"github.com/kubev2v/dequeue/pkg/workqueue"
)

// QueueService serves one work queue of jobs. Job failures are reported in
// the returned results; errors are kept for an empty queue or an invalid job.
type QueueService struct {
	queue   *workqueue.WorkQueue[models.JobResult]
	history *History
}

func NewQueueService(mode collection.Mode, historySize int) *QueueService {
	return &QueueService{
		queue:   workqueue.New[models.JobResult](workqueue.WithMode(mode)),
		history: NewHistory(historySize),
	}
}

// Status returns the current size and mode of the queue.
func (s *QueueService) Status() models.QueueStatus {
	return models.QueueStatus{
		Size:        s.queue.Size(),
		Mode:        s.queue.Mode(),
		HistorySize: s.history.Len(),
	}
}

func (s *QueueService) SetMode(mode collection.Mode) {
	s.queue.SetMode(mode)
	zap.S().Named("queue_service").Infow("queue mode changed", "mode", mode)
}

// Clear drops every pending job. The history is kept.
func (s *QueueService) Clear() {
	s.queue.Clear()
	zap.S().Named("queue_service").Info("queue cleared")
}

// List returns the pending jobs in insertion order.
func (s *QueueService) List() []models.Job {
	items := s.queue.ToArray()
	jobs := make([]models.Job, 0, len(items))
	for _, item := range items {
		for _, arg := range item.Args() {
			if job, ok := arg.(models.Job); ok {
				jobs = append(jobs, job)
			}
		}
	}
	return jobs
}

// Add validates and queues a job. The stored job, with its ID, is returned.
func (s *QueueService) Add(job models.Job) (models.Job, error) {
	if err := runner.Prepare(&job); err != nil {
		return job, err
	}

	s.queue.AddItem(runner.NewWorkItem(job))
	zap.S().Named("queue_service").Debugw("job queued", "id", job.ID, "name", job.Name)

	return job, nil
}

// Peek runs the head job once and returns its result without removing it.
func (s *QueueService) Peek(ctx context.Context) (models.JobResult, error) {
	result, err := s.queue.Element(ctx)
	if srvErrors.IsEmptyWorkQueueError(err) {
		return result, err
	}
	return settle(result, err), nil
}

// Poll removes the head job and returns its result, reusing a result already
// produced by Peek.
func (s *QueueService) Poll(ctx context.Context) (models.JobResult, error) {
	result, err := s.queue.Remove(ctx)
	if srvErrors.IsEmptyWorkQueueError(err) {
		return result, err
	}

	result = settle(result, err)
	s.history.Record(result)
	return result, nil
}

// Batch removes up to size jobs and runs them concurrently.
func (s *QueueService) Batch(ctx context.Context, size int) []models.JobResult {
	outcomes := s.queue.Batch(ctx, size)

	results := make([]models.JobResult, 0, len(outcomes))
	for _, o := range outcomes {
		results = append(results, settle(o.Data, o.Err))
	}
	s.history.Record(results...)

	zap.S().Named("queue_service").Debugw("batch finished", "requested", size, "ran", len(results))
	return results
}

// History returns the consumed results, oldest first.
func (s *QueueService) History() []models.JobResult {
	return s.history.List()
}

// settle folds a job failure into its result.
func settle(result models.JobResult, err error) models.JobResult {
	if err != nil && result.Error == "" {
		result.Error = err.Error()
	}
	return result
}

// Drain runs every pending job in queue order and hands each result to emit.
// With size > 0 the jobs run in concurrent batches of up to size jobs,
// otherwise one at a time. A failing job does not stop the drain.
func (s *QueueService) Drain(ctx context.Context, size int, emit func(models.JobResult)) error {
	for s.queue.Size() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		if size > 0 {
			for _, result := range s.Batch(ctx, size) {
				emit(result)
			}
			continue
		}

		// iteration stops after a failed job; the outer loop resumes it
		for result, err := range s.queue.All(ctx) {
			result = settle(result, err)
			s.history.Record(result)
			emit(result)
		}
	}
	return nil
}
