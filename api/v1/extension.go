package v1

import (
	"fmt"
	"time"

	"github.com/kubev2v/dequeue/internal/models"
)

func (s *QueueStatus) FromModel(m models.QueueStatus) {
	s.Size = m.Size
	s.Mode = m.Mode.String()
	s.HistorySize = m.HistorySize
}

// NewJob converts a models.Job to an API Job.
func NewJob(job models.Job) Job {
	j := Job{
		Id:      job.ID,
		Name:    job.Name,
		Kind:    string(job.Kind),
		Command: job.Command,
		Args:    job.Args,
		Url:     job.URL,
		Fail:    job.Fail,
	}
	if job.Duration > 0 {
		j.Duration = job.Duration.String()
	}
	if job.Timeout > 0 {
		j.Timeout = job.Timeout.String()
	}
	return j
}

// ToModel converts an API Job to a models.Job.
func (j Job) ToModel() (models.Job, error) {
	job := models.Job{
		ID:      j.Id,
		Name:    j.Name,
		Kind:    models.JobKind(j.Kind),
		Command: j.Command,
		Args:    j.Args,
		URL:     j.Url,
		Fail:    j.Fail,
	}

	var err error
	if j.Duration != "" {
		if job.Duration, err = time.ParseDuration(j.Duration); err != nil {
			return job, fmt.Errorf("invalid duration %q: %w", j.Duration, err)
		}
	}
	if j.Timeout != "" {
		if job.Timeout, err = time.ParseDuration(j.Timeout); err != nil {
			return job, fmt.Errorf("invalid timeout %q: %w", j.Timeout, err)
		}
	}
	return job, nil
}

func NewJobList(jobs []models.Job) JobList {
	list := JobList{Jobs: make([]Job, 0, len(jobs)), Total: len(jobs)}
	for _, job := range jobs {
		list.Jobs = append(list.Jobs, NewJob(job))
	}
	return list
}

func NewJobResult(r models.JobResult) JobResult {
	result := JobResult{
		JobId:     r.JobID,
		Name:      r.Name,
		Kind:      string(r.Kind),
		Output:    r.Output,
		ExitCode:  r.ExitCode,
		StartedAt: r.StartedAt.UTC().Format(time.RFC3339Nano),
		Duration:  r.Duration.String(),
	}
	if r.Error != "" {
		msg := r.Error
		result.Error = &msg
	}
	return result
}

func NewJobResultList(results []models.JobResult) JobResultList {
	list := JobResultList{Results: make([]JobResult, 0, len(results)), Total: len(results)}
	for _, r := range results {
		list.Results = append(list.Results, NewJobResult(r))
	}
	return list
}
