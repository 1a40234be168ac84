package models

import (
	"time"
)

// JobKind selects how a job is executed.
type JobKind string

const (
	// JobKindExec runs a local process.
	JobKindExec JobKind = "exec"
	// JobKindHTTP issues a GET request and expects a 2xx answer.
	JobKindHTTP JobKind = "http"
	// JobKindSleep waits for Duration and fails when Fail is set.
	JobKindSleep JobKind = "sleep"
)

// Job describes one unit of work queued by the run and serve commands.
type Job struct {
	ID       string        `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name" validate:"required"`
	Kind     JobKind       `json:"kind" yaml:"kind" validate:"required,oneof=exec http sleep"`
	Command  string        `json:"command,omitempty" yaml:"command" validate:"required_if=Kind exec"`
	Args     []string      `json:"args,omitempty" yaml:"args"`
	URL      string        `json:"url,omitempty" yaml:"url" validate:"required_if=Kind http,omitempty,url"`
	Duration time.Duration `json:"duration,omitempty" yaml:"duration"`
	Timeout  time.Duration `json:"timeout,omitempty" yaml:"timeout"`
	Fail     bool          `json:"fail,omitempty" yaml:"fail"`
}

// JobResult is the outcome of a job. It is filled even when the job fails.
type JobResult struct {
	JobID     string
	Name      string
	Kind      JobKind
	Output    string
	ExitCode  int
	StartedAt time.Time
	Duration  time.Duration
	Error     string
}

func (r JobResult) Failed() bool {
	return r.Error != ""
}

// JobsFile is the document read by the run command.
type JobsFile struct {
	Mode string `yaml:"mode"`
	Jobs []Job  `yaml:"jobs"`
}
