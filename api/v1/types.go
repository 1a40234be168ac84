package v1

// Job is a job definition as sent and returned by the API. Durations use Go
// duration strings ("1s", "250ms").
type Job struct {
	Id       string   `json:"id,omitempty"`
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Command  string   `json:"command,omitempty"`
	Args     []string `json:"args,omitempty"`
	Url      string   `json:"url,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Timeout  string   `json:"timeout,omitempty"`
	Fail     bool     `json:"fail,omitempty"`
}

// JobList is the list of pending jobs.
type JobList struct {
	Jobs  []Job `json:"jobs"`
	Total int   `json:"total"`
}

// JobResult is the outcome of a job run.
type JobResult struct {
	JobId     string  `json:"jobId"`
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Output    string  `json:"output,omitempty"`
	ExitCode  int     `json:"exitCode"`
	StartedAt string  `json:"startedAt"`
	Duration  string  `json:"duration"`
	Error     *string `json:"error,omitempty"`
}

// JobResultList is returned by batch and history endpoints.
type JobResultList struct {
	Results []JobResult `json:"results"`
	Total   int         `json:"total"`
}

// QueueStatus describes the served queue.
type QueueStatus struct {
	Size        int    `json:"size"`
	Mode        string `json:"mode"`
	HistorySize int    `json:"historySize"`
}

// QueueModeRequest changes the access mode.
type QueueModeRequest struct {
	Mode string `json:"mode"`
}
