package runner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kubev2v/dequeue/internal/models"
	srvErrors "github.com/kubev2v/dequeue/pkg/errors"
)

// LoadJobs reads and validates a jobs file:
//
//	mode: filo
//	jobs:
//	  - name: build
//	    kind: exec
//	    command: make
//	    args: ["build"]
//	    timeout: 5m
func LoadJobs(path string) (models.JobsFile, error) {
	var file models.JobsFile

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file, srvErrors.NewJobsFileNotFoundError()
		}
		return file, fmt.Errorf("failed to read jobs file: %w", err)
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("failed to parse jobs file %s: %w", path, err)
	}

	for i := range file.Jobs {
		if err := Prepare(&file.Jobs[i]); err != nil {
			return file, fmt.Errorf("job #%d: %w", i+1, err)
		}
	}

	return file, nil
}
