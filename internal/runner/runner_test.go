package runner_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/dequeue/internal/models"
	"github.com/kubev2v/dequeue/internal/runner"
	srvErrors "github.com/kubev2v/dequeue/pkg/errors"
	"github.com/kubev2v/dequeue/pkg/workqueue"
)

var _ = Describe("Runner", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Context("Prepare", func() {
		It("should assign an ID to a valid job", func() {
			job := models.Job{Name: "nap", Kind: models.JobKindSleep}
			Expect(runner.Prepare(&job)).To(Succeed())
			Expect(job.ID).NotTo(BeEmpty())
		})

		It("should keep an existing ID", func() {
			job := models.Job{ID: "job-1", Name: "nap", Kind: models.JobKindSleep}
			Expect(runner.Prepare(&job)).To(Succeed())
			Expect(job.ID).To(Equal("job-1"))
		})

		DescribeTable("invalid jobs",
			func(job models.Job) {
				Expect(runner.Prepare(&job)).NotTo(Succeed())
			},
			Entry("missing name", models.Job{Kind: models.JobKindSleep}),
			Entry("unknown kind", models.Job{Name: "x", Kind: "ftp"}),
			Entry("exec without command", models.Job{Name: "x", Kind: models.JobKindExec}),
			Entry("http without url", models.Job{Name: "x", Kind: models.JobKindHTTP}),
			Entry("http with bad url", models.Job{Name: "x", Kind: models.JobKindHTTP, URL: "not a url"}),
		)
	})

	Context("Run", func() {
		It("should reject calls without a job argument", func() {
			_, err := runner.Run(ctx)
			Expect(err).To(HaveOccurred())

			_, err = runner.Run(ctx, "not a job")
			Expect(err).To(MatchError(ContainSubstring("unexpected job argument")))
		})

		It("should run a sleep job", func() {
			job := models.Job{ID: "1", Name: "nap", Kind: models.JobKindSleep, Duration: 10 * time.Millisecond}

			result, err := runner.Run(ctx, job)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.JobID).To(Equal("1"))
			Expect(result.Name).To(Equal("nap"))
			Expect(result.Duration).To(BeNumerically(">=", 10*time.Millisecond))
			Expect(result.Failed()).To(BeFalse())
		})

		// Given a job configured to fail
		// When it runs
		// Then the error is returned and the result still identifies the job
		It("should fill the result of a failing job", func() {
			job := models.Job{ID: "2", Name: "broken", Kind: models.JobKindSleep, Fail: true}

			result, err := runner.Run(ctx, job)
			Expect(err).To(HaveOccurred())
			Expect(result.JobID).To(Equal("2"))
			Expect(result.Failed()).To(BeTrue())
			Expect(result.Error).To(Equal(err.Error()))
		})

		It("should stop a job at its timeout", func() {
			job := models.Job{Name: "slow", Kind: models.JobKindSleep, Duration: time.Minute, Timeout: 20 * time.Millisecond}

			_, err := runner.Run(ctx, job)
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})

		It("should capture the output of a process", func() {
			job := models.Job{Name: "echo", Kind: models.JobKindExec, Command: "echo", Args: []string{"hello"}}

			result, err := runner.Run(ctx, job)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Output).To(Equal("hello"))
			Expect(result.ExitCode).To(BeZero())
		})

		It("should report the exit code of a failing process", func() {
			job := models.Job{Name: "exit", Kind: models.JobKindExec, Command: "sh", Args: []string{"-c", "exit 3"}}

			result, err := runner.Run(ctx, job)
			Expect(err).To(HaveOccurred())
			Expect(result.ExitCode).To(Equal(3))
		})

		Context("http", func() {
			var srv *httptest.Server

			BeforeEach(func() {
				srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					if r.URL.Path == "/fail" {
						w.WriteHeader(http.StatusServiceUnavailable)
						return
					}
					_, _ = w.Write([]byte("pong"))
				}))
			})

			AfterEach(func() {
				srv.Close()
			})

			It("should succeed on a 2xx answer", func() {
				job := models.Job{Name: "ping", Kind: models.JobKindHTTP, URL: srv.URL + "/ping"}

				result, err := runner.Run(ctx, job)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Output).To(Equal("pong"))
				Expect(result.ExitCode).To(Equal(http.StatusOK))
			})

			It("should fail on any other status", func() {
				job := models.Job{Name: "ping", Kind: models.JobKindHTTP, URL: srv.URL + "/fail"}

				result, err := runner.Run(ctx, job)
				Expect(err).To(MatchError(ContainSubstring("503")))
				Expect(result.ExitCode).To(Equal(http.StatusServiceUnavailable))
			})
		})
	})

	Context("NewWorkItem", func() {
		// Given jobs wrapped as work items
		// When they are queued
		// Then nothing runs until the queue reads them
		It("should defer the job until the queue evaluates it", func() {
			q := workqueue.New[models.JobResult]()
			q.AddItem(
				runner.NewWorkItem(models.Job{ID: "a", Name: "a", Kind: models.JobKindSleep}),
				runner.NewWorkItem(models.Job{ID: "b", Name: "b", Kind: models.JobKindSleep, Fail: true}),
			)
			Expect(q.Size()).To(Equal(2))

			result, err := q.Remove(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.JobID).To(Equal("a"))

			result, err = q.Remove(ctx)
			Expect(err).To(HaveOccurred())
			Expect(result.JobID).To(Equal("b"))
		})
	})

	Context("LoadJobs", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "runner-test-*")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			os.RemoveAll(dir)
		})

		It("should load and prepare jobs", func() {
			path := filepath.Join(dir, "jobs.yaml")
			content := `
mode: filo
jobs:
  - name: nap
    kind: sleep
    duration: 10ms
  - name: echo
    kind: exec
    command: echo
    args: ["hi"]
    timeout: 5s
`
			Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())

			file, err := runner.LoadJobs(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(file.Mode).To(Equal("filo"))
			Expect(file.Jobs).To(HaveLen(2))
			Expect(file.Jobs[0].Duration).To(Equal(10 * time.Millisecond))
			Expect(file.Jobs[1].Args).To(Equal([]string{"hi"}))
			Expect(file.Jobs[1].Timeout).To(Equal(5 * time.Second))
			Expect(file.Jobs[0].ID).NotTo(BeEmpty())
		})

		It("should return ResourceNotFoundError for a missing file", func() {
			_, err := runner.LoadJobs(filepath.Join(dir, "missing.yaml"))
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should reject invalid jobs", func() {
			path := filepath.Join(dir, "jobs.yaml")
			Expect(os.WriteFile(path, []byte("jobs:\n  - name: x\n    kind: exec\n"), 0o600)).To(Succeed())

			_, err := runner.LoadJobs(path)
			Expect(err).To(MatchError(ContainSubstring("job #1")))
		})
	})
})
