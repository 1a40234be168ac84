package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/dequeue/internal/models"
	"github.com/kubev2v/dequeue/internal/services"
	"github.com/kubev2v/dequeue/pkg/collection"
	srvErrors "github.com/kubev2v/dequeue/pkg/errors"
)

func sleepJob(name string, fail bool) models.Job {
	return models.Job{Name: name, Kind: models.JobKindSleep, Duration: time.Millisecond, Fail: fail}
}

var _ = Describe("QueueService", func() {
	var (
		ctx context.Context
		srv *services.QueueService
	)

	BeforeEach(func() {
		ctx = context.Background()
		srv = services.NewQueueService(collection.FIFO, 3)
	})

	Context("Add", func() {
		It("should queue a valid job with an ID", func() {
			job, err := srv.Add(sleepJob("a", false))
			Expect(err).NotTo(HaveOccurred())
			Expect(job.ID).NotTo(BeEmpty())

			Expect(srv.Status().Size).To(Equal(1))
			Expect(srv.List()).To(ConsistOf(job))
		})

		It("should reject an invalid job", func() {
			_, err := srv.Add(models.Job{Name: "x", Kind: models.JobKindExec})
			Expect(err).To(HaveOccurred())
			Expect(srv.Status().Size).To(BeZero())
		})
	})

	Context("empty queue", func() {
		It("should return EmptyWorkQueueError from Peek and Poll", func() {
			_, err := srv.Peek(ctx)
			Expect(srvErrors.IsEmptyWorkQueueError(err)).To(BeTrue())

			_, err = srv.Poll(ctx)
			Expect(srvErrors.IsEmptyWorkQueueError(err)).To(BeTrue())
		})
	})

	Context("Peek and Poll", func() {
		// Given a queued job
		// When we peek and then poll it
		// Then both return the result of the same run
		It("should return the peeked result on Poll", func() {
			_, err := srv.Add(sleepJob("a", false))
			Expect(err).NotTo(HaveOccurred())

			peeked, err := srv.Peek(ctx)
			Expect(err).NotTo(HaveOccurred())

			polled, err := srv.Poll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(polled.StartedAt).To(Equal(peeked.StartedAt))
			Expect(srv.Status().Size).To(BeZero())
		})

		// Given a slow job whose peeking caller goes away
		// When a later caller polls it
		// Then the job result is not the cancellation of the first caller
		It("should not record a peeking caller's cancellation", func() {
			// Arrange
			job := sleepJob("slow", false)
			job.Duration = 200 * time.Millisecond
			_, err := srv.Add(job)
			Expect(err).NotTo(HaveOccurred())

			peekCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
			defer cancel()

			// Act
			peeked, err := srv.Peek(peekCtx)
			Expect(err).NotTo(HaveOccurred())
			polled, err := srv.Poll(context.Background())

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(peeked.Error).To(BeEmpty())
			Expect(polled.Error).To(BeEmpty())
			Expect(srv.History()).To(HaveLen(1))
			Expect(srv.History()[0].Error).To(BeEmpty())
		})

		It("should report job failures in the result", func() {
			_, err := srv.Add(sleepJob("broken", true))
			Expect(err).NotTo(HaveOccurred())

			result, err := srv.Poll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Failed()).To(BeTrue())
			Expect(result.Name).To(Equal("broken"))
		})

		It("should follow the queue mode", func() {
			for _, name := range []string{"a", "b", "c"} {
				_, err := srv.Add(sleepJob(name, false))
				Expect(err).NotTo(HaveOccurred())
			}
			srv.SetMode(collection.FILO)
			Expect(srv.Status().Mode).To(Equal(collection.FILO))

			result, err := srv.Poll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Name).To(Equal("c"))
		})
	})

	Context("Batch", func() {
		It("should run up to size jobs and record them", func() {
			for _, name := range []string{"a", "b", "c"} {
				_, err := srv.Add(sleepJob(name, name == "b"))
				Expect(err).NotTo(HaveOccurred())
			}

			results := srv.Batch(ctx, 2)
			Expect(results).To(HaveLen(2))
			Expect(results[0].Name).To(Equal("a"))
			Expect(results[1].Failed()).To(BeTrue())

			Expect(srv.Status().Size).To(Equal(1))
			Expect(srv.History()).To(HaveLen(2))
		})

		It("should return nothing for an empty queue", func() {
			Expect(srv.Batch(ctx, 5)).To(BeEmpty())
		})
	})

	Context("Drain", func() {
		var names []string

		emit := func(r models.JobResult) {
			names = append(names, r.Name)
		}

		BeforeEach(func() {
			names = nil
			for _, name := range []string{"a", "b", "c", "d"} {
				_, err := srv.Add(sleepJob(name, name == "b"))
				Expect(err).NotTo(HaveOccurred())
			}
		})

		// Given four jobs where the second fails
		// When we drain one job at a time
		// Then every job runs in order and the failure does not stop the drain
		It("should run every job past failures", func() {
			// Act
			err := srv.Drain(ctx, 0, emit)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(Equal([]string{"a", "b", "c", "d"}))
			Expect(srv.Status().Size).To(BeZero())
			Expect(srv.History()).To(HaveLen(3))
		})

		It("should drain in batches following the mode", func() {
			srv.SetMode(collection.FILO)

			err := srv.Drain(ctx, 3, emit)

			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(Equal([]string{"b", "c", "d", "a"}))
		})

		It("should stop on a cancelled context", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			err := srv.Drain(cancelled, 0, emit)

			Expect(err).To(MatchError(context.Canceled))
			Expect(names).To(BeEmpty())
			Expect(srv.Status().Size).To(Equal(4))
		})
	})

	Context("Clear", func() {
		It("should drop pending jobs and keep the history", func() {
			for _, name := range []string{"a", "b"} {
				_, err := srv.Add(sleepJob(name, false))
				Expect(err).NotTo(HaveOccurred())
			}
			_, err := srv.Poll(ctx)
			Expect(err).NotTo(HaveOccurred())

			srv.Clear()

			Expect(srv.Status().Size).To(BeZero())
			Expect(srv.History()).To(HaveLen(1))
		})
	})
})

var _ = Describe("History", func() {
	It("should keep the most recent results up to capacity", func() {
		h := services.NewHistory(2)
		h.Record(models.JobResult{Name: "a"}, models.JobResult{Name: "b"}, models.JobResult{Name: "c"})

		list := h.List()
		Expect(list).To(HaveLen(2))
		Expect(list[0].Name).To(Equal("b"))
		Expect(list[1].Name).To(Equal("c"))

		// listing does not consume
		Expect(h.Len()).To(Equal(2))
	})

	It("should record nothing with zero capacity", func() {
		h := services.NewHistory(0)
		h.Record(models.JobResult{Name: "a"})
		Expect(h.List()).To(BeEmpty())
	})
})
