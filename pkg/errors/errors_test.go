package errors_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/kubev2v/dequeue/pkg/errors"
)

var _ = Describe("Errors", func() {
	Context("empty errors", func() {
		// Given an empty error wrapped with context
		// When we check it against the sentinel and the helper
		// Then both match through the wrap
		It("should match wrapped EmptyWorkQueueError", func() {
			wrapped := fmt.Errorf("peek failed: %w", srvErrors.NewEmptyWorkQueueError())

			Expect(srvErrors.IsEmptyWorkQueueError(wrapped)).To(BeTrue())
			Expect(errors.Is(wrapped, srvErrors.ErrEmptyWorkQueue)).To(BeTrue())
			Expect(errors.Is(wrapped, srvErrors.ErrEmptyCollection)).To(BeFalse())
		})

		It("should match wrapped EmptyCollectionError", func() {
			wrapped := fmt.Errorf("remove failed: %w", srvErrors.NewEmptyCollectionError())

			Expect(srvErrors.IsEmptyCollectionError(wrapped)).To(BeTrue())
			Expect(errors.Is(wrapped, srvErrors.ErrEmptyCollection)).To(BeTrue())
			Expect(srvErrors.IsEmptyWorkQueueError(wrapped)).To(BeFalse())
		})

		It("should have distinct messages", func() {
			Expect(srvErrors.NewEmptyCollectionError().Error()).To(Equal("collection is empty"))
			Expect(srvErrors.NewEmptyWorkQueueError().Error()).To(Equal("work queue is empty"))
		})
	})

	Context("EvaluationPanicError", func() {
		It("should carry the panic value", func() {
			err := srvErrors.NewEvaluationPanicError("oops")
			Expect(err.Error()).To(ContainSubstring("oops"))
			Expect(srvErrors.IsEvaluationPanicError(err)).To(BeTrue())
		})
	})

	Context("InvalidModeError", func() {
		It("should name the rejected mode", func() {
			err := srvErrors.NewInvalidModeError("random")
			Expect(err.Error()).To(ContainSubstring(`"random"`))
			Expect(srvErrors.IsInvalidModeError(err)).To(BeTrue())
		})
	})

	Context("ResourceNotFoundError", func() {
		It("should describe the missing resource", func() {
			err := srvErrors.NewJobsFileNotFoundError()
			Expect(err.Error()).To(Equal("jobs file not found"))
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("JobFailedError", func() {
		It("should report failed and total counts", func() {
			err := srvErrors.NewJobFailedError(2, 5)
			Expect(err.Error()).To(Equal("2 of 5 jobs failed"))
			Expect(srvErrors.IsJobFailedError(fmt.Errorf("run: %w", err))).To(BeTrue())
		})
	})
})
