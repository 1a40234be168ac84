package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCollection matches any EmptyCollectionError with errors.Is.
	ErrEmptyCollection = NewEmptyCollectionError()
	// ErrEmptyWorkQueue matches any EmptyWorkQueueError with errors.Is.
	ErrEmptyWorkQueue = NewEmptyWorkQueueError()
)

// EmptyCollectionError indicates a required read on an empty collection.
type EmptyCollectionError struct{}

func NewEmptyCollectionError() *EmptyCollectionError {
	return &EmptyCollectionError{}
}

func (e *EmptyCollectionError) Error() string {
	return "collection is empty"
}

func (e *EmptyCollectionError) Is(target error) bool {
	_, ok := target.(*EmptyCollectionError)
	return ok
}

// IsEmptyCollectionError checks if the error is an EmptyCollectionError.
func IsEmptyCollectionError(err error) bool {
	var e *EmptyCollectionError
	return errors.As(err, &e)
}

// EmptyWorkQueueError indicates a required read on an empty work queue.
type EmptyWorkQueueError struct{}

func NewEmptyWorkQueueError() *EmptyWorkQueueError {
	return &EmptyWorkQueueError{}
}

func (e *EmptyWorkQueueError) Error() string {
	return "work queue is empty"
}

func (e *EmptyWorkQueueError) Is(target error) bool {
	_, ok := target.(*EmptyWorkQueueError)
	return ok
}

// IsEmptyWorkQueueError checks if the error is an EmptyWorkQueueError.
func IsEmptyWorkQueueError(err error) bool {
	var e *EmptyWorkQueueError
	return errors.As(err, &e)
}

// EvaluationPanicError wraps a panic raised by a work item.
type EvaluationPanicError struct {
	Value any
}

func NewEvaluationPanicError(v any) *EvaluationPanicError {
	return &EvaluationPanicError{Value: v}
}

func (e *EvaluationPanicError) Error() string {
	return fmt.Sprintf("work item panicked: %v", e.Value)
}

func IsEvaluationPanicError(err error) bool {
	var e *EvaluationPanicError
	return errors.As(err, &e)
}

// InvalidModeError indicates an unknown access mode.
type InvalidModeError struct {
	Mode string
}

func NewInvalidModeError(mode string) *InvalidModeError {
	return &InvalidModeError{Mode: mode}
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid mode %q: must be one of fifo, filo", e.Mode)
}

func IsInvalidModeError(err error) bool {
	var e *InvalidModeError
	return errors.As(err, &e)
}

// ResourceNotFoundError indicates a resource was not found.
type ResourceNotFoundError struct {
	Kind string
}

func NewResourceNotFoundError(kind string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Kind: kind}
}

func NewJobsFileNotFoundError() *ResourceNotFoundError {
	return NewResourceNotFoundError("jobs file")
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// JobFailedError reports how many jobs of a run failed.
type JobFailedError struct {
	Failed int
	Total  int
}

func NewJobFailedError(failed, total int) *JobFailedError {
	return &JobFailedError{Failed: failed, Total: total}
}

func (e *JobFailedError) Error() string {
	return fmt.Sprintf("%d of %d jobs failed", e.Failed, e.Total)
}

func IsJobFailedError(err error) bool {
	var e *JobFailedError
	return errors.As(err, &e)
}
