// Package errors provides custom error types for dequeue.
//
// Each error type includes a constructor, Error() method, and a type-checking
// helper using errors.As for proper error unwrapping.
//
// # Error Types Overview
//
//	┌──────────────────────────┬────────┬─────────────────────────────────────┐
//	│ Error Type               │ HTTP   │ Description                         │
//	├──────────────────────────┼────────┼─────────────────────────────────────┤
//	│ EmptyCollectionError     │ 404    │ Element/Remove on empty collection  │
//	│ EmptyWorkQueueError      │ 404    │ Element/Remove on empty work queue  │
//	│ EvaluationPanicError     │ 500    │ Work item panicked while evaluated  │
//	│ InvalidModeError         │ 400    │ Access mode is not fifo or filo     │
//	│ ResourceNotFoundError    │ 404    │ Requested resource doesn't exist    │
//	│ JobFailedError           │ -      │ A run finished with failed jobs     │
//	└──────────────────────────┴────────┴─────────────────────────────────────┘
//
// # Empty errors
//
// EmptyCollectionError and EmptyWorkQueueError are returned by the throwing
// read forms (Element, Remove). Callers tolerant of absence use Peek/Poll and
// check the ok marker instead.
//
// Both types implement Is, so any instance matches the package sentinels:
//
//	if errors.Is(err, srvErrors.ErrEmptyWorkQueue) {
//	    c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
//	}
//
// # EvaluationPanicError
//
// A panic inside a work item is recovered and delivered as an ordinary
// failure. It is cached and re-delivered like any other failure.
//
// Constructor:
//   - NewEvaluationPanicError(v any)
//
// # InvalidModeError
//
// Returned by collection.ParseMode and by mode updates over HTTP.
//
// Constructor:
//   - NewInvalidModeError(mode string)
//
// # JobFailedError
//
// Returned by the run command when at least one job failed. The process exits
// with a non-zero status.
//
// Constructor:
//   - NewJobFailedError(failed, total int)
//
// # Type Checking Pattern
//
// All error types provide Is* helper functions that use errors.As
// for proper error chain unwrapping:
//
//	wrapped := fmt.Errorf("peek failed: %w", errors.NewEmptyWorkQueueError())
//	errors.IsEmptyWorkQueueError(wrapped) // returns true
package errors
