package workqueue

import (
	"context"
	"slices"

	srvErrors "github.com/kubev2v/dequeue/pkg/errors"
)

// Func is deferred work. It receives the context of the call that triggered
// the evaluation and the arguments bound when the item was queued.
type Func[T any] func(ctx context.Context, args ...any) (T, error)

// WorkItem is a queued, not yet evaluated unit of work.
type WorkItem[T any] struct {
	fn   Func[T]
	args []any
}

func NewWorkItem[T any](fn Func[T], args ...any) WorkItem[T] {
	return WorkItem[T]{fn: fn, args: args}
}

// Args returns a copy of the bound arguments.
func (w WorkItem[T]) Args() []any {
	return slices.Clone(w.args)
}

// Call evaluates the item. A panic in the function is returned as an
// EvaluationPanicError.
func (w WorkItem[T]) Call(ctx context.Context) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			value = zero
			err = srvErrors.NewEvaluationPanicError(r)
		}
	}()
	return w.fn(ctx, w.args...)
}

// Result is the outcome of one evaluated item.
type Result[T any] struct {
	Data T
	Err  error
}
