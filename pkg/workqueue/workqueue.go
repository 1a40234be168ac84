package workqueue

import (
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/kubev2v/dequeue/pkg/collection"
	srvErrors "github.com/kubev2v/dequeue/pkg/errors"
)

// slot holds the outcome of the entry currently at the head. done is closed
// once value and err are set; until then the evaluation is pending and other
// readers wait on it instead of evaluating again.
type slot[T any] struct {
	item  *WorkItem[T]
	done  chan struct{}
	value T
	err   error
}

func newSlot[T any](item *WorkItem[T]) *slot[T] {
	return &slot[T]{item: item, done: make(chan struct{})}
}

func (s *slot[T]) evaluate(ctx context.Context) {
	defer close(s.done)
	s.value, s.err = s.item.Call(ctx)
}

func (s *slot[T]) wait() (T, error) {
	<-s.done
	return s.value, s.err
}

type Option func(*options)

type options struct {
	mode collection.Mode
}

// WithMode sets the initial access mode. The default is FIFO.
func WithMode(m collection.Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WorkQueue is an ordered collection of deferred work. Reading the head
// evaluates it at most once: Peek and Element cache the outcome, Poll and
// Remove consume it.
//
// The cache holds a single outcome. Peeking a different head, e.g. after an
// Add under FILO, replaces it, and the previous entry is evaluated again when
// it is read later.
//
// WorkQueue is safe for concurrent use. Evaluations run outside the internal
// lock, so a slow item never blocks Add or Size. A head evaluated by Peek runs
// to completion even when the caller that triggered it is cancelled.
type WorkQueue[T any] struct {
	mu      sync.Mutex
	entries *collection.Collection[*WorkItem[T]]
	// head is the single cache slot. It is only used while head.item is the
	// entry at the access end.
	head *slot[T]
}

func New[T any](opts ...Option) *WorkQueue[T] {
	o := &options{mode: collection.FIFO}
	for _, opt := range opts {
		opt(o)
	}

	return &WorkQueue[T]{
		entries: collection.New[*WorkItem[T]]().SetMode(o.mode),
	}
}

// Add queues fn with its bound arguments. Nothing is evaluated.
func (q *WorkQueue[T]) Add(fn Func[T], args ...any) *WorkQueue[T] {
	return q.AddItem(NewWorkItem(fn, args...))
}

func (q *WorkQueue[T]) AddItem(items ...WorkItem[T]) *WorkQueue[T] {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, item := range items {
		q.entries.Add(&item)
	}
	return q
}

// Peek returns the outcome of the head entry without removing it. The first
// call evaluates the head and caches the value or failure; later calls return
// the cached outcome. ok is false when the queue is empty.
func (q *WorkQueue[T]) Peek(ctx context.Context) (value T, ok bool, err error) {
	q.mu.Lock()
	item, ok := q.entries.Peek()
	if !ok {
		q.mu.Unlock()
		return value, false, nil
	}

	s := q.head
	if s != nil && s.item == item {
		q.mu.Unlock()
		zap.S().Named("work_queue").Debug("head outcome served from cache")
		value, err = s.wait()
		return value, true, err
	}

	s = newSlot(item)
	q.head = s
	q.mu.Unlock()

	zap.S().Named("work_queue").Debugw("evaluating head", "mode", q.Mode())
	// the outcome is shared, so the caller's cancellation must not end up in it
	s.evaluate(context.WithoutCancel(ctx))

	value, err = s.wait()
	return value, true, err
}

// Element is Peek that fails with EmptyWorkQueueError on an empty queue.
func (q *WorkQueue[T]) Element(ctx context.Context) (T, error) {
	value, ok, err := q.Peek(ctx)
	if !ok {
		return value, srvErrors.NewEmptyWorkQueueError()
	}
	return value, err
}

// Poll removes the head entry and returns its outcome. A cached (or still
// pending) outcome is consumed as is; otherwise the entry is evaluated now and
// nothing is cached. ok is false when the queue is empty.
func (q *WorkQueue[T]) Poll(ctx context.Context) (value T, ok bool, err error) {
	q.mu.Lock()
	item, ok := q.entries.Poll()
	if !ok {
		q.mu.Unlock()
		return value, false, nil
	}

	s := q.head
	if s != nil && s.item == item {
		q.head = nil
		q.mu.Unlock()
		zap.S().Named("work_queue").Debug("consuming cached head outcome")
		value, err = s.wait()
		return value, true, err
	}
	q.mu.Unlock()

	value, err = item.Call(ctx)
	return value, true, err
}

// Remove is Poll that fails with EmptyWorkQueueError on an empty queue.
func (q *WorkQueue[T]) Remove(ctx context.Context) (T, error) {
	value, ok, err := q.Poll(ctx)
	if !ok {
		return value, srvErrors.NewEmptyWorkQueueError()
	}
	return value, err
}

// Batch removes up to n entries from the access end and evaluates them
// concurrently. Results are returned in the entries' original relative order.
//
// Batch ignores the head cache: if the head was already evaluated by Peek it
// is evaluated again here and the cached outcome is dropped.
func (q *WorkQueue[T]) Batch(ctx context.Context, n int) []Result[T] {
	q.mu.Lock()
	items := q.entries.Take(n)
	if q.head != nil && slices.Contains(items, q.head.item) {
		q.head = nil
	}
	q.mu.Unlock()

	results := make([]Result[T], len(items))
	if len(items) == 0 {
		return results
	}

	zap.S().Named("work_queue").Debugw("evaluating batch", "size", len(items))

	var wg conc.WaitGroup
	for i, item := range items {
		wg.Go(func() {
			v, err := item.Call(ctx)
			results[i] = Result[T]{Data: v, Err: err}
		})
	}
	wg.Wait()

	return results
}

// Clear drops every entry and the cached outcome.
func (q *WorkQueue[T]) Clear() *WorkQueue[T] {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries.Clear()
	q.head = nil
	return q
}

func (q *WorkQueue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.entries.Size()
}

// ToArray returns a copy of the queued items in insertion order.
func (q *WorkQueue[T]) ToArray() []WorkItem[T] {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := make([]WorkItem[T], 0, q.entries.Size())
	for _, item := range q.entries.ToArray() {
		items = append(items, *item)
	}
	return items
}

// SetMode switches the access end. Entries are not reordered.
func (q *WorkQueue[T]) SetMode(m collection.Mode) *WorkQueue[T] {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries.SetMode(m)
	return q
}

func (q *WorkQueue[T]) Mode() collection.Mode {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.entries.Mode()
}

// Next is one step of iteration: it polls the head. ok is false once the
// queue is drained.
func (q *WorkQueue[T]) Next(ctx context.Context) (T, bool, error) {
	return q.Poll(ctx)
}

// All returns an iterator draining the queue one Next at a time. A failure is
// yielded with the value returned next to it and ends the iteration; the
// entries behind it stay queued. Breaking out early leaves the remaining
// entries queued and unevaluated.
func (q *WorkQueue[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			value, ok, err := q.Next(ctx)
			if !ok {
				return
			}
			if !yield(value, err) || err != nil {
				return
			}
		}
	}
}
