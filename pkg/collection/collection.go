package collection

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	srvErrors "github.com/kubev2v/dequeue/pkg/errors"
)

// Collection is an ordered sequence read from the front (FIFO) or the back
// (FILO). Items are always stored in insertion order; the mode only decides
// which end Peek, Poll and Take use.
//
// Collection is not safe for concurrent use.
type Collection[T any] struct {
	items []T
	mode  Mode
}

// New creates a FIFO collection seeded with items.
func New[T any](items ...T) *Collection[T] {
	c := &Collection[T]{}
	return c.Add(items...)
}

// Add appends items at the tail in the given order.
func (c *Collection[T]) Add(items ...T) *Collection[T] {
	c.items = append(c.items, items...)
	return c
}

// AddSeq appends every value produced by seq.
func (c *Collection[T]) AddSeq(seq iter.Seq[T]) *Collection[T] {
	c.items = slices.AppendSeq(c.items, seq)
	return c
}

// Peek returns the item at the access end. ok is false when the collection is
// empty.
func (c *Collection[T]) Peek() (item T, ok bool) {
	i := c.mode.Head(len(c.items))
	if i < 0 {
		return item, false
	}
	return c.items[i], true
}

// Element is Peek that fails with EmptyCollectionError instead of returning ok.
func (c *Collection[T]) Element() (T, error) {
	item, ok := c.Peek()
	if !ok {
		return item, srvErrors.NewEmptyCollectionError()
	}
	return item, nil
}

// Poll removes and returns the item at the access end. ok is false when the
// collection is empty.
func (c *Collection[T]) Poll() (item T, ok bool) {
	taken := c.Take(1)
	if len(taken) == 0 {
		return item, false
	}
	return taken[0], true
}

// Remove is Poll that fails with EmptyCollectionError instead of returning ok.
func (c *Collection[T]) Remove() (T, error) {
	item, ok := c.Poll()
	if !ok {
		return item, srvErrors.NewEmptyCollectionError()
	}
	return item, nil
}

// Take removes up to n items from the access end and returns them in their
// original relative order. It returns nil when the collection is empty or
// n < 1.
func (c *Collection[T]) Take(n int) []T {
	start, end := c.mode.Span(len(c.items), n)
	if start == end {
		return nil
	}
	taken := slices.Clone(c.items[start:end])
	c.items = slices.Delete(c.items, start, end)
	return taken
}

func (c *Collection[T]) Clear() *Collection[T] {
	clear(c.items)
	c.items = c.items[:0]
	return c
}

func (c *Collection[T]) Size() int {
	return len(c.items)
}

// ToArray returns the live backing slice. It is not a copy: mutating it or
// mutating the collection while holding it is unsafe.
func (c *Collection[T]) ToArray() []T {
	return c.items
}

// SetMode switches the access end. Stored items are not reordered.
func (c *Collection[T]) SetMode(m Mode) *Collection[T] {
	c.mode = m
	return c
}

func (c *Collection[T]) Mode() Mode {
	return c.mode
}

// All returns an iterator that drains the collection, polling one item per
// step. Stopping early leaves the remaining items in place. Every range is a
// new drain of the current contents; consumed items are never replayed.
func (c *Collection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := c.Poll()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Format renders the items in backing order joined by a marker that points
// at the access end: " <- " for FIFO and " -> " for FILO.
func (c *Collection[T]) Format(fn func(T) string) string {
	if fn == nil {
		fn = func(item T) string { return fmt.Sprint(item) }
	}

	sep := " <- "
	if c.mode == FILO {
		sep = " -> "
	}

	parts := make([]string, 0, len(c.items))
	for _, item := range c.items {
		parts = append(parts, fn(item))
	}
	return strings.Join(parts, sep)
}

func (c *Collection[T]) String() string {
	return c.Format(nil)
}
