package services

import (
	"sync"

	"github.com/edwingeng/deque"

	"github.com/kubev2v/dequeue/internal/models"
)

// History keeps the most recent consumed job results, oldest first. Once
// capacity is reached the oldest result is dropped for every new one.
type History struct {
	// mu protects results, because deque is not thread-safe.
	mu       sync.Mutex
	results  deque.Deque
	capacity int
}

func NewHistory(capacity int) *History {
	return &History{
		results:  deque.NewDeque(),
		capacity: capacity,
	}
}

func (h *History) Record(results ...models.JobResult) {
	if h.capacity <= 0 {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, r := range results {
		h.results.PushBack(r)
		for h.results.Len() > h.capacity {
			h.results.PopFront()
		}
	}
}

// List returns the recorded results, oldest first.
func (h *History) List() []models.JobResult {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.results.Empty() {
		return []models.JobResult{}
	}

	// the deque has no random access; drain it and push everything back
	elems := h.results.PopManyFront(h.results.Len())
	list := make([]models.JobResult, 0, len(elems))
	for _, e := range elems {
		h.results.PushBack(e)
		list = append(list, e.(models.JobResult))
	}
	return list
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.results.Len()
}
