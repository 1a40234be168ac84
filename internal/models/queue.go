package models

import "github.com/kubev2v/dequeue/pkg/collection"

// QueueStatus is a snapshot of the served work queue.
type QueueStatus struct {
	Size        int
	Mode        collection.Mode
	HistorySize int
}
