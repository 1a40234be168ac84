// Package workqueue implements a FIFO/FILO queue of deferred work.
//
// Each entry is a WorkItem: a function plus the arguments bound to it when it
// was queued. Nothing runs on Add. An entry is evaluated when a read reaches
// it, and the queue keeps the outcome of the current head in a single cache
// slot:
//
//	             Peek/Element               Poll/Remove
//	NoCacheAtHead ───────────► Cached(value|err) ───────────► NoCacheAtHead (next head)
//	      │                                                          ▲
//	      └──────────────── Poll/Remove (evaluate, no cache) ────────┘
//
// Peek evaluates the head once and returns the same value or error on every
// following Peek. Poll removes the head and hands back the cached outcome
// without calling the function again. Concurrent readers of an unevaluated
// head share a single evaluation.
//
// Batch removes up to n entries from the access end and evaluates them
// concurrently; it does not use the cache, so a head already evaluated by Peek
// is evaluated a second time when it is part of a batch.
//
// Iteration is pull based. Next performs one step; All adapts it to a
// range-over-func iterator:
//
//	for v, err := range q.All(ctx) {
//	    if err != nil {
//	        return err // entries behind the failed one are still queued
//	    }
//	    use(v)
//	}
//
// The queue does not run anything in the background and does not bound
// concurrency; callers pick the batch size.
package workqueue
