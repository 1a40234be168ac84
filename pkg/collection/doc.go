// Package collection provides an ordered, double-ended collection that is read
// either as a queue (FIFO) or as a stack (FILO).
//
// Items keep their insertion order no matter the mode; the mode only selects
// the access end:
//
//	items:  [1 2 3 4 5]
//	FIFO:    ^ head        Peek/Poll use index 0
//	FILO:            ^ head Peek/Poll use index len-1
//
// Peek and Poll report an empty collection through their ok result. Element
// and Remove return errors.EmptyCollectionError instead.
//
// Mode.Span is the only place that maps a mode to indexes. The work queue in
// pkg/workqueue is built on top of Collection and relies on the same function
// for single and batch extraction.
package collection
