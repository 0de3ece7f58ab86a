package pqueue

import (
	"cmp"
	"errors"
)

// Sentinel errors returned by the queue.
var (
	// ErrEmptyQueue indicates Pop or Peek on a queue with no items.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrBadCapacity indicates a negative preallocation size.
	ErrBadCapacity = errors.New("pqueue: capacity must be non-negative")
)

// Options configures a Queue.
type Options struct {
	Capacity int // number of entries to preallocate
}

// Option is a functional option for New.
type Option func(*Options)

// WithCapacity preallocates room for n entries. Panics if n < 0.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// DefaultOptions returns the defaults used by New.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}

// entry is one queued item with its priority and insertion sequence.
type entry[T any, P cmp.Ordered] struct {
	item T
	prio P
	seq  uint64
}

// entries implements heap.Interface ordered by (prio, seq).
type entries[T any, P cmp.Ordered] []entry[T, P]

func (h entries[T, P]) Len() int { return len(h) }

func (h entries[T, P]) Less(i, j int) bool {
	if c := cmp.Compare(h[i].prio, h[j].prio); c != 0 {
		return c < 0
	}

	return h[i].seq < h[j].seq
}

func (h entries[T, P]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entries[T, P]) Push(x any) { *h = append(*h, x.(entry[T, P])) }

func (h *entries[T, P]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T, P]{}
	*h = old[:n-1]

	return e
}
