package pqueue

import (
	"cmp"
	"container/heap"
)

// Queue is a min-priority queue of T keyed by P.
// The zero value is an empty queue ready to use.
type Queue[T any, P cmp.Ordered] struct {
	h   entries[T, P]
	seq uint64
}

// New returns an empty queue.
func New[T any, P cmp.Ordered](opts ...Option) *Queue[T, P] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Queue[T, P]{h: make(entries[T, P], 0, cfg.Capacity)}
}

// Push adds item with the given priority.
func (q *Queue[T, P]) Push(item T, prio P) {
	heap.Push(&q.h, entry[T, P]{item: item, prio: prio, seq: q.seq})
	q.seq++
}

// Pop removes and returns the item with the smallest priority. Among equal
// priorities the earliest pushed item wins.
func (q *Queue[T, P]) Pop() (T, P, error) {
	if len(q.h) == 0 {
		var (
			item T
			prio P
		)
		return item, prio, ErrEmptyQueue
	}
	e := heap.Pop(&q.h).(entry[T, P])

	return e.item, e.prio, nil
}

// Peek returns the item Pop would return without removing it.
func (q *Queue[T, P]) Peek() (T, P, error) {
	if len(q.h) == 0 {
		var (
			item T
			prio P
		)
		return item, prio, ErrEmptyQueue
	}

	return q.h[0].item, q.h[0].prio, nil
}

// Len returns the number of queued items.
func (q *Queue[T, P]) Len() int { return len(q.h) }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T, P]) IsEmpty() bool { return len(q.h) == 0 }

// Reset drops every item and keeps the allocated storage.
func (q *Queue[T, P]) Reset() {
	clear(q.h)
	q.h = q.h[:0]
	q.seq = 0
}
