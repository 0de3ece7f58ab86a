// Package pqueue provides a generic binary min-heap priority queue.
//
// Items are ordered by priority ascending. Items pushed with equal
// priorities leave the queue in the order they were pushed, so the queue is
// stable and its behaviour is fully deterministic.
//
// Complexity:
//
//   - Push, Pop: O(log n)
//   - Peek, Len, IsEmpty: O(1)
//
// Errors (sentinel):
//
//   - ErrEmptyQueue: Pop or Peek on an empty queue.
//   - ErrBadCapacity: WithCapacity received a negative value (panics).
//
// A Queue is not safe for concurrent use.
package pqueue
