package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/adp/pqueue"
)

// ExampleQueue drains a queue; "b" and "c" share a priority and keep their
// push order.
func ExampleQueue() {
	q := pqueue.New[string, int64]()
	q.Push("d", 7)
	q.Push("b", 2)
	q.Push("c", 2)
	q.Push("a", 1)

	for !q.IsEmpty() {
		item, prio, _ := q.Pop()
		fmt.Println(item, prio)
	}
	_, _, err := q.Pop()
	fmt.Println(err)
	// Output:
	// a 1
	// b 2
	// c 2
	// d 7
	// pqueue: queue is empty
}
