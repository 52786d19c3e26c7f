package queue

import (
	"iter"

	"github.com/npillmayer/linked/maybe"
)

// Queue is a first-in-first-out queue. The zero value is an empty queue.
type Queue[T any] struct {
	head *node[T]
	tail *node[T] // last node of the chain headed by head, nil if empty
	size int
}

type node[T any] struct {
	value T
	next  *node[T]
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Add appends element at the end of the queue.
func (q *Queue[T]) Add(element T) {
	n := &node[T]{value: element}
	if q.head == nil {
		q.head, q.tail = n, n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.size++
}

// Poll removes the element at the front of the queue and returns it.
// For an empty queue Poll returns Nothing.
func (q *Queue[T]) Poll() maybe.Maybe[T] {
	if q.head == nil {
		tracer().Debugf("queue: poll on empty queue")
		return maybe.Nothing[T]()
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	return maybe.Just(n.value)
}

// Peek returns the element at the front of the queue without removing it.
func (q *Queue[T]) Peek() maybe.Maybe[T] {
	if q.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(q.head.value)
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int {
	return q.size
}

// IsEmpty is true if no elements are queued.
func (q *Queue[T]) IsEmpty() bool {
	return q.head == nil
}

// All returns an iterator over the queued elements, front to back, without
// removing them.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
