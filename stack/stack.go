package stack

import (
	"iter"
)

// Stack is a last-in-first-out stack. The zero value is an empty stack.
type Stack[T any] struct {
	head *node[T]
	size int
}

type node[T any] struct {
	value T
	next  *node[T]
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push puts element on top of the stack.
func (s *Stack[T]) Push(element T) {
	s.head = &node[T]{value: element, next: s.head}
	s.size++
}

// Pop removes the top element and returns it.
func (s *Stack[T]) Pop() (T, error) {
	if s.head == nil {
		tracer().Debugf("stack: pop on empty stack")
		var none T
		return none, ErrEmptyStack
	}
	n := s.head
	s.head = n.next
	s.size--
	return n.value, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.head == nil {
		var none T
		return none, ErrEmptyStack
	}
	return s.head.value, nil
}

// Size returns the number of elements on the stack.
func (s *Stack[T]) Size() int {
	return s.size
}

// IsEmpty is true for a stack without elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// All returns an iterator over the elements from top to bottom, without
// removing them.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
