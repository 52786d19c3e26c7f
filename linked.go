package linked

import (
	"iter"

	"github.com/npillmayer/linked/maybe"
)

// Sized is implemented by every container of this module.
type Sized interface {
	Size() int
	IsEmpty() bool
}

// SearchTree is an ordered set of values, kept in a binary search tree.
type SearchTree[T any] interface {
	Insert(T) bool // false if the value is already present
	Search(T) bool
	Size() int
	Height() int
	InOrderTraversal(func(T))
	All() iter.Seq[T]
}

// List is a sequence of values addressed by position.
//
// Indices are zero-based. Operations with an index outside the valid range
// return an error and leave the list untouched.
type List[T any] interface {
	Sized
	Add(T)
	AddAt(int, T) error
	Set(int, T) error
	Get(int) (T, error)
	Remove(int) (T, error)
	Contains(T) bool
	Clear()
	All() iter.Seq[T]
}

// Queue is a first-in-first-out container.
// Polling an empty queue is not an error; it yields Nothing.
type Queue[T any] interface {
	Sized
	Add(T)
	Poll() maybe.Maybe[T]
	Peek() maybe.Maybe[T]
}

// Stack is a last-in-first-out container.
// Popping an empty stack is an error, unlike polling an empty Queue.
type Stack[T any] interface {
	Sized
	Push(T)
	Pop() (T, error)
	Peek() (T, error)
}
