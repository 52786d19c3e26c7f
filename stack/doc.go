/*
Package stack implements a LIFO stack of singly linked nodes.

In contrast to package queue, taking an element from an empty stack is an
error (ErrEmptyStack).

Stacks are not safe for concurrent use.
*/
package stack

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linked.stack'.
func tracer() tracing.Trace {
	return tracing.Select("linked.stack")
}

// ErrEmptyStack is returned when popping from or peeking into an empty stack.
var ErrEmptyStack = errors.New("stack is empty")
