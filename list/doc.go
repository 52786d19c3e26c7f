/*
Package list implements a positional list on top of a singly linked chain of nodes.

Elements are addressed by zero-based index. The list keeps a link to its first node
only, so every positional operation walks the chain up to the index in question, and
Add (which appends at the end) walks the whole chain.

    l := list.Of("a", "c")
    l.AddAt(1, "b")      // [a b c]
    l.Add("d")           // [a b c d]
    v, err := l.Get(4)   // err wraps ErrIndexOutOfRange

Lists are not safe for concurrent use.
*/
package list

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linked.list'.
func tracer() tracing.Trace {
	return tracing.Select("linked.list")
}

// ErrIndexOutOfRange is returned for operations addressing a position outside the list.
var ErrIndexOutOfRange = errors.New("list index out of range")
