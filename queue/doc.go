/*
Package queue implements a FIFO queue of singly linked nodes.

The queue keeps links to its first and its last node, making both Add and Poll
constant-time operations. Polling an empty queue is not an error, it results in
maybe.Nothing.

Queues are not safe for concurrent use.
*/
package queue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linked.queue'.
func tracer() tracing.Trace {
	return tracing.Select("linked.queue")
}
