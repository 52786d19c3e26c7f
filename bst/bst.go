package bst

import (
	"iter"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/constraints"
)

// Tree is an unbalanced binary search tree holding unique values of type T.
// Use New or NewFunc to create one; the zero value has no ordering and is not usable.
type Tree[T any] struct {
	root     *node[T]
	size     int              // number of nodes, maintained by Insert
	cmp      func(a, b T) int // total order on T
	traceKey string           // empty for the package default
}

type node[T any] struct {
	value       T
	left, right *node[T]
}

// New creates an empty tree ordering its values by the natural order of T.
func New[T constraints.Ordered](opts ...Option) *Tree[T] {
	return NewFunc(natural[T], opts...)
}

// NewFunc creates an empty tree ordered by cmp. cmp(a, b) has to return a negative
// number if a < b, zero if a == b and a positive number if a > b.
func NewFunc[T any](cmp func(a, b T) int, opts ...Option) *Tree[T] {
	assertThat(cmp != nil, "tree needs a comparator")
	var o options
	for _, option := range opts {
		o = option(o)
	}
	return &Tree[T]{cmp: cmp, traceKey: o.traceKey}
}

// Option is a type to help initializing trees at creation time.
type Option func(options) options

type options struct {
	traceKey string
}

// Tracing is an option to let a tree trace to a key other than 'linked.bst'.
//
//     tree := bst.New[string](bst.Tracing("myapp.index"))
func Tracing(key string) Option {
	return func(o options) options {
		o.traceKey = key
		return o
	}
}

func (tree *Tree[T]) trace() tracing.Trace {
	if tree.traceKey == "" {
		return tracer()
	}
	return tracing.Select(tree.traceKey)
}

func natural[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// --- API -------------------------------------------------------------------

// Insert adds value to the tree. If an equal value is already present, the tree
// is left unchanged and Insert returns false.
func (tree *Tree[T]) Insert(value T) bool {
	assertThat(tree.cmp != nil, "tree has no comparator; create trees with New or NewFunc")
	slot := &tree.root // link to re-set once we hit an empty child
	for *slot != nil {
		c := tree.cmp(value, (*slot).value)
		switch {
		case c < 0:
			slot = &(*slot).left
		case c > 0:
			slot = &(*slot).right
		default:
			tree.trace().Debugf("insert: %v already present", value)
			return false
		}
	}
	*slot = &node[T]{value: value}
	tree.size++
	tree.trace().Debugf("insert: added %v as leaf, size = %d", value, tree.size)
	return true
}

// Search reports whether a value equal to value is contained in the tree.
func (tree *Tree[T]) Search(value T) bool {
	return tree.locate(value) != nil
}

func (tree *Tree[T]) locate(value T) *node[T] {
	if tree.cmp == nil {
		return nil
	}
	n := tree.root
	for n != nil {
		c := tree.cmp(value, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Size returns the number of values in the tree.
func (tree *Tree[T]) Size() int {
	return tree.size
}

// IsEmpty is true for a tree without values.
func (tree *Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the number of edges on the longest path from the root to a leaf.
// Empty trees and trees with a single node have height 0.
//
// Height is not cached, every call walks the complete tree.
func (tree *Tree[T]) Height() int {
	return max(0, tree.root.levels()-1)
}

// levels counts the nodes on the longest downward path starting at n.
func (n *node[T]) levels() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.levels(), n.right.levels())
}

// Min returns the smallest value of the tree, if any.
func (tree *Tree[T]) Min() (T, bool) {
	var none T
	if tree.root == nil {
		return none, false
	}
	n := tree.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the greatest value of the tree, if any.
func (tree *Tree[T]) Max() (T, bool) {
	var none T
	if tree.root == nil {
		return none, false
	}
	n := tree.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// InOrderTraversal calls visit for every value of the tree, in ascending order.
func (tree *Tree[T]) InOrderTraversal(visit func(T)) {
	tree.root.inOrder(func(v T) bool {
		visit(v)
		return true
	})
}

// All returns an iterator over the values of the tree in ascending order.
// Every range over the iterator walks the tree anew. The tree must not be
// modified while iterating.
func (tree *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		tree.root.inOrder(yield)
	}
}

// inOrder walks left subtree, n, right subtree. It returns false as soon as
// yield asks to stop.
func (n *node[T]) inOrder(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.left.inOrder(yield) && yield(n.value) && n.right.inOrder(yield)
}
