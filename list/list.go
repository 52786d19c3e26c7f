package list

import (
	"fmt"
	"iter"
	"strings"
)

// List is a sequence of comparable values. The zero value is an empty list.
type List[T comparable] struct {
	head *node[T]
	size int
}

type node[T comparable] struct {
	value T
	next  *node[T]
}

// New creates an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Of creates a list containing elements, in the order given.
func Of[T comparable](elements ...T) *List[T] {
	l := &List[T]{}
	link := &l.head
	for _, e := range elements {
		*link = &node[T]{value: e}
		link = &(*link).next
	}
	l.size = len(elements)
	return l
}

// Add appends element at the end of the list.
func (l *List[T]) Add(element T) {
	link := l.link(l.size)
	*link = &node[T]{value: element}
	l.size++
	tracer().Debugf("list: appended %v, size = %d", element, l.size)
}

// AddAt inserts element at position index, shifting the element currently at
// that position and all subsequent ones back by one. Legal positions are
// 0 … Size(); AddAt(Size(), e) is equivalent to Add(e).
func (l *List[T]) AddAt(index int, element T) error {
	if index < 0 || index > l.size {
		return l.outOfRange("add", index)
	}
	link := l.link(index)
	*link = &node[T]{value: element, next: *link}
	l.size++
	tracer().Debugf("list: inserted %v at %d, size = %d", element, index, l.size)
	return nil
}

// Set replaces the element at position index.
func (l *List[T]) Set(index int, element T) error {
	if index < 0 || index >= l.size {
		return l.outOfRange("set", index)
	}
	(*l.link(index)).value = element
	return nil
}

// Get returns the element at position index. If index is out of range, the zero
// value of T is returned together with an error.
func (l *List[T]) Get(index int) (T, error) {
	if l.head == nil || index < 0 || index >= l.size {
		var none T
		return none, l.outOfRange("get", index)
	}
	return (*l.link(index)).value, nil
}

// Remove unlinks the element at position index and returns it.
func (l *List[T]) Remove(index int) (T, error) {
	if l.head == nil || index < 0 || index >= l.size {
		var none T
		return none, l.outOfRange("remove", index)
	}
	link := l.link(index)
	removed := *link
	*link = removed.next
	l.size--
	tracer().Debugf("list: removed %v at %d, size = %d", removed.value, index, l.size)
	return removed.value, nil
}

// Contains reports whether an element equal to element (==) is in the list.
func (l *List[T]) Contains(element T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == element {
			return true
		}
	}
	return false
}

// IsEmpty is true for a list without elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Size returns the number of elements.
func (l *List[T]) Size() int {
	return l.size
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.head = nil
	l.size = 0
}

// All returns an iterator over the elements, front to back.
// The list must not be modified while iterating.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements as a new slice.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// --- Helpers ---------------------------------------------------------------

// link returns the link pointing to the node at position index, i.e. either
// the list's head or the next-field of the predecessor. index must be in 0 … size.
func (l *List[T]) link(index int) **node[T] {
	link := &l.head
	for i := 0; i < index; i++ {
		link = &(*link).next
	}
	return link
}

func (l *List[T]) outOfRange(op string, index int) error {
	tracer().Debugf("list: %s at index %d rejected, size = %d", op, index, l.size)
	return fmt.Errorf("%w: %s at index %d, size %d", ErrIndexOutOfRange, op, index, l.size)
}
