package list

import (
	"fmt"
	"strings"

	"github.com/eaugeas/dstruct/errors"
	"github.com/samber/lo"
)

type node[T comparable] struct {
	value T
	next  *node[T]
}

// List is a singly linked list. It keeps a reference to
// its last node so that appending is constant time
type List[T comparable] struct {
	head *node[T]
	tail *node[T]
	len  int
}

// New creates an empty list
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Append adds v at the end of the list
func (l *List[T]) Append(v T) {
	n := &node[T]{value: v}

	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}

	l.tail = n
	l.len++
}

// Prepend adds v at the beginning of the list
func (l *List[T]) Prepend(v T) {
	l.head = &node[T]{value: v, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}

	l.len++
}

// Insert adds v so that it ends up at position index. An index
// equal to Len() appends. Any other index outside of [0, Len()]
// returns an ErrorCodeIndexOutOfBounds error
func (l *List[T]) Insert(index int, v T) error {
	switch {
	case index < 0 || index > l.len:
		return errors.Errorf(errors.ErrorCodeIndexOutOfBounds,
			"index %d out of bounds for list of length %d", index, l.len)
	case index == 0:
		l.Prepend(v)
	case index == l.len:
		l.Append(v)
	default:
		prev := l.at(index - 1)
		prev.next = &node[T]{value: v, next: prev.next}
		l.len++
	}

	return nil
}

// Remove deletes the first occurrence of v. It returns
// false if v is not in the list
func (l *List[T]) Remove(v T) bool {
	var prev *node[T]

	for curr := l.head; curr != nil; prev, curr = curr, curr.next {
		if curr.value == v {
			l.unlink(prev, curr)
			return true
		}
	}

	return false
}

// RemoveAt deletes the element at position index and returns
// it. It returns false if the index is out of bounds
func (l *List[T]) RemoveAt(index int) (T, bool) {
	if index < 0 || index >= l.len {
		var zero T
		return zero, false
	}

	var prev *node[T]
	curr := l.head
	if index > 0 {
		prev = l.at(index - 1)
		curr = prev.next
	}

	l.unlink(prev, curr)
	return curr.value, true
}

// Get returns the element at position index. It returns
// false if the index is out of bounds
func (l *List[T]) Get(index int) (T, bool) {
	if index < 0 || index >= l.len {
		var zero T
		return zero, false
	}

	return l.at(index).value, true
}

// IndexOf returns the position of the first occurrence
// of v, or -1 if v is not in the list
func (l *List[T]) IndexOf(v T) int {
	index := 0
	for curr := l.head; curr != nil; curr = curr.next {
		if curr.value == v {
			return index
		}
		index++
	}

	return -1
}

// Contains returns true if v is in the list
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) != -1
}

// Len returns the number of elements in the list
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty returns true if the list has no elements
func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// Clear removes all the elements
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// Slice returns the elements in list order
func (l *List[T]) Slice() []T {
	res := make([]T, 0, l.len)
	for curr := l.head; curr != nil; curr = curr.next {
		res = append(res, curr.value)
	}

	return res
}

func (l *List[T]) String() string {
	values := lo.Map(l.Slice(), func(v T, _ int) string {
		return fmt.Sprint(v)
	})

	return fmt.Sprintf("LinkedList(%d): [%s]", l.len, strings.Join(values, " -> "))
}

// at returns the node at position index, which must be
// within bounds
func (l *List[T]) at(index int) *node[T] {
	curr := l.head
	for i := 0; i < index; i++ {
		curr = curr.next
	}

	return curr
}

// unlink removes curr from the list. prev is nil when
// curr is the head
func (l *List[T]) unlink(prev, curr *node[T]) {
	if prev == nil {
		l.head = curr.next
	} else {
		prev.next = curr.next
	}

	if l.tail == curr {
		l.tail = prev
	}

	curr.next = nil
	l.len--
}
