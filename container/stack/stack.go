package stack

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Stack is a last in first out container backed by a slice
type Stack[T any] struct {
	items []T
}

// New creates an empty stack
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds v to the top of the stack
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the element at the top of the
// stack. It returns false if the stack is empty
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}

	v := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return v, true
}

// Peek returns the element at the top of the stack
// without removing it
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// IsEmpty returns true if the stack has no elements
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of elements in the stack
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Clear removes all the elements
func (s *Stack[T]) Clear() {
	s.items = nil
}

// Slice returns a copy of the elements from bottom to top
func (s *Stack[T]) Slice() []T {
	res := make([]T, len(s.items))
	copy(res, s.items)
	return res
}

func (s *Stack[T]) String() string {
	values := lo.Map(s.items, func(v T, _ int) string {
		return fmt.Sprint(v)
	})

	return fmt.Sprintf("Stack(%d): [%s]", len(s.items), strings.Join(values, ", "))
}
