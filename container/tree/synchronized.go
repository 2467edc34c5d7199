package tree

import (
	"sync"
)

// Synchronized guards a Tree with a single mutex so that it can be
// shared between goroutines. Reads and writes are serialized
// by the same lock.
type Synchronized[T any] struct {
	mu   sync.Mutex
	tree *Tree[T]
}

// NewSynchronized wraps tree. The tree must not be accessed
// directly after it has been wrapped
func NewSynchronized[T any](tree *Tree[T]) *Synchronized[T] {
	if tree == nil {
		panic("cannot synchronize a nil tree")
	}

	return &Synchronized[T]{tree: tree}
}

// Do runs fn holding the lock. fn must not retain the tree
func (s *Synchronized[T]) Do(fn func(t *Tree[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.tree)
}

// Insert adds v to the tree holding the lock. It returns false
// if an equal value is already stored
func (s *Synchronized[T]) Insert(v T) (ok bool) {
	s.Do(func(t *Tree[T]) { ok = t.Insert(v) })
	return ok
}

// Remove deletes v from the tree holding the lock. It returns
// false if v is not stored
func (s *Synchronized[T]) Remove(v T) (ok bool) {
	s.Do(func(t *Tree[T]) { ok = t.Remove(v) })
	return ok
}

// Contains reports whether v is stored in the tree
func (s *Synchronized[T]) Contains(v T) (ok bool) {
	s.Do(func(t *Tree[T]) { ok = t.Contains(v) })
	return ok
}

// Len returns the number of values stored in the tree
func (s *Synchronized[T]) Len() (n int) {
	s.Do(func(t *Tree[T]) { n = t.Len() })
	return n
}

// Height returns the height of the tree, -1 when empty
func (s *Synchronized[T]) Height() (h int) {
	s.Do(func(t *Tree[T]) { h = t.Height() })
	return h
}

// Min returns the lowest value stored in the tree
func (s *Synchronized[T]) Min() (v T, ok bool) {
	s.Do(func(t *Tree[T]) { v, ok = t.Min() })
	return v, ok
}

// Max returns the highest value stored in the tree
func (s *Synchronized[T]) Max() (v T, ok bool) {
	s.Do(func(t *Tree[T]) { v, ok = t.Max() })
	return v, ok
}

// InOrder returns a snapshot of the values in ascending order
func (s *Synchronized[T]) InOrder() (values []T) {
	s.Do(func(t *Tree[T]) { values = t.InOrder() })
	return values
}

// PreOrder returns a snapshot of the values in pre order
func (s *Synchronized[T]) PreOrder() (values []T) {
	s.Do(func(t *Tree[T]) { values = t.PreOrder() })
	return values
}

// PostOrder returns a snapshot of the values in post order
func (s *Synchronized[T]) PostOrder() (values []T) {
	s.Do(func(t *Tree[T]) { values = t.PostOrder() })
	return values
}

// String implementation of fmt.Stringer for Synchronized
func (s *Synchronized[T]) String() (str string) {
	s.Do(func(t *Tree[T]) { str = t.String() })
	return str
}
