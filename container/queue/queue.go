package queue

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Queue is a first in first out container. Elements are
// kept in a slice that is compacted once more than half of
// its length has already been dequeued
type Queue[T any] struct {
	items []T
	head  int
}

// New creates an empty queue
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue adds v to the rear of the queue
func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns the element at the front
// of the queue. It returns false if the queue is empty
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}

	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head > len(q.items)/2:
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return v, true
}

// Front returns the element at the front of the queue
// without removing it
func (q *Queue[T]) Front() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}

	return q.items[q.head], true
}

// Rear returns the element at the rear of the queue
// without removing it
func (q *Queue[T]) Rear() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}

	return q.items[len(q.items)-1], true
}

// IsEmpty returns true if the queue has no elements
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Len returns the number of elements in the queue
func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}

// Clear removes all the elements
func (q *Queue[T]) Clear() {
	q.items = nil
	q.head = 0
}

// Slice returns a copy of the elements from front to rear
func (q *Queue[T]) Slice() []T {
	res := make([]T, q.Len())
	copy(res, q.items[q.head:])
	return res
}

func (q *Queue[T]) String() string {
	values := lo.Map(q.items[q.head:], func(v T, _ int) string {
		return fmt.Sprint(v)
	})

	return fmt.Sprintf("Queue(%d): [%s]", q.Len(), strings.Join(values, ", "))
}
