package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackEmpty(t *testing.T) {
	s := New[int]()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())

	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestStackPushPopOrder(t *testing.T) {
	s := New[int]()

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())

	v, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, s.Len())

	for _, expected := range []int{3, 2, 1} {
		v, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, expected, v)
	}

	assert.True(t, s.IsEmpty())
}

func TestStackSliceIsCopy(t *testing.T) {
	s := New[string]()
	s.Push("a")
	s.Push("b")

	items := s.Slice()
	assert.Equal(t, []string{"a", "b"}, items)

	items[0] = "z"
	assert.Equal(t, []string{"a", "b"}, s.Slice())
}

func TestStackClear(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)

	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, []int{}, s.Slice())
}

func TestStackString(t *testing.T) {
	s := New[int]()
	assert.Equal(t, "Stack(0): []", s.String())

	s.Push(1)
	s.Push(2)
	assert.Equal(t, "Stack(2): [1, 2]", s.String())
}

func BenchmarkStackPushPop(b *testing.B) {
	s := New[int]()

	for i := 0; i < b.N; i++ {
		s.Push(i)
	}

	for !s.IsEmpty() {
		s.Pop()
	}
}
