package tree

import (
	"fmt"
	"strings"

	"github.com/eaugeas/dstruct/container/queue"
	"github.com/eaugeas/dstruct/container/stack"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Node of a tree. A node exclusively owns its children
// and keeps no reference to its parent
type Node[T any] struct {
	Value T

	left  *Node[T]
	right *Node[T]
}

// Left returns the node's left child
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the node's right child
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Min returns the node in the subtree of the
// lowest order
func (n *Node[T]) Min() *Node[T] {
	curr := n

	for curr != nil && curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node in the subtree of the
// highest order
func (n *Node[T]) Max() *Node[T] {
	curr := n

	for curr != nil && curr.right != nil {
		curr = curr.right
	}

	return curr
}

// inOrderWalk implements an in order walk on the
// subtree keeping the pending ancestors in a stack
func (n *Node[T]) inOrderWalk(fn func(T)) {
	pending := stack.New[*Node[T]]()

	for curr := n; curr != nil || !pending.IsEmpty(); {
		if curr != nil {
			pending.Push(curr)
			curr = curr.left
			continue
		}

		top, _ := pending.Pop()
		fn(top.Value)
		curr = top.right
	}
}

// preOrderWalk implements a pre order walk on the
// subtree keeping the right children still to visit
// in a stack
func (n *Node[T]) preOrderWalk(fn func(T)) {
	if n == nil {
		return
	}

	pending := stack.New[*Node[T]]()
	pending.Push(n)

	for !pending.IsEmpty() {
		curr, _ := pending.Pop()
		fn(curr.Value)

		if curr.right != nil {
			pending.Push(curr.right)
		}
		if curr.left != nil {
			pending.Push(curr.left)
		}
	}
}

// postOrderWalk implements a post order walk on the
// subtree keeping the pending ancestors in a stack
func (n *Node[T]) postOrderWalk(fn func(T)) {
	var last *Node[T]
	pending := stack.New[*Node[T]]()

	for curr := n; curr != nil || !pending.IsEmpty(); {
		if curr != nil {
			pending.Push(curr)
			curr = curr.left
			continue
		}

		top, _ := pending.Peek()
		if top.right != nil && top.right != last {
			curr = top.right
		} else {
			fn(top.Value)
			last, _ = pending.Pop()
		}
	}
}

// levelOrderWalk visits the subtree breadth first. fn
// receives the depth of each node relative to n
func (n *Node[T]) levelOrderWalk(fn func(depth int, v T)) {
	if n == nil {
		return
	}

	level := queue.New[*Node[T]]()
	level.Enqueue(n)

	for depth := 0; !level.IsEmpty(); depth++ {
		for i, width := 0, level.Len(); i < width; i++ {
			curr, _ := level.Dequeue()
			fn(depth, curr.Value)

			if curr.left != nil {
				level.Enqueue(curr.left)
			}
			if curr.right != nil {
				level.Enqueue(curr.right)
			}
		}
	}
}

// Tree represents a binary search tree. It holds no duplicates:
// inserting a value that compares equal to a stored one is a no-op.
// How balanced the branches of the tree are depends exclusively on
// the order of the insert and remove operations performed on it.
//
// A Tree is not safe for concurrent use. Look at Synchronized
// for a version that is.
type Tree[T any] struct {
	root *Node[T]
	cmp  Lesser[T]
	len  int
}

// New creates an empty tree ordered by the natural
// order of T
func New[T constraints.Ordered]() *Tree[T] {
	return NewWithLesser[T](OrderedLesser[T]{})
}

// NewWithLesser creates an empty tree ordered by cmp. The
// comparator is fixed for the lifetime of the tree
func NewWithLesser[T any](cmp Lesser[T]) *Tree[T] {
	if cmp == nil {
		panic("tree requires a non nil Lesser")
	}

	return &Tree[T]{cmp: cmp}
}

// Len returns the number of nodes in the tree
func (t *Tree[T]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Clear removes all the nodes of the tree
func (t *Tree[T]) Clear() {
	t.root = nil
	t.len = 0
}

// Height returns the number of edges in the longest path
// from the root to a leaf. An empty tree has height -1
func (t *Tree[T]) Height() int {
	height := -1
	t.root.levelOrderWalk(func(depth int, _ T) {
		height = depth
	})

	return height
}

// Min returns the lowest value in the tree. It returns
// false if the tree is empty
func (t *Tree[T]) Min() (T, bool) {
	return valueOf(t.root.Min())
}

// Max returns the highest value in the tree. It returns
// false if the tree is empty
func (t *Tree[T]) Max() (T, bool) {
	return valueOf(t.root.Max())
}

// Ceil returns the lowest value in the tree that
// is higher or equal than v
func (t *Tree[T]) Ceil(v T) (T, bool) {
	var higher *Node[T]

	for curr := t.root; curr != nil; {
		if t.cmp.Less(v, curr.Value) <= 0 {
			higher = curr
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	return valueOf(higher)
}

// Floor returns the highest value in the tree that
// is lower or equal than v
func (t *Tree[T]) Floor(v T) (T, bool) {
	var lower *Node[T]

	for curr := t.root; curr != nil; {
		if t.cmp.Less(v, curr.Value) < 0 {
			curr = curr.left
		} else {
			lower = curr
			curr = curr.right
		}
	}

	return valueOf(lower)
}

// Contains returns true if the tree holds a value
// that compares equal to v
func (t *Tree[T]) Contains(v T) bool {
	return t.Find(v) != nil
}

// Find returns the node in the tree that holds a value
// that compares equal to v, or nil if there is none
func (t *Tree[T]) Find(v T) *Node[T] {
	return *t.link(v)
}

// InOrderWalk calls fn for every value in ascending order.
// The walk never modifies the tree, so fn may read it, and a
// panic raised by fn leaves the tree intact. fn must not
// insert or remove values.
func (t *Tree[T]) InOrderWalk(fn func(T)) {
	t.root.inOrderWalk(fn)
}

// PreOrderWalk calls fn for every node value before the values
// of its left and right subtrees. The same guarantees as in
// InOrderWalk apply to fn.
func (t *Tree[T]) PreOrderWalk(fn func(T)) {
	t.root.preOrderWalk(fn)
}

// PostOrderWalk calls fn for every node value after the values
// of its left and right subtrees
func (t *Tree[T]) PostOrderWalk(fn func(T)) {
	t.root.postOrderWalk(fn)
}

// LevelOrderWalk calls fn for every value breadth first,
// from left to right within each level
func (t *Tree[T]) LevelOrderWalk(fn func(depth int, v T)) {
	t.root.levelOrderWalk(fn)
}

// InOrder returns the values of the tree in ascending order
func (t *Tree[T]) InOrder() []T {
	return t.collect(t.InOrderWalk)
}

// PreOrder returns the values of the tree in pre order
func (t *Tree[T]) PreOrder() []T {
	return t.collect(t.PreOrderWalk)
}

// PostOrder returns the values of the tree in post order
func (t *Tree[T]) PostOrder() []T {
	return t.collect(t.PostOrderWalk)
}

// LevelOrder returns the values of the tree breadth first
func (t *Tree[T]) LevelOrder() []T {
	return t.collect(func(fn func(T)) {
		t.LevelOrderWalk(func(_ int, v T) { fn(v) })
	})
}

func (t *Tree[T]) String() string {
	if t.Empty() {
		return "Empty BST"
	}

	values := lo.Map(t.InOrder(), func(v T, _ int) string {
		return fmt.Sprint(v)
	})

	return fmt.Sprintf("BST: [%s]", strings.Join(values, ", "))
}

func (t *Tree[T]) collect(walk func(func(T))) []T {
	res := make([]T, 0, t.len)
	walk(func(v T) {
		res = append(res, v)
	})

	return res
}

func valueOf[T any](n *Node[T]) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}

	return n.Value, true
}
