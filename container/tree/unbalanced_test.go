package tree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func prePopulatedUnbalancedTree() *Tree[int] {
	tree := New[int]()
	prePopulateTree(tree)
	return tree
}

func TestUnbalancedRootNil(t *testing.T) {
	tree := New[int]()
	assert.Nil(t, tree.Root())
	assert.Equal(t, 0, tree.Len())
}

func TestUnbalancedRootNode(t *testing.T) {
	tree := New[int]()
	tree.Insert(1)
	assert.Equal(t, 1, tree.Root().Value)
	assert.Equal(t, 1, tree.Len())
}

func TestUnbalancedTreeInsertBalanced(t *testing.T) {
	tree := New[int]()

	tree.Insert(1)
	tree.Insert(0)
	tree.Insert(2)

	assertEqualTree(t, [][]interface{}{
		{1},
		{0, 2},
	}, tree)
}

func TestUnbalancedTreeInsert(t *testing.T) {
	tree := New[int]()

	for i := 0; i < 4; i++ {
		tree.Insert(i)
	}

	assertEqualTree(t, [][]interface{}{
		{0},
		{nil, 1},
		{nil, nil, nil, 2},
		{nil, nil, nil, nil, nil, nil, nil, 3},
	}, tree)
}

func TestUnbalancedTreeInsertDuplicate(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	// the generator produces 1 and 3 twice
	assert.Equal(t, 8, tree.Len())
	assert.False(t, tree.Insert(5))
	assert.Equal(t, 8, tree.Len())

	assertEqualTree(t, [][]interface{}{
		{5},
		{2, 7},
		{1, 3, 6, 8},
		{0, nil, nil, nil, nil, nil, nil, nil},
	}, tree)
}

func TestUnbalancedTreeNodeEmptyInOrderWalk(t *testing.T) {
	tree := New[int]()
	called := 0
	tree.InOrderWalk(func(int) {
		called++
	})

	assert.Equal(t, 0, called)
}

func TestUnbalancedTreeNodeInOrderWalkOneLevel(t *testing.T) {
	tree := New[int]()
	var res []int

	tree.Insert(1)
	tree.Insert(0)
	tree.Insert(2)

	tree.InOrderWalk(func(v int) {
		res = append(res, v)
	})

	assert.Equal(t, []int{0, 1, 2}, res)
}

func TestUnbalancedTreeNodePostOrderWalkOneLevel(t *testing.T) {
	tree := New[int]()
	var res []int

	tree.Insert(1)
	tree.Insert(0)
	tree.Insert(2)

	tree.PostOrderWalk(func(v int) {
		res = append(res, v)
	})

	assert.Equal(t, []int{0, 2, 1}, res)
}

func TestUnbalancedTreeNodePreOrderWalkOneLevel(t *testing.T) {
	tree := New[int]()
	var res []int

	tree.Insert(1)
	tree.Insert(0)
	tree.Insert(2)

	tree.PreOrderWalk(func(v int) {
		res = append(res, v)
	})

	assert.Equal(t, []int{1, 0, 2}, res)
}

func TestUnbalancedTreeNodeInOrderWalkMultiLevel(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, tree.InOrder())
}

func TestUnbalancedTreeNodePostOrderWalkMultiLevel(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	assert.Equal(t, []int{0, 1, 3, 2, 6, 8, 7, 5}, tree.PostOrder())
}

func TestUnbalancedTreeNodePreOrderWalkMultiLevel(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	assert.Equal(t, []int{5, 2, 1, 0, 3, 7, 6, 8}, tree.PreOrder())
}

func TestUnbalancedTreeWalksKeepShape(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	tree.InOrderWalk(func(int) {})
	tree.PreOrderWalk(func(int) {})

	assertEqualTree(t, [][]interface{}{
		{5},
		{2, 7},
		{1, 3, 6, 8},
		{0, nil, nil, nil, nil, nil, nil, nil},
	}, tree)
}

func TestUnbalancedTreeHeight(t *testing.T) {
	tree := prePopulatedUnbalancedTree()
	assert.Equal(t, 3, tree.Height())
}

func TestUnbalancedTreeMinOK(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	v, ok := tree.Min()

	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestUnbalancedTreeNodeMaxOK(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	v, ok := tree.Max()

	assert.True(t, ok)
	assert.Equal(t, 8, v)
}

func TestUnbalancedTreeFindOK(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	n := tree.Find(2)

	assert.NotNil(t, n)
	assert.Equal(t, 2, n.Value)
}

func TestUnbalancedTreeFindNil(t *testing.T) {
	tree := prePopulatedUnbalancedTree()
	n := tree.Find(1000)
	assert.Nil(t, n)
}

func TestUnbalancedTreeNodeDeleteNoChildrenOK(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	ok := tree.Remove(8)

	assert.True(t, ok)
	assertEqualTree(t, [][]interface{}{
		{5},
		{2, 7},
		{1, 3, 6, nil},
		{0, nil, nil, nil, nil, nil, nil, nil},
	}, tree)
}

func TestUnbalancedTreeNodeDeleteNoRightChildrenOK(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	ok := tree.Remove(1)

	assert.True(t, ok)
	assertEqualTree(t, [][]interface{}{
		{5},
		{2, 7},
		{0, 3, 6, 8},
	}, tree)
}

func TestUnbalancedTreeNodeDeleteNoLeftChildrenOK(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{5, 2, 3, 4} {
		tree.Insert(v)
	}

	ok := tree.Remove(2)

	assert.True(t, ok)
	assertEqualTree(t, [][]interface{}{
		{5},
		{3, nil},
		{nil, 4, nil, nil},
	}, tree)
}

func TestUnbalancedTreeNodeDeleteTwoChildrenOK(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	ok := tree.Remove(2)

	assert.True(t, ok)
	assertEqualTree(t, [][]interface{}{
		{5},
		{3, 7},
		{1, nil, 6, 8},
		{0, nil, nil, nil, nil, nil, nil, nil},
	}, tree)
}

func TestUnbalancedTreeNodeDeleteSuccessorWithRightChildOK(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{5, 2, 9, 7, 8} {
		tree.Insert(v)
	}

	ok := tree.Remove(5)

	// 7 is copied into the root and its right child 8
	// takes its place
	assert.True(t, ok)
	assertEqualTree(t, [][]interface{}{
		{7},
		{2, 9},
		{nil, nil, 8, nil},
	}, tree)
}

func TestUnbalancedTreeNodeDeleteRootOK(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	ok := tree.Remove(5)
	assert.True(t, ok)

	assertEqualTree(t, [][]interface{}{
		{6},
		{2, 7},
		{1, 3, nil, 8},
		{0, nil, nil, nil, nil, nil, nil, nil},
	}, tree)
}

func TestUnbalancedTreeNodeDeleteNotExistingNode(t *testing.T) {
	tree := prePopulatedUnbalancedTree()
	before := tree.InOrder()

	ok := tree.Remove(100)

	assert.False(t, ok)
	assert.Equal(t, before, tree.InOrder())
	assert.Equal(t, 8, tree.Len())
}

func TestUnbalancedTreeDeleteUntilEmpty(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	for _, v := range tree.PreOrder() {
		assert.True(t, tree.Remove(v))
		assertOrdered(t, tree)
	}

	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, -1, tree.Height())
}

func TestUnbalancedTreeCeil(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	for value, expected := range map[int]int{4: 5, 5: 5, 6: 6, 7: 7, 8: 8, -1: 0} {
		v, ok := tree.Ceil(value)
		assert.True(t, ok)
		assert.Equal(t, expected, v)
	}

	_, ok := tree.Ceil(9)
	assert.False(t, ok)
	_, ok = tree.Ceil(10)
	assert.False(t, ok)
}

func TestUnbalancedTreeFloor(t *testing.T) {
	tree := prePopulatedUnbalancedTree()

	for value, expected := range map[int]int{5: 5, 4: 3, 3: 3, 2: 2, 1: 1, 0: 0, 100: 8} {
		v, ok := tree.Floor(value)
		assert.True(t, ok)
		assert.Equal(t, expected, v)
	}

	_, ok := tree.Floor(-1)
	assert.False(t, ok)
}

func BenchmarkUnbalancedTreeNodeRandomInsert(b *testing.B) {
	tree := New[int]()

	for i := 0; i < b.N; i++ {
		tree.Insert(int(rand.Int31()))
	}
}

func BenchmarkUnbalancedTreePreOrderSequenceInsert(b *testing.B) {
	tree := New[int]()
	gen := balancedTreeGenerator{Highest: uint(b.N << 1)}

	for i := 0; i < b.N; i++ {
		v, ok := gen.Next()
		if !ok {
			panic("generator failed to generate enough numbers")
		}
		tree.Insert(v)
	}
}

func BenchmarkUnbalancedTreePreOrderSequenceInsertAndWalk(b *testing.B) {
	tree := New[int]()
	gen := balancedTreeGenerator{Highest: uint(b.N << 1)}
	count := 0

	for i := 0; i < b.N; i++ {
		v, ok := gen.Next()
		if !ok {
			panic("generator failed to generate enough numbers")
		}
		tree.Insert(v)
	}

	tree.InOrderWalk(func(int) {
		count++
	})

	assert.Equal(b, tree.Len(), count)
}
