package tree

// The insert and remove algorithms of the tree preserve the
// Binary Search Tree properties without applying any balancing
// strategy. Nodes have no parent link, so both operations descend
// from the root keeping the address of the child slot that points
// to the current node.

// link returns the slot that holds the node with a value equal
// to v or, if there is no such node, the empty slot where a node
// with value v would be attached
func (t *Tree[T]) link(v T) **Node[T] {
	slot := &t.root

	for *slot != nil {
		switch c := t.cmp.Less(v, (*slot).Value); {
		case c < 0:
			slot = &(*slot).left
		case c > 0:
			slot = &(*slot).right
		default:
			return slot
		}
	}

	return slot
}

// Insert a value into the tree. It returns false without
// modifying the tree if an equal value is already stored
func (t *Tree[T]) Insert(v T) bool {
	slot := t.link(v)
	if *slot != nil {
		return false
	}

	*slot = &Node[T]{Value: v}
	t.len++
	return true
}

// Remove the node that holds a value equal to v. It returns
// false if there is no such node, in which case the tree is
// left unchanged
func (t *Tree[T]) Remove(v T) bool {
	slot := t.link(v)
	if *slot == nil {
		return false
	}

	splice(slot)
	t.len--
	return true
}

// splice deletes the node held by slot. A node with two children
// takes the value of its successor, the minimum of its right
// subtree, which is then spliced out of that subtree in its place.
// The successor has no left child, so that second removal always
// falls into one of the single child cases.
func splice[T any](slot **Node[T]) {
	n := *slot

	switch {
	case n.left == nil:
		*slot = n.right
	case n.right == nil:
		*slot = n.left
	default:
		successor := &n.right
		for (*successor).left != nil {
			successor = &(*successor).left
		}

		n.Value = (*successor).Value
		splice(successor)
	}
}
