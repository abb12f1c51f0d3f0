package avl

import (
	"go.lepak.sg/ordered/tree"
	"golang.org/x/exp/constraints"
)

// Delete removes k from the tree and returns the key that was stored.
// If k is not in the tree, Delete returns ErrNotFound and the tree
// is unchanged.
func (t *Tree[T]) Delete(k T) (T, error) {
	root, removed, found := deleteKey(t.root, k)
	if !found {
		return removed, ErrNotFound
	}

	t.root = root
	t.count--
	t.settle()
	return removed, nil
}

// DeleteMin removes the smallest key from the tree and returns it.
// If the tree is empty, DeleteMin returns ErrEmpty.
func (t *Tree[T]) DeleteMin() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmpty
	}

	var removed T
	t.root, removed = deleteMin(t.root)
	t.count--
	t.settle()
	return removed, nil
}

// DeleteMax removes the largest key from the tree and returns it.
// If the tree is empty, DeleteMax returns ErrEmpty.
func (t *Tree[T]) DeleteMax() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmpty
	}

	var removed T
	t.root, removed = deleteMax(t.root)
	t.count--
	t.settle()
	return removed, nil
}

// deleteKey removes the node with key k from the subtree rooted at n.
// It returns the new subtree root, the removed key, and whether k was
// found at all. If it was not, the subtree is untouched.
func deleteKey[T constraints.Ordered](
	n *tree.Node[T, int], k T) (*tree.Node[T, int], T, bool) {
	if n == nil {
		var zero T
		return nil, zero, false
	}

	var (
		removed T
		found   bool
	)
	switch tree.Compare(k, n.Key) {
	case tree.Less:
		n.Left, removed, found = deleteKey(n.Left, k)
	case tree.Greater:
		n.Right, removed, found = deleteKey(n.Right, k)
	case tree.Equal:
		var rest *tree.Node[T, int]
		rest, removed = deleteNode(n)
		return rest, removed, true
	default:
		panic("unreachable")
	}

	if !found {
		return n, removed, false
	}

	return rebalance(n), removed, true
}

// deleteNode removes the key held by n, which must not be nil.
// It returns the subtree that takes n's place and the removed key.
//
// A node with two children is not unlinked: the largest key of its
// left subtree (the in-order predecessor) is popped and moved into n.
func deleteNode[T constraints.Ordered](n *tree.Node[T, int]) (*tree.Node[T, int], T) {
	if n == nil {
		panic("cannot deleteNode on nil")
	}

	removed := n.Key
	switch {
	case n.Left == nil && n.Right == nil:
		return nil, removed
	case n.Left == nil:
		return n.Right, removed
	case n.Right == nil:
		return n.Left, removed
	}

	n.Left, n.Key = deleteMax(n.Left)
	return rebalance(n), removed
}

// deleteMin removes the leftmost node of the subtree rooted at n,
// which must not be nil. It returns the new subtree root and the
// removed key.
func deleteMin[T constraints.Ordered](n *tree.Node[T, int]) (*tree.Node[T, int], T) {
	if n == nil {
		panic("cannot deleteMin on nil")
	}

	if n.Left == nil {
		// the leftmost node can only have a right child
		return n.Right, n.Key
	}

	var removed T
	n.Left, removed = deleteMin(n.Left)
	return rebalance(n), removed
}

// deleteMax is the mirror image of deleteMin.
func deleteMax[T constraints.Ordered](n *tree.Node[T, int]) (*tree.Node[T, int], T) {
	if n == nil {
		panic("cannot deleteMax on nil")
	}

	if n.Right == nil {
		return n.Left, n.Key
	}

	var removed T
	n.Right, removed = deleteMax(n.Right)
	return rebalance(n), removed
}
