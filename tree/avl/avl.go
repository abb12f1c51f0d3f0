package avl

import (
	"fmt"

	"go.lepak.sg/ordered/tree"
	"go.lepak.sg/ordered/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree holding a set of distinct keys.
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} or New when creating one);
// use Clone to get an independent copy.
//
// Invariants, which hold whenever no method is running:
//  - At any node N in the tree, all node keys in the subtree rooted at N.Left
//    will be less than N.Key, and all keys under N.Right will be greater
//  - At any node N, the heights of N.Left and N.Right differ by at most 1
//  - At any node N, N.Extra is the height of the subtree rooted at N
//  - count is the number of nodes in the tree
type Tree[T constraints.Ordered] struct {
	root  *tree.Node[T, int]
	count int
}

// New returns an empty tree.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of keys in the tree.
// It is kept up to date by every insertion and deletion,
// so it does not walk the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// IsEmpty returns true if there are no keys in the tree.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the height of the tree. The empty tree
// has height 0 and a tree with a single key has height 1.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	return t.root.Find(k) != nil
}

// Min returns the smallest key in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Min() (k T, ok bool) {
	if n := t.root.Min(); n != nil {
		return n.Key, true
	}
	return
}

// Max returns the largest key in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Max() (k T, ok bool) {
	if n := t.root.Max(); n != nil {
		return n.Key, true
	}
	return
}

// Less returns the largest key in the tree that is less than k.
// If there is no such key, p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// Every time we go right, the node we left behind is
	// the best answer so far.
	n := t.root
	for n != nil {
		if tree.Compare(n.Key, k) == tree.Less {
			p, ok = n.Key, true
			n = n.Right
		} else {
			n = n.Left
		}
	}

	return
}

// Insert inserts k into the tree and rebalances it.
// If k is already in the tree, Insert returns false
// and the tree is unchanged.
func (t *Tree[T]) Insert(k T) bool {
	var added bool
	t.root, added = insert(t.root, k)
	if added {
		t.count++
		t.settle()
	}
	return added
}

func insert[T constraints.Ordered](n *tree.Node[T, int], k T) (*tree.Node[T, int], bool) {
	if n == nil {
		return tree.NodeOf(k, 1), true
	}

	var added bool
	switch tree.Compare(k, n.Key) {
	case tree.Less:
		n.Left, added = insert(n.Left, k)
	case tree.Greater:
		n.Right, added = insert(n.Right, k)
	case tree.Equal:
		return n, false
	default:
		panic("unreachable")
	}

	if !added {
		// nothing below us changed
		return n, false
	}

	return rebalance(n), true
}

// settle refreshes the root once a mutation has unwound.
func (t *Tree[T]) settle() {
	t.root = rebalance(t.root)
}

// Clear removes every key from the tree.
func (t *Tree[T]) Clear() {
	t.root, t.count = nil, 0
}

// Clone returns a deep copy of the tree. The copy has the
// same shape as t and shares no nodes with it.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root:  t.root.Clone(),
		count: t.count,
	}
}

// CopyFrom replaces the contents of t with a deep copy of other.
// Copying a tree onto itself does nothing.
func (t *Tree[T]) CopyFrom(other *Tree[T]) {
	if t == other {
		return
	}

	t.Clear()
	if other != nil {
		t.root, t.count = other.root.Clone(), other.count
	}
}

// With returns a copy of t with k inserted.
// t itself is not changed.
func (t *Tree[T]) With(k T) *Tree[T] {
	cp := t.Clone()
	cp.Insert(k)
	return cp
}

// Merge inserts every key of other into t, skipping the keys
// that t already has, and returns the number of keys added.
// other is not changed, and its shape is not carried over:
// t rebalances itself as usual.
func (t *Tree[T]) Merge(other *Tree[T]) int {
	if other == nil || other == t {
		return 0
	}

	return t.mergeSubtree(other.root)
}

func (t *Tree[T]) mergeSubtree(n *tree.Node[T, int]) int {
	if n == nil {
		return 0
	}

	added := 0
	if t.Insert(n.Key) {
		added++
	}
	return added + t.mergeSubtree(n.Left) + t.mergeSubtree(n.Right)
}

// Values returns all keys of the tree in increasing order.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.count)
	t.root.InOrder(func(n *tree.Node[T, int]) bool {
		out = append(out, n.Key)
		return true
	})
	return out
}

// PreOrder applies f to each key in the tree pre-order
// (a node, then its left subtree, then its right subtree).
// This exposes the shape of the tree, which is mostly
// useful for testing.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	t.root.PreOrder(func(n *tree.Node[T, int]) bool {
		return f(n.Key)
	})
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order.
// The result of mutating the tree while iterating over it is undefined.
func (t *Tree[T]) InOrderIterator() *iterator.InOrderStack[T, int] {
	return iterator.NewInOrderStack(t.root, t.Height())
}

// String returns a string representation of the tree,
// with the height of every node. This is the tree holding 1, 2, 3:
//	2 (2)
//	├─L─1 (1)
//	└─R─3 (1)
func (t *Tree[T]) String() string {
	return tree.Sprint(t.root, func(n *tree.Node[T, int]) string {
		return fmt.Sprintf("%v (%d)", n.Key, n.Extra)
	})
}
