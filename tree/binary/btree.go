package binary

import (
	"math/bits"

	"go.lepak.sg/ordered/tree"
	"go.lepak.sg/ordered/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (inserting, merging).
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} when creating one).
//
// This tree implementation does not support removal. It is also not
// self-balancing: keys inserted in sorted order produce a linked list.
// See package avl for the balanced version.
//
// Invariants:
//  - At any node N in the tree, all node keys in the subtree rooted at N.Left
//    will be less than N.Key
//  - At any node N in the tree, all node keys in the subtree rooted at N.Right
//    will be greater than N.Key
//  - For every possible key, there will be at most one node with that key
//    in the tree (No duplicates allowed)
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	root  *tree.Node[T, struct{}]
	count int
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	return t.root.Find(k) != nil
}

// Insert inserts k into the binary tree.
// If k is already in the tree, Insert returns false.
func (t *Tree[T]) Insert(k T) bool {
	if t.root == nil {
		t.root = tree.BasicNodeOf(k)
		t.count = 1
		return true
	}

	n, p := t.root, (*tree.Node[T, struct{}])(nil)
	var cmp tree.Order

	for n != nil {
		cmp = tree.Compare(k, n.Key)
		switch cmp {
		case tree.Less:
			n, p = n.Left, n
		case tree.Greater:
			n, p = n.Right, n
		case tree.Equal:
			return false
		default:
			panic("unreachable")
		}
	}

	newnode := tree.BasicNodeOf(k)

	switch cmp {
	case tree.Less:
		if p.Left != nil {
			panic("impossible")
		}
		p.Left = newnode
	case tree.Greater:
		if p.Right != nil {
			panic("impossible")
		}
		p.Right = newnode
	default:
		panic("unreachable")
	}

	t.count++
	return true
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// IsEmpty returns true if there are no keys in the tree.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Clear removes every key from the tree.
func (t *Tree[T]) Clear() {
	t.root, t.count = nil, 0
}

// Clone returns a deep copy of the tree with the same shape.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root:  t.root.Clone(),
		count: t.count,
	}
}

// Merge inserts every key of other into t and
// returns how many of them were not already in t.
// The shape of other is not preserved: keys are
// inserted in other's pre-order.
func (t *Tree[T]) Merge(other *Tree[T]) int {
	if other == nil || other == t {
		return 0
	}

	added := 0
	other.root.PreOrder(func(n *tree.Node[T, struct{}]) bool {
		if t.Insert(n.Key) {
			added++
		}
		return true
	})

	return added
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	t.root.InOrder(func(n *tree.Node[T, struct{}]) bool {
		return f(n.Key)
	})
}

// PreOrder applies f to each key in the tree pre-order
// (a node, then its left subtree, then its right subtree).
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	t.root.PreOrder(func(n *tree.Node[T, struct{}]) bool {
		return f(n.Key)
	})
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrderStack[T, struct{}] {
	return iterator.NewInOrderStack(t.root, 0)
}

// Height returns the actual height of the tree, and the
// ideal (minimum possible) height for the same number of keys.
// The empty tree has height 0; a single node has height 1.
func (t *Tree[T]) Height() (actual, ideal int) {
	return height(t.root), bits.Len(uint(t.count))
}

func height[T constraints.Ordered](n *tree.Node[T, struct{}]) int {
	if n == nil {
		return 0
	}

	l, r := height(n.Left), height(n.Right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// Balanced returns true if at every node, the heights of
// the two subtrees differ by at most one.
func (t *Tree[T]) Balanced() bool {
	_, ok := balanced(t.root)
	return ok
}

func balanced[T constraints.Ordered](n *tree.Node[T, struct{}]) (int, bool) {
	if n == nil {
		return 0, true
	}

	l, ok := balanced(n.Left)
	if !ok {
		return 0, false
	}
	r, ok := balanced(n.Right)
	if !ok {
		return 0, false
	}

	if l-r > 1 || r-l > 1 {
		return 0, false
	}
	if l > r {
		return 1 + l, true
	}
	return 1 + r, true
}

// String returns a string representation of the tree.
// A complete binary tree of 7 keys would look like this:
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	return tree.Sprint(t.root, nil)
}
