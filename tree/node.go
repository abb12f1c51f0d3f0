package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a node of a binary search tree keyed by T.
// Extra is per-node bookkeeping owned by the tree implementation,
// for example the AVL tree keeps the subtree height in it.
//
// Nodes have no parent pointer. Anything that restructures a subtree
// returns the node that now occupies the subtree's position, and the
// caller must store it back into its own link.
type Node[T constraints.Ordered, X any] struct {
	Key         T
	Extra       X
	Left, Right *Node[T, X]
}

func NodeOf[T constraints.Ordered, X any](k T, extra X) *Node[T, X] {
	return &Node[T, X]{
		Key:   k,
		Extra: extra,
	}
}

// BasicNodeOf returns a Node with no Extra data.
func BasicNodeOf[T constraints.Ordered](k T) *Node[T, struct{}] {
	return &Node[T, struct{}]{
		Key: k,
	}
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
