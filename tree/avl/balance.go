package avl

import (
	"go.lepak.sg/ordered/tree"
	"golang.org/x/exp/constraints"
)

// Node heights live in Node.Extra. A nil subtree has height 0, a leaf 1.

func height[T constraints.Ordered](n *tree.Node[T, int]) int {
	if n == nil {
		return 0
	}
	return n.Extra
}

// setHeight recomputes the height of n from its children,
// which must already be up to date. It does not recurse.
func setHeight[T constraints.Ordered](n *tree.Node[T, int]) {
	l, r := height(n.Left), height(n.Right)
	if l > r {
		n.Extra = 1 + l
	} else {
		n.Extra = 1 + r
	}
}

// heightDiff is the height of the left subtree minus the height
// of the right subtree. Positive means left-heavy.
func heightDiff[T constraints.Ordered](n *tree.Node[T, int]) int {
	if n == nil {
		return 0
	}
	return height(n.Left) - height(n.Right)
}

// rebalance refreshes the height of n and, if n is out of balance,
// rotates once to fix it. It returns the node which now occupies
// n's position; the caller must store it in place of n.
//
// The children of n must be balanced with correct heights already,
// which holds for every node on the way back up from a single
// insertion or deletion.
func rebalance[T constraints.Ordered](n *tree.Node[T, int]) *tree.Node[T, int] {
	if n == nil {
		return nil
	}

	setHeight(n)

	// A child with diff == 0 (only possible after a deletion)
	// takes the single rotation on either side.
	switch diff := heightDiff(n); {
	case diff > 1:
		if heightDiff(n.Left) < 0 {
			n = n.RotateLeftRight()
		} else {
			n = n.RotateRight()
		}
	case diff < -1:
		if heightDiff(n.Right) > 0 {
			n = n.RotateRightLeft()
		} else {
			n = n.RotateLeft()
		}
	default:
		return n
	}

	// Whatever the rotation, only the new subtree root and its two
	// children have moved; everything below them is untouched.
	setHeight(n.Left)
	setHeight(n.Right)
	setHeight(n)

	return n
}
