package avl

import (
	"fmt"

	"go.lepak.sg/ordered/tree"
	"golang.org/x/exp/constraints"
)

// Check walks the whole tree and verifies its invariants:
// key ordering, cached heights, balance and the key count.
// It returns nil for a consistent tree, otherwise an error
// wrapping ErrInconsistent that describes the first problem found.
func (t *Tree[T]) Check() error {
	n, err := check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if n != t.count {
		return fmt.Errorf("%w: found %d nodes, but count is %d", ErrInconsistent, n, t.count)
	}
	return nil
}

// check verifies the subtree rooted at n, all of whose keys must
// lie strictly between lo and hi (nil means unbounded).
// It returns the number of nodes in the subtree.
func check[T constraints.Ordered](n *tree.Node[T, int], lo, hi *T) (int, error) {
	if n == nil {
		return 0, nil
	}

	if lo != nil && tree.Compare(n.Key, *lo) != tree.Greater {
		return 0, fmt.Errorf("%w: key %v is not greater than %v", ErrInconsistent, n.Key, *lo)
	}
	if hi != nil && tree.Compare(n.Key, *hi) != tree.Less {
		return 0, fmt.Errorf("%w: key %v is not less than %v", ErrInconsistent, n.Key, *hi)
	}

	nl, err := check(n.Left, lo, &n.Key)
	if err != nil {
		return 0, err
	}
	nr, err := check(n.Right, &n.Key, hi)
	if err != nil {
		return 0, err
	}

	l, r := height(n.Left), height(n.Right)
	want := 1 + l
	if r > l {
		want = 1 + r
	}
	if n.Extra != want {
		return 0, fmt.Errorf("%w: key %v has height %d, expected %d", ErrInconsistent, n.Key, n.Extra, want)
	}
	if l-r > 1 || r-l > 1 {
		return 0, fmt.Errorf("%w: key %v is unbalanced: left height %d, right height %d",
			ErrInconsistent, n.Key, l, r)
	}

	return 1 + nl + nr, nil
}
