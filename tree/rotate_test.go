package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompleteTree_2Tall() *Node[int, struct{}] {
	return &Node[int, struct{}]{
		Left: &Node[int, struct{}]{
			Left: &Node[int, struct{}]{
				Key: 1,
			},
			Key: 2,
			Right: &Node[int, struct{}]{
				Key: 3,
			},
		},
		Key: 4,
		Right: &Node[int, struct{}]{
			Left: &Node[int, struct{}]{
				Key: 5,
			},
			Key: 6,
			Right: &Node[int, struct{}]{
				Key: 7,
			},
		},
	}
}

func keysInOrder[X any](n *Node[int, X]) []int {
	var keys []int
	n.InOrder(func(n *Node[int, X]) bool {
		keys = append(keys, n.Key)
		return true
	})
	return keys
}

func TestNode_RotateLeft(t *testing.T) {
	tr := newCompleteTree_2Tall()

	should6 := tr.RotateLeft()

	require.Equal(t, 6, should6.Key)
	require.NotNil(t, should6.Left)
	assert.Equal(t, 4, should6.Left.Key)
	assert.Equal(t, 7, should6.Right.Key)
	assert.Equal(t, 2, should6.Left.Left.Key)
	assert.Equal(t, 5, should6.Left.Right.Key)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keysInOrder(should6))
}

func TestNode_RotateRight(t *testing.T) {
	tr := newCompleteTree_2Tall()

	should2 := tr.RotateRight()

	require.Equal(t, 2, should2.Key)
	require.NotNil(t, should2.Right)
	assert.Equal(t, 1, should2.Left.Key)
	assert.Equal(t, 4, should2.Right.Key)
	assert.Equal(t, 3, should2.Right.Left.Key)
	assert.Equal(t, 6, should2.Right.Right.Key)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keysInOrder(should2))
}

func TestNode_RotateNilInner(t *testing.T) {
	// 1 -> 2 -> 3, a right-leaning chain
	chain := BasicNodeOf(1)
	chain.Right = BasicNodeOf(2)
	chain.Right.Right = BasicNodeOf(3)

	r := chain.RotateLeft()
	assert.Equal(t, 2, r.Key)
	assert.Equal(t, 1, r.Left.Key)
	assert.Equal(t, 3, r.Right.Key)
	assert.Nil(t, r.Left.Left)
	assert.Nil(t, r.Left.Right)

	r = r.RotateRight()
	assert.Equal(t, 1, r.Key)
	assert.Nil(t, r.Left)
	assert.Equal(t, 2, r.Right.Key)
	assert.Nil(t, r.Right.Left)
	assert.Equal(t, 3, r.Right.Right.Key)
}

func TestNode_RotateLeftRight(t *testing.T) {
	// 30 with left child 10, which has right child 20
	n := BasicNodeOf(30)
	n.Left = BasicNodeOf(10)
	n.Left.Right = BasicNodeOf(20)

	r := n.RotateLeftRight()

	require.Equal(t, 20, r.Key)
	assert.Equal(t, 10, r.Left.Key)
	assert.Equal(t, 30, r.Right.Key)
	assert.Nil(t, r.Left.Left)
	assert.Nil(t, r.Left.Right)
	assert.Nil(t, r.Right.Left)
	assert.Nil(t, r.Right.Right)
}

func TestNode_RotateRightLeft(t *testing.T) {
	// 10 with right child 30, which has left child 20 (with children)
	n := BasicNodeOf(10)
	n.Left = BasicNodeOf(5)
	n.Right = BasicNodeOf(30)
	n.Right.Right = BasicNodeOf(35)
	n.Right.Left = BasicNodeOf(20)
	n.Right.Left.Left = BasicNodeOf(15)
	n.Right.Left.Right = BasicNodeOf(25)

	r := n.RotateRightLeft()

	require.Equal(t, 20, r.Key)
	assert.Equal(t, 10, r.Left.Key)
	assert.Equal(t, 30, r.Right.Key)
	assert.Equal(t, 15, r.Left.Right.Key)
	assert.Equal(t, 25, r.Right.Left.Key)
	assert.Equal(t, []int{5, 10, 15, 20, 25, 30, 35}, keysInOrder(r))
}

func TestNode_RotatePanics(t *testing.T) {
	var nilNode *Node[int, struct{}]
	leaf := BasicNodeOf(1)

	assert.PanicsWithValue(t, "cannot RotateLeft on nil", func() { nilNode.RotateLeft() })
	assert.PanicsWithValue(t, "cannot RotateRight on nil", func() { nilNode.RotateRight() })
	assert.PanicsWithValue(t, "cannot RotateLeft with nil right", func() { leaf.RotateLeft() })
	assert.PanicsWithValue(t, "cannot RotateRight with nil left", func() { leaf.RotateRight() })
	assert.PanicsWithValue(t, "cannot RotateLeftRight on nil", func() { nilNode.RotateLeftRight() })
	assert.PanicsWithValue(t, "cannot RotateRightLeft on nil", func() { nilNode.RotateRightLeft() })
	// the left child is missing, so the inner rotation fails
	assert.PanicsWithValue(t, "cannot RotateLeft on nil", func() { leaf.RotateLeftRight() })
}
