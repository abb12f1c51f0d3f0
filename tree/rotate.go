package tree

// RotateLeft rotates a Node to the left and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateLeft:
//	  -> n            p
//      / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
// The right child p is returned from n.RotateLeft.
// The ordering invariant m < n < o < p < q is always preserved.
// Any of m, o and q may be nil.
func (n *Node[T, X]) RotateLeft() *Node[T, X] {
	if n == nil {
		panic("cannot RotateLeft on nil")
	}

	if n.Right == nil {
		panic("cannot RotateLeft with nil right")
	}

	p := n.Right
	n.Right = p.Left
	p.Left = n

	return p
}

// RotateRight rotates a Node to the right and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateRight:
//	  -> n            l
//      / \          / \
//	   l   o   ->   k   n
//	  / \              / \
//	 k   m            m   o
// The left child l is returned from n.RotateRight.
// The ordering invariant k < l < m < n < o is always preserved.
// Any of k, m and o may be nil.
func (n *Node[T, X]) RotateRight() *Node[T, X] {
	if n == nil {
		panic("cannot RotateRight on nil")
	}

	if n.Left == nil {
		panic("cannot RotateRight with nil left")
	}

	l := n.Left
	n.Left = l.Right
	l.Right = n

	return l
}

// RotateLeftRight fixes a left child that leans right.
// The left child is rotated left, then n is rotated right:
//	  -> n              m
//      / \            / \
//	   l   o   ->     l   n
//	  / \            / \ / \
//	 k   m          k  a b  o
//	    / \
//	   a   b
// The left-right grandchild m is returned.
func (n *Node[T, X]) RotateLeftRight() *Node[T, X] {
	if n == nil {
		panic("cannot RotateLeftRight on nil")
	}

	n.Left = n.Left.RotateLeft()
	return n.RotateRight()
}

// RotateRightLeft is the mirror image of RotateLeftRight.
// The right child is rotated right, then n is rotated left,
// and the right-left grandchild is returned.
func (n *Node[T, X]) RotateRightLeft() *Node[T, X] {
	if n == nil {
		panic("cannot RotateRightLeft on nil")
	}

	n.Right = n.Right.RotateRight()
	return n.RotateLeft()
}
