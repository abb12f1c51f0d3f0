package tree

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Find returns the node in the subtree rooted at n whose key is k,
// or nil if there is no such node.
func (n *Node[T, X]) Find(k T) *Node[T, X] {
	for n != nil {
		switch Compare(k, n.Key) {
		case Less:
			n = n.Left
		case Greater:
			n = n.Right
		case Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Min returns the leftmost node of the subtree rooted at n.
func (n *Node[T, X]) Min() *Node[T, X] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n.
func (n *Node[T, X]) Max() *Node[T, X] {
	if n == nil {
		return nil
	}
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Clone returns a deep copy of the subtree rooted at n.
// The copy shares no nodes with n. Extra is copied by value.
func (n *Node[T, X]) Clone() *Node[T, X] {
	if n == nil {
		return nil
	}

	return &Node[T, X]{
		Key:   n.Key,
		Extra: n.Extra,
		Left:  n.Left.Clone(),
		Right: n.Right.Clone(),
	}
}

// Len counts the nodes in the subtree rooted at n.
func (n *Node[T, X]) Len() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Len() + n.Right.Len()
}

// InOrder applies f to each node of the subtree in key order.
// If f returns false, the walk is stopped early and InOrder
// returns false.
func (n *Node[T, X]) InOrder(f func(*Node[T, X]) bool) bool {
	if n == nil {
		return true
	}

	return n.Left.InOrder(f) && f(n) && n.Right.InOrder(f)
}

// PreOrder applies f to each node, parents before children,
// left subtree before right subtree.
// If f returns false, the walk is stopped early and PreOrder
// returns false.
func (n *Node[T, X]) PreOrder(f func(*Node[T, X]) bool) bool {
	if n == nil {
		return true
	}

	return f(n) && n.Left.PreOrder(f) && n.Right.PreOrder(f)
}

// Sprint returns a string representation of the tree rooted at n.
// label renders a single node; if it is nil, the node key is printed.
// A complete binary tree of 7 keys would look like this:
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func Sprint[T constraints.Ordered, X any](n *Node[T, X], label func(*Node[T, X]) string) string {
	if n == nil {
		return ""
	}

	if label == nil {
		label = func(n *Node[T, X]) string {
			return fmt.Sprint(n.Key)
		}
	}

	var sb strings.Builder
	printvisit(&sb, n, label, "", "", true, false)
	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T constraints.Ordered, X any](
	sb *strings.Builder, n *Node[T, X], label func(*Node[T, X]) string,
	prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(label(n))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, label, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, label, prefix, treeRightBranch, false, false)
	}
}
