// Package avl provides an ordered set of distinct keys stored in an
// AVL tree. Insert, Contains and all deletions run in O(log n): after
// every change the tree is rebalanced on the way back up to the root,
// so that the heights of the two subtrees of any node differ by at
// most one.
//
// Note: a Tree is not safe for concurrent use. Either access it from
// a single goroutine, or guard it with a sync.Mutex. Separate trees
// share nothing and may be used from separate goroutines.
package avl
