package avl

import "errors"

var (
	// ErrEmpty is returned when removing the smallest or largest key
	// of a tree that has no keys.
	ErrEmpty = errors.New("avl: tree is empty")

	// ErrNotFound is returned by Delete when the key is not in the tree.
	ErrNotFound = errors.New("avl: key not found")

	// ErrInconsistent is wrapped by the errors returned from Check.
	ErrInconsistent = errors.New("avl: inconsistent tree")
)
