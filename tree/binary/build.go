package binary

import (
	"context"
	"math/rand"
)

// Shuffled returns the keys [0, num) in a random order.
// The seed for the random order is a parameter,
// which ensures repeatable results.
func Shuffled(num int, seed int64) []int {
	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, num)
	for i := 0; i < num; i++ {
		keys[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	return keys
}

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in the
// order given by Shuffled(num, seed).
func BuildRandom(num int, seed int64) *Tree[int] {
	tr := &Tree[int]{}
	for _, n := range Shuffled(num, seed) {
		tr.Insert(n)
	}

	return tr
}

// BuildRandomBalanced builds a balanced binary tree with num nodes
// by retrying random insert orders until one happens to produce a
// balanced tree.
// Node keys are in the range [0, num).
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned. Large trees are rarely
// balanced by chance, so the search gives up with ctx.Err()
// when ctx is done.
func BuildRandomBalanced(ctx context.Context, num int, seed int64) (*Tree[int], int, error) {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	var tr *Tree[int]
	attempts := 0

	for tr == nil || !tr.Balanced() {
		if err := ctx.Err(); err != nil {
			return nil, attempts, err
		}
		attempts++

		rd.Shuffle(num, func(i, j int) {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		})

		tr = &Tree[int]{}
		for _, n := range nodes {
			tr.Insert(n)
		}
	}

	return tr, attempts, nil
}
