package binary

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestShuffled(t *testing.T) {
	a := Shuffled(50, 42)
	b := Shuffled(50, 42)
	assert.Equal(t, a, b, "same seed, different order")

	sorted := slices.Clone(a)
	slices.Sort(sorted)
	for i, k := range sorted {
		require.Equal(t, i, k)
	}
}

func TestBuildRandom(t *testing.T) {
	const size = 100
	tr := BuildRandom(size, 0x123456789abcdef0)
	assert.Equal(t, size, tr.Len())

	var in []int
	tr.InOrder(func(k int) bool {
		in = append(in, k)
		return true
	})
	require.Len(t, in, size)
	for i, k := range in {
		assert.Equal(t, i, k)
	}

	var pre []int
	tr.PreOrder(func(k int) bool {
		pre = append(pre, k)
		return true
	})
	assert.Equal(t, Shuffled(size, 0x123456789abcdef0)[0], pre[0], "first key inserted is the root")
}

func TestBuildRandomBalanced(t *testing.T) {
	tr, attempts, err := BuildRandomBalanced(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, attempts, 1)
	assert.True(t, tr.Balanced())
	assert.Equal(t, 7, tr.Len())
}

func TestBuildRandomBalanced_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr, attempts, err := BuildRandomBalanced(ctx, 1000, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, tr)
	assert.Equal(t, 0, attempts)
}

var trForBench *Tree[int]

func BenchmarkBuildRandom(b *testing.B) {
	sizes := []int{10, 100, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				trForBench = BuildRandom(size, int64(i))
			}
		})
	}
}
