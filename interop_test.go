package boardset

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBitSet(t *testing.T) {
	b := FromIndices([]int{0, 5, 64, Capacity - 1})
	s := ToBitSet(b)
	assert.Equal(t, uint(Capacity), s.Len())
	assert.Equal(t, uint(4), s.Count())
	for _, i := range []uint{0, 5, 64, Capacity - 1} {
		assert.True(t, s.Test(i), "bit %d", i)
	}
	s.Set(6)
	assert.False(t, b.Test(6), "bitset must not share memory with the board set")
}

func TestFromBitSet(t *testing.T) {
	for n := 0; n < trials; n++ {
		b := randomBoardSet()
		got, err := FromBitSet(ToBitSet(b))
		require.NoError(t, err)
		require.Equal(t, b, got)
	}

	s := bitset.New(Capacity + 10)
	s.Set(3).Set(Capacity + 2)
	_, err := FromBitSet(s)
	assert.ErrorIs(t, err, ErrTooWide)

	got, err := FromBitSet(bitset.New(0))
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestIsSubsetOfMatchesBitSet(t *testing.T) {
	for n := 0; n < trials; n++ {
		a, b := sparseBoardSet(4), sparseBoardSet(50)
		require.Equal(t, ToBitSet(b).IsSuperSet(ToBitSet(a)), IsSubsetOf(a, b))
		require.Equal(t, ToBitSet(a).Difference(ToBitSet(b)).Count(), Subtract(a, b).Count())
	}
}
