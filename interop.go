package boardset

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ToBitSet copies b into a general purpose bitset of length Capacity.
func ToBitSet(b BoardSet) *bitset.BitSet {
	words := make([]uint64, numWords)
	copy(words, b[:])
	return bitset.From(words).Shrink(Capacity - 1)
}

// FromBitSet copies the set bits of s into a BoardSet. It fails with
// ErrTooWide if s has a bit set at or beyond Capacity.
func FromBitSet(s *bitset.BitSet) (BoardSet, error) {
	var b BoardSet
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		if i >= Capacity {
			return BoardSet{}, fmt.Errorf("boardset: bit %d set: %w", i, ErrTooWide)
		}
		b[i>>6] |= 1 << (i & 63)
	}
	return b, nil
}
