package boardset

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// IsSubsetOf returns true if every bit set in a is also set in b.
func IsSubsetOf(a, b BoardSet) bool {
	for i := range a {
		if a[i]&^b[i] != 0 {
			return false
		}
	}
	return true
}

// IsLessThan returns true if a comes before b in a consistent total order.
// Words are compared as unsigned integers starting from the word holding
// the highest indices; the order is not lexicographic on bit index.
func IsLessThan(a, b BoardSet) bool {
	for i := numWords - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Compare returns -1, 0 or +1 following the order of IsLessThan.
func Compare(a, b BoardSet) int {
	for i := numWords - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Subtract returns the bits of a that are not set in b.
func Subtract(a, b BoardSet) BoardSet {
	for i := range a {
		a[i] &^= b[i]
	}
	return a
}

// SubtractIfLeavesAny stores removeFrom - remove in removeFrom and returns
// true if the difference is not empty. Otherwise removeFrom is not changed
// and false is returned.
func SubtractIfLeavesAny(removeFrom *BoardSet, remove BoardSet) bool {
	diff := Subtract(*removeFrom, remove)
	if diff.IsEmpty() {
		return false
	}
	*removeFrom = diff
	return true
}

// ToIndices returns the indices of the set bits of b in ascending order.
func ToIndices[T constraints.Integer](b BoardSet) []T {
	indices := make([]T, 0, b.Count())
	Each(b, func(index uint) bool {
		indices = append(indices, T(index))
		return true
	})
	return indices
}

// FromIndices returns a BoardSet with exactly the given indices set.
// Repeated indices are harmless. It panics on an index outside [0, Capacity).
func FromIndices[T constraints.Integer](indices []T) BoardSet {
	var b BoardSet
	for _, index := range indices {
		if index < 0 {
			panic(fmt.Sprintf("boardset: negative index %d", index))
		}
		b.Set(uint(index))
	}
	return b
}

// FindSetBit returns the index of the only bit set in b.
// It panics unless exactly one bit is set.
func FindSetBit(b BoardSet) uint {
	if n := b.Count(); n != 1 {
		panic(fmt.Sprintf("boardset: FindSetBit needs exactly one set bit, got %d", n))
	}
	index, _ := FirstSetBit(b)
	return index
}

// FirstSetBit returns the lowest set bit of b. ok is false if b is empty.
func FirstSetBit(b BoardSet) (index uint, ok bool) {
	for i, w := range b {
		if w != 0 {
			return uint(i*wordSize + bits.TrailingZeros64(w)), true
		}
	}
	return 0, false
}

// NextSet returns the first set bit at or after from.
func NextSet(b BoardSet, from uint) (uint, bool) {
	wIdx := int(from >> 6)
	if wIdx >= numWords {
		return 0, false
	}
	if first := b[wIdx] >> (from & 63); first != 0 {
		return from + uint(bits.TrailingZeros64(first)), true
	}
	for i := wIdx + 1; i < numWords; i++ {
		if b[i] != 0 {
			return uint(i*wordSize + bits.TrailingZeros64(b[i])), true
		}
	}
	return 0, false
}

// Each calls fn with every set bit of b in ascending order
// until fn returns false.
func Each(b BoardSet, fn func(index uint) bool) {
	for i, w := range b {
		for w != 0 {
			if !fn(uint(i*wordSize + bits.TrailingZeros64(w))) {
				return
			}
			w &= w - 1
		}
	}
}
