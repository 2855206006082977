/*
Package boardset implements a fixed-capacity bitset for the cells of a game board.
The capacity is chosen once per build with a build tag (boardset13x13, boardset14x14,
boardset19x19; 11x11 by default) so every BoardSet in a binary has the same width
and two sets can always be combined word by word.
*/
package boardset

import (
	"fmt"
	"math/bits"
	"strings"
)

const wordSize = 64
const wordBytes = wordSize / 8

const numWords = (Capacity + wordSize - 1) / wordSize

// numBytes is the length of the packed form of a full BoardSet.
const numBytes = (Capacity + 7) / 8

// BoardSet is a set of cell indices in [0, Capacity).
// Word w holds bits 64*w through 64*w+63 with bit i stored
// as 1<<(i%64) of word i/64.
// The zero value is the empty set.
type BoardSet [numWords]uint64

// topMask clears the unused high bits of the last word when
// Capacity is not a multiple of the word size.
var topMask = func() uint64 {
	if Capacity%wordSize == 0 {
		return ^uint64(0)
	}
	return 1<<(Capacity%wordSize) - 1
}()

// Empty returns a BoardSet with no bits set.
func Empty() BoardSet {
	return BoardSet{}
}

func checkIndex(index uint) {
	if index >= Capacity {
		panic(fmt.Sprintf("boardset: index %d out of range [0, %d)", index, Capacity))
	}
}

// Set sets the bit at index. It panics if index >= Capacity.
func (b *BoardSet) Set(index uint) {
	checkIndex(index)
	b[index>>6] |= 1 << (index & 63)
}

// Clear clears the bit at index. It panics if index >= Capacity.
func (b *BoardSet) Clear(index uint) {
	checkIndex(index)
	b[index>>6] &^= 1 << (index & 63)
}

// Test reports whether the bit at index is set. It panics if index >= Capacity.
func (b BoardSet) Test(index uint) bool {
	checkIndex(index)
	return b[index>>6]&(1<<(index&63)) != 0
}

// Count returns the number of set bits.
func (b BoardSet) Count() uint {
	var n int
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return uint(n)
}

func (b BoardSet) And(other BoardSet) BoardSet {
	for i := range b {
		b[i] &= other[i]
	}
	return b
}

func (b BoardSet) Or(other BoardSet) BoardSet {
	for i := range b {
		b[i] |= other[i]
	}
	return b
}

func (b BoardSet) Xor(other BoardSet) BoardSet {
	for i := range b {
		b[i] ^= other[i]
	}
	return b
}

// Not returns the complement of b within [0, Capacity).
func (b BoardSet) Not() BoardSet {
	for i := range b {
		b[i] = ^b[i]
	}
	b[numWords-1] &= topMask
	return b
}

// Equal compares the full bit pattern of both sets.
func (b BoardSet) Equal(other BoardSet) bool {
	return b == other
}

func (b BoardSet) IsEmpty() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}
	return true
}

// Any reports whether at least one bit is set.
func (b BoardSet) Any() bool {
	return !b.IsEmpty()
}

// String lists the set indices, e.g. "[0 5 127]".
func (b BoardSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	Each(b, func(index uint) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%d", index)
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
