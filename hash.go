package boardset

import "github.com/cespare/xxhash/v2"

// Hash returns a 64-bit hash of the full bit pattern of b.
// Equal sets always hash equally.
func (b BoardSet) Hash() uint64 {
	var buf [numBytes]byte
	ToBytes(b, buf[:], Capacity)
	return xxhash.Sum64(buf[:])
}
