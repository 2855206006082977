package boardset

import (
	"math"
	"math/bits"

	"lukechampine.com/frand"
)

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func calculateFilterSize(length uint, errorRate float64) uint {
	return uint(math.Ceil(-((float64(length) * math.Log(errorRate)) / math.Pow(math.Log(2), 2))))
}

func calculateNumHashes(size, length uint) uint {
	return uint(math.Ceil(float64(size/length) * math.Log(2)))
}

func maxUint(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}

// generateRandomString returns n random letters, used for Redis keys.
func generateRandomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[frand.Intn(len(letterBytes))]
	}
	return string(b)
}

// reverseBits swaps between the bit order of ToBytes and the
// most-significant-first order Redis uses for bit offsets.
func reverseBits(data []byte) {
	for i := range data {
		data[i] = bits.Reverse8(data[i])
	}
}
