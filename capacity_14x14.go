//go:build boardset14x14 && !boardset19x19

package boardset

// Capacity only needs 196+7 bits for 14x14.
const Capacity = 224

// BoardSize is the largest board side this build supports.
const BoardSize = 14
