//go:build boardset13x13 && !boardset14x14 && !boardset19x19

package boardset

// Capacity only needs 169+7 bits for 13x13.
const Capacity = 192

// BoardSize is the largest board side this build supports.
const BoardSize = 13
