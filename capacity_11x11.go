//go:build !boardset13x13 && !boardset14x14 && !boardset19x19

package boardset

// Capacity fits an 11x11 board exactly.
const Capacity = 128

// BoardSize is the largest board side this build supports.
const BoardSize = 11
