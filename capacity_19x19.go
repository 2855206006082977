//go:build boardset19x19

package boardset

// Capacity only needs 361+7 bits for 19x19.
const Capacity = 384

// BoardSize is the largest board side this build supports.
const BoardSize = 19
