package boardset

import "errors"

var (
	// ErrMalformedHex is returned when a hex string has odd length or a non-hex digit.
	ErrMalformedHex = errors.New("malformed hex")

	// ErrTooWide is returned when decoded data holds more bits than Capacity.
	ErrTooWide = errors.New("data exceeds board set capacity")

	// ErrShortBuffer is returned when fewer bytes are given than the bit count needs.
	ErrShortBuffer = errors.New("short buffer")
)
