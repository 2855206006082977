package boardset

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
)

func bytesFor(numBits uint) int {
	return int((numBits + 7) / 8)
}

// ToBytes packs the bottom numBits of b into out, bit 0 of b going to
// bit 0 of out[0] and bit 8 to bit 0 of out[1]. Unused bits of the last
// byte are zero. It panics if numBits > Capacity or out is too short.
func ToBytes(b BoardSet, out []byte, numBits uint) {
	if numBits > Capacity {
		panic(fmt.Sprintf("boardset: %d bits exceed capacity %d", numBits, Capacity))
	}
	n := bytesFor(numBits)
	if len(out) < n {
		panic(fmt.Sprintf("boardset: buffer of %d bytes cannot hold %d bits", len(out), numBits))
	}
	for i := 0; i < n; i++ {
		out[i] = byte(b[i/wordBytes] >> ((i % wordBytes) * 8))
	}
	if rem := numBits % 8; rem != 0 {
		out[n-1] &= 1<<rem - 1
	}
}

// FromBytes unpacks numBits bits laid out as by ToBytes.
func FromBytes(data []byte, numBits uint) (BoardSet, error) {
	var b BoardSet
	if numBits > Capacity {
		return b, fmt.Errorf("boardset: cannot read %d bits: %w", numBits, ErrTooWide)
	}
	n := bytesFor(numBits)
	if len(data) < n {
		return b, fmt.Errorf("boardset: %d bits need %d bytes, got %d: %w", numBits, n, len(data), ErrShortBuffer)
	}
	for i := 0; i < n; i++ {
		v := data[i]
		if i == n-1 && numBits%8 != 0 {
			v &= 1<<(numBits%8) - 1
		}
		b[i/wordBytes] |= uint64(v) << ((i % wordBytes) * 8)
	}
	return b, nil
}

// ToHex renders the bottom numBits of b as lowercase hex, two digits per
// byte of ToBytes, high nibble first.
func ToHex(b BoardSet, numBits uint) string {
	buf := make([]byte, bytesFor(numBits))
	ToBytes(b, buf, numBits)
	return hex.EncodeToString(buf)
}

// FromHex parses a string produced by ToHex.
func FromHex(s string) (BoardSet, error) {
	if len(s)%2 != 0 {
		return BoardSet{}, fmt.Errorf("boardset: odd hex length %d: %w", len(s), ErrMalformedHex)
	}
	if uint(len(s))*4 > Capacity {
		return BoardSet{}, fmt.Errorf("boardset: hex of %d digits: %w", len(s), ErrTooWide)
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return BoardSet{}, fmt.Errorf("boardset: %v: %w", err, ErrMalformedHex)
	}
	return FromBytes(data, uint(len(data))*8)
}

func (b BoardSet) MarshalText() ([]byte, error) {
	return []byte(ToHex(b, Capacity)), nil
}

func (b *BoardSet) UnmarshalText(text []byte) error {
	v, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// MarshalJSON encodes b as a JSON string holding its hex form.
func (b BoardSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToHex(b, Capacity))
}

func (b *BoardSet) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return b.UnmarshalText([]byte(s))
}

// MarshalBinary returns an 8 byte big-endian bit count followed by the packed bits.
func (b BoardSet) MarshalBinary() ([]byte, error) {
	data := make([]byte, wordBytes+numBytes)
	binary.BigEndian.PutUint64(data, uint64(Capacity))
	ToBytes(b, data[wordBytes:], Capacity)
	return data, nil
}

func (b *BoardSet) UnmarshalBinary(data []byte) error {
	if len(data) < wordBytes {
		return fmt.Errorf("boardset: missing size header: %w", ErrShortBuffer)
	}
	size := binary.BigEndian.Uint64(data[:wordBytes])
	if size > Capacity {
		return fmt.Errorf("boardset: stored size %d: %w", size, ErrTooWide)
	}
	v, err := FromBytes(data[wordBytes:], uint(size))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// WriteTo writes the binary form of b to stream and returns the number of bytes written.
func (b *BoardSet) WriteTo(stream io.Writer) (int64, error) {
	data, _ := b.MarshalBinary()
	n, err := stream.Write(data)
	return int64(n), err
}

// ReadFrom reads a board set written by WriteTo and returns the number of bytes read.
func (b *BoardSet) ReadFrom(stream io.Reader) (int64, error) {
	var size uint64
	err := binary.Read(stream, binary.BigEndian, &size)
	if err != nil {
		return 0, err
	}
	if size > Capacity {
		return int64(wordBytes), fmt.Errorf("boardset: stored size %d: %w", size, ErrTooWide)
	}
	buf := make([]byte, bytesFor(uint(size)))
	n, err := io.ReadFull(stream, buf)
	if err != nil {
		return int64(wordBytes + n), err
	}
	v, err := FromBytes(buf, uint(size))
	if err != nil {
		return int64(wordBytes + n), err
	}
	*b = v
	return int64(wordBytes + n), nil
}
