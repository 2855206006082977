package boardset

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/dgryski/go-metro"
	"github.com/rs/zerolog/log"
)

// BoardFilter is a Bloom filter of board sets, e.g. the positions a search
// has already expanded. _size_ is the number of bits in the filter and
// _numHashes_ the number of hash functions applied to every board set.
// Lookups may give false positives but never false negatives.
type BoardFilter struct {
	size      uint
	numHashes uint
	filter    *bitset.BitSet
	lock      sync.RWMutex
}

// NewBoardFilter creates a filter of _size_ bits using _numHashes_ hashes.
// Both are raised to at least 1.
func NewBoardFilter(size, numHashes uint) *BoardFilter {
	size = maxUint(size, 1)
	return &BoardFilter{
		size:      size,
		numHashes: maxUint(numHashes, 1),
		filter:    bitset.New(size),
	}
}

// NewBoardFilterWithParameters sizes a filter for _numItems_ board sets
// at the acceptable false positive rate _errorRate_.
func NewBoardFilterWithParameters(numItems uint, errorRate float64) (*BoardFilter, error) {
	if errorRate <= 0 || errorRate >= 1 {
		return nil, fmt.Errorf("boardset: error rate %v must be within (0, 1)", errorRate)
	}
	numItems = maxUint(numItems, 1)
	size := calculateFilterSize(numItems, errorRate)
	numHashes := calculateNumHashes(size, numItems)
	return NewBoardFilter(size, numHashes), nil
}

// Insert adds _b_ to the filter.
func (f *BoardFilter) Insert(b BoardSet) *BoardFilter {
	f.lock.Lock()
	defer f.lock.Unlock()

	hashes := getHashes(b)
	for i := uint(0); i < f.numHashes; i++ {
		f.filter.Set(f.getIndex(hashes, i))
	}
	return f
}

// Lookup returns true if _b_ may have been inserted, false if it surely was not.
func (f *BoardFilter) Lookup(b BoardSet) bool {
	f.lock.RLock()
	defer f.lock.RUnlock()

	hashes := getHashes(b)
	for i := uint(0); i < f.numHashes; i++ {
		if !f.filter.Test(f.getIndex(hashes, i)) {
			return false
		}
	}
	return true
}

func (f *BoardFilter) GetCap() uint {
	return f.size
}

func (f *BoardFilter) GetNumHashes() uint {
	return f.numHashes
}

// PositiveRate returns the current false positive rate of the filter.
func (f *BoardFilter) PositiveRate() float64 {
	f.lock.RLock()
	defer f.lock.RUnlock()
	length := f.filter.Count()
	return math.Pow(1-math.Exp(-float64(length)/float64(f.size)), float64(f.numHashes))
}

// Equals checks if two filters have the same parameters and bits.
func (f *BoardFilter) Equals(other *BoardFilter) bool {
	if f == other {
		return true
	}
	f.lock.RLock()
	defer f.lock.RUnlock()
	other.lock.RLock()
	defer other.lock.RUnlock()
	if f.size != other.size || f.numHashes != other.numHashes {
		return false
	}
	return f.filter.Equal(other.filter)
}

// internal type used to marshal/unmarshal BoardFilter
type boardFilterType struct {
	M uint            `json:"m"`
	K uint            `json:"k"`
	B json.RawMessage `json:"b"`
}

// Export JSON marshals the filter.
func (f *BoardFilter) Export() ([]byte, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	data, err := f.filter.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(boardFilterType{f.size, f.numHashes, data})
}

// Import replaces the filter with JSON produced by Export.
func (f *BoardFilter) Import(data []byte) error {
	var t boardFilterType
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	if t.M == 0 || t.K == 0 {
		return fmt.Errorf("boardset: invalid filter parameters m=%d k=%d", t.M, t.K)
	}
	set := &bitset.BitSet{}
	if err := set.UnmarshalJSON(t.B); err != nil {
		return err
	}
	f.lock.Lock()
	defer f.lock.Unlock()
	f.size = t.M
	f.numHashes = t.K
	f.filter = set
	log.Debug().Uint("size", f.size).Uint("numHashes", f.numHashes).Msg("imported board filter")
	return nil
}

// WriteTo writes the filter onto _stream_ and returns the number of bytes written.
func (f *BoardFilter) WriteTo(stream io.Writer) (int64, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	err := binary.Write(stream, binary.BigEndian, uint64(f.size))
	if err != nil {
		return 0, err
	}
	err = binary.Write(stream, binary.BigEndian, uint64(f.numHashes))
	if err != nil {
		return wordBytes, err
	}
	n, err := f.filter.WriteTo(stream)
	return n + 2*wordBytes, err
}

// ReadFrom reads a filter written by WriteTo and returns the number of bytes read.
func (f *BoardFilter) ReadFrom(stream io.Reader) (int64, error) {
	var size, numHashes uint64
	err := binary.Read(stream, binary.BigEndian, &size)
	if err != nil {
		return 0, err
	}
	err = binary.Read(stream, binary.BigEndian, &numHashes)
	if err != nil {
		return wordBytes, err
	}
	if size == 0 || numHashes == 0 {
		return 2 * wordBytes, fmt.Errorf("boardset: invalid filter parameters m=%d k=%d", size, numHashes)
	}
	set := &bitset.BitSet{}
	n, err := set.ReadFrom(stream)
	if err != nil {
		return n + 2*wordBytes, err
	}
	f.lock.Lock()
	defer f.lock.Unlock()
	f.size = uint(size)
	f.numHashes = uint(numHashes)
	f.filter = set
	return n + 2*wordBytes, nil
}

func getHashes(b BoardSet) [2]uint64 {
	var buf [numBytes]byte
	ToBytes(b, buf[:], Capacity)
	hash1, hash2 := metro.Hash128(buf[:], 1373)
	return [2]uint64{hash1, hash2}
}

// getIndex is enhanced double hashing: h1 + i*h2 + (i^3-i)/6.
func (f *BoardFilter) getIndex(hashes [2]uint64, i uint) uint {
	j := uint64(i)
	return uint((hashes[0] + j*hashes[1] + (j*j*j-j)/6) % uint64(f.size))
}
