package boardset

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var errNoRedisClient = errors.New("boardset: redis client not initialised, call MakeRedisClient first")

// RedisBoardSet is a board set kept in Redis at _key_ so that several
// processes can share it, e.g. an opening book region.
// Bitmaps are Redis strings; offset i of the string is board set index i.
// For more details, please refer https://redis.io/docs/data-types/bitmaps/
type RedisBoardSet struct {
	key string
}

// NewRedisBoardSet creates an empty board set at _key_, or at a random
// key if _key_ is blank. An existing value at _key_ is overwritten.
func NewRedisBoardSet(ctx context.Context, key string) (*RedisBoardSet, error) {
	if key == "" {
		key = generateRandomString(16)
	}
	s := &RedisBoardSet{key}
	if err := s.Store(ctx, BoardSet{}); err != nil {
		return nil, err
	}
	return s, nil
}

// FromRedisKey attaches to a board set already saved at _key_.
func FromRedisKey(ctx context.Context, key string) (*RedisBoardSet, error) {
	client := getRedisClient()
	if client == nil {
		return nil, errNoRedisClient
	}
	n, err := client.Exists(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("boardset: error while checking key %s: %w", key, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("boardset: no board set at key %s", key)
	}
	return &RedisBoardSet{key}, nil
}

// Key gives the key at which the board set is saved in Redis.
func (s *RedisBoardSet) Key() string {
	return s.key
}

func (s *RedisBoardSet) client() (*redis.Client, error) {
	client := getRedisClient()
	if client == nil {
		return nil, errNoRedisClient
	}
	return client, nil
}

// Store replaces the value in Redis with _b_.
func (s *RedisBoardSet) Store(ctx context.Context, b BoardSet) error {
	client, err := s.client()
	if err != nil {
		return err
	}
	data := make([]byte, numBytes)
	ToBytes(b, data, Capacity)
	reverseBits(data)
	log.Debug().Str("key", s.key).Uint("count", b.Count()).Msg("storing board set")
	if err := client.Set(ctx, s.key, string(data), 0).Err(); err != nil {
		return fmt.Errorf("boardset: error while storing key %s: %w", s.key, err)
	}
	return nil
}

// Load reads the whole board set from Redis.
func (s *RedisBoardSet) Load(ctx context.Context) (BoardSet, error) {
	client, err := s.client()
	if err != nil {
		return BoardSet{}, err
	}
	val, err := client.Get(ctx, s.key).Result()
	if err != nil {
		return BoardSet{}, fmt.Errorf("boardset: error while loading key %s: %w", s.key, err)
	}
	if len(val) > numBytes {
		return BoardSet{}, fmt.Errorf("boardset: key %s holds %d bytes: %w", s.key, len(val), ErrTooWide)
	}
	data := make([]byte, numBytes)
	copy(data, val)
	reverseBits(data)
	log.Debug().Str("key", s.key).Msg("loaded board set")
	return FromBytes(data, Capacity)
}

// Has checks if the bit at _index_ is set. It panics if index >= Capacity.
func (s *RedisBoardSet) Has(ctx context.Context, index uint) (bool, error) {
	checkIndex(index)
	client, err := s.client()
	if err != nil {
		return false, err
	}
	val, err := client.GetBit(ctx, s.key, int64(index)).Result()
	if err != nil {
		return false, err
	}
	return val != 0, nil
}

// HasMulti checks the bits at _indexes_ in a single round trip.
func (s *RedisBoardSet) HasMulti(ctx context.Context, indexes []uint) ([]bool, error) {
	if len(indexes) == 0 {
		return nil, fmt.Errorf("boardset: at least 1 index is required")
	}
	client, err := s.client()
	if err != nil {
		return nil, err
	}
	pipe := client.Pipeline()
	values := make([]*redis.IntCmd, len(indexes))
	for i, index := range indexes {
		checkIndex(index)
		values[i] = pipe.GetBit(ctx, s.key, int64(index))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	result := make([]bool, len(values))
	for i := range values {
		result[i] = values[i].Val() != 0
	}
	return result, nil
}

// Insert sets the bit at _index_. It panics if index >= Capacity.
func (s *RedisBoardSet) Insert(ctx context.Context, index uint) error {
	return s.setBit(ctx, index, 1)
}

// Remove clears the bit at _index_. It panics if index >= Capacity.
func (s *RedisBoardSet) Remove(ctx context.Context, index uint) error {
	return s.setBit(ctx, index, 0)
}

func (s *RedisBoardSet) setBit(ctx context.Context, index uint, value int) error {
	checkIndex(index)
	client, err := s.client()
	if err != nil {
		return err
	}
	return client.SetBit(ctx, s.key, int64(index), value).Err()
}

// InsertMulti sets the bits at _indexes_ in a single round trip.
func (s *RedisBoardSet) InsertMulti(ctx context.Context, indexes []uint) error {
	if len(indexes) == 0 {
		return fmt.Errorf("boardset: at least 1 index is required")
	}
	client, err := s.client()
	if err != nil {
		return err
	}
	pipe := client.Pipeline()
	for _, index := range indexes {
		checkIndex(index)
		pipe.SetBit(ctx, s.key, int64(index), 1)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// BitCount returns the number of set bits.
func (s *RedisBoardSet) BitCount(ctx context.Context) (uint, error) {
	client, err := s.client()
	if err != nil {
		return 0, err
	}
	bitRange := &redis.BitCount{Start: 0, End: -1}
	val, err := client.BitCount(ctx, s.key, bitRange).Result()
	if err != nil {
		return 0, err
	}
	return uint(val), nil
}

// FirstSet returns the lowest set bit. ok is false if no bit is set.
func (s *RedisBoardSet) FirstSet(ctx context.Context) (index uint, ok bool, err error) {
	client, err := s.client()
	if err != nil {
		return 0, false, err
	}
	pos, err := client.BitPos(ctx, s.key, 1).Result()
	if err != nil {
		return 0, false, err
	}
	if pos < 0 {
		return 0, false, nil
	}
	return uint(pos), true, nil
}

// Delete removes the key from Redis.
func (s *RedisBoardSet) Delete(ctx context.Context) error {
	client, err := s.client()
	if err != nil {
		return err
	}
	return client.Del(ctx, s.key).Err()
}
