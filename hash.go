package strong

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Hash returns the hash of the wrapped primitive under seed; it equals
// maphash.Comparable(seed, x.Get()), so x collides exactly where the primitive does.
func (x Int[P, Tag]) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, x.v) }

// Hash is Int.Hash for floating values. +0 and -0 hash alike.
func (x Float[P, Tag]) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, x.v) }

// Sum64 returns the xxhash of the little-endian bytes of the wrapped primitive.
// Unlike Hash it needs no seed and is stable across processes and platforms.
func (x Int[P, Tag]) Sum64() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(x.v))
	return xxhash.Sum64(buf[:unsafe.Sizeof(x.v)])
}

// Sum64 is Int.Sum64 for floating values. +0 and -0 hash alike.
func (x Float[P, Tag]) Sum64() uint64 {
	v := x.v
	if v == 0 {
		v = 0
	}
	var buf [8]byte
	if unsafe.Sizeof(v) == 4 {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(v)))
		return xxhash.Sum64(buf[:4])
	}
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(v)))
	return xxhash.Sum64(buf[:])
}

// Hashable is implemented by Int and Float.
type Hashable interface {
	comparable
	Hash(seed maphash.Seed) uint64
}

// Hasher is a seeded hash function for building hash-based containers keyed by
// strong values. The zero Hasher is not usable; create one with NewHasher.
type Hasher[K Hashable] struct {
	seed maphash.Seed
}

// NewHasher returns a Hasher with a random seed.
func NewHasher[K Hashable]() Hasher[K] {
	return Hasher[K]{seed: maphash.MakeSeed()}
}

// Sum returns the hash of k.
func (h Hasher[K]) Sum(k K) uint64 { return k.Hash(h.seed) }

// Seed returns the seed h hashes with.
func (h Hasher[K]) Seed() maphash.Seed { return h.seed }
