package hashtable

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Integer hashes an integer key to itself, so keys congruent modulo the
// capacity share a home slot.
func Integer[K constraints.Integer](key K) uint64 {
	return uint64(key)
}

// Float hashes the IEEE-754 bits of key with xxhash. +0 and −0 hash alike
// because they compare equal.
func Float[K constraints.Float](key K) uint64 {
	f := float64(key)
	if f == 0 {
		f = 0
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))

	return xxhash.Sum64(buf[:])
}

// String hashes key with xxhash.
func String(key string) uint64 {
	return xxhash.Sum64String(key)
}
