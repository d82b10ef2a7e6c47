package hashfunc

import (
	"hash/crc32"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher - Interface that permits a container to be supplied with a custom hash function suited for its
// particular distribution of values. The container reduces the returned value to a bucket or slot index by
// taking its absolute value modulo the container capacity, so any int64 (negative included) is a valid result.
//
// Equal values must produce equal hashes. Two different values may produce the same hash, containers compare
// values with == to tell them apart.
type Hasher[T any] interface {
	// Hash - Returns the hash value of the given value
	Hash(value T) int64
}

// HasherFunc - Adapter that lets an ordinary function be used as a Hasher
type HasherFunc[T any] func(value T) int64

// Hash - Calls f(value)
func (f HasherFunc[T]) Hash(value T) int64 {
	return f(value)
}

// String - Returns a Hasher for strings based on xxhash64
func String() Hasher[string] {
	return HasherFunc[string](func(value string) int64 {
		return int64(xxhash.Sum64String(value))
	})
}

// Bytes - Returns a Hasher for byte slices based on crc32.ChecksumIEEE
func Bytes() Hasher[[]byte] {
	return HasherFunc[[]byte](func(value []byte) int64 {
		return int64(crc32.ChecksumIEEE(value))
	})
}

// Integer - Returns a Hasher for integer types that uses the integer value itself as hash.
// This makes bucket and slot placement predictable, value v lands in |v| mod capacity.
func Integer[T constraints.Integer]() Hasher[T] {
	return HasherFunc[T](func(value T) int64 {
		return int64(value)
	})
}

// Comparable - Returns a Hasher for any comparable type based on maphash.Comparable.
// The seed is created when the Hasher is created, so hash values are stable for the lifetime of the Hasher
// but differ between Hasher instances and between processes.
func Comparable[T comparable]() Hasher[T] {
	seed := maphash.MakeSeed()
	return HasherFunc[T](func(value T) int64 {
		return int64(maphash.Comparable(seed, value))
	})
}
