package umap

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// HashFunc computes a 64-bit hash of a key. It must be deterministic for
// the lifetime of the map using it: equal keys must hash equally on every
// call. Pass one to NewWithHasher to override the built-in hashing.
type HashFunc[K comparable] func(key K) uint64

// defaultHasher picks a hash function for K. String keys go through
// xxhash, the common integer kinds through a murmur-style finalizer, and
// any other comparable kind falls back to maphash.Comparable. Each
// returned function carries its own random salt, so distinct maps see
// distinct bucket distributions.
func defaultHasher[K comparable]() HashFunc[K] {
	salt := rand.Uint64()
	seed := maphash.MakeSeed()
	var zero K
	switch any(zero).(type) {
	case string:
		return func(key K) uint64 {
			return mix64(salt ^ xxhash.Sum64String(any(key).(string)))
		}
	case int:
		return func(key K) uint64 {
			return mix64(salt ^ uint64(any(key).(int)))
		}
	case int32:
		return func(key K) uint64 {
			return mix64(salt ^ uint64(any(key).(int32)))
		}
	case int64:
		return func(key K) uint64 {
			return mix64(salt ^ uint64(any(key).(int64)))
		}
	case uint:
		return func(key K) uint64 {
			return mix64(salt ^ uint64(any(key).(uint)))
		}
	case uint32:
		return func(key K) uint64 {
			return mix64(salt ^ uint64(any(key).(uint32)))
		}
	case uint64:
		return func(key K) uint64 {
			return mix64(salt ^ any(key).(uint64))
		}
	case uintptr:
		return func(key K) uint64 {
			return mix64(salt ^ uint64(any(key).(uintptr)))
		}
	default:
		return func(key K) uint64 {
			return maphash.Comparable(seed, key)
		}
	}
}

// mix64 is the 64-bit murmur3 finalizer. It spreads entropy across all
// bits so that the modulo bucket reduction sees a well-mixed value even
// for sequential integer keys.
func mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}
