// Package hash provides series name hashing for the blob format.
package hash

import "github.com/cespare/xxhash/v2"

// SeriesID computes the xxHash64 of the given series name.
//
// The blob format stores only the 64-bit ID, never the name; callers that
// need name-based lookups must hash with the same function on both sides.
func SeriesID(name string) uint64 {
	return xxhash.Sum64String(name)
}
