// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

package hamt

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"

	"github.com/masslbs/phamt/internal/enc"
)

// Hasher supplies a deterministic 32-bit hash for a key. Hash equality must
// be implied by key equality; the converse need not hold — two unequal
// keys are free to collide, and the container handles that via collision
// nodes rather than requiring hash quality from K.
type Hasher[K any] interface {
	Hash32(key K) uint32
}

// HasherFunc adapts a plain function to the Hasher interface.
type HasherFunc[K any] func(K) uint32

// Hash32 implements Hasher.
func (f HasherFunc[K]) Hash32(key K) uint32 { return f(key) }

// XXHash32 hashes a key by turning it into bytes (see keyBytes: strings and
// byte slices as they are, anything else canonically encoded via
// internal/enc) and truncating a 64-bit xxhash to its low 32 bits, per the re-parameterization
// the container's 32-bit hash assumption calls for when the host language's
// natural hash is wider. This is the default hasher for every Map.
type XXHash32[K any] struct{}

// Hash32 implements Hasher.
func (XXHash32[K]) Hash32(key K) uint32 {
	return uint32(xxhash.Sum64(keyBytes(key)))
}

// Murmur32 hashes a key with a native 32-bit MurmurHash3, for callers who
// want a hash that was never wider than 32 bits to begin with rather than a
// truncated 64-bit one.
type Murmur32[K any] struct{}

// Hash32 implements Hasher.
func (Murmur32[K]) Hash32(key K) uint32 {
	return murmur3.Sum32(keyBytes(key))
}

// keyBytes turns an arbitrary key into the bytes a Hasher mixes. []byte and
// string keys are used directly, matching how the donor HAMT hashes its
// []byte keys with no intermediate encoding step; every other key type is
// canonically CBOR-encoded.
func keyBytes[K any](key K) []byte {
	switch v := any(key).(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		data, err := enc.Marshal(key)
		if err != nil {
			panic(err)
		}
		return data
	}
}

// hashState walks the bits of a cached 32-bit hash five at a time, one call
// to next per trie level, mirroring the donor HAMT's hashState.next() bit
// walk (adapted from 6-bit SHA-256 chunking down to the 5-bit/32-bit shape
// spec.md requires).
type hashState struct {
	hash     uint32
	consumed uint
}

func newHashState(hash uint32) hashState {
	return hashState{hash: hash}
}

func (hs *hashState) next() uint32 {
	slot := (hs.hash >> hs.consumed) & slotMask
	hs.consumed += bitsPerLevel
	return slot
}
