// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

package hamt

import "math/bits"

// slotFor extracts the five hash bits starting at shift, the virtual slot
// (0..31) a key occupies at a given trie level.
func slotFor(hash uint32, shift uint) uint32 {
	return (hash >> shift) & slotMask
}

// bitFor returns the occupancy bit for a virtual slot.
func bitFor(slot uint32) uint32 {
	return 1 << slot
}

// physicalIndex translates an occupancy bit into a branch's dense child
// array via a popcount of the bitmap masked below that bit. Callers must
// have already confirmed the bit is set; physicalIndex does not check.
func physicalIndex(bitmap uint32, bit uint32) int {
	return bits.OnesCount32(bitmap & (bit - 1))
}

// replaceAt returns a new slice equal to children except index i holds
// node. Length is unchanged. children is never mutated.
func replaceAt[K comparable, V any](children []*trieNode[K, V], i int, node *trieNode[K, V]) []*trieNode[K, V] {
	out := make([]*trieNode[K, V], len(children))
	copy(out, children)
	out[i] = node
	return out
}

// insertAt returns a new slice of length len(children)+1 with node inserted
// at position i, preserving the order of every other element. children is
// never mutated.
func insertAt[K comparable, V any](children []*trieNode[K, V], i int, node *trieNode[K, V]) []*trieNode[K, V] {
	out := make([]*trieNode[K, V], len(children)+1)
	copy(out, children[:i])
	out[i] = node
	copy(out[i+1:], children[i:])
	return out
}

// removeAt returns a new slice of length len(children)-1 with position i
// elided, preserving order. children is never mutated.
func removeAt[K comparable, V any](children []*trieNode[K, V], i int) []*trieNode[K, V] {
	out := make([]*trieNode[K, V], len(children)-1)
	copy(out, children[:i])
	copy(out[i:], children[i+1:])
	return out
}

func singletonSlice[K comparable, V any](node *trieNode[K, V]) []*trieNode[K, V] {
	return []*trieNode[K, V]{node}
}

func pairSlice[K comparable, V any](first, second *trieNode[K, V]) []*trieNode[K, V] {
	return []*trieNode[K, V]{first, second}
}
