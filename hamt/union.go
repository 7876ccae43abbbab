// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

package hamt

import "math/bits"

// UnionWith merges left and right into a single map. Where both maps bind
// the same key, the stored value becomes combine(leftValue, rightValue);
// where only one map binds it, that map's value is kept unchanged.
func UnionWith[K comparable, V any](combine func(left, right V) V, left, right *Map[K, V]) *Map[K, V] {
	root, size := unionNode(0, left.root, right.root, combine)
	m := left.clone(root, size)
	return m
}

// Union merges left and right, preferring left's value whenever both maps
// bind the same key. Union is UnionWith with a combiner that always picks
// the left value.
func Union[K comparable, V any](left, right *Map[K, V]) *Map[K, V] {
	return UnionWith(func(l, _ V) V { return l }, left, right)
}

// Unions folds Union left-to-right over maps, so that earlier maps in the
// list win over later ones for any key they share. Unions of an empty list
// is the empty map.
func Unions[K comparable, V any](maps ...*Map[K, V]) *Map[K, V] {
	if len(maps) == 0 {
		return Empty[K, V]()
	}
	acc := maps[0]
	for _, m := range maps[1:] {
		acc = Union(acc, m)
	}
	return acc
}

// unionNode merges two node subtrees rooted at the same level, returning
// the merged node and its total entry count. combine(leftValue, rightValue)
// resolves keys bound by both sides; a's binding plays the role of "left"
// throughout, even when the recursion descends after swapping arguments to
// reuse the leaf/collision-into-branch case below.
func unionNode[K comparable, V any](level int, a, b *trieNode[K, V], combine func(left, right V) V) (*trieNode[K, V], int) {
	if a.isEmpty() {
		return b, countEntries(b)
	}
	if b.isEmpty() {
		return a, countEntries(a)
	}

	switch {
	case a.kind != branchKind && b.kind != branchKind:
		return unionLeaves(level, a, b, combine)

	case a.kind != branchKind:
		// a is a leaf/collision, b is a branch: fold a's entries into b.
		return foldEntriesInto(level, b, a, combine)

	case b.kind != branchKind:
		// b is a leaf/collision, a is a branch: fold b's entries into a,
		// flipping the combiner so the result still reads combine(left, right)
		// with a playing left.
		flipped := func(newValue, oldValue V) V { return combine(oldValue, newValue) }
		merged, count := foldEntriesInto(level, a, b, flipped)
		return merged, count

	default:
		return unionBranches(level, a, b, combine)
	}
}

// unionLeaves merges two non-branch nodes (leaf or collision) that may or
// may not share a hash.
func unionLeaves[K comparable, V any](level int, a, b *trieNode[K, V], combine func(left, right V) V) (*trieNode[K, V], int) {
	if a.hash != b.hash {
		return joinNodes(level, a, b), countEntries(a) + countEntries(b)
	}
	merged, count := foldEntriesInto(level, b, a, combine)
	return merged, count
}

// foldEntriesInto inserts every entry of source (a leaf or collision node)
// into target at the given level, combining with combine(sourceValue,
// targetValue) on key overlap. target may be any node kind.
func foldEntriesInto[K comparable, V any](level int, target, source *trieNode[K, V], combine func(newValue, oldValue V) V) (*trieNode[K, V], int) {
	result := target
	for _, e := range collectEntries(source) {
		next, _ := result.insertWith(level, source.hash, e.Key, e.Value, combine)
		result = next
	}
	return result, countEntries(result)
}

// unionBranches merges two branch nodes slot by slot: a slot occupied by
// only one side is kept as-is, a slot occupied by both recurses one level
// deeper.
func unionBranches[K comparable, V any](level int, a, b *trieNode[K, V], combine func(left, right V) V) (*trieNode[K, V], int) {
	bitmap := a.bitmap | b.bitmap
	children := make([]*trieNode[K, V], bits.OnesCount32(bitmap))
	total := 0

	bitmapWalk := bitmap
	out := 0
	for bitmapWalk != 0 {
		bit := bitmapWalk & (-bitmapWalk)
		bitmapWalk &^= bit

		inA := a.bitmap&bit != 0
		inB := b.bitmap&bit != 0

		var child *trieNode[K, V]
		var n int
		switch {
		case inA && inB:
			child, n = unionNode(level+1, a.children[physicalIndex(a.bitmap, bit)], b.children[physicalIndex(b.bitmap, bit)], combine)
		case inA:
			child = a.children[physicalIndex(a.bitmap, bit)]
			n = countEntries(child)
		default:
			child = b.children[physicalIndex(b.bitmap, bit)]
			n = countEntries(child)
		}
		children[out] = child
		out++
		total += n
	}

	return canonicalBranch(bitmap, children), total
}
