// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

package hamt

import "math/bits"

// FilterWithKey returns the submap of m containing only the entries for
// which pred(key, value) holds.
func FilterWithKey[K comparable, V any](pred func(key K, value V) bool, m *Map[K, V]) *Map[K, V] {
	root, size := filterNode(m.root, pred)
	return m.clone(root, size)
}

// Filter returns the submap of m containing only the entries for which
// pred(value) holds.
func Filter[K comparable, V any](pred func(value V) bool, m *Map[K, V]) *Map[K, V] {
	return FilterWithKey(func(_ K, v V) bool { return pred(v) }, m)
}

// FilterValue is Filter under the name more literally matching a predicate
// that only inspects the value.
func FilterValue[K comparable, V any](pred func(value V) bool, m *Map[K, V]) *Map[K, V] {
	return Filter(pred, m)
}

// Difference returns the submap of left containing only the keys absent
// from right; right's values are never consulted.
func Difference[K comparable, V any](left, right *Map[K, V]) *Map[K, V] {
	return FilterWithKey(func(k K, _ V) bool { return !Member(right, k) }, left)
}

// Intersection returns the submap of left restricted to the keys also
// present in right, keeping left's values.
func Intersection[K comparable, V any](left, right *Map[K, V]) *Map[K, V] {
	return FilterWithKey(func(k K, _ V) bool { return Member(right, k) }, left)
}

// IntersectionWith is Intersection combined with combine(leftValue,
// rightValue) for the values of keys present in both maps.
func IntersectionWith[K comparable, V any](combine func(left, right V) V, left, right *Map[K, V]) *Map[K, V] {
	root, size := intersectionNode(left.root, right, combine)
	return left.clone(root, size)
}

// filterNode rebuilds n keeping only entries for which pred holds, pruning
// any branch slot whose subtree becomes empty and collapsing a collision
// node that shrinks to one surviving entry into a leaf — the same
// collapse rule Delete applies, since filtering is itself a form of
// (possibly repeated) deletion.
func filterNode[K comparable, V any](n *trieNode[K, V], pred func(K, V) bool) (*trieNode[K, V], int) {
	switch n.kind {
	case leafKind:
		if pred(n.key, n.value) {
			return n, 1
		}
		return emptyNode[K, V](), 0

	case collisionKind:
		var kept []Entry[K, V]
		for _, e := range n.entries {
			if pred(e.Key, e.Value) {
				kept = append(kept, e)
			}
		}
		switch len(kept) {
		case 0:
			return emptyNode[K, V](), 0
		case 1:
			return newLeaf(n.hash, kept[0].Key, kept[0].Value), 1
		default:
			return newCollision(n.hash, kept), len(kept)
		}

	default: // branchKind
		if n.bitmap == 0 {
			return n, 0
		}
		children := make([]*trieNode[K, V], 0, len(n.children))
		bitmap := uint32(0)
		total := 0

		walk := n.bitmap
		idx := 0
		for walk != 0 {
			bit := walk & (-walk)
			walk &^= bit

			child, count := filterNode(n.children[idx], pred)
			idx++
			if count == 0 {
				continue
			}
			bitmap |= bit
			children = append(children, child)
			total += count
		}
		return canonicalBranch(bitmap, children), total
	}
}

// intersectionNode walks left, keeping only entries whose key is also a
// member of right and combining values with combine(leftValue, rightValue).
func intersectionNode[K comparable, V any](n *trieNode[K, V], right *Map[K, V], combine func(left, right V) V) (*trieNode[K, V], int) {
	switch n.kind {
	case leafKind:
		if rv, ok := Lookup(right, n.key); ok {
			return newLeaf(n.hash, n.key, combine(n.value, rv)), 1
		}
		return emptyNode[K, V](), 0

	case collisionKind:
		var kept []Entry[K, V]
		for _, e := range n.entries {
			if rv, ok := Lookup(right, e.Key); ok {
				kept = append(kept, Entry[K, V]{Key: e.Key, Value: combine(e.Value, rv)})
			}
		}
		switch len(kept) {
		case 0:
			return emptyNode[K, V](), 0
		case 1:
			return newLeaf(n.hash, kept[0].Key, kept[0].Value), 1
		default:
			return newCollision(n.hash, kept), len(kept)
		}

	default: // branchKind
		if n.bitmap == 0 {
			return n, 0
		}
		children := make([]*trieNode[K, V], 0, bits.OnesCount32(n.bitmap))
		bitmap := uint32(0)
		total := 0

		walk := n.bitmap
		idx := 0
		for walk != 0 {
			bit := walk & (-walk)
			walk &^= bit

			child, count := intersectionNode(n.children[idx], right, combine)
			idx++
			if count == 0 {
				continue
			}
			bitmap |= bit
			children = append(children, child)
			total += count
		}
		return canonicalBranch(bitmap, children), total
	}
}
