// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

package hamt

// FromListWith builds a map from a slice of entries, combining values for
// repeated keys left to right: the later occurrence plays InsertWith's
// "new" value, the earlier (already-inserted) one plays "old".
func FromListWith[K comparable, V any](combine func(newValue, oldValue V) V, entries []Entry[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := Empty[K, V](opts...)
	for _, e := range entries {
		m = InsertWith(m, combine, e.Key, e.Value)
	}
	return m
}

// FromList builds a map from a slice of entries. Where a key repeats, the
// last occurrence in entries wins, matching the overwrite semantics of
// repeated Insert calls.
func FromList[K comparable, V any](entries []Entry[K, V], opts ...Option[K, V]) *Map[K, V] {
	return FromListWith(func(newValue, _ V) V { return newValue }, entries, opts...)
}

// ToList returns every entry of m as a slice. The order matches
// FoldWithKey's.
func ToList[K comparable, V any](m *Map[K, V]) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.size)
	Each(func(k K, v V) { entries = append(entries, Entry[K, V]{Key: k, Value: v}) }, m)
	return entries
}
