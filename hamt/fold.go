// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

package hamt

// FoldWithKey folds f over every entry of m, left to right: over a branch
// node, children are visited in ascending virtual-slot order; over a
// collision node, entries are visited in the order upsertEntry/removeEntry
// leave them, which has no significance beyond being deterministic for a
// fixed sequence of operations that produced m.
func FoldWithKey[K comparable, V any, A any](f func(acc A, key K, value V) A, seed A, m *Map[K, V]) A {
	return foldNode(m.root, seed, f)
}

// Fold is FoldWithKey for a combining function that ignores the key.
func Fold[K comparable, V any, A any](f func(acc A, value V) A, seed A, m *Map[K, V]) A {
	return FoldWithKey(func(acc A, _ K, v V) A { return f(acc, v) }, seed, m)
}

// FoldrWithKey folds f over every entry of m, right to left.
func FoldrWithKey[K comparable, V any, A any](f func(key K, value V, acc A) A, seed A, m *Map[K, V]) A {
	return foldrNode(m.root, seed, f)
}

// Foldr is FoldrWithKey for a combining function that ignores the key.
func Foldr[K comparable, V any, A any](f func(value V, acc A) A, seed A, m *Map[K, V]) A {
	return FoldrWithKey(func(_ K, v V, acc A) A { return f(v, acc) }, seed, m)
}

func foldNode[K comparable, V any, A any](n *trieNode[K, V], acc A, f func(A, K, V) A) A {
	switch n.kind {
	case leafKind:
		return f(acc, n.key, n.value)
	case collisionKind:
		for _, e := range n.entries {
			acc = f(acc, e.Key, e.Value)
		}
		return acc
	default:
		for _, c := range n.children {
			acc = foldNode(c, acc, f)
		}
		return acc
	}
}

func foldrNode[K comparable, V any, A any](n *trieNode[K, V], acc A, f func(K, V, A) A) A {
	switch n.kind {
	case leafKind:
		return f(n.key, n.value, acc)
	case collisionKind:
		for i := len(n.entries) - 1; i >= 0; i-- {
			e := n.entries[i]
			acc = f(e.Key, e.Value, acc)
		}
		return acc
	default:
		for i := len(n.children) - 1; i >= 0; i-- {
			acc = foldrNode(n.children[i], acc, f)
		}
		return acc
	}
}

// Each calls f with every key/value pair in m, for effect; it has no
// return value because the container has no mutable accumulator other
// than the caller's own closure state.
func Each[K comparable, V any](f func(key K, value V), m *Map[K, V]) {
	FoldWithKey(func(_ struct{}, k K, v V) struct{} { f(k, v); return struct{}{} }, struct{}{}, m)
}

// Keys returns every key of m. The order matches FoldWithKey's.
func Keys[K comparable, V any](m *Map[K, V]) []K {
	keys := make([]K, 0, m.size)
	Each(func(k K, _ V) { keys = append(keys, k) }, m)
	return keys
}

// Values returns every value of m. The order matches FoldWithKey's.
func Values[K comparable, V any](m *Map[K, V]) []V {
	values := make([]V, 0, m.size)
	Each(func(_ K, v V) { values = append(values, v) }, m)
	return values
}

// MapWithKey applies f to every entry of m, producing a new map of
// possibly different value type. Keys, and therefore the trie's shape, are
// unchanged.
func MapWithKey[K comparable, V any, V2 any](f func(key K, value V) V2, m *Map[K, V]) *Map[K, V2] {
	root := mapNode[K, V, V2](m.root, f)
	return &Map[K, V2]{root: root, size: m.size, hasher: m.hasher}
}

// MapValues is MapWithKey for a function that ignores the key.
func MapValues[K comparable, V any, V2 any](f func(value V) V2, m *Map[K, V]) *Map[K, V2] {
	return MapWithKey(func(_ K, v V) V2 { return f(v) }, m)
}

func mapNode[K comparable, V any, V2 any](n *trieNode[K, V], f func(K, V) V2) *trieNode[K, V2] {
	switch n.kind {
	case leafKind:
		return newLeaf(n.hash, n.key, f(n.key, n.value))
	case collisionKind:
		entries := make([]Entry[K, V2], len(n.entries))
		for i, e := range n.entries {
			entries[i] = Entry[K, V2]{Key: e.Key, Value: f(e.Key, e.Value)}
		}
		return newCollision(n.hash, entries)
	default:
		if n.bitmap == 0 {
			return emptyNode[K, V2]()
		}
		children := make([]*trieNode[K, V2], len(n.children))
		for i, c := range n.children {
			children[i] = mapNode[K, V, V2](c, f)
		}
		return newBranch(n.bitmap, children)
	}
}

// TraverseWithKey applies an effectful, possibly failing f to every entry
// of m and collects the results into a new map. Traversal proceeds in the
// same order as FoldWithKey and stops at the first error, which is
// returned together with a nil map.
func TraverseWithKey[K comparable, V any, V2 any](f func(key K, value V) (V2, error), m *Map[K, V]) (*Map[K, V2], error) {
	root, err := traverseNode[K, V, V2](m.root, f)
	if err != nil {
		return nil, err
	}
	return &Map[K, V2]{root: root, size: m.size, hasher: m.hasher}, nil
}

func traverseNode[K comparable, V any, V2 any](n *trieNode[K, V], f func(K, V) (V2, error)) (*trieNode[K, V2], error) {
	switch n.kind {
	case leafKind:
		v2, err := f(n.key, n.value)
		if err != nil {
			return nil, err
		}
		return newLeaf(n.hash, n.key, v2), nil
	case collisionKind:
		entries := make([]Entry[K, V2], len(n.entries))
		for i, e := range n.entries {
			v2, err := f(e.Key, e.Value)
			if err != nil {
				return nil, err
			}
			entries[i] = Entry[K, V2]{Key: e.Key, Value: v2}
		}
		return newCollision(n.hash, entries), nil
	default:
		if n.bitmap == 0 {
			return emptyNode[K, V2](), nil
		}
		children := make([]*trieNode[K, V2], len(n.children))
		for i, c := range n.children {
			child, err := traverseNode[K, V, V2](c, f)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return newBranch(n.bitmap, children), nil
	}
}
