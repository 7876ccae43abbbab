// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

package hamt

import "math/bits"

// Structural hash seeds distinguishing the three node kinds, so that (for
// example) a branch holding one collision child never hashes the same as a
// collision node holding the same entries directly.
const (
	leafHashSeed      uint32 = 1
	collisionHashSeed uint32 = 2
	branchHashSeed    uint32 = 3
)

// mix combines two hash values sequentially, the same 31*a+b shape the
// donor HAMT's Hash docstring describes (there left unimplemented in favor
// of a plain sequential hasher.Write; here made explicit since the
// container's equality/hash contract depends on a defined combination
// order).
func mix(a, b uint32) uint32 { return 31*a + b }

// EqualWith reports whether left and right contain the same set of keys,
// each bound to values that valueEqual considers equal. Two maps are equal
// under this definition regardless of the sequence of operations that
// built them or of any collision-list ordering internal to either one.
func EqualWith[K comparable, V any](valueEqual func(a, b V) bool, left, right *Map[K, V]) bool {
	if left.size != right.size {
		return false
	}
	return equalSubset(left.root, right, valueEqual)
}

// Equal is EqualWith for a comparable value type, using ==.
func Equal[K comparable, V comparable](left, right *Map[K, V]) bool {
	return EqualWith(func(a, b V) bool { return a == b }, left, right)
}

// equalSubset reports whether every entry reachable from n also appears in
// other with an equal value, short-circuiting on the first mismatch.
func equalSubset[K comparable, V any](n *trieNode[K, V], other *Map[K, V], valueEqual func(a, b V) bool) bool {
	switch n.kind {
	case leafKind:
		v, ok := Lookup(other, n.key)
		return ok && valueEqual(n.value, v)
	case collisionKind:
		for _, e := range n.entries {
			v, ok := Lookup(other, e.Key)
			if !ok || !valueEqual(e.Value, v) {
				return false
			}
		}
		return true
	default:
		for _, c := range n.children {
			if !equalSubset(c, other, valueEqual) {
				return false
			}
		}
		return true
	}
}

// HashWith computes a structural hash of m using valueHash to hash stored
// values. Two maps that are EqualWith-equal under a value-equality
// consistent with valueHash always hash to the same HashWith result.
func HashWith[K comparable, V any](valueHash func(V) uint32, m *Map[K, V]) uint32 {
	return hashNode(m.root, valueHash)
}

// Hash computes a structural hash of m using XXHash32 as the value hash
// (string and []byte values hashed as they are, other values CBOR-encoded
// first; see keyBytes and internal/enc). It is HashWith's companion the way
// XXHash32 is Hasher's default implementation.
func Hash[K comparable, V any](m *Map[K, V]) uint32 {
	return HashWith(defaultValueHash[V], m)
}

func defaultValueHash[V any](v V) uint32 {
	return XXHash32[V]{}.Hash32(v)
}

// hashNode is a structural hash: it mixes in a branch's bitmap and walks
// its children in array order, rather than comparing entries by key the
// way equalSubset does. That is only sound for "equal maps hash equal"
// because the trie's shape is itself a pure function of the key set —
// every node-building path (insert, join, and the collapsing
// canonicalBranch used by delete/filter/intersection/union) produces the
// one canonical tree for a given set of keys, never a history-dependent
// one. If a future change lets two content-equal maps end up with
// differently shaped trees, this function must change with it.
func hashNode[K comparable, V any](n *trieNode[K, V], valueHash func(V) uint32) uint32 {
	switch n.kind {
	case leafKind:
		return mix(leafHashSeed, mix(n.hash, valueHash(n.value)))

	case collisionKind:
		// A collision list's order carries no meaning (see equalSubset /
		// EqualWith's set-style comparison), so its entries must be combined
		// commutatively: a sequential 31*a+b fold would make two collision
		// nodes holding the same entries in a different order hash
		// differently, breaking "equal maps hash equal".
		var sum uint32
		for _, e := range n.entries {
			sum += mix(n.hash, valueHash(e.Value))
		}
		return mix(collisionHashSeed, sum)

	default:
		acc := mix(branchHashSeed, n.bitmap)
		for _, c := range n.children {
			acc = mix(acc, hashNode(c, valueHash))
		}
		return acc
	}
}

// CheckInvariants walks m's trie and verifies the structural invariants the
// container's node representation must always satisfy: bitmap/array
// cardinality agreement, no empty children, collision-list minimality (at
// least two distinct keys), a single canonical empty representation, and
// hash-cache correctness (every cached hash matches m's hasher applied to
// its key). It is a diagnostic for tests, not part of the container's
// public contract for ordinary use.
func CheckInvariants[K comparable, V any](m *Map[K, V]) error {
	count, err := checkNode(m.root, m.hasher, 0)
	if err != nil {
		return err
	}
	if count != m.size {
		return &ErrInvariantViolation{Reason: "map size does not match the number of entries reachable from its root"}
	}
	return nil
}

func checkNode[K comparable, V any](n *trieNode[K, V], hasher Hasher[K], level int) (int, error) {
	switch n.kind {
	case leafKind:
		if hasher.Hash32(n.key) != n.hash {
			return 0, &ErrInvariantViolation{Reason: "leaf's cached hash does not match hasher applied to its key"}
		}
		return 1, nil

	case collisionKind:
		if len(n.entries) < 2 {
			return 0, &ErrInvariantViolation{Reason: "collision node holds fewer than two entries"}
		}
		seen := make(map[K]struct{}, len(n.entries))
		for _, e := range n.entries {
			if hasher.Hash32(e.Key) != n.hash {
				return 0, &ErrInvariantViolation{Reason: "collision node's shared hash does not match hasher applied to one of its keys"}
			}
			if _, dup := seen[e.Key]; dup {
				return 0, &ErrInvariantViolation{Reason: "collision node holds a repeated key"}
			}
			seen[e.Key] = struct{}{}
		}
		return len(n.entries), nil

	default: // branchKind
		if level > 0 && n.bitmap == 0 {
			return 0, &ErrInvariantViolation{Reason: "non-root branch uses the canonical empty representation instead of being pruned from its parent"}
		}
		if bits.OnesCount32(n.bitmap) != len(n.children) {
			return 0, &ErrInvariantViolation{Reason: "branch bitmap cardinality does not match its child array length"}
		}
		if len(n.children) == 1 && n.children[0].kind != branchKind {
			return 0, &ErrInvariantViolation{Reason: "branch wraps a single leaf/collision child instead of being collapsed into it (see canonicalBranch)"}
		}
		total := 0
		for _, c := range n.children {
			if c.isEmpty() {
				return 0, &ErrInvariantViolation{Reason: "branch holds an empty child instead of clearing the corresponding bitmap bit"}
			}
			n, err := checkNode(c, hasher, level+1)
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	}
}
