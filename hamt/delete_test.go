// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

package hamt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteRemovesKey(t *testing.T) {
	m := Insert(Insert(Empty[string, int](), "a", 1), "b", 2)
	m2 := Delete(m, "a")

	assert.False(t, Member(m2, "a"))
	assert.True(t, Member(m2, "b"))
	assert.Equal(t, 1, m2.Size())
	assert.Equal(t, 2, m.Size(), "deleting from m2 must not affect m")
}

func TestDeleteOfAbsentKeyReturnsSameMap(t *testing.T) {
	m := Insert(Empty[string, int](), "a", 1)
	m2 := Delete(m, "nope")
	assert.Same(t, m, m2)
}

func TestDeleteToEmptyReachesCanonicalEmpty(t *testing.T) {
	m := Insert(Empty[string, int](), "only", 1)
	m = Delete(m, "only")
	assert.True(t, m.IsEmpty())
	require.NoError(t, CheckInvariants(m))
}

func TestDeleteManyThenInsertRoundtrip(t *testing.T) {
	m := Empty[int, int]()
	for i := 0; i < 500; i++ {
		m = Insert(m, i, i)
	}
	for i := 0; i < 500; i += 2 {
		m = Delete(m, i)
	}
	assert.Equal(t, 250, m.Size())
	for i := 0; i < 500; i++ {
		_, ok := Lookup(m, i)
		if i%2 == 0 {
			assert.False(t, ok)
		} else {
			assert.True(t, ok)
		}
	}
	require.NoError(t, CheckInvariants(m))
}

func TestDeleteCollapsesCollisionNodeToLeaf(t *testing.T) {
	h := constantHasher[int]{value: 0xABCD}
	m := Empty[int, string](WithHasher[int, string](h))
	m = Insert(m, 1, "one")
	m = Insert(m, 2, "two")
	m = Insert(m, 3, "three")
	require.Equal(t, 3, m.Size())

	m = Delete(m, 1)
	require.Equal(t, 2, m.Size())
	require.NoError(t, CheckInvariants(m))

	m = Delete(m, 2)
	require.Equal(t, 1, m.Size())
	require.NoError(t, CheckInvariants(m))

	v, ok := Lookup(m, 3)
	require.True(t, ok)
	assert.Equal(t, "three", v)
}

type constantHasher[K any] struct{ value uint32 }

func (c constantHasher[K]) Hash32(K) uint32 { return c.value }
