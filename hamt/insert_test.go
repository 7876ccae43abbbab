// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

package hamt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertDoesNotMutateOriginal(t *testing.T) {
	m0 := Empty[string, int]()
	m1 := Insert(m0, "a", 1)

	assert.True(t, m0.IsEmpty())
	assert.Equal(t, 0, m0.Size())

	v, ok := Lookup(m1, "a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestInsertOverwritesExistingValue(t *testing.T) {
	m := Insert(Empty[string, int](), "a", 1)
	m2 := Insert(m, "a", 2)

	v1, _ := Lookup(m, "a")
	v2, _ := Lookup(m2, "a")
	assert.Equal(t, 1, v1, "original map must be unaffected by a later Insert")
	assert.Equal(t, 2, v2)
	assert.Equal(t, 1, m.Size())
	assert.Equal(t, 1, m2.Size())
}

func TestInsertWithCombinesOnCollision(t *testing.T) {
	sum := func(newValue, oldValue int) int { return newValue + oldValue }
	m := Empty[string, int]()
	m = InsertWith(m, sum, "a", 1)
	m = InsertWith(m, sum, "a", 2)
	m = InsertWith(m, sum, "a", 3)

	v, ok := Lookup(m, "a")
	require.True(t, ok)
	assert.Equal(t, 6, v)
	assert.Equal(t, 1, m.Size())
}

func TestReplaceDiscardsOldValueEntirely(t *testing.T) {
	// Replace must not call any combiner with the old value: a combiner
	// that panics on its oldValue argument must never fire.
	panics := func(newValue, _ int) int { panic("combine should not run") }
	m := InsertWith(Empty[string, int](), panics, "a", 1)
	m = Replace(m, "a", 99)

	v, ok := Lookup(m, "a")
	require.True(t, ok)
	assert.Equal(t, 99, v)
}

func TestInsertGrowsAcrossManyLevels(t *testing.T) {
	m := Empty[int, int]()
	const n = 5000
	for i := 0; i < n; i++ {
		m = Insert(m, i, i*i)
	}
	assert.Equal(t, n, m.Size())
	for i := 0; i < n; i++ {
		v, ok := Lookup(m, i)
		require.True(t, ok)
		assert.Equal(t, i*i, v)
	}
	require.NoError(t, CheckInvariants(m))
}

func TestAdjust(t *testing.T) {
	m := Insert(Empty[string, int](), "a", 10)
	m2 := Adjust(m, func(v int) int { return v + 1 }, "a")
	m3 := Adjust(m, func(v int) int { return v + 1 }, "absent")

	v, _ := Lookup(m2, "a")
	assert.Equal(t, 11, v)
	assert.Same(t, m, m3, "Adjust on an absent key must return the same map value")
}

func TestAlterCanInsertUpdateAndDelete(t *testing.T) {
	m := Empty[string, int]()

	insertIfAbsent := func(v int, present bool) (int, bool) {
		if present {
			return v, true
		}
		return 7, true
	}
	m = Alter(m, insertIfAbsent, "a")
	v, ok := Lookup(m, "a")
	require.True(t, ok)
	assert.Equal(t, 7, v)

	double := func(v int, present bool) (int, bool) { return v * 2, present }
	m = Alter(m, double, "a")
	v, _ = Lookup(m, "a")
	assert.Equal(t, 14, v)

	remove := func(v int, present bool) (int, bool) { return v, false }
	m = Alter(m, remove, "a")
	assert.False(t, Member(m, "a"))
}

func TestInsertOrderIndependentResultIsEqualNotIdentical(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e"}
	forward := Empty[string, int]()
	for i, k := range keys {
		forward = Insert(forward, k, i)
	}
	backward := Empty[string, int]()
	for i := len(keys) - 1; i >= 0; i-- {
		backward = Insert(backward, keys[i], i)
	}
	assert.True(t, Equal(forward, backward))
}
