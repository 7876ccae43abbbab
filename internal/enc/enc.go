// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

// Package enc provides a canonical CBOR encoder used internally by the hamt
// package to turn an opaque value into a deterministic byte sequence for
// hashing. This is not a serialization format for the container itself —
// the container has none — only a way to feed an arbitrary value's bytes
// into a hash accumulator the same way every time.
package enc

import (
	"bytes"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

var (
	modeOnce sync.Once
	mode     cbor.EncMode
	modeErr  error
)

func encMode() (cbor.EncMode, error) {
	modeOnce.Do(func() {
		opts := cbor.CanonicalEncOptions()
		opts.BigIntConvert = cbor.BigIntConvertShortest
		mode, modeErr = opts.EncMode()
	})
	return mode, modeErr
}

// Marshal canonically encodes v. Equal values (by Go equality or by the
// caller's own notion of equality) are not guaranteed to encode identically
// unless their fields also compare equal in encoding order; canonical CBOR
// map-key ordering makes that hold for struct and map values as CBOR itself
// defines canonicity.
func Marshal(v any) ([]byte, error) {
	m, err := encMode()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := m.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
