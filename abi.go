// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package abi encodes typed function-call argument lists into flat calldata
// buffers and decodes such buffers back into typed values, following the
// Ethereum contract ABI head/tail layout.
//
// A call's arguments are described by a shared, read-only list of Type
// descriptors (built with the constructors in this package or parsed from a
// canonical signature string with ParseSignature). Encoding is total and
// deterministic. Decoding operates on untrusted input and runs in one of two
// strictness modes: Strict rejects any out-of-bounds or non-canonical
// encoding, Legacy reproduces the permissive behavior of the pre-v2 decoder
// by zero-filling short reads and truncating out-of-range scalars.
//
// The codec is stateless: descriptors may be shared across goroutines and
// every Encode/Decode call works only on its own inputs and freshly allocated
// outputs.
package abi

import "fmt"

// Encode serializes an ordered argument list into a flat calldata buffer.
//
// The output follows the two-region layout: a head region with one slot per
// argument (inline words for static types, offset words for dynamic ones) and
// a tail region holding the dynamic payloads. Offsets are relative to the
// start of the region that contains them, and the same split recurses at
// every dynamic boundary, so arrays of arrays and dynamic tuples carry their
// own local head and tail.
//
// Encoding is total and deterministic: the same type and value lists always
// produce the same buffer, the length of which is a multiple of 32 bytes. The
// only possible error is a caller bug, the value list not matching the type
// list in arity or in a value's type.
func Encode(types []*Type, values []Value) ([]byte, error) {
	if len(types) != len(values) {
		return nil, fmt.Errorf("%w: %d types, %d values", ErrTypeMismatch, len(types), len(values))
	}
	for i, t := range types {
		if !t.Equal(values[i].typ) {
			return nil, fmt.Errorf("%w: argument %d declared %s, value is %s", ErrTypeMismatch, i, t, values[i].typ)
		}
	}
	return encodeRegion(types, values), nil
}

// Decode parses a calldata buffer against an ordered argument list in the
// given strictness mode, returning the decoded values in declaration order.
//
// Decoding is all-or-nothing: any failure aborts the whole call and no
// partial result is returned. A buffer shorter than the argument list's head
// region fails with ErrInsufficientData in both modes; every other bounds or
// value-range rule depends on the mode (see the Mode constants). All decoded
// data is copied out, the returned values do not alias the buffer.
func Decode(blob []byte, types []*Type, mode Mode) ([]Value, error) {
	if head := HeadSize(types); len(blob) < head {
		return nil, fmt.Errorf("%w: buffer %d bytes, head region %d bytes", ErrInsufficientData, len(blob), head)
	}
	dec := &decoder{buf: blob, mode: mode, quota: uint64(len(blob))}

	values := make([]Value, len(types))
	cursor := uint64(0)
	for i, t := range types {
		v, err := dec.decodeValue(t, 0, cursor)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, t, err)
		}
		values[i] = v
		cursor += uint64(HeadWords(t)) * wordBytes
	}
	return values, nil
}
