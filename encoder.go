// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

import (
	"fmt"

	"github.com/holiman/uint256"
)

// encodeRegion serializes one head/tail region: the head gets an inline word
// per static slot and an offset word per dynamic slot, the tail accumulates
// the dynamic payloads in offset order.
func encodeRegion(types []*Type, values []Value) []byte {
	var (
		headSize = HeadSize(types)
		head     = make([]byte, headSize)
		tail     []byte
		cursor   = 0
	)
	for i, t := range types {
		if t.IsDynamic() {
			putWord(head[cursor:], uint64(headSize+len(tail)))
			tail = append(tail, encodePayload(t, values[i])...)
			cursor += wordBytes
			continue
		}
		encodeStatic(t, values[i], head[cursor:])
		cursor += HeadWords(t) * wordBytes
	}
	return append(head, tail...)
}

// encodeStatic writes a static value's head words directly into dst. Static
// composites recurse into their members at consecutive slots, everything else
// is a single word.
func encodeStatic(t *Type, v Value, dst []byte) {
	switch t.kind {
	case KindFixedBytes:
		copy(dst[:wordBytes], v.blob) // left aligned, zero padded by allocation
	case KindFixedArray:
		elemSize := HeadWords(t.elem) * wordBytes
		for i := 0; i < t.size; i++ {
			encodeStatic(t.elem, v.elems[i], dst[i*elemSize:])
		}
	case KindTuple:
		cursor := 0
		for i, f := range t.fields {
			encodeStatic(f, v.elems[i], dst[cursor:])
			cursor += HeadWords(f) * wordBytes
		}
	default:
		word := v.word.Bytes32()
		copy(dst[:wordBytes], word[:])
	}
}

// encodePayload serializes the tail payload of a dynamic value: a length word
// plus packed bytes for blob kinds, a length word plus a nested region for
// dynamic arrays, and a bare nested region for dynamic fixed arrays and
// tuples (their length is implied by the type).
func encodePayload(t *Type, v Value) []byte {
	switch t.kind {
	case KindBytes, KindString:
		payload := make([]byte, wordBytes+paddedLength(len(v.blob)))
		putWord(payload, uint64(len(v.blob)))
		copy(payload[wordBytes:], v.blob)
		return payload

	case KindDynamicArray:
		elems := make([]*Type, len(v.elems))
		for i := range elems {
			elems[i] = t.elem
		}
		payload := make([]byte, wordBytes)
		putWord(payload, uint64(len(v.elems)))
		return append(payload, encodeRegion(elems, v.elems)...)

	case KindFixedArray:
		elems := make([]*Type, t.size)
		for i := range elems {
			elems[i] = t.elem
		}
		return encodeRegion(elems, v.elems)

	case KindTuple:
		return encodeRegion(t.fields, v.elems)
	}
	panic(fmt.Sprintf("not a dynamic type: %s", t))
}

// putWord writes n as a big-endian 32-byte word at the start of dst. It
// serves both offset words in the head and length words in the tail.
func putWord(dst []byte, n uint64) {
	var word uint256.Int
	word.SetUint64(n)
	b := word.Bytes32()
	copy(dst[:wordBytes], b[:])
}
