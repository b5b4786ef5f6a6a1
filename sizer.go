// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

// wordBytes is the atomic encoding granularity of the ABI: every scalar is one
// 32-byte big-endian word and every payload is padded up to a word boundary.
const wordBytes = 32

// HeadWords returns the number of 32-byte words the type occupies in a head
// region. Dynamic types always occupy exactly one word (the offset pointer),
// static composites occupy the sum of their members.
func HeadWords(t *Type) int {
	if t.IsDynamic() {
		return 1
	}
	switch t.kind {
	case KindFixedArray:
		return t.size * HeadWords(t.elem)
	case KindTuple:
		words := 0
		for _, f := range t.fields {
			words += HeadWords(f)
		}
		return words
	}
	return 1
}

// HeadSize returns the byte size of the head region of an argument list. This
// is also the minimum legal buffer length for decoding that list: a shorter
// buffer cannot hold even the head slots and is rejected in every mode.
func HeadSize(types []*Type) int {
	size := 0
	for _, t := range types {
		size += HeadWords(t) * wordBytes
	}
	return size
}

// minPayloadSize returns the smallest number of bytes a single element of the
// given type can occupy in the tail of a dynamic array. It is used to bound
// attacker-claimed array lengths against the remaining buffer before any
// element storage is allocated.
func minPayloadSize(t *Type) int {
	if t.IsDynamic() {
		return wordBytes // offset word; the payload itself may be empty
	}
	return HeadWords(t) * wordBytes
}

// paddedLength rounds a payload length up to the next word boundary.
func paddedLength(n int) int {
	return (n + wordBytes - 1) / wordBytes * wordBytes
}
