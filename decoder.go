// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

import (
	"fmt"

	"github.com/holiman/uint256"
)

// decoder walks an untrusted calldata buffer against a descriptor list. It
// carries no state between calls besides the buffer and the mode; regions are
// tracked through the base/slot arguments of the recursive methods, because
// every dynamic boundary establishes a new local base that inner offsets are
// relative to.
//
// Bounds policy is concentrated in readWord and in the two length-prefixed
// payload readers: strict mode turns every short read into an error, legacy
// mode substitutes zero bytes and carries on. The one legacy-fatal check not
// in this file is the top-level head size gate in Decode, and the shared
// allocation defense against absurd claimed lengths (ErrInvalidLength) is
// fatal in both modes.
//
// The quota is that defense's cumulative half: every claimed length is also
// drawn from a call-wide budget, so nested arrays cannot multiply per-level
// legal lengths into an output orders of magnitude larger than the input.
type decoder struct {
	buf   []byte
	mode  Mode
	quota uint64
}

// decodeRegion decodes an ordered type list laid out as a head region rooted
// at base, following dynamic offsets into the tail as it goes.
func (dec *decoder) decodeRegion(types []*Type, base uint64) ([]Value, error) {
	values := make([]Value, len(types))
	cursor := base
	for i, t := range types {
		v, err := dec.decodeValue(t, base, cursor)
		if err != nil {
			return nil, err
		}
		values[i] = v
		cursor += uint64(HeadWords(t)) * wordBytes
	}
	return values, nil
}

// decodeValue decodes a single value whose head slot starts at the absolute
// byte offset slot, inside the region rooted at base.
func (dec *decoder) decodeValue(t *Type, base, slot uint64) (Value, error) {
	if t.IsDynamic() {
		return dec.decodeDynamic(t, base, slot)
	}
	switch t.kind {
	case KindFixedArray:
		// Static fixed array: consecutive member slots in the same region,
		// no new base is established.
		stride := uint64(HeadWords(t.elem)) * wordBytes
		elems := make([]Value, t.size)
		for i := 0; i < t.size; i++ {
			v, err := dec.decodeValue(t.elem, base, slot+uint64(i)*stride)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return Value{typ: t, elems: elems}, nil

	case KindTuple:
		elems := make([]Value, len(t.fields))
		cursor := slot
		for i, f := range t.fields {
			v, err := dec.decodeValue(f, base, cursor)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
			cursor += uint64(HeadWords(f)) * wordBytes
		}
		return Value{typ: t, elems: elems}, nil
	}
	return dec.decodeScalar(t, slot)
}

// decodeScalar reads one word, applies width cleanup and runs the mode rules.
func (dec *decoder) decodeScalar(t *Type, slot uint64) (Value, error) {
	word, err := dec.readWord(slot)
	if err != nil {
		return Value{}, err
	}
	switch t.kind {
	case KindUint:
		cleanupUint(&word, t.bits)
	case KindInt:
		cleanupInt(&word, t.bits)
	case KindBool:
		b, err := validateBool(&word, dec.mode)
		if err != nil {
			return Value{}, err
		}
		word.Clear()
		if b {
			word.SetOne()
		}
	case KindAddress:
		if err := validateAddress(&word, dec.mode); err != nil {
			return Value{}, err
		}
	case KindEnum:
		if err := validateEnum(&word, t.size, dec.mode); err != nil {
			return Value{}, err
		}
	case KindFixedBytes:
		full := word.Bytes32()
		return Value{typ: t, blob: append([]byte(nil), full[:t.size]...)}, nil
	}
	return Value{typ: t, word: word}, nil
}

// decodeDynamic resolves a dynamic value's offset word and decodes its tail
// payload. The payload start is base relative; in legacy mode an offset past
// the buffer end is clamped so that every subsequent read zero-fills, in
// strict mode it is fatal.
func (dec *decoder) decodeDynamic(t *Type, base, slot uint64) (Value, error) {
	word, err := dec.readWord(slot)
	if err != nil {
		return Value{}, err
	}
	var (
		bufLen  = uint64(len(dec.buf))
		payload uint64
	)
	if !word.IsUint64() || word.Uint64() > bufLen-base {
		if dec.mode == Strict {
			return Value{}, fmt.Errorf("%w: offset %s at byte %d, buffer %d bytes", ErrOutOfBounds, word.Dec(), slot, len(dec.buf))
		}
		payload = bufLen
	} else {
		payload = base + word.Uint64()
	}
	switch t.kind {
	case KindBytes, KindString:
		return dec.decodeBlob(t, payload)

	case KindDynamicArray:
		return dec.decodeArray(t, payload)

	case KindFixedArray:
		// Fixed array of dynamic elements: the payload is the array's own
		// region, its length implied by the type, no length prefix.
		elems, err := dec.decodeRegion(repeatType(t.elem, t.size), payload)
		if err != nil {
			return Value{}, err
		}
		return Value{typ: t, elems: elems}, nil

	case KindTuple:
		elems, err := dec.decodeRegion(t.fields, payload)
		if err != nil {
			return Value{}, err
		}
		return Value{typ: t, elems: elems}, nil
	}
	panic(fmt.Sprintf("not a dynamic type: %s", t))
}

// decodeBlob reads a length-prefixed byte or string payload. Legacy mode
// zero-fills missing tail bytes up to the declared length; the declared
// length itself may never exceed the whole buffer in either mode, which
// bounds the allocation below.
func (dec *decoder) decodeBlob(t *Type, payload uint64) (Value, error) {
	length, err := dec.readLength(payload)
	if err != nil {
		return Value{}, err
	}
	var (
		bufLen = uint64(len(dec.buf))
		start  = payload + wordBytes
	)
	if err := dec.charge(length); err != nil {
		return Value{}, err
	}
	if dec.mode == Strict && start+length > bufLen {
		return Value{}, fmt.Errorf("%w: declared %d bytes at byte %d, %d available", ErrTruncatedDynamicData, length, start, bufLen-start)
	}
	blob := make([]byte, length)
	if start < bufLen {
		copy(blob, dec.buf[start:])
	}
	return Value{typ: t, blob: blob}, nil
}

// decodeArray reads a length-prefixed dynamic array: the length word is
// followed by the array's own head region with one slot per element. The
// claimed element count is checked against the remaining buffer before any
// element storage is allocated.
func (dec *decoder) decodeArray(t *Type, payload uint64) (Value, error) {
	length, err := dec.readLength(payload)
	if err != nil {
		return Value{}, err
	}
	var (
		bufLen = uint64(len(dec.buf))
		start  = payload + wordBytes
	)
	if start > bufLen {
		start = bufLen // only reachable in legacy, after a clamped offset
	}
	if err := dec.charge(length); err != nil {
		return Value{}, err
	}
	if dec.mode == Strict {
		// Zero-size element types occupy no tail bytes at all, their count
		// is bounded by the length word and the quota alone.
		if minSize := uint64(minPayloadSize(t.elem)); minSize > 0 && length > (bufLen-start)/minSize {
			return Value{}, fmt.Errorf("%w: %d elements of at least %d bytes, %d available", ErrOutOfBounds, length, minSize, bufLen-start)
		}
	}
	elems, err := dec.decodeRegion(repeatType(t.elem, int(length)), start)
	if err != nil {
		return Value{}, err
	}
	return Value{typ: t, elems: elems}, nil
}

// readLength reads the 32-byte length word of a dynamic payload and applies
// the allocation defense: a claimed length larger than the entire buffer can
// never be satisfiable, so it is rejected in both modes before any storage
// sized by it exists.
func (dec *decoder) readLength(payload uint64) (uint64, error) {
	word, err := dec.readWord(payload)
	if err != nil {
		return 0, err
	}
	if !word.IsUint64() || word.Uint64() > uint64(len(dec.buf)) {
		return 0, fmt.Errorf("%w: declared %s, buffer %d bytes", ErrInvalidLength, word.Dec(), len(dec.buf))
	}
	return word.Uint64(), nil
}

// charge draws n units from the call-wide allocation quota shared by every
// length-prefixed payload: one unit per array element and one per blob byte,
// with a budget of one unit per buffer byte. Per-level length checks cannot
// see claims multiplying across nesting levels, the quota can, keeping the
// decoded output linear in the input size in both modes.
func (dec *decoder) charge(n uint64) error {
	if n > dec.quota {
		return fmt.Errorf("%w: claimed %d with %d of %d budget left", ErrInvalidLength, n, dec.quota, len(dec.buf))
	}
	dec.quota -= n
	return nil
}

// readWord reads one 32-byte big-endian word at the given absolute offset.
// Strict mode fails a short read, legacy mode zero-fills the missing trailing
// bytes and proceeds.
func (dec *decoder) readWord(off uint64) (uint256.Int, error) {
	var word uint256.Int
	if off+wordBytes <= uint64(len(dec.buf)) {
		word.SetBytes(dec.buf[off : off+wordBytes])
		return word, nil
	}
	if dec.mode == Strict {
		return word, fmt.Errorf("%w: word at byte %d, buffer %d bytes", ErrOutOfBounds, off, len(dec.buf))
	}
	var padded [wordBytes]byte
	if off < uint64(len(dec.buf)) {
		copy(padded[:], dec.buf[off:])
	}
	word.SetBytes(padded[:])
	return word, nil
}

// repeatType expands an array's element descriptor into the type list of its
// own head region. Descriptors are shared, only the slice is allocated.
func repeatType(t *Type, n int) []*Type {
	types := make([]*Type, n)
	for i := range types {
		types[i] = t
	}
	return types
}
