// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// maxWord is 2^256, used to convert between big.Int sign representation and
// the 256-bit two's complement held in a word.
var maxWord = new(big.Int).Lsh(big.NewInt(1), 256)

// Value is a decoded (or to-be-encoded) ABI value: a tagged union mirroring
// the kind of its descriptor. Scalars live in a 256-bit word already cleaned
// to their declared width (signed integers in sign-extended two's complement),
// byte-ish kinds hold a copied blob and composite kinds hold ordered children.
//
// Values own their payload: nothing aliases the buffer they were decoded
// from, so they stay valid after the buffer is gone.
type Value struct {
	typ   *Type
	word  uint256.Int
	blob  []byte
	elems []Value
}

// NewUint wraps an unsigned scalar word as a value of the given type. The
// type must be an unsigned integer, enum or address descriptor; the word is
// masked to the declared width. Passing any other kind is a programming error
// and panics.
func NewUint(typ *Type, n *uint256.Int) Value {
	switch typ.kind {
	case KindUint, KindEnum, KindAddress:
	default:
		panic(fmt.Sprintf("not an unsigned scalar type: %s", typ))
	}
	v := Value{typ: typ}
	v.word.Set(n)
	cleanupUint(&v.word, typ.Bits())
	return v
}

// NewUint64 is a convenience form of NewUint for values that fit a uint64.
func NewUint64(typ *Type, n uint64) Value {
	var word uint256.Int
	word.SetUint64(n)
	return NewUint(typ, &word)
}

// NewInt wraps a signed integer as a value of the given type. The integer is
// reduced to the declared width and held sign-extended in two's complement.
func NewInt(typ *Type, n *big.Int) Value {
	if typ.kind != KindInt {
		panic(fmt.Sprintf("not a signed integer type: %s", typ))
	}
	v := Value{typ: typ}
	// And with 2^256-1 treats n as infinite two's complement and keeps the
	// low 256 bits, which is exactly the word representation.
	wrapped := new(big.Int).And(n, new(big.Int).Sub(maxWord, big.NewInt(1)))
	v.word.SetFromBig(wrapped)
	cleanupInt(&v.word, typ.bits)
	return v
}

// NewInt64 is a convenience form of NewInt for values that fit an int64.
func NewInt64(typ *Type, n int64) Value {
	return NewInt(typ, big.NewInt(n))
}

// NewBool wraps a boolean.
func NewBool(b bool) Value {
	v := Value{typ: Bool()}
	if b {
		v.word.SetOne()
	}
	return v
}

// NewBytes wraps a byte blob as a fixed or dynamic bytes value. Fixed bytes
// are truncated or zero-padded to the declared size; dynamic bytes are copied
// as they are.
func NewBytes(typ *Type, blob []byte) Value {
	switch typ.kind {
	case KindFixedBytes:
		fixed := make([]byte, typ.size)
		copy(fixed, blob)
		return Value{typ: typ, blob: fixed}
	case KindBytes:
		return Value{typ: typ, blob: append([]byte(nil), blob...)}
	}
	panic(fmt.Sprintf("not a bytes type: %s", typ))
}

// NewString wraps a string payload.
func NewString(s string) Value {
	return Value{typ: String(), blob: []byte(s)}
}

// NewComposite wraps an ordered element list as an array or tuple value. The
// element count must match a fixed array's length or a tuple's field count,
// and every element's type must equal the slot it fills; a mismatch is a
// programming error and panics.
func NewComposite(typ *Type, elems ...Value) Value {
	switch typ.kind {
	case KindFixedArray:
		if len(elems) != typ.size {
			panic(fmt.Sprintf("%s needs %d elements, have %d", typ, typ.size, len(elems)))
		}
		for i, e := range elems {
			if !e.typ.Equal(typ.elem) {
				panic(fmt.Sprintf("%s element %d has type %s", typ, i, e.typ))
			}
		}
	case KindDynamicArray:
		for i, e := range elems {
			if !e.typ.Equal(typ.elem) {
				panic(fmt.Sprintf("%s element %d has type %s", typ, i, e.typ))
			}
		}
	case KindTuple:
		if len(elems) != len(typ.fields) {
			panic(fmt.Sprintf("%s needs %d fields, have %d", typ, len(typ.fields), len(elems)))
		}
		for i, e := range elems {
			if !e.typ.Equal(typ.fields[i]) {
				panic(fmt.Sprintf("%s field %d has type %s", typ, i, e.typ))
			}
		}
	default:
		panic(fmt.Sprintf("not a composite type: %s", typ))
	}
	return Value{typ: typ, elems: elems}
}

// Type returns the descriptor of the value.
func (v Value) Type() *Type {
	return v.typ
}

// Uint returns the scalar word of the value: the magnitude for unsigned
// integers, enums and addresses, the raw two's complement word for signed
// integers and 0/1 for booleans. The returned integer is a copy.
func (v Value) Uint() *uint256.Int {
	return new(uint256.Int).Set(&v.word)
}

// Big returns the value as an arbitrary precision integer, interpreting the
// word as signed two's complement for signed integer types.
func (v Value) Big() *big.Int {
	n := v.word.ToBig()
	if v.typ.kind == KindInt && v.word.Sign() < 0 {
		n.Sub(n, maxWord)
	}
	return n
}

// Bool returns the boolean payload. Legacy decoding can store coerced truthy
// words here, so any nonzero word reads as true.
func (v Value) Bool() bool {
	return !v.word.IsZero()
}

// Bytes returns a copy of the byte payload of a bytes, fixed bytes or string
// value.
func (v Value) Bytes() []byte {
	return append([]byte(nil), v.blob...)
}

// Text returns the payload of a string value.
func (v Value) Text() string {
	return string(v.blob)
}

// Len returns the element count of a composite value.
func (v Value) Len() int {
	return len(v.elems)
}

// At returns the i-th element of a composite value.
func (v Value) At(i int) Value {
	return v.elems[i]
}

// Equal reports whether two values have equal types and equal payloads.
func (v Value) Equal(o Value) bool {
	if !v.typ.Equal(o.typ) {
		return false
	}
	switch v.typ.kind {
	case KindUint, KindInt, KindBool, KindAddress, KindEnum:
		return v.word.Eq(&o.word)
	case KindFixedBytes, KindBytes, KindString:
		return bytes.Equal(v.blob, o.blob)
	default:
		if len(v.elems) != len(o.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(o.elems[i]) {
				return false
			}
		}
		return true
	}
}

// String renders the value for debugging and test failure messages.
func (v Value) String() string {
	switch v.typ.kind {
	case KindUint, KindEnum, KindBool:
		return v.word.Dec()
	case KindInt:
		return v.Big().String()
	case KindAddress:
		return v.word.Hex()
	case KindFixedBytes, KindBytes:
		return fmt.Sprintf("%#x", v.blob)
	case KindString:
		return fmt.Sprintf("%q", v.blob)
	default:
		parts := make([]string, len(v.elems))
		for i, e := range v.elems {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
}
