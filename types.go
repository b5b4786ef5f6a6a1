// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

import (
	"fmt"
	"strings"
)

// Kind enumerates the ABI type categories a descriptor can represent.
type Kind uint8

const (
	KindUint       Kind = iota // unsigned integer, 8-256 bits
	KindInt                    // signed integer, 8-256 bits
	KindBool                   // boolean, canonically 0 or 1
	KindAddress                // 160-bit account address
	KindFixedBytes             // bytes1 .. bytes32, left aligned in a word
	KindEnum                   // enumeration with a fixed member count
	KindFixedArray             // T[n], static length
	KindDynamicArray           // T[], length prefixed
	KindBytes                  // bytes, length prefixed raw payload
	KindString                 // string, length prefixed UTF-8 payload
	KindTuple                  // ordered field list (struct / argument list)
)

// Type is a value-free descriptor of an ABI type. Descriptors are built once
// from a function signature and shared read-only across any number of encode
// and decode calls; all methods are pure layout queries.
//
// Construct descriptors through the package constructors (Uint, Slice, Tuple,
// etc.) or through ParseType. The constructors panic on parameters that no
// signature can produce (e.g. uint7); that is a programming error, not an
// input error.
type Type struct {
	kind   Kind
	bits   int     // integer width in bits for KindUint/KindInt
	size   int     // byte count (KindFixedBytes), element count (KindFixedArray) or member count (KindEnum)
	elem   *Type   // element type for array kinds
	fields []*Type // ordered field types for KindTuple
}

// Uint returns the descriptor of an unsigned integer of the given bit width.
// The width must be a multiple of 8 between 8 and 256.
func Uint(bits int) *Type {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		panic(fmt.Sprintf("invalid uint width: %d bits", bits))
	}
	return &Type{kind: KindUint, bits: bits}
}

// Int returns the descriptor of a signed (two's complement) integer of the
// given bit width. The width must be a multiple of 8 between 8 and 256.
func Int(bits int) *Type {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		panic(fmt.Sprintf("invalid int width: %d bits", bits))
	}
	return &Type{kind: KindInt, bits: bits}
}

// Bool returns the boolean descriptor.
func Bool() *Type {
	return &Type{kind: KindBool}
}

// Address returns the 160-bit address descriptor.
func Address() *Type {
	return &Type{kind: KindAddress}
}

// FixedBytes returns the descriptor of a bytesN type, 1 <= n <= 32.
func FixedBytes(n int) *Type {
	if n < 1 || n > 32 {
		panic(fmt.Sprintf("invalid fixed bytes size: %d", n))
	}
	return &Type{kind: KindFixedBytes, size: n}
}

// Enum returns the descriptor of an enumeration with the given member count.
func Enum(members int) *Type {
	if members < 1 {
		panic(fmt.Sprintf("invalid enum member count: %d", members))
	}
	return &Type{kind: KindEnum, size: members}
}

// Bytes returns the dynamic byte array descriptor.
func Bytes() *Type {
	return &Type{kind: KindBytes}
}

// String returns the dynamic string descriptor.
func String() *Type {
	return &Type{kind: KindString}
}

// Array returns the descriptor of a fixed length array of n elements.
func Array(elem *Type, n int) *Type {
	if n < 0 {
		panic(fmt.Sprintf("invalid array length: %d", n))
	}
	return &Type{kind: KindFixedArray, size: n, elem: elem}
}

// Slice returns the descriptor of a dynamically sized array.
func Slice(elem *Type) *Type {
	return &Type{kind: KindDynamicArray, elem: elem}
}

// Tuple returns the descriptor of an ordered field list. A function's
// parameter or return list is a tuple of its argument types.
func Tuple(fields ...*Type) *Type {
	return &Type{kind: KindTuple, fields: fields}
}

// Kind returns the type category of the descriptor.
func (t *Type) Kind() Kind {
	return t.kind
}

// Bits returns the declared bit width of an integer type. For enums it is the
// width of the underlying unsigned integer; for addresses it is 160.
func (t *Type) Bits() int {
	switch t.kind {
	case KindUint, KindInt:
		return t.bits
	case KindEnum:
		return enumBits(t.size)
	case KindAddress:
		return 160
	}
	return 0
}

// Size returns the byte count of a fixed bytes type, the element count of a
// fixed array, or the member count of an enum. Zero for every other kind.
func (t *Type) Size() int {
	return t.size
}

// Elem returns the element type of an array kind, nil otherwise.
func (t *Type) Elem() *Type {
	return t.elem
}

// Fields returns the ordered field types of a tuple, nil otherwise. The
// returned slice is shared, treat it as read-only.
func (t *Type) Fields() []*Type {
	return t.fields
}

// IsDynamic reports whether the encoded size of the type depends on the value
// being encoded. Dynamic types occupy a single offset word in their region's
// head and carry their payload in the tail.
func (t *Type) IsDynamic() bool {
	switch t.kind {
	case KindDynamicArray, KindBytes, KindString:
		return true
	case KindFixedArray:
		return t.elem.IsDynamic()
	case KindTuple:
		for _, f := range t.fields {
			if f.IsDynamic() {
				return true
			}
		}
	}
	return false
}

// Equal reports whether two descriptors describe the same ABI type. The
// comparison is structural, so independently constructed descriptors of the
// same signature compare equal.
func (t *Type) Equal(o *Type) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil || t.kind != o.kind || t.bits != o.bits || t.size != o.size {
		return false
	}
	if (t.elem == nil) != (o.elem == nil) {
		return false
	}
	if t.elem != nil && !t.elem.Equal(o.elem) {
		return false
	}
	if len(t.fields) != len(o.fields) {
		return false
	}
	for i := range t.fields {
		if !t.fields[i].Equal(o.fields[i]) {
			return false
		}
	}
	return true
}

// String renders the descriptor in canonical ABI signature notation. Enums
// render as their underlying unsigned integer, matching how signatures spell
// them on the wire.
func (t *Type) String() string {
	switch t.kind {
	case KindUint:
		return fmt.Sprintf("uint%d", t.bits)
	case KindInt:
		return fmt.Sprintf("int%d", t.bits)
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindFixedBytes:
		return fmt.Sprintf("bytes%d", t.size)
	case KindEnum:
		return fmt.Sprintf("uint%d", enumBits(t.size))
	case KindFixedArray:
		return fmt.Sprintf("%s[%d]", t.elem, t.size)
	case KindDynamicArray:
		return t.elem.String() + "[]"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindTuple:
		names := make([]string, len(t.fields))
		for i, f := range t.fields {
			names[i] = f.String()
		}
		return "(" + strings.Join(names, ",") + ")"
	}
	return fmt.Sprintf("unknown kind %d", t.kind)
}

// enumBits returns the width of the smallest byte-multiple unsigned integer
// that can represent members-1.
func enumBits(members int) int {
	bits := 8
	for members-1 >= 1<<bits && bits < 256 {
		bits += 8
	}
	return bits
}
