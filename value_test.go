// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

// Tests width cleanup of unsigned words, including that cleanup of an
// already-clean value is a no-op.
func TestCleanupUint(t *testing.T) {
	tests := []struct {
		word string
		bits int
		want string
	}{
		{"0x1", 8, "0x1"},
		{"0xff", 8, "0xff"},
		{"0x1ff", 8, "0xff"},
		{"0xffffff", 16, "0xffff"},
		{"0x1ffff", 16, "0xffff"},
		{"0xdeadbeef", 256, "0xdeadbeef"},
	}
	for _, tt := range tests {
		word := uint256.MustFromHex(tt.word)
		want := uint256.MustFromHex(tt.want)

		cleanupUint(word, tt.bits)
		if !word.Eq(want) {
			t.Errorf("cleanup(%s, %d) mismatch: have %s, want %s", tt.word, tt.bits, word.Hex(), tt.want)
		}
		cleanupUint(word, tt.bits)
		if !word.Eq(want) {
			t.Errorf("cleanup(%s, %d) not idempotent: have %s", tt.word, tt.bits, word.Hex())
		}
	}
}

// Tests truncation plus sign extension of signed words.
func TestCleanupInt(t *testing.T) {
	tests := []struct {
		word string
		bits int
		want int64
	}{
		{"0x7", 16, 7},
		{"0xffff", 16, -1},
		{"0x1ffff", 16, -1},
		{"0x10fff", 16, 0x0fff},
		{"0x7fff", 16, 0x7fff},
		{"0x80", 8, -128},
	}
	for _, tt := range tests {
		word := uint256.MustFromHex(tt.word)
		cleanupInt(word, tt.bits)

		v := Value{typ: Int(tt.bits)}
		v.word.Set(word)
		if have := v.Big().Int64(); have != tt.want {
			t.Errorf("cleanup(%s, %d) mismatch: have %d, want %d", tt.word, tt.bits, have, tt.want)
		}
	}
}

// Tests the underlying integer width derived for enum member counts.
func TestEnumBits(t *testing.T) {
	tests := []struct {
		members int
		bits    int
	}{
		{1, 8},
		{2, 8},
		{256, 8},
		{257, 16},
		{65536, 16},
		{65537, 24},
	}
	for _, tt := range tests {
		if bits := enumBits(tt.members); bits != tt.bits {
			t.Errorf("enumBits(%d) mismatch: have %d, want %d", tt.members, bits, tt.bits)
		}
	}
}

// Tests the signed round trip through the big.Int construction path.
func TestSignedValues(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 127, -128, 32767, -32768} {
		v := NewInt(Int(16), big.NewInt(n))
		if n >= -32768 && n <= 32767 {
			if have := v.Big().Int64(); have != n {
				t.Errorf("int16 round trip mismatch: have %d, want %d", have, n)
			}
		}
	}
	// Out-of-width inputs reduce like the decoder's cleanup does
	if have := NewInt(Int(8), big.NewInt(0x1ff)).Big().Int64(); have != -1 {
		t.Errorf("int8 reduction mismatch: have %d, want -1", have)
	}
	if have := NewInt(Int(8), big.NewInt(-129)).Big().Int64(); have != 127 {
		t.Errorf("int8 reduction mismatch: have %d, want 127", have)
	}
}

// Tests that values copy their payloads instead of aliasing caller memory.
func TestValueCopies(t *testing.T) {
	blob := []byte("abc")
	v := NewBytes(Bytes(), blob)
	blob[0] = 'x'
	if string(v.Bytes()) != "abc" {
		t.Errorf("payload aliases constructor input: have %q", v.Bytes())
	}
	out := v.Bytes()
	out[0] = 'y'
	if string(v.Bytes()) != "abc" {
		t.Errorf("payload aliases accessor output: have %q", v.Bytes())
	}
}
