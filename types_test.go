// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package abi_test

import (
	"testing"

	"github.com/OfriHarlev/abi"
)

// Tests the head geometry of static and dynamic types.
func TestHeadWords(t *testing.T) {
	tests := []struct {
		typ     *abi.Type
		words   int
		dynamic bool
	}{
		{abi.Uint(256), 1, false},
		{abi.Uint(8), 1, false},
		{abi.Bool(), 1, false},
		{abi.Address(), 1, false},
		{abi.FixedBytes(32), 1, false},
		{abi.Enum(7), 1, false},
		{abi.Array(abi.Uint(16), 3), 3, false},
		{abi.Array(abi.Array(abi.Uint(16), 2), 3), 6, false},
		{abi.Tuple(abi.Uint(256), abi.Array(abi.Uint(16), 3)), 4, false},
		{abi.Bytes(), 1, true},
		{abi.String(), 1, true},
		{abi.Slice(abi.Uint(256)), 1, true},
		{abi.Array(abi.Bytes(), 4), 1, true},
		{abi.Tuple(abi.Uint(256), abi.Bytes()), 1, true},
		{abi.Slice(abi.Slice(abi.Uint(16))), 1, true},
	}
	for _, tt := range tests {
		if words := abi.HeadWords(tt.typ); words != tt.words {
			t.Errorf("%s: head words mismatch: have %d, want %d", tt.typ, words, tt.words)
		}
		if dynamic := tt.typ.IsDynamic(); dynamic != tt.dynamic {
			t.Errorf("%s: dynamic flag mismatch: have %v, want %v", tt.typ, dynamic, tt.dynamic)
		}
	}
}

// Tests the head size (i.e. minimum buffer length) of argument lists.
func TestHeadSize(t *testing.T) {
	tests := []struct {
		sig  string
		size int
	}{
		{"f(uint256)", 32},
		{"f(uint256,uint16,bool)", 96},
		{"f(uint16[3],uint16[2][3],uint256,uint256,uint256)", 384},
		{"f(uint256,uint16[],uint256)", 96},
		{"f(bytes[2])", 32},
	}
	for _, tt := range tests {
		if size := abi.HeadSize(mustParse(t, tt.sig)); size != tt.size {
			t.Errorf("%s: head size mismatch: have %d, want %d", tt.sig, size, tt.size)
		}
	}
}

// Tests structural descriptor equality across construction paths.
func TestTypeEqual(t *testing.T) {
	parsed, err := abi.ParseType("(uint256,uint16[2][],bytes)")
	if err != nil {
		t.Fatalf("failed to parse type: %v", err)
	}
	built := abi.Tuple(abi.Uint(256), abi.Slice(abi.Array(abi.Uint(16), 2)), abi.Bytes())
	if !parsed.Equal(built) {
		t.Errorf("equality mismatch: %s != %s", parsed, built)
	}
	if parsed.Equal(abi.Tuple(abi.Uint(256))) {
		t.Errorf("unequal types compare equal")
	}
	if abi.Uint(16).Equal(abi.Int(16)) {
		t.Errorf("uint16 compares equal to int16")
	}
	if abi.Enum(2).Equal(abi.Enum(3)) {
		t.Errorf("enums with different member counts compare equal")
	}
}
