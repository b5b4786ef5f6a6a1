// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"go/types"
	"testing"
)

// Tests the Go type to descriptor expression mapping.
func TestDescriptorExpr(t *testing.T) {
	tests := []struct {
		typ  types.Type
		want string
	}{
		{types.Typ[types.Bool], "abi.Bool()"},
		{types.Typ[types.Uint8], "abi.Uint(8)"},
		{types.Typ[types.Uint64], "abi.Uint(64)"},
		{types.Typ[types.Int32], "abi.Int(32)"},
		{types.Typ[types.String], "abi.String()"},
		{types.NewSlice(types.Typ[types.Uint8]), "abi.Bytes()"},
		{types.NewArray(types.Typ[types.Uint8], 20), "abi.FixedBytes(20)"},
		{types.NewSlice(types.Typ[types.String]), "abi.Slice(abi.String())"},
		{types.NewArray(types.NewSlice(types.Typ[types.Uint8]), 2), "abi.Array(abi.Bytes(), 2)"},
	}
	for _, tt := range tests {
		have, err := descriptorExpr(tt.typ, "")
		if err != nil {
			t.Errorf("%s: failed to map: %v", tt.typ, err)
			continue
		}
		if have != tt.want {
			t.Errorf("%s: expression mismatch: have %s, want %s", tt.typ, have, tt.want)
		}
	}
}

// Tests that tags override the inferred mapping and are validated.
func TestDescriptorTags(t *testing.T) {
	have, err := descriptorExpr(types.Typ[types.Uint64], "uint24")
	if err != nil {
		t.Fatalf("failed to map tagged field: %v", err)
	}
	if want := `abi.MustParseType("uint24")`; have != want {
		t.Errorf("expression mismatch: have %s, want %s", have, want)
	}
	if _, err := descriptorExpr(types.Typ[types.Uint64], "uint7"); err == nil {
		t.Errorf("invalid tag accepted")
	}
	if _, err := descriptorExpr(types.NewArray(types.Typ[types.Uint8], 64), ""); err == nil {
		t.Errorf("oversized byte array accepted")
	}
}
