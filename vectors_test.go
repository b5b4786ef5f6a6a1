// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package abi_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"testing"

	"github.com/OfriHarlev/abi"
	"gopkg.in/yaml.v3"
)

// decodeVector is one conformance case from the on-disk corpus: a calldata
// blob decoded against a signature once per strictness mode, with either a
// sentinel error or a canonical re-encoding expected.
type decodeVector struct {
	Name      string `yaml:"name"`
	Signature string `yaml:"signature"`
	Data      string `yaml:"data"`
	Legacy    string `yaml:"legacy"`
	Strict    string `yaml:"strict"`
	Canonical string `yaml:"canonical"`
}

// decodeErrors maps the corpus error names onto the sentinel values.
var decodeErrors = map[string]error{
	"insufficient-data":       abi.ErrInsufficientData,
	"out-of-bounds":           abi.ErrOutOfBounds,
	"truncated-dynamic-data":  abi.ErrTruncatedDynamicData,
	"invalid-enum-value":      abi.ErrInvalidEnumValue,
	"invalid-bool-value":      abi.ErrInvalidBoolValue,
	"invalid-address-padding": abi.ErrInvalidAddressPadding,
	"invalid-length":          abi.ErrInvalidLength,
}

// Tests the decoder against the YAML conformance corpus in both modes.
func TestDecodeVectors(t *testing.T) {
	blob, err := os.ReadFile("testdata/decode_vectors.yaml")
	if err != nil {
		t.Fatalf("failed to read vector corpus: %v", err)
	}
	var vectors []decodeVector
	if err := yaml.Unmarshal(blob, &vectors); err != nil {
		t.Fatalf("failed to parse vector corpus: %v", err)
	}
	for _, vec := range vectors {
		vec := vec
		t.Run(vec.Name, func(t *testing.T) {
			args := mustParse(t, vec.Signature)
			data, err := hex.DecodeString(vec.Data)
			if err != nil {
				t.Fatalf("failed to decode data hex: %v", err)
			}
			canonical := data
			if vec.Canonical != "" {
				if canonical, err = hex.DecodeString(vec.Canonical); err != nil {
					t.Fatalf("failed to decode canonical hex: %v", err)
				}
			}
			for mode, expect := range map[abi.Mode]string{abi.Legacy: vec.Legacy, abi.Strict: vec.Strict} {
				t.Run(mode.String(), func(t *testing.T) {
					values, err := abi.Decode(data, args, mode)
					if expect != "ok" {
						want, known := decodeErrors[expect]
						if !known {
							t.Fatalf("unknown expectation %q", expect)
						}
						if !errors.Is(err, want) {
							t.Errorf("decode error mismatch: have %v, want %v", err, want)
						}
						return
					}
					if err != nil {
						t.Fatalf("failed to decode: %v", err)
					}
					// A successful decode must re-encode to the canonical form
					encoded, err := abi.Encode(args, values)
					if err != nil {
						t.Fatalf("failed to re-encode: %v", err)
					}
					if !bytes.Equal(encoded, canonical) {
						t.Errorf("re-encoding mismatch:\nhave %x\nwant %x", encoded, canonical)
					}
				})
			}
		})
	}
}
