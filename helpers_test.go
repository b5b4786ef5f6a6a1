// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package abi_test

import (
	"encoding/binary"
	"testing"

	"github.com/OfriHarlev/abi"
	"github.com/holiman/uint256"
)

// pack builds calldata out of 32-byte words: integers are right aligned,
// strings and byte slices are left aligned raw payloads consuming as many
// words as they need (zero padded), and *uint256.Int covers full-width words.
func pack(words ...any) []byte {
	var buf []byte
	for _, w := range words {
		var word [32]byte
		switch w := w.(type) {
		case int:
			binary.BigEndian.PutUint64(word[24:], uint64(w))
		case uint64:
			binary.BigEndian.PutUint64(word[24:], w)
		case *uint256.Int:
			word = w.Bytes32()
		case string:
			buf = append(buf, padded([]byte(w))...)
			continue
		case []byte:
			buf = append(buf, padded(w)...)
			continue
		default:
			panic("unsupported word in test vector")
		}
		buf = append(buf, word[:]...)
	}
	return buf
}

// padded zero-pads a raw payload up to the next word boundary.
func padded(blob []byte) []byte {
	out := make([]byte, (len(blob)+31)/32*32)
	copy(out, blob)
	return out
}

// maxWord returns the all-ones 256-bit word.
func maxWord() *uint256.Int {
	var word uint256.Int
	word.SubUint64(&word, 1)
	return &word
}

// mustParse builds the argument descriptor list of a canonical signature,
// aborting the test on malformed input (that would be a test bug).
func mustParse(t *testing.T, sig string) []*abi.Type {
	t.Helper()
	_, args, err := abi.ParseSignature(sig)
	if err != nil {
		t.Fatalf("failed to parse signature %q: %v", sig, err)
	}
	return args
}

// testBothModes runs a decode scenario once per strictness mode, for cases
// where the permissive and the strict decoder must agree.
func testBothModes(t *testing.T, fn func(t *testing.T, mode abi.Mode)) {
	for _, mode := range []abi.Mode{abi.Legacy, abi.Strict} {
		t.Run(mode.String(), func(t *testing.T) {
			fn(t, mode)
		})
	}
}
