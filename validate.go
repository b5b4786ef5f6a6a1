// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

import (
	"fmt"

	"github.com/holiman/uint256"
)

// cleanupUint masks a word down to the given unsigned width. Cleanup is
// mandatory decoding behavior in both modes, not a strictness rule: a decoded
// integer never retains bits outside its declared width.
func cleanupUint(word *uint256.Int, bits int) {
	if bits >= 256 {
		return
	}
	word.Lsh(word, uint(256-bits))
	word.Rsh(word, uint(256-bits))
}

// cleanupInt truncates a word to the given width and sign-extends it back to
// 256-bit two's complement. Applied in both modes, same as cleanupUint.
func cleanupInt(word *uint256.Int, bits int) {
	if bits >= 256 {
		return
	}
	word.Lsh(word, uint(256-bits))
	word.SRsh(word, uint(256-bits))
}

// validateBool maps a word onto a boolean. Strict mode requires the canonical
// encodings 0 and 1; legacy mode coerces any nonzero word to true.
func validateBool(word *uint256.Int, mode Mode) (bool, error) {
	if word.IsZero() {
		return false, nil
	}
	if mode == Strict && (!word.IsUint64() || word.Uint64() != 1) {
		return false, fmt.Errorf("%w: found %s", ErrInvalidBoolValue, word.Hex())
	}
	return true, nil
}

// validateEnum checks a word against the enum's member range. Strict mode
// rejects anything at or past the member count; legacy mode keeps the raw
// bits truncated to the enum's underlying integer width.
func validateEnum(word *uint256.Int, members int, mode Mode) error {
	if mode == Strict {
		if !word.IsUint64() || word.Uint64() >= uint64(members) {
			return fmt.Errorf("%w: found %s, members %d", ErrInvalidEnumValue, word.Dec(), members)
		}
		return nil
	}
	cleanupUint(word, enumBits(members))
	return nil
}

// validateAddress checks the zero padding of an address word. Strict mode
// requires the upper 96 bits to be zero; legacy mode silently truncates to
// the low 160 bits.
func validateAddress(word *uint256.Int, mode Mode) error {
	var high uint256.Int
	high.Rsh(word, 160)
	if !high.IsZero() {
		if mode == Strict {
			return fmt.Errorf("%w: found %s", ErrInvalidAddressPadding, word.Hex())
		}
		cleanupUint(word, 160)
	}
	return nil
}
