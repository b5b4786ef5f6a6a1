// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

import "fmt"

// Mode selects how strictly a decode call treats malformed input. It is an
// explicit parameter on every decode, never ambient state, so the same
// descriptor tree can serve both dialects concurrently.
type Mode uint8

const (
	// Legacy reproduces the permissive pre-v2 decoder: short static words are
	// zero-filled, booleans coerce nonzero to true, enums and addresses keep
	// their raw bits truncated to the declared width, and dynamic payloads
	// that run past the buffer end are zero-filled up to their declared
	// length. Only the head-region minimum length and the allocation defense
	// against absurd claimed lengths remain fatal.
	Legacy Mode = iota

	// Strict rejects any encoding that is not byte-for-byte canonical within
	// bounds: every read must fit the buffer, booleans must be 0 or 1, enums
	// must be within their member range and address words must be zero-padded.
	Strict
)

// String implements fmt.Stringer, mostly for test harness labels.
func (m Mode) String() string {
	switch m {
	case Legacy:
		return "legacy"
	case Strict:
		return "strict"
	}
	return fmt.Sprintf("mode(%d)", m)
}
