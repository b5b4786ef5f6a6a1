// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import "reflect"

const abiTagIdent = "abi"

// parseTag extracts the abi override from a struct field tag. The returned
// string is the canonical type notation to use instead of the inferred
// mapping; ignore is set for fields tagged `abi:"-"`.
func parseTag(input string) (override string, ignore bool) {
	tag, ok := reflect.StructTag(input).Lookup(abiTagIdent)
	if !ok {
		return "", false
	}
	if tag == "-" {
		return "", true
	}
	return tag, false
}
