// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

import "errors"

// ErrInsufficientData is returned when the buffer handed to Decode is shorter
// than the head region of the argument list. There is no head slot to even
// attempt to read, so this check applies in both modes.
var ErrInsufficientData = errors.New("abi: buffer shorter than head region")

// ErrOutOfBounds is returned in strict mode when a computed read range (a head
// slot, a dynamic offset or an array element) exceeds the buffer length.
var ErrOutOfBounds = errors.New("abi: read beyond buffer end")

// ErrTruncatedDynamicData is returned in strict mode when a length-prefixed
// payload declares more bytes than the buffer has left.
var ErrTruncatedDynamicData = errors.New("abi: dynamic payload truncated")

// ErrInvalidEnumValue is returned in strict mode when an enum word is outside
// the declared member range.
var ErrInvalidEnumValue = errors.New("abi: enum value out of range")

// ErrInvalidBoolValue is returned in strict mode when a boolean word is not
// exactly zero or one.
var ErrInvalidBoolValue = errors.New("abi: boolean not canonical")

// ErrInvalidAddressPadding is returned in strict mode when the upper 96 bits
// of an address word are not zero.
var ErrInvalidAddressPadding = errors.New("abi: address high bits not zero")

// ErrInvalidLength is returned in both modes when a claimed array or byte
// length cannot possibly be honored: it exceeds the whole buffer outright,
// or it exhausts the call-wide allocation quota that every length-prefixed
// payload draws from. The quota keeps nested arrays from multiplying legal
// per-level lengths into unbounded allocation.
var ErrInvalidLength = errors.New("abi: claimed length cannot fit buffer")

// ErrTypeMismatch is returned by Encode when the value list does not match
// the type list, either in arity or in a value's declared type.
var ErrTypeMismatch = errors.New("abi: value does not match argument type")

// ErrInvalidSignature is returned by the type and signature parsers when the
// input string is not canonical ABI notation.
var ErrInvalidSignature = errors.New("abi: invalid signature")
