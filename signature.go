// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package abi

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSignature parses a canonical function signature of the form
// "transfer(address,uint256)" into the function name and the ordered argument
// descriptor list. The argument list is the tuple notation accepted by
// ParseType, so nested tuples and array suffixes are allowed.
func ParseSignature(sig string) (string, []*Type, error) {
	open := strings.IndexByte(sig, '(')
	if open <= 0 {
		return "", nil, fmt.Errorf("%w: missing argument list in %q", ErrInvalidSignature, sig)
	}
	t, err := ParseType(sig[open:])
	if err != nil {
		return "", nil, err
	}
	if t.kind != KindTuple {
		return "", nil, fmt.Errorf("%w: argument list is %s in %q", ErrInvalidSignature, t, sig)
	}
	return sig[:open], t.fields, nil
}

// ParseType parses a single type in canonical ABI notation: elementary names
// ("uint256", "bytes32", "bool"), the aliases "uint", "int" and "byte", array
// suffixes ("uint16[2][]") and parenthesized tuples ("(uint256,bytes)[3]").
func ParseType(s string) (*Type, error) {
	t, rest, err := parseType(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("%w: trailing %q in %q", ErrInvalidSignature, rest, s)
	}
	return t, nil
}

// MustParseType is ParseType for statically known notation, panicking on any
// parse failure. It is what generated descriptor code calls.
func MustParseType(s string) *Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

// parseType consumes one type (base plus any array suffixes) from the front
// of s and returns the unconsumed remainder.
func parseType(s string) (*Type, string, error) {
	var (
		base *Type
		rest string
		err  error
	)
	if strings.HasPrefix(s, "(") {
		var fields []*Type
		if fields, rest, err = parseTupleBody(s[1:]); err != nil {
			return nil, "", err
		}
		base = Tuple(fields...)
	} else {
		end := 0
		for end < len(s) && (s[end] >= 'a' && s[end] <= 'z' || s[end] >= '0' && s[end] <= '9') {
			end++
		}
		if base, err = elementaryType(s[:end]); err != nil {
			return nil, "", err
		}
		rest = s[end:]
	}
	for strings.HasPrefix(rest, "[") {
		mark := strings.IndexByte(rest, ']')
		if mark < 0 {
			return nil, "", fmt.Errorf("%w: unclosed array suffix in %q", ErrInvalidSignature, s)
		}
		if inner := rest[1:mark]; inner == "" {
			base = Slice(base)
		} else {
			n, err := strconv.Atoi(inner)
			if err != nil || n < 0 {
				return nil, "", fmt.Errorf("%w: array length %q in %q", ErrInvalidSignature, inner, s)
			}
			base = Array(base, n)
		}
		rest = rest[mark+1:]
	}
	return base, rest, nil
}

// parseTupleBody consumes a comma-separated field list up to and including
// the closing parenthesis. The leading parenthesis is already consumed.
func parseTupleBody(s string) ([]*Type, string, error) {
	if strings.HasPrefix(s, ")") {
		return nil, s[1:], nil
	}
	var fields []*Type
	for {
		t, rest, err := parseType(s)
		if err != nil {
			return nil, "", err
		}
		fields = append(fields, t)
		switch {
		case strings.HasPrefix(rest, ","):
			s = rest[1:]
		case strings.HasPrefix(rest, ")"):
			return fields, rest[1:], nil
		default:
			return nil, "", fmt.Errorf("%w: expected ',' or ')' at %q", ErrInvalidSignature, rest)
		}
	}
}

// elementaryType resolves a bare type name to its descriptor.
func elementaryType(name string) (*Type, error) {
	switch name {
	case "bool":
		return Bool(), nil
	case "address":
		return Address(), nil
	case "bytes":
		return Bytes(), nil
	case "string":
		return String(), nil
	case "byte":
		return FixedBytes(1), nil
	case "function":
		return FixedBytes(24), nil // address plus selector, packed
	case "uint":
		return Uint(256), nil
	case "int":
		return Int(256), nil
	}
	if bits, ok := strings.CutPrefix(name, "uint"); ok {
		return parseWidth(name, bits, Uint, 256)
	}
	if bits, ok := strings.CutPrefix(name, "int"); ok {
		return parseWidth(name, bits, Int, 256)
	}
	if size, ok := strings.CutPrefix(name, "bytes"); ok {
		return parseWidth(name, size, FixedBytes, 32)
	}
	return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidSignature, name)
}

// parseWidth validates a numeric type suffix (bit width or byte count) and
// builds the descriptor through the given constructor.
func parseWidth(name, suffix string, build func(int) *Type, max int) (*Type, error) {
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 1 || n > max {
		return nil, fmt.Errorf("%w: bad width in %q", ErrInvalidSignature, name)
	}
	if max == 256 && n%8 != 0 {
		return nil, fmt.Errorf("%w: width not byte aligned in %q", ErrInvalidSignature, name)
	}
	return build(n), nil
}
