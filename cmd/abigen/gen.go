// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"

	"github.com/OfriHarlev/abi"
)

const abiPkgPath = "github.com/OfriHarlev/abi"

// descriptorExpr maps a Go field type onto the source expression constructing
// its ABI descriptor. A non-empty tag overrides the inferred mapping with
// canonical type notation, validated here so the failure surfaces at generate
// time instead of at program init.
func descriptorExpr(t types.Type, tag string) (string, error) {
	if tag != "" {
		if _, err := abi.ParseType(tag); err != nil {
			return "", err
		}
		return fmt.Sprintf("abi.MustParseType(%q)", tag), nil
	}
	// Well known named types map before unwrapping to their underlying shape
	if named, ok := t.(*types.Named); ok {
		if obj := named.Obj(); obj.Pkg() != nil {
			switch obj.Pkg().Path() + "." + obj.Name() {
			case "math/big.Int":
				return "abi.Int(256)", nil
			case "github.com/holiman/uint256.Int":
				return "abi.Uint(256)", nil
			}
		}
	}
	switch t := t.(type) {
	case *types.Pointer:
		return descriptorExpr(t.Elem(), "")

	case *types.Named:
		return descriptorExpr(t.Underlying(), "")

	case *types.Basic:
		switch t.Kind() {
		case types.Bool:
			return "abi.Bool()", nil
		case types.Uint8:
			return "abi.Uint(8)", nil
		case types.Uint16:
			return "abi.Uint(16)", nil
		case types.Uint32:
			return "abi.Uint(32)", nil
		case types.Uint64, types.Uint, types.Uintptr:
			return "abi.Uint(64)", nil
		case types.Int8:
			return "abi.Int(8)", nil
		case types.Int16:
			return "abi.Int(16)", nil
		case types.Int32:
			return "abi.Int(32)", nil
		case types.Int64, types.Int:
			return "abi.Int(64)", nil
		case types.String:
			return "abi.String()", nil
		}
		return "", fmt.Errorf("unsupported basic type: %s", t)

	case *types.Slice:
		if isByte(t.Elem()) {
			return "abi.Bytes()", nil
		}
		elem, err := descriptorExpr(t.Elem(), "")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("abi.Slice(%s)", elem), nil

	case *types.Array:
		if isByte(t.Elem()) {
			if t.Len() < 1 || t.Len() > 32 {
				return "", fmt.Errorf("byte array size %d out of the bytes1-bytes32 range", t.Len())
			}
			return fmt.Sprintf("abi.FixedBytes(%d)", t.Len()), nil
		}
		elem, err := descriptorExpr(t.Elem(), "")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("abi.Array(%s, %d)", elem, t.Len()), nil

	case *types.Struct:
		var fields []string
		for i := 0; i < t.NumFields(); i++ {
			f := t.Field(i)
			if !f.Exported() {
				continue
			}
			tag, ignore := parseTag(t.Tag(i))
			if ignore {
				continue
			}
			expr, err := descriptorExpr(f.Type(), tag)
			if err != nil {
				return "", err
			}
			fields = append(fields, expr)
		}
		var buf bytes.Buffer
		buf.WriteString("abi.Tuple(")
		for i, f := range fields {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(f)
		}
		buf.WriteString(")")
		return buf.String(), nil
	}
	return "", fmt.Errorf("unsupported type: %s", t)
}

func isByte(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	return ok && basic.Kind() == types.Uint8
}

// generate emits the descriptor methods for all selected containers into one
// gofmt-ed source file.
func generate(pkg *types.Package, conts []*abiContainer) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by abigen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg.Name())
	fmt.Fprintf(&b, "import %q\n", abiPkgPath)

	for _, cont := range conts {
		name := cont.named.Obj().Name()
		fmt.Fprintf(&b, "\n// ABIType returns the argument tuple descriptor of %s.\n", name)
		fmt.Fprintf(&b, "func (obj *%s) ABIType() *abi.Type {\n", name)
		fmt.Fprintf(&b, "\treturn abi.Tuple(\n")
		for i, field := range cont.fields {
			fmt.Fprintf(&b, "\t\t%s, // %s\n", cont.exprs[i], field)
		}
		fmt.Fprintf(&b, "\t)\n}\n")
	}
	return format.Source(b.Bytes())
}
