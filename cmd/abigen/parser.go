// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"go/types"
)

// abiContainer is a struct selected for generation: its named type plus the
// exported, non-ignored fields and the descriptor expression of each.
type abiContainer struct {
	named  *types.Named
	fields []string
	exprs  []string
}

func parsePackage(pkg *types.Package, names []string) ([]*abiContainer, error) {
	if len(names) == 0 {
		for _, name := range pkg.Scope().Names() {
			if _, _, err := lookupStruct(pkg.Scope(), name); err == nil {
				names = append(names, name)
			}
		}
	}
	var conts []*abiContainer
	for _, name := range names {
		named, str, err := lookupStruct(pkg.Scope(), name)
		if err != nil {
			return nil, err
		}
		cont, err := newContainer(named, str)
		if err != nil {
			return nil, err
		}
		conts = append(conts, cont)
	}
	return conts, nil
}

func lookupStruct(scope *types.Scope, name string) (*types.Named, *types.Struct, error) {
	obj := scope.Lookup(name)
	if obj == nil {
		return nil, nil, fmt.Errorf("identifier not found: %s", name)
	}
	typ, ok := obj.(*types.TypeName)
	if !ok {
		return nil, nil, fmt.Errorf("identifier not a type: %s", name)
	}
	dec, ok := typ.Type().(*types.Named)
	if !ok {
		return nil, nil, fmt.Errorf("identifier not a named type: %s", name)
	}
	str, ok := dec.Underlying().(*types.Struct)
	if !ok {
		return nil, nil, fmt.Errorf("identifier not a named struct: %s", name)
	}
	return dec, str, nil
}

func newContainer(named *types.Named, str *types.Struct) (*abiContainer, error) {
	var (
		fields []string
		exprs  []string
	)
	for i := 0; i < str.NumFields(); i++ {
		f := str.Field(i)
		if !f.Exported() {
			continue
		}
		tag, ignore := parseTag(str.Tag(i))
		if ignore {
			continue
		}
		expr, err := descriptorExpr(f.Type(), tag)
		if err != nil {
			return nil, fmt.Errorf("failed to map field %s.%s: %v", named.Obj().Name(), f.Name(), err)
		}
		fields = append(fields, f.Name())
		exprs = append(exprs, expr)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("struct %s has no encodable fields", named.Obj().Name())
	}
	return &abiContainer{named: named, fields: fields, exprs: exprs}, nil
}
