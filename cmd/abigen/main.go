// abi: Ethereum contract ABI argument codec library
// Copyright 2026 abi Authors
// SPDX-License-Identifier: BSD-3-Clause

// abigen generates ABI type descriptors for Go structs. Given a package and a
// set of exported struct names, it emits an ABIType method per struct that
// returns the tuple descriptor matching the struct's fields, so the structs
// can drive Encode and Decode without hand-written descriptor lists.
//
// Field mapping follows the Go types: sized integers map to uint/int of the
// same width, [N]byte to bytesN, []byte to bytes, string to string, slices
// and arrays to their ABI counterparts and nested structs to tuples. The
// `abi:"..."` struct tag overrides the mapping with any canonical type
// notation (e.g. `abi:"uint24"` or `abi:"address"`); `abi:"-"` skips a field.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

func main() {
	var (
		pkgdir = flag.String("path", ".", "Directory of the package with the struct definitions")
		names  = flag.String("type", "", "Comma separated struct names to generate for (default: all)")
		output = flag.String("out", "abi_codegen.go", "Output file, relative to the package directory")
	)
	flag.Parse()

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedImports | packages.NeedDeps,
		Dir:  *pkgdir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load package: %v\n", err)
		os.Exit(1)
	}
	if len(pkgs) != 1 {
		fmt.Fprintf(os.Stderr, "expected one package, loaded %d\n", len(pkgs))
		os.Exit(1)
	}
	for _, err := range pkgs[0].Errors {
		fmt.Fprintf(os.Stderr, "package error: %v\n", err)
	}
	if len(pkgs[0].Errors) > 0 {
		os.Exit(1)
	}
	var split []string
	if *names != "" {
		split = strings.Split(*names, ",")
	}
	conts, err := parsePackage(pkgs[0].Types, split)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to map structs: %v\n", err)
		os.Exit(1)
	}
	code, err := generate(pkgs[0].Types, conts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate descriptors: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(filepath.Join(*pkgdir, *output), code, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write output: %v\n", err)
		os.Exit(1)
	}
}
