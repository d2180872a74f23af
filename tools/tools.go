//go:build tools

package tools

import (
	// github.com/99designs/gqlgen is a main package (program).
	// Importing it here is the canonical Go "tools" pattern:
	// https://github.com/golang/go/wiki/Modules#how-can-i-track-tool-dependencies-for-a-module
	//
	// `go mod tidy` processes this import to populate go.sum with all entries
	// needed by `go run github.com/99designs/gqlgen generate` against
	// gqlgen.yml.
	_ "github.com/99designs/gqlgen"
	_ "github.com/99designs/gqlgen/codegen/config"
	_ "golang.org/x/text/cases"
	_ "golang.org/x/tools/go/packages"
	_ "golang.org/x/tools/imports"
)
