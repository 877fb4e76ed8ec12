package qualname

import (
	"go/types"
	"path"
	"strings"
)

// Of returns the fully qualified name of t.
// Examples:
//   - a named type "byteTag" in "github.com/acme/units" → "github.com/acme/units.byteTag"
//   - an unnamed struct → "struct{}"
func Of(t types.Type) string {
	return types.TypeString(t, nil)
}

// Short returns the name of t qualified by package name only.
// Examples:
//   - "github.com/acme/units.byteTag" → "units.byteTag"
func Short(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string { return p.Name() })
}

// Trim drops the import path directories from a qualified name produced by Of.
// Names without a directory are returned unchanged.
// Examples:
//   - "github.com/acme/units.byteTag" → "units.byteTag"
//   - "main.fooTag" → "main.fooTag"
func Trim(qualified string) string {
	if i := strings.LastIndex(qualified, "/"); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

// Match reports whether pattern matches a qualified name. The pattern uses
// path.Match syntax and is tried against both the full name and its Trim form,
// so "units.*" and "github.com/acme/*.byteTag" both match
// "github.com/acme/units.byteTag". A malformed pattern matches nothing.
func Match(pattern, qualified string) bool {
	if pattern == "*" {
		return true
	}
	if ok, err := path.Match(pattern, qualified); err == nil && ok {
		return true
	}
	ok, err := path.Match(pattern, Trim(qualified))
	return err == nil && ok
}

// ValidPattern reports whether pattern is well formed.
func ValidPattern(pattern string) bool {
	_, err := path.Match(pattern, "")
	return err == nil
}
