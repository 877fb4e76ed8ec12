// Package typecheck type-checks standalone Go source snippets against
// packages loaded from a module. It backs tests that assert a piece of code
// does not compile, without shelling out to the compiler for every case.
package typecheck

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

// ErrLoad is returned when the packages a Checker depends on fail to load.
var ErrLoad = errors.New("typecheck: load packages")

const loadMode = packages.NeedName | packages.NeedTypes | packages.NeedImports | packages.NeedDeps

// Checker type-checks snippets. Imports resolve to the packages loaded by
// Load, falling back to the default importer for anything else.
type Checker struct {
	fset     *token.FileSet
	pkgs     map[string]*types.Package
	fallback types.Importer
}

// Load loads patterns (and their dependencies) from dir.
func Load(ctx context.Context, dir string, patterns ...string) (*Checker, error) {
	fset := token.NewFileSet()
	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     dir,
		Fset:    fset,
	}

	roots, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	c := &Checker{
		fset:     fset,
		pkgs:     make(map[string]*types.Package),
		fallback: importer.Default(),
	}

	var loadErrs []error
	packages.Visit(roots, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			loadErrs = append(loadErrs, e)
		}
		if p.Types != nil {
			c.pkgs[p.PkgPath] = p.Types
		}
	})
	if len(loadErrs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrLoad, errors.Join(loadErrs...))
	}

	return c, nil
}

// Import implements types.Importer.
func (c *Checker) Import(path string) (*types.Package, error) {
	if p, ok := c.pkgs[path]; ok {
		return p, nil
	}
	return c.fallback.Import(path)
}

// Check parses src as a file and type-checks it. A parse failure is returned
// as err; type errors are returned as the slice, in source order.
func (c *Checker) Check(name, src string) ([]types.Error, error) {
	f, err := parser.ParseFile(c.fset, name, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	var typeErrs []types.Error
	conf := types.Config{
		Importer: c,
		Error: func(err error) {
			var te types.Error
			if errors.As(err, &te) {
				typeErrs = append(typeErrs, te)
			}
		},
	}
	// The first error is also delivered through conf.Error.
	_, _ = conf.Check(f.Name.Name, c.fset, []*ast.File{f}, nil)

	return typeErrs, nil
}

// Messages returns the messages of errs.
func Messages(errs []types.Error) []string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Msg
	}
	return msgs
}

// Contains reports whether any of errs has a message containing substr.
func Contains(errs []types.Error, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}
