package strongcheck

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/Azhovan/strong/internal/qualname"
)

// Diagnostic categories.
const (
	CategoryRewrap       = "rewrap"
	CategoryMixedOperand = "mixed-operand"
	CategoryTagSize      = "tag-size"
	CategoryAnonymousTag = "anonymous-tag"
)

var configPath string

// Analyzer reports values that change unit through the Get/Ptr escape hatch
// and tags that break the wrappers' layout. Use it with singlechecker or
// multichecker, or via go vet -vettool.
var Analyzer = &analysis.Analyzer{
	Name:     "strongcheck",
	Doc:      "reports strong values rewrapped under a different tag and malformed tag types",
	URL:      "https://github.com/Azhovan/strong/strongcheck",
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "",
		"path to a YAML, TOML or JSON config file")
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Path() == StrongPath {
		return nil, nil
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	c := &checker{
		pass:    pass,
		cfg:     cfg,
		ignored: ignoredLines(pass),
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
		(*ast.AssignStmt)(nil),
	}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.CallExpr:
			c.checkCall(n)
		case *ast.AssignStmt:
			c.checkAssign(n)
		}
	})

	c.checkTags()
	return nil, nil
}

type lineKey struct {
	file string
	line int
}

// ignoredLines collects the lines carrying an ignore directive.
func ignoredLines(pass *analysis.Pass) map[lineKey]bool {
	lines := make(map[lineKey]bool)
	for _, f := range pass.Files {
		for _, cg := range f.Comments {
			for _, cm := range cg.List {
				if hasIgnoreDirective(cm.Text) {
					p := pass.Fset.Position(cm.Slash)
					lines[lineKey{p.Filename, p.Line}] = true
				}
			}
		}
	}
	return lines
}

type checker struct {
	pass    *analysis.Pass
	cfg     *Config
	ignored map[lineKey]bool
}

// suppressed reports whether a diagnostic at pos is silenced by a directive
// on the same line or the line above, or by exclude_paths.
func (c *checker) suppressed(pos token.Pos) bool {
	p := c.pass.Fset.Position(pos)
	if c.cfg.isExcludedPath(p.Filename) {
		return true
	}
	return c.ignored[lineKey{p.Filename, p.Line}] || c.ignored[lineKey{p.Filename, p.Line - 1}]
}

func (c *checker) report(pos token.Pos, category, format string, args ...any) {
	if c.suppressed(pos) {
		return
	}
	c.pass.Report(analysis.Diagnostic{
		Pos:      pos,
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	})
}

// flow checks a raw value taken from unit src and stored in or combined with
// unit dst. It reports true when the flow crosses units.
func (c *checker) flow(src, dst types.Type) bool {
	if types.Identical(src, dst) {
		return false
	}
	return !c.cfg.isAllowed(qualname.Of(src), qualname.Of(dst))
}

func (c *checker) checkCall(call *ast.CallExpr) {
	info := c.pass.TypesInfo

	if name, ok := strongFunc(info, call); ok {
		if (name == "NewInt" || name == "NewFloat") && len(call.Args) == 1 {
			c.checkRewrap(call.Args[0], info.TypeOf(call))
		}
		return
	}

	recv, name, ok := methodCall(info, call)
	if !ok || len(call.Args) != 1 {
		return
	}

	switch {
	case name == "With" || name == "Set":
		c.checkRewrap(call.Args[0], info.TypeOf(recv))
	case rawOperandMethods[name]:
		dst, _ := wrapperTag(info.TypeOf(recv))
		src, ok := sourceTag(info, call.Args[0])
		if ok && c.flow(src, dst) {
			c.report(call.Args[0].Pos(), CategoryMixedOperand,
				"raw operand of unit %s used in %s on unit %s",
				qualname.Short(src), name, qualname.Short(dst))
		}
	}
}

// checkRewrap reports arg when it carries a unit other than the tag of dst.
func (c *checker) checkRewrap(arg ast.Expr, dst types.Type) {
	dstTag, ok := wrapperTag(dst)
	if !ok {
		return
	}
	src, ok := sourceTag(c.pass.TypesInfo, arg)
	if ok && c.flow(src, dstTag) {
		c.report(arg.Pos(), CategoryRewrap,
			"value of unit %s rewrapped as %s",
			qualname.Short(src), qualname.Short(dstTag))
	}
}

// checkAssign handles writes through Ptr: *b.Ptr() = a.Get() and the
// compound forms.
func (c *checker) checkAssign(stmt *ast.AssignStmt) {
	if len(stmt.Lhs) != len(stmt.Rhs) {
		return
	}
	info := c.pass.TypesInfo

	for i, lhs := range stmt.Lhs {
		star, ok := ast.Unparen(lhs).(*ast.StarExpr)
		if !ok {
			continue
		}
		dst, ok := ptrTag(info, star)
		if !ok {
			continue
		}
		src, ok := sourceTag(info, stmt.Rhs[i])
		if !ok || !c.flow(src, dst) {
			continue
		}

		switch stmt.Tok {
		case token.ASSIGN:
			c.report(stmt.Rhs[i].Pos(), CategoryRewrap,
				"value of unit %s rewrapped as %s",
				qualname.Short(src), qualname.Short(dst))
		case token.SHL_ASSIGN, token.SHR_ASSIGN:
			// shift counts carry no unit
		default:
			c.report(stmt.Rhs[i].Pos(), CategoryMixedOperand,
				"raw operand of unit %s used in %s on unit %s",
				qualname.Short(src), stmt.Tok, qualname.Short(dst))
		}
	}
}

// checkTags reports each distinct tag type that is unnamed or not zero-sized,
// once, at its first instantiation in the package.
func (c *checker) checkTags() {
	info := c.pass.TypesInfo

	ids := make([]*ast.Ident, 0, len(info.Instances))
	for id := range info.Instances {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b *ast.Ident) int { return cmp.Compare(a.Pos(), b.Pos()) })

	var seen typeSet
	for _, id := range ids {
		obj := info.Uses[id]
		if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() != StrongPath {
			continue
		}
		i := tagParamIndex(obj)
		if i < 0 {
			continue
		}
		args := info.Instances[id].TypeArgs
		if i >= args.Len() {
			continue
		}
		tag := args.At(i)
		if _, generic := tag.(*types.TypeParam); generic {
			continue
		}
		if !seen.add(tag) {
			continue
		}

		if !isNamedTag(tag) {
			c.report(id.Pos(), CategoryAnonymousTag,
				"tag %s is not a named type; every use of it shares one unit", qualname.Short(tag))
		}
		if size := c.pass.TypesSizes.Sizeof(tag); size != 0 {
			c.report(id.Pos(), CategoryTagSize,
				"tag %s has size %d; tags must be zero-sized", qualname.Short(tag), size)
		}
	}
}

// typeSet is a set of types under types.Identical.
type typeSet []types.Type

func (s *typeSet) add(t types.Type) bool {
	for _, u := range *s {
		if types.Identical(t, u) {
			return false
		}
	}
	*s = append(*s, t)
	return true
}
