package strongcheck

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/types/typeutil"
)

// StrongPath is the import path of the package whose wrappers are checked.
const StrongPath = "github.com/Azhovan/strong"

// rawOperandMethods are the wrapper methods taking a bare primitive that is
// combined with the receiver's value. Shift counts are dimensionless and are
// not listed.
var rawOperandMethods = map[string]bool{
	"AddN": true, "SubN": true, "MulN": true, "DivN": true, "RemN": true,
	"AndN": true, "OrN": true, "XorN": true, "AndNotN": true,
	"EqN": true, "NeN": true, "LtN": true, "LeN": true, "GtN": true, "GeN": true, "CmpN": true,
	"AddAssignN": true, "SubAssignN": true, "MulAssignN": true, "DivAssignN": true, "RemAssignN": true,
	"AndAssignN": true, "OrAssignN": true, "XorAssignN": true, "AndNotAssignN": true,
}

// wrapperTag returns the Tag argument of t when t (or *t) is an instance of
// strong.Int or strong.Float.
func wrapperTag(t types.Type) (types.Type, bool) {
	if t == nil {
		return nil, false
	}
	if p, ok := t.Underlying().(*types.Pointer); ok {
		t = p.Elem()
	}
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, false
	}
	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != StrongPath {
		return nil, false
	}
	if obj.Name() != "Int" && obj.Name() != "Float" {
		return nil, false
	}
	args := named.TypeArgs()
	if args.Len() != 2 {
		return nil, false
	}
	return args.At(1), true
}

// methodCall matches x.M(...) where x is a wrapper value, returning x and M.
func methodCall(info *types.Info, call *ast.CallExpr) (ast.Expr, string, bool) {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return nil, "", false
	}
	s := info.Selections[sel]
	if s == nil || s.Kind() != types.MethodVal {
		return nil, "", false
	}
	if _, ok := wrapperTag(s.Recv()); !ok {
		return nil, "", false
	}
	return sel.X, sel.Sel.Name, true
}

// strongFunc returns the name of the strong package function called by call.
func strongFunc(info *types.Info, call *ast.CallExpr) (string, bool) {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != StrongPath {
		return "", false
	}
	if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
		return "", false
	}
	return fn.Name(), true
}

// sourceTag traces the unit of a raw primitive expression back to the
// wrapper it was taken from. It follows parentheses, conversions, x.Get()
// and *x.Ptr(). Any other expression, including arithmetic on the raw
// value, has no traceable unit.
func sourceTag(info *types.Info, e ast.Expr) (types.Type, bool) {
	switch e := ast.Unparen(e).(type) {
	case *ast.CallExpr:
		if tv, ok := info.Types[e.Fun]; ok && tv.IsType() && len(e.Args) == 1 {
			return sourceTag(info, e.Args[0])
		}
		if recv, name, ok := methodCall(info, e); ok && name == "Get" {
			return wrapperTag(info.TypeOf(recv))
		}
	case *ast.StarExpr:
		return ptrTag(info, e)
	}
	return nil, false
}

// ptrTag matches *x.Ptr() and returns the tag of x.
func ptrTag(info *types.Info, e *ast.StarExpr) (types.Type, bool) {
	call, ok := ast.Unparen(e.X).(*ast.CallExpr)
	if !ok {
		return nil, false
	}
	recv, name, ok := methodCall(info, call)
	if !ok || name != "Ptr" {
		return nil, false
	}
	return wrapperTag(info.TypeOf(recv))
}

// tagParamIndex returns the position of the type parameter named Tag in the
// declaration of obj, or -1.
func tagParamIndex(obj types.Object) int {
	var tparams *types.TypeParamList
	switch obj := obj.(type) {
	case *types.TypeName:
		if named, ok := obj.Type().(*types.Named); ok {
			tparams = named.TypeParams()
		}
	case *types.Func:
		if sig, ok := obj.Type().(*types.Signature); ok {
			tparams = sig.TypeParams()
		}
	}
	for i := range tparams.Len() {
		if tparams.At(i).Obj().Name() == "Tag" {
			return i
		}
	}
	return -1
}

// isNamedTag reports whether tag has a name of its own.
func isNamedTag(tag types.Type) bool {
	switch types.Unalias(tag).(type) {
	case *types.Named, *types.Basic:
		return true
	}
	return false
}

// hasIgnoreDirective reports whether text is a //strongcheck:ignore or
// //nolint:strongcheck comment.
func hasIgnoreDirective(text string) bool {
	text = strings.TrimSpace(strings.TrimPrefix(text, "//"))
	if strings.HasPrefix(text, "strongcheck:ignore") {
		return true
	}
	if rest, ok := strings.CutPrefix(text, "nolint:"); ok {
		linters, _, _ := strings.Cut(rest, " ")
		for _, l := range strings.Split(linters, ",") {
			if l == "strongcheck" {
				return true
			}
		}
	}
	return false
}
