package strong

import (
	"cmp"
	"math"
)

// Float is a floating-point number of representation P that only mixes with
// other values of the same Tag. The zero value is 0.
//
// Float has no bitwise, shift or remainder operators.
type Float[P Floating, Tag any] struct {
	_ [0]Tag
	v P
}

// NewFloat wraps v.
func NewFloat[P Floating, Tag any](v P) Float[P, Tag] {
	return Float[P, Tag]{v: v}
}

// Get returns the wrapped primitive.
func (x Float[P, Tag]) Get() P { return x.v }

// Ptr returns the address of the wrapped primitive.
func (x *Float[P, Tag]) Ptr() *P { return &x.v }

// With returns a value of the same type as x holding v.
func (x Float[P, Tag]) With(v P) Float[P, Tag] { return Float[P, Tag]{v: v} }

// Set replaces the wrapped primitive with v.
func (x *Float[P, Tag]) Set(v P) { x.v = v }

// IsZero reports whether x is +0 or -0.
func (x Float[P, Tag]) IsZero() bool { return x.v == 0 }

// Not is !x.
func (x Float[P, Tag]) Not() bool { return x.v == 0 }

// IsNaN reports whether x is a NaN.
func (x Float[P, Tag]) IsNaN() bool { return math.IsNaN(float64(x.v)) }

// IsInf reports whether x is an infinity, according to sign (see math.IsInf).
func (x Float[P, Tag]) IsInf(sign int) bool { return math.IsInf(float64(x.v), sign) }

// Pos returns +x.
func (x Float[P, Tag]) Pos() Float[P, Tag] { return x }

// Neg returns -x.
func (x Float[P, Tag]) Neg() Float[P, Tag] { return Float[P, Tag]{v: -x.v} }

// Add returns x + y.
func (x Float[P, Tag]) Add(y Float[P, Tag]) Float[P, Tag] { return Float[P, Tag]{v: x.v + y.v} }

// Sub returns x - y.
func (x Float[P, Tag]) Sub(y Float[P, Tag]) Float[P, Tag] { return Float[P, Tag]{v: x.v - y.v} }

// Mul returns x * y.
func (x Float[P, Tag]) Mul(y Float[P, Tag]) Float[P, Tag] { return Float[P, Tag]{v: x.v * y.v} }

// Div returns x / y. Dividing by zero yields ±Inf or NaN like the primitive.
func (x Float[P, Tag]) Div(y Float[P, Tag]) Float[P, Tag] { return Float[P, Tag]{v: x.v / y.v} }

// AddN returns x + n.
func (x Float[P, Tag]) AddN(n P) Float[P, Tag] { return Float[P, Tag]{v: x.v + n} }

// SubN returns x - n.
func (x Float[P, Tag]) SubN(n P) Float[P, Tag] { return Float[P, Tag]{v: x.v - n} }

// MulN returns x * n.
func (x Float[P, Tag]) MulN(n P) Float[P, Tag] { return Float[P, Tag]{v: x.v * n} }

// DivN returns x / n.
func (x Float[P, Tag]) DivN(n P) Float[P, Tag] { return Float[P, Tag]{v: x.v / n} }

// Comparisons follow IEEE 754: every comparison with NaN except Ne is false.

// Eq reports x == y.
func (x Float[P, Tag]) Eq(y Float[P, Tag]) bool { return x.v == y.v }

// Ne reports x != y.
func (x Float[P, Tag]) Ne(y Float[P, Tag]) bool { return x.v != y.v }

// Lt reports x < y.
func (x Float[P, Tag]) Lt(y Float[P, Tag]) bool { return x.v < y.v }

// Le reports x <= y.
func (x Float[P, Tag]) Le(y Float[P, Tag]) bool { return x.v <= y.v }

// Gt reports x > y.
func (x Float[P, Tag]) Gt(y Float[P, Tag]) bool { return x.v > y.v }

// Ge reports x >= y.
func (x Float[P, Tag]) Ge(y Float[P, Tag]) bool { return x.v >= y.v }

// Cmp orders like cmp.Compare: NaN sorts before every other value and equals NaN.
func (x Float[P, Tag]) Cmp(y Float[P, Tag]) int { return cmp.Compare(x.v, y.v) }

// EqN reports x == n.
func (x Float[P, Tag]) EqN(n P) bool { return x.v == n }

// NeN reports x != n.
func (x Float[P, Tag]) NeN(n P) bool { return x.v != n }

// LtN reports x < n.
func (x Float[P, Tag]) LtN(n P) bool { return x.v < n }

// LeN reports x <= n.
func (x Float[P, Tag]) LeN(n P) bool { return x.v <= n }

// GtN reports x > n.
func (x Float[P, Tag]) GtN(n P) bool { return x.v > n }

// GeN reports x >= n.
func (x Float[P, Tag]) GeN(n P) bool { return x.v >= n }

// CmpN compares x with n like Cmp.
func (x Float[P, Tag]) CmpN(n P) int { return cmp.Compare(x.v, n) }

// AddAssign performs x += y.
func (x *Float[P, Tag]) AddAssign(y Float[P, Tag]) *Float[P, Tag] {
	x.v += y.v
	return x
}

// SubAssign performs x -= y.
func (x *Float[P, Tag]) SubAssign(y Float[P, Tag]) *Float[P, Tag] {
	x.v -= y.v
	return x
}

// MulAssign performs x *= y.
func (x *Float[P, Tag]) MulAssign(y Float[P, Tag]) *Float[P, Tag] {
	x.v *= y.v
	return x
}

// DivAssign performs x /= y.
func (x *Float[P, Tag]) DivAssign(y Float[P, Tag]) *Float[P, Tag] {
	x.v /= y.v
	return x
}

// AddAssignN performs x += n.
func (x *Float[P, Tag]) AddAssignN(n P) *Float[P, Tag] {
	x.v += n
	return x
}

// SubAssignN performs x -= n.
func (x *Float[P, Tag]) SubAssignN(n P) *Float[P, Tag] {
	x.v -= n
	return x
}

// MulAssignN performs x *= n.
func (x *Float[P, Tag]) MulAssignN(n P) *Float[P, Tag] {
	x.v *= n
	return x
}

// DivAssignN performs x /= n.
func (x *Float[P, Tag]) DivAssignN(n P) *Float[P, Tag] {
	x.v /= n
	return x
}

// Inc is ++x.
func (x *Float[P, Tag]) Inc() *Float[P, Tag] { return x.AddAssignN(1) }

// Dec is --x.
func (x *Float[P, Tag]) Dec() *Float[P, Tag] { return x.SubAssignN(1) }

// PostInc is x++.
func (x *Float[P, Tag]) PostInc() Float[P, Tag] {
	old := *x
	x.AddAssignN(1)
	return old
}

// PostDec is x--.
func (x *Float[P, Tag]) PostDec() Float[P, Tag] {
	old := *x
	x.SubAssignN(1)
	return old
}
