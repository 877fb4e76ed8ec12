package strong

import "cmp"

// Int is an integer of representation P that only mixes with other values of the
// same Tag. The zero value is 0.
type Int[P Integer, Tag any] struct {
	_ [0]Tag // makes Int[P, A] and Int[P, B] unconvertible
	v P
}

// NewInt wraps v.
func NewInt[P Integer, Tag any](v P) Int[P, Tag] {
	return Int[P, Tag]{v: v}
}

// Get returns the wrapped primitive.
func (x Int[P, Tag]) Get() P { return x.v }

// Ptr returns the address of the wrapped primitive, for APIs that read or write
// a *P directly (binary.Read, fmt.Sscan, syscalls).
func (x *Int[P, Tag]) Ptr() *P { return &x.v }

// With returns a value of the same type as x holding v.
func (x Int[P, Tag]) With(v P) Int[P, Tag] { return Int[P, Tag]{v: v} }

// Set replaces the wrapped primitive with v.
func (x *Int[P, Tag]) Set(v P) { x.v = v }

// IsZero reports whether x is 0.
func (x Int[P, Tag]) IsZero() bool { return x.v == 0 }

// Not is the logical negation of x, !x.
func (x Int[P, Tag]) Not() bool { return x.v == 0 }

// Pos returns +x.
func (x Int[P, Tag]) Pos() Int[P, Tag] { return x }

// Neg returns -x. Unsigned representations wrap; see Negate for a signed result.
func (x Int[P, Tag]) Neg() Int[P, Tag] { return Int[P, Tag]{v: -x.v} }

// Complement returns the bitwise complement ^x.
func (x Int[P, Tag]) Complement() Int[P, Tag] { return Int[P, Tag]{v: ^x.v} }

// Add returns x + y.
func (x Int[P, Tag]) Add(y Int[P, Tag]) Int[P, Tag] { return Int[P, Tag]{v: x.v + y.v} }

// Sub returns x - y.
func (x Int[P, Tag]) Sub(y Int[P, Tag]) Int[P, Tag] { return Int[P, Tag]{v: x.v - y.v} }

// Mul returns x * y.
func (x Int[P, Tag]) Mul(y Int[P, Tag]) Int[P, Tag] { return Int[P, Tag]{v: x.v * y.v} }

// Div returns x / y. Like the primitive, it panics when y is 0.
func (x Int[P, Tag]) Div(y Int[P, Tag]) Int[P, Tag] { return Int[P, Tag]{v: x.v / y.v} }

// Rem returns x % y. Like the primitive, it panics when y is 0.
func (x Int[P, Tag]) Rem(y Int[P, Tag]) Int[P, Tag] { return Int[P, Tag]{v: x.v % y.v} }

// And returns x & y.
func (x Int[P, Tag]) And(y Int[P, Tag]) Int[P, Tag] { return Int[P, Tag]{v: x.v & y.v} }

// Or returns x | y.
func (x Int[P, Tag]) Or(y Int[P, Tag]) Int[P, Tag] { return Int[P, Tag]{v: x.v | y.v} }

// Xor returns x ^ y.
func (x Int[P, Tag]) Xor(y Int[P, Tag]) Int[P, Tag] { return Int[P, Tag]{v: x.v ^ y.v} }

// AndNot returns x &^ y.
func (x Int[P, Tag]) AndNot(y Int[P, Tag]) Int[P, Tag] { return Int[P, Tag]{v: x.v &^ y.v} }

// Shl returns x << y. The count is read as unsigned, so a negative count
// shifts every bit out.
func (x Int[P, Tag]) Shl(y Int[P, Tag]) Int[P, Tag] { return Int[P, Tag]{v: x.v << uint64(y.v)} }

// Shr returns x >> y, with the count read as in Shl.
func (x Int[P, Tag]) Shr(y Int[P, Tag]) Int[P, Tag] { return Int[P, Tag]{v: x.v >> uint64(y.v)} }

// AddN returns x + n.
func (x Int[P, Tag]) AddN(n P) Int[P, Tag] { return Int[P, Tag]{v: x.v + n} }

// SubN returns x - n.
func (x Int[P, Tag]) SubN(n P) Int[P, Tag] { return Int[P, Tag]{v: x.v - n} }

// MulN returns x * n.
func (x Int[P, Tag]) MulN(n P) Int[P, Tag] { return Int[P, Tag]{v: x.v * n} }

// DivN returns x / n.
func (x Int[P, Tag]) DivN(n P) Int[P, Tag] { return Int[P, Tag]{v: x.v / n} }

// RemN returns x % n.
func (x Int[P, Tag]) RemN(n P) Int[P, Tag] { return Int[P, Tag]{v: x.v % n} }

// AndN returns x & n.
func (x Int[P, Tag]) AndN(n P) Int[P, Tag] { return Int[P, Tag]{v: x.v & n} }

// OrN returns x | n.
func (x Int[P, Tag]) OrN(n P) Int[P, Tag] { return Int[P, Tag]{v: x.v | n} }

// XorN returns x ^ n.
func (x Int[P, Tag]) XorN(n P) Int[P, Tag] { return Int[P, Tag]{v: x.v ^ n} }

// AndNotN returns x &^ n.
func (x Int[P, Tag]) AndNotN(n P) Int[P, Tag] { return Int[P, Tag]{v: x.v &^ n} }

// ShlN returns x << n.
func (x Int[P, Tag]) ShlN(n P) Int[P, Tag] { return Int[P, Tag]{v: x.v << uint64(n)} }

// ShrN returns x >> n.
func (x Int[P, Tag]) ShrN(n P) Int[P, Tag] { return Int[P, Tag]{v: x.v >> uint64(n)} }

// Eq reports x == y.
func (x Int[P, Tag]) Eq(y Int[P, Tag]) bool { return x.v == y.v }

// Ne reports x != y.
func (x Int[P, Tag]) Ne(y Int[P, Tag]) bool { return x.v != y.v }

// Lt reports x < y.
func (x Int[P, Tag]) Lt(y Int[P, Tag]) bool { return x.v < y.v }

// Le reports x <= y.
func (x Int[P, Tag]) Le(y Int[P, Tag]) bool { return x.v <= y.v }

// Gt reports x > y.
func (x Int[P, Tag]) Gt(y Int[P, Tag]) bool { return x.v > y.v }

// Ge reports x >= y.
func (x Int[P, Tag]) Ge(y Int[P, Tag]) bool { return x.v >= y.v }

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
// The method expression (Offset.Cmp) fits slices.SortFunc.
func (x Int[P, Tag]) Cmp(y Int[P, Tag]) int { return cmp.Compare(x.v, y.v) }

// EqN reports x == n.
func (x Int[P, Tag]) EqN(n P) bool { return x.v == n }

// NeN reports x != n.
func (x Int[P, Tag]) NeN(n P) bool { return x.v != n }

// LtN reports x < n.
func (x Int[P, Tag]) LtN(n P) bool { return x.v < n }

// LeN reports x <= n.
func (x Int[P, Tag]) LeN(n P) bool { return x.v <= n }

// GtN reports x > n.
func (x Int[P, Tag]) GtN(n P) bool { return x.v > n }

// GeN reports x >= n.
func (x Int[P, Tag]) GeN(n P) bool { return x.v >= n }

// CmpN compares x with n like Cmp.
func (x Int[P, Tag]) CmpN(n P) int { return cmp.Compare(x.v, n) }
