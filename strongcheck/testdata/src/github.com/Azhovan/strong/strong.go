// Package strong is a reduced copy of the wrapper API for analyzer tests.
package strong

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Floating interface{ ~float32 | ~float64 }

type Int[P Integer, Tag any] struct {
	_ [0]Tag
	v P
}

type Float[P Floating, Tag any] struct {
	_ [0]Tag
	v P
}

func NewInt[P Integer, Tag any](v P) Int[P, Tag] { return Int[P, Tag]{v: v} }

func NewFloat[P Floating, Tag any](v P) Float[P, Tag] { return Float[P, Tag]{v: v} }

func Cast[To, From Integer, Tag any](x Int[From, Tag]) Int[To, Tag] { return Int[To, Tag]{v: To(x.v)} }

func (x Int[P, Tag]) Get() P { return x.v }

func (x *Int[P, Tag]) Ptr() *P { return &x.v }

func (x Int[P, Tag]) With(v P) Int[P, Tag] { return Int[P, Tag]{v: v} }

func (x *Int[P, Tag]) Set(v P) { x.v = v }

func (x Int[P, Tag]) Add(y Int[P, Tag]) Int[P, Tag] { return Int[P, Tag]{v: x.v + y.v} }

func (x Int[P, Tag]) AddN(n P) Int[P, Tag] { return Int[P, Tag]{v: x.v + n} }

func (x Int[P, Tag]) MulN(n P) Int[P, Tag] { return Int[P, Tag]{v: x.v * n} }

func (x Int[P, Tag]) ShlN(n P) Int[P, Tag] { return Int[P, Tag]{v: x.v << uint64(n)} }

func (x Int[P, Tag]) LtN(n P) bool { return x.v < n }

func (x *Int[P, Tag]) AddAssignN(n P) *Int[P, Tag] {
	x.v += n
	return x
}

func (x *Int[P, Tag]) ShrAssignN(n P) *Int[P, Tag] {
	x.v >>= uint64(n)
	return x
}

func (x Float[P, Tag]) Get() P { return x.v }

func (x *Float[P, Tag]) Ptr() *P { return &x.v }

func (x Float[P, Tag]) With(v P) Float[P, Tag] { return Float[P, Tag]{v: v} }

func (x Float[P, Tag]) SubN(n P) Float[P, Tag] { return Float[P, Tag]{v: x.v - n} }
