package strong

import "golang.org/x/exp/constraints"

// Signed is any signed integer representation.
type Signed interface {
	constraints.Signed
}

// Unsigned is any unsigned integer representation.
type Unsigned interface {
	constraints.Unsigned
}

// Integer is any representation an Int may wrap.
type Integer interface {
	constraints.Integer
}

// Floating is any representation a Float may wrap.
type Floating interface {
	constraints.Float
}

// Number is any integer or floating-point representation. Booleans are not numbers.
type Number interface {
	Integer | Floating
}
