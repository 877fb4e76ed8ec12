package strong

import (
	"math"
	"unsafe"
)

// RoundStyle is the rounding mode of a representation's arithmetic.
type RoundStyle int

const (
	RoundIndeterminate     RoundStyle = -1
	RoundTowardZero        RoundStyle = 0
	RoundToNearest         RoundStyle = 1
	RoundTowardInfinity    RoundStyle = 2
	RoundTowardNegInfinity RoundStyle = 3
)

// IntLimits describes the range and properties of an integer representation.
// The bounds are typed as the wrapper so generic code can use them without
// unwrapping.
type IntLimits[P Integer, Tag any] struct {
	Min    Int[P, Tag]
	Lowest Int[P, Tag] // same as Min for integers
	Max    Int[P, Tag]

	// Floating-point only values, zero for integers.
	Epsilon      Int[P, Tag]
	RoundError   Int[P, Tag]
	Infinity     Int[P, Tag]
	QuietNaN     Int[P, Tag]
	SignalingNaN Int[P, Tag]
	DenormMin    Int[P, Tag]

	Signed          bool
	Integer         bool // always true
	Exact           bool // always true
	Bounded         bool // always true
	Modulo          bool // Go integer arithmetic wraps for signed and unsigned types
	IEC559          bool
	HasInfinity     bool
	HasQuietNaN     bool
	HasSignalingNaN bool
	HasDenorm       bool
	HasDenormLoss   bool
	Traps           bool // division by zero panics
	TinynessBefore  bool

	Bits          int // storage width
	Digits        int // radix digits without sign
	Digits10      int // decimal digits representable without change
	MaxDigits10   int // zero for integers
	Radix         int
	MinExponent   int
	MinExponent10 int
	MaxExponent   int
	MaxExponent10 int

	RoundStyle RoundStyle // RoundTowardZero
}

// IntLimitsOf returns the limits of Int[P, Tag].
func IntLimitsOf[P Integer, Tag any]() IntLimits[P, Tag] {
	var zero P
	bits := int(unsafe.Sizeof(zero)) * 8
	signed := ^zero < 0

	var lo, hi P
	digits := bits
	if signed {
		digits = bits - 1
		hi = P(uint64(1)<<digits - 1)
		lo = -hi - 1
	} else {
		hi = ^zero
	}

	return IntLimits[P, Tag]{
		Min:        Int[P, Tag]{v: lo},
		Lowest:     Int[P, Tag]{v: lo},
		Max:        Int[P, Tag]{v: hi},
		Signed:     signed,
		Integer:    true,
		Exact:      true,
		Bounded:    true,
		Modulo:     true,
		Traps:      true,
		Bits:       bits,
		Digits:     digits,
		Digits10:   int(float64(digits) * math.Log10(2)),
		Radix:      2,
		RoundStyle: RoundTowardZero,
	}
}

// Limits returns the limits of x's type.
func (x Int[P, Tag]) Limits() IntLimits[P, Tag] { return IntLimitsOf[P, Tag]() }

// FloatLimits describes an IEEE 754 binary32 or binary64 representation.
type FloatLimits[P Floating, Tag any] struct {
	Min          Float[P, Tag] // smallest positive normal value
	Lowest       Float[P, Tag] // most negative finite value
	Max          Float[P, Tag]
	Epsilon      Float[P, Tag] // distance from 1 to the next representable value
	RoundError   Float[P, Tag]
	Infinity     Float[P, Tag]
	QuietNaN     Float[P, Tag]
	SignalingNaN Float[P, Tag]
	DenormMin    Float[P, Tag] // smallest positive subnormal value

	Signed          bool
	Integer         bool
	Exact           bool
	Bounded         bool
	Modulo          bool
	IEC559          bool
	HasInfinity     bool
	HasQuietNaN     bool
	HasSignalingNaN bool
	HasDenorm       bool
	HasDenormLoss   bool // false: accuracy loss is not reported as denormalization
	Traps           bool // false: IEEE 754 arithmetic yields Inf or NaN instead
	TinynessBefore  bool // false: tininess is detected after rounding

	Bits          int
	Digits        int // mantissa bits including the implicit one
	Digits10      int
	MaxDigits10   int // decimal digits needed to round-trip any value
	Radix         int
	MinExponent   int
	MinExponent10 int
	MaxExponent   int
	MaxExponent10 int

	RoundStyle RoundStyle // RoundToNearest
}

// floatLayout holds the per-width constants of FloatLimits.
type floatLayout struct {
	min, max, epsilon, denormMin                      float64
	digits, digits10, maxDigits10                     int
	minExponent, minExponent10, maxExponent, maxExp10 int
}

var (
	binary32 = floatLayout{
		min:           float64(math.Float32frombits(0x00800000)),
		max:           math.MaxFloat32,
		epsilon:       float64(math.Float32frombits(0x34000000)),
		denormMin:     math.SmallestNonzeroFloat32,
		digits:        24,
		digits10:      6,
		maxDigits10:   9,
		minExponent:   -125,
		minExponent10: -37,
		maxExponent:   128,
		maxExp10:      38,
	}
	binary64 = floatLayout{
		min:           math.Float64frombits(0x0010000000000000),
		max:           math.MaxFloat64,
		epsilon:       math.Float64frombits(0x3CB0000000000000),
		denormMin:     math.SmallestNonzeroFloat64,
		digits:        53,
		digits10:      15,
		maxDigits10:   17,
		minExponent:   -1021,
		minExponent10: -307,
		maxExponent:   1024,
		maxExp10:      308,
	}
)

// FloatLimitsOf returns the limits of Float[P, Tag].
func FloatLimitsOf[P Floating, Tag any]() FloatLimits[P, Tag] {
	var zero P
	bits := int(unsafe.Sizeof(zero)) * 8

	l := binary64
	var snan P
	if bits == 32 {
		l = binary32
		// Go through float32 so the signalling payload is not quieted by a widening conversion.
		f := math.Float32frombits(0x7FA00000)
		snan = P(f)
	} else {
		f := math.Float64frombits(0x7FF4000000000000)
		snan = P(f)
	}

	wrap := func(v float64) Float[P, Tag] { return Float[P, Tag]{v: P(v)} }

	return FloatLimits[P, Tag]{
		Min:             wrap(l.min),
		Lowest:          wrap(-l.max),
		Max:             wrap(l.max),
		Epsilon:         wrap(l.epsilon),
		RoundError:      wrap(0.5),
		Infinity:        wrap(math.Inf(1)),
		QuietNaN:        wrap(math.NaN()),
		SignalingNaN:    Float[P, Tag]{v: snan},
		DenormMin:       wrap(l.denormMin),
		Signed:          true,
		Bounded:         true,
		IEC559:          true,
		HasInfinity:     true,
		HasQuietNaN:     true,
		HasSignalingNaN: true,
		HasDenorm:       true,
		Bits:            bits,
		Digits:          l.digits,
		Digits10:        l.digits10,
		MaxDigits10:     l.maxDigits10,
		Radix:           2,
		MinExponent:     l.minExponent,
		MinExponent10:   l.minExponent10,
		MaxExponent:     l.maxExponent,
		MaxExponent10:   l.maxExp10,
		RoundStyle:      RoundToNearest,
	}
}

// Limits returns the limits of x's type.
func (x Float[P, Tag]) Limits() FloatLimits[P, Tag] { return FloatLimitsOf[P, Tag]() }
