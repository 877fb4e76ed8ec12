package strong

import "unsafe"

// Cast converts x to representation To under the same tag, with Go's usual
// integer conversion (truncation or sign extension). The tag is taken from x,
// so a cast can never change the unit:
//
//	wide := strong.Cast[uint64](narrow)
func Cast[To, From Integer, Tag any](x Int[From, Tag]) Int[To, Tag] {
	return Int[To, Tag]{v: To(x.v)}
}

// CastFloat converts x to floating representation To under the same tag.
func CastFloat[To, From Floating, Tag any](x Float[From, Tag]) Float[To, Tag] {
	return Float[To, Tag]{v: To(x.v)}
}

// IntToFloat converts an integer value to floating representation To under the same tag.
func IntToFloat[To Floating, From Integer, Tag any](x Int[From, Tag]) Float[To, Tag] {
	return Float[To, Tag]{v: To(x.v)}
}

// FloatToInt converts a floating value to integer representation To under the
// same tag, truncating toward zero. Out of range values give the
// implementation-specific result Go defines for the primitive conversion.
func FloatToInt[To Integer, From Floating, Tag any](x Float[From, Tag]) Int[To, Tag] {
	return Int[To, Tag]{v: To(x.v)}
}

// Negate returns -x in the signed representation To, so that negating an
// unsigned quantity yields a signed one of the same unit.
func Negate[To Signed, From Integer, Tag any](x Int[From, Tag]) Int[To, Tag] {
	return Int[To, Tag]{v: -To(x.v)}
}

// IntValues returns the primitives of xs as a []P sharing memory with xs.
func IntValues[P Integer, Tag any](xs []Int[P, Tag]) []P {
	if len(xs) == 0 {
		return nil
	}
	return unsafe.Slice((*P)(unsafe.Pointer(&xs[0])), len(xs))
}

// FloatValues is IntValues for floating representations.
func FloatValues[P Floating, Tag any](xs []Float[P, Tag]) []P {
	if len(xs) == 0 {
		return nil
	}
	return unsafe.Slice((*P)(unsafe.Pointer(&xs[0])), len(xs))
}

// IntsOf views ps as values of tag Tag, sharing memory with ps. Like Get and
// Ptr it is an explicit escape hatch: it assigns a unit to raw storage.
func IntsOf[Tag any, P Integer](ps []P) []Int[P, Tag] {
	if len(ps) == 0 {
		return nil
	}
	return unsafe.Slice((*Int[P, Tag])(unsafe.Pointer(&ps[0])), len(ps))
}

// FloatsOf is IntsOf for floating representations.
func FloatsOf[Tag any, P Floating](ps []P) []Float[P, Tag] {
	if len(ps) == 0 {
		return nil
	}
	return unsafe.Slice((*Float[P, Tag])(unsafe.Pointer(&ps[0])), len(ps))
}
