package strong

// Compound assignments mutate the receiver in place and return it, so calls chain:
// x.AddAssign(y).ShlAssignN(1).

// AddAssign performs x += y.
func (x *Int[P, Tag]) AddAssign(y Int[P, Tag]) *Int[P, Tag] {
	x.v += y.v
	return x
}

// SubAssign performs x -= y.
func (x *Int[P, Tag]) SubAssign(y Int[P, Tag]) *Int[P, Tag] {
	x.v -= y.v
	return x
}

// MulAssign performs x *= y.
func (x *Int[P, Tag]) MulAssign(y Int[P, Tag]) *Int[P, Tag] {
	x.v *= y.v
	return x
}

// DivAssign performs x /= y.
func (x *Int[P, Tag]) DivAssign(y Int[P, Tag]) *Int[P, Tag] {
	x.v /= y.v
	return x
}

// RemAssign performs x %= y.
func (x *Int[P, Tag]) RemAssign(y Int[P, Tag]) *Int[P, Tag] {
	x.v %= y.v
	return x
}

// AndAssign performs x &= y.
func (x *Int[P, Tag]) AndAssign(y Int[P, Tag]) *Int[P, Tag] {
	x.v &= y.v
	return x
}

// OrAssign performs x |= y.
func (x *Int[P, Tag]) OrAssign(y Int[P, Tag]) *Int[P, Tag] {
	x.v |= y.v
	return x
}

// XorAssign performs x ^= y.
func (x *Int[P, Tag]) XorAssign(y Int[P, Tag]) *Int[P, Tag] {
	x.v ^= y.v
	return x
}

// AndNotAssign performs x &^= y.
func (x *Int[P, Tag]) AndNotAssign(y Int[P, Tag]) *Int[P, Tag] {
	x.v &^= y.v
	return x
}

// ShlAssign performs x <<= y.
func (x *Int[P, Tag]) ShlAssign(y Int[P, Tag]) *Int[P, Tag] {
	x.v <<= uint64(y.v)
	return x
}

// ShrAssign performs x >>= y.
func (x *Int[P, Tag]) ShrAssign(y Int[P, Tag]) *Int[P, Tag] {
	x.v >>= uint64(y.v)
	return x
}

// AddAssignN performs x += n.
func (x *Int[P, Tag]) AddAssignN(n P) *Int[P, Tag] {
	x.v += n
	return x
}

// SubAssignN performs x -= n.
func (x *Int[P, Tag]) SubAssignN(n P) *Int[P, Tag] {
	x.v -= n
	return x
}

// MulAssignN performs x *= n.
func (x *Int[P, Tag]) MulAssignN(n P) *Int[P, Tag] {
	x.v *= n
	return x
}

// DivAssignN performs x /= n.
func (x *Int[P, Tag]) DivAssignN(n P) *Int[P, Tag] {
	x.v /= n
	return x
}

// RemAssignN performs x %= n.
func (x *Int[P, Tag]) RemAssignN(n P) *Int[P, Tag] {
	x.v %= n
	return x
}

// AndAssignN performs x &= n.
func (x *Int[P, Tag]) AndAssignN(n P) *Int[P, Tag] {
	x.v &= n
	return x
}

// OrAssignN performs x |= n.
func (x *Int[P, Tag]) OrAssignN(n P) *Int[P, Tag] {
	x.v |= n
	return x
}

// XorAssignN performs x ^= n.
func (x *Int[P, Tag]) XorAssignN(n P) *Int[P, Tag] {
	x.v ^= n
	return x
}

// AndNotAssignN performs x &^= n.
func (x *Int[P, Tag]) AndNotAssignN(n P) *Int[P, Tag] {
	x.v &^= n
	return x
}

// ShlAssignN performs x <<= n.
func (x *Int[P, Tag]) ShlAssignN(n P) *Int[P, Tag] {
	x.v <<= uint64(n)
	return x
}

// ShrAssignN performs x >>= n.
func (x *Int[P, Tag]) ShrAssignN(n P) *Int[P, Tag] {
	x.v >>= uint64(n)
	return x
}

// Inc is the prefix increment ++x: it adds 1 and returns the receiver.
func (x *Int[P, Tag]) Inc() *Int[P, Tag] { return x.AddAssignN(1) }

// Dec is the prefix decrement --x.
func (x *Int[P, Tag]) Dec() *Int[P, Tag] { return x.SubAssignN(1) }

// PostInc is the postfix increment x++: it adds 1 and returns the previous value.
func (x *Int[P, Tag]) PostInc() Int[P, Tag] {
	old := *x
	x.AddAssignN(1)
	return old
}

// PostDec is the postfix decrement x--.
func (x *Int[P, Tag]) PostDec() Int[P, Tag] {
	old := *x
	x.SubAssignN(1)
	return old
}
