// Package strong provides unit-safe scalar values: a primitive number wrapped
// together with a compile-time tag, so that two quantities sharing a
// representation (a byte offset and a record count, both uint64) cannot be
// mixed, assigned or compared by accident.
//
// Quick Start:
//
//	type offsetTag struct{}
//	type countTag struct{}
//
//	type Offset = strong.Int[uint64, offsetTag]
//	type Count = strong.Int[uint64, countTag]
//
//	off := strong.NewInt[uint64, offsetTag](4096)
//	n := strong.NewInt[uint64, countTag](3)
//
//	off = off.AddN(512)  // ok: raw primitive operand
//	off = off.Add(off)   // ok: same tag
//	off = off.Add(n)     // compile error: Count is not Offset
//	_ = off == n         // compile error: mismatched types
//
// Tags should be empty named struct types. A tag with a non-zero size changes
// the layout of the wrapper, and an unnamed tag (struct{}) is shared by every
// user; cmd/strongcheck reports both.
//
// Values have exactly the size and layout of their representation. Operators
// are methods: same-tag operands (Add, Lt, AndAssign, ...) and raw primitive
// operands (AddN, LtN, AndAssignN, ...). Bitwise, shift and remainder exist only
// on Int. Changing the representation under one tag goes through Cast and its
// siblings; changing the tag is only possible by unwrapping with Get or Ptr,
// which keeps every unit conversion visible in review.
//
// See example_test.go for detailed usage.
package strong
