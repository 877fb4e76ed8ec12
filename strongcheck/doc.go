// Package strongcheck implements a go/analysis analyzer for code using
// github.com/Azhovan/strong.
//
// The type system already rejects mixing values of different tags. What it
// cannot see is a value unwrapped with Get or Ptr and wrapped again under a
// different tag:
//
//	pages := strong.NewInt[uint64, pageTag](bytes.Get()) // rewrap
//	total.AddN(bytes.Get())                              // mixed-operand
//
// The analyzer traces raw values through parentheses, conversions, x.Get()
// and *x.Ptr(). Arithmetic on the raw value, such as bytes.Get() / pageSize,
// is treated as a deliberate unit conversion and is not reported.
//
// It also reports tag types that break the wrappers' guarantees:
// tags with a non-zero size (the wrapper would no longer have the layout of
// its primitive) and unnamed tags such as struct{} (every use would share a
// single unit).
//
// Findings are suppressed by a //strongcheck:ignore or //nolint:strongcheck
// comment on the reported line or the line above, by allow entries in the
// config file, or by settings.exclude_paths. See Config.
package strongcheck
