package strong

import (
	"fmt"
	"strconv"
	"unsafe"
)

// String returns the decimal representation of the wrapped primitive.
func (x Int[P, Tag]) String() string {
	if x.v < 0 {
		return strconv.FormatInt(int64(x.v), 10)
	}
	return strconv.FormatUint(uint64(x.v), 10)
}

// Format implements fmt.Formatter by formatting the wrapped primitive with the
// same verb and flags, so %x, %08d and friends render exactly as for P.
// %s formats String with the given width and flags.
func (x Int[P, Tag]) Format(f fmt.State, verb rune) {
	if verb == 's' {
		fmt.Fprintf(f, fmt.FormatString(f, verb), x.String())
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), x.v)
}

// String returns the wrapped primitive formatted like strconv.FormatFloat with
// the 'g' format and the smallest precision that round-trips.
func (x Float[P, Tag]) String() string {
	return strconv.FormatFloat(float64(x.v), 'g', -1, bitSize(x.v))
}

// Format implements fmt.Formatter for floating values, with %s handled as
// for Int.
func (x Float[P, Tag]) Format(f fmt.State, verb rune) {
	if verb == 's' {
		fmt.Fprintf(f, fmt.FormatString(f, verb), x.String())
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), x.v)
}

func bitSize[P Floating](v P) int {
	if unsafe.Sizeof(v) == 4 {
		return 32
	}
	return 64
}
