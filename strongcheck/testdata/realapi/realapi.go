// Package realapi runs the analyzer against the strong package itself rather
// than the stub under testdata/src.
package realapi

import "github.com/Azhovan/strong"

type (
	bytesTag struct{}
	pagesTag struct{}
	fatTag   struct{ n int32 }
)

type (
	Bytes = strong.Int[uint64, bytesTag]
	Pages = strong.Int[uint32, pagesTag]
	Ratio = strong.Float[float64, pagesTag]
)

const pageSize = 8192

func rewraps(b Bytes, p Pages, r Ratio) {
	_ = strong.NewInt[uint32, pagesTag](uint32(b.Get())) // want `value of unit realapi\.bytesTag rewrapped as realapi\.pagesTag`
	_ = r.With(float64(b.Get()))                         // want `value of unit realapi\.bytesTag rewrapped as realapi\.pagesTag`
	p.Set(uint32(*b.Ptr()))                              // want `value of unit realapi\.bytesTag rewrapped as realapi\.pagesTag`

	_ = strong.NewInt[uint32, pagesTag](uint32(b.Get() / pageSize))
}

func operands(b Bytes, p Pages, r Ratio) {
	_ = p.MulN(uint32(b.Get()))    // want `raw operand of unit realapi\.bytesTag used in MulN on unit realapi\.pagesTag`
	r.DivAssignN(float64(b.Get())) // want `raw operand of unit realapi\.bytesTag used in DivAssignN on unit realapi\.pagesTag`
	*p.Ptr() -= uint32(b.Get())    // want `raw operand of unit realapi\.bytesTag used in -= on unit realapi\.pagesTag`
	_ = r.CmpN(float64(p.Get()))
	_ = b.ShlN(uint64(p.Get()))
}

func sameUnit(b Bytes, p Pages) {
	wide := strong.Cast[uint64](p)
	_ = wide.AddN(uint64(p.Get()))
	_ = strong.IntToFloat[float64](p).Add(Ratio{})
	_ = strong.Negate[int64](b).Get()
	b.Inc().AddAssign(b.With(1))
}

var _ = strong.NewInt[uint64, fatTag](1) // want `tag realapi\.fatTag has size 4; tags must be zero-sized`
