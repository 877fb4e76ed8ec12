package rewrap

import "github.com/Azhovan/strong"

type (
	bytesTag struct{}
	pagesTag struct{}
)

type (
	Bytes = strong.Int[uint64, bytesTag]
	Pages = strong.Int[uint64, pagesTag]
)

const pageSize = 8192

func constructors(b Bytes) {
	_ = strong.NewInt[uint64, pagesTag](b.Get())             // want `value of unit rewrap\.bytesTag rewrapped as rewrap\.pagesTag`
	_ = strong.NewInt[uint64, pagesTag]((b.Get()))           // want `value of unit rewrap\.bytesTag rewrapped as rewrap\.pagesTag`
	_ = strong.NewInt[uint32, pagesTag](uint32(b.Get()))     // want `value of unit rewrap\.bytesTag rewrapped as rewrap\.pagesTag`
	_ = strong.NewFloat[float64, pagesTag](float64(b.Get())) // want `value of unit rewrap\.bytesTag rewrapped as rewrap\.pagesTag`

	_ = strong.NewInt[uint64, pagesTag](b.Get() / pageSize)
	_ = strong.NewInt[uint64, bytesTag](b.Get())
	_ = strong.NewInt[uint64, pagesTag](42)
}

func methods(b Bytes, p Pages) {
	_ = p.With(b.Get()) // want `value of unit rewrap\.bytesTag rewrapped as rewrap\.pagesTag`
	p.Set(b.Get())      // want `value of unit rewrap\.bytesTag rewrapped as rewrap\.pagesTag`
	p.Set(*b.Ptr())     // want `value of unit rewrap\.bytesTag rewrapped as rewrap\.pagesTag`

	_ = p.With(p.Get())
	p.Set(p.Get() + 1)
}

func pointers(b Bytes, p Pages) {
	*p.Ptr() = b.Get()    // want `value of unit rewrap\.bytesTag rewrapped as rewrap\.pagesTag`
	*(p.Ptr()) = *b.Ptr() // want `value of unit rewrap\.bytesTag rewrapped as rewrap\.pagesTag`
	pp := &p
	*pp.Ptr() = b.Get() // want `value of unit rewrap\.bytesTag rewrapped as rewrap\.pagesTag`

	*p.Ptr() = p.Get() * 2

	x := b.Get()
	*p.Ptr() = x
}

func sameUnit(b Bytes) {
	_ = strong.Cast[uint32](b)
	_ = b.Add(b.With(1))
}
