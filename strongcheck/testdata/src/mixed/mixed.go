package mixed

import "github.com/Azhovan/strong"

type (
	bytesTag struct{}
	pagesTag struct{}
)

func operands(b strong.Int[uint64, bytesTag], p strong.Int[uint64, pagesTag]) {
	_ = p.AddN(b.Get())   // want `raw operand of unit mixed\.bytesTag used in AddN on unit mixed\.pagesTag`
	_ = p.LtN(b.Get())    // want `raw operand of unit mixed\.bytesTag used in LtN on unit mixed\.pagesTag`
	p.AddAssignN(b.Get()) // want `raw operand of unit mixed\.bytesTag used in AddAssignN on unit mixed\.pagesTag`

	_ = p.MulN(b.Get() / 8192)
	_ = p.AddN(p.Get())
	_ = p.AddN(1)
}

func shifts(b strong.Int[uint64, bytesTag], p strong.Int[uint64, pagesTag]) {
	_ = p.ShlN(b.Get())
	p.ShrAssignN(b.Get())
	*p.Ptr() <<= b.Get()
}

func compound(b strong.Int[uint64, bytesTag], p strong.Int[uint64, pagesTag]) {
	*p.Ptr() += b.Get() // want `raw operand of unit mixed\.bytesTag used in \+= on unit mixed\.pagesTag`
	*p.Ptr() |= b.Get() // want `raw operand of unit mixed\.bytesTag used in \|= on unit mixed\.pagesTag`
	*p.Ptr() += p.Get()
}

func floats(m strong.Float[float64, bytesTag], s strong.Float[float64, pagesTag]) {
	_ = s.SubN(m.Get())          // want `raw operand of unit mixed\.bytesTag used in SubN on unit mixed\.pagesTag`
	_ = s.SubN(float64(m.Get())) // want `raw operand of unit mixed\.bytesTag used in SubN on unit mixed\.pagesTag`
	_ = s.SubN(s.Get())
}
