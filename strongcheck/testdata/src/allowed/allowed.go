package allowed

import "github.com/Azhovan/strong"

type (
	pageTag  struct{}
	blockTag struct{}
	bytesTag struct{}
)

func conversions(p strong.Int[uint64, pageTag], b strong.Int[uint64, blockTag], n strong.Int[uint64, bytesTag]) {
	_ = b.With(p.Get())
	_ = b.AddN(p.Get())

	_ = p.With(b.Get()) // want `value of unit allowed\.blockTag rewrapped as allowed\.pageTag`
	_ = b.AddN(n.Get()) // want `raw operand of unit allowed\.bytesTag used in AddN on unit allowed\.blockTag`
}
