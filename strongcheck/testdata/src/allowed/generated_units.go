package allowed

import "github.com/Azhovan/strong"

type generatedTag struct{ id int32 }

func generated(p strong.Int[uint64, pageTag], n strong.Int[uint64, bytesTag]) {
	_ = p.With(n.Get())
	_ = strong.NewInt[uint64, generatedTag](n.Get())
}
