package ignore

import "github.com/Azhovan/strong"

type (
	bytesTag struct{}
	pagesTag struct{}
)

func unsuppressed(b strong.Int[uint64, bytesTag], p strong.Int[uint64, pagesTag]) {
	_ = p.AddN(b.Get()) //nolint:errcheck // want `raw operand of unit ignore\.bytesTag used in AddN on unit ignore\.pagesTag`
	_ = p.With(b.Get()) // strongcheck is not a directive here // want `value of unit ignore\.bytesTag rewrapped as ignore\.pagesTag`
}

func sameLine(b strong.Int[uint64, bytesTag], p strong.Int[uint64, pagesTag]) {
	_ = p.With(b.Get()) //strongcheck:ignore -- offset documented in the header
}

func lineAbove(b strong.Int[uint64, bytesTag], p strong.Int[uint64, pagesTag]) {
	//strongcheck:ignore
	_ = p.With(b.Get())
}

func nolint(b strong.Int[uint64, bytesTag], p strong.Int[uint64, pagesTag]) {
	_ = p.AddN(b.Get()) //nolint:strongcheck
}

func nolintList(b strong.Int[uint64, bytesTag], p strong.Int[uint64, pagesTag]) {
	_ = p.AddN(b.Get()) //nolint:errcheck,strongcheck // reviewed
}
