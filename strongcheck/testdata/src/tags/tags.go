package tags

import "github.com/Azhovan/strong"

type (
	goodTag       struct{}
	emptyArrayTag [0]int
	fatTag        struct{ n int64 }
	wideTag       int64
)

var (
	_ = strong.NewInt[uint64, goodTag](1)
	_ = strong.NewInt[uint8, emptyArrayTag](1)

	_ = strong.NewInt[uint64, fatTag](1) // want `tag tags\.fatTag has size 8; tags must be zero-sized`
	_ = strong.Cast[uint32](strong.NewInt[uint64, fatTag](1))

	_ = strong.NewFloat[float64, wideTag](1) // want `tag tags\.wideTag has size 8; tags must be zero-sized`
	_ = strong.NewInt[uint8, int64](1)       // want `tag int64 has size 8; tags must be zero-sized`

	_ = strong.NewInt[uint64, struct{}](1)          // want `tag struct\{\} is not a named type; every use of it shares one unit`
	_ = strong.NewInt[uint64, struct{ x int64 }](1) // want `tag struct\{x int64\} is not a named type` `tag struct\{x int64\} has size 8`
)

var _ strong.Int[uint32, fatTag]

func generic[T any](v uint64) strong.Int[uint64, T] {
	return strong.NewInt[uint64, T](v)
}

var _ = generic[goodTag](1)
