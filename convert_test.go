package strong

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCast_KeepsTag(t *testing.T) {
	narrow := NewInt[uint16, offsetTag](0xBEEF)

	wide := Cast[uint64](narrow)
	assert.Equal(t, uint64(0xBEEF), wide.Get())
	assert.IsType(t, Int[uint64, offsetTag]{}, wide)

	back := Cast[uint8](wide)
	assert.Equal(t, uint8(0xEF), back.Get(), "truncates like the primitive conversion")

	signed := Cast[int16](narrow)
	assert.Equal(t, int16(-16657), signed.Get())
	assert.Equal(t, int64(-16657), Cast[int64](signed).Get(), "sign extends")
}

func TestCast_Floats(t *testing.T) {
	m := NewFloat[float32, metersTag](1.5)
	assert.Equal(t, 1.5, CastFloat[float64](m).Get())
	assert.IsType(t, Float[float64, metersTag]{}, CastFloat[float64](m))

	i := NewInt[int32, metersTag](-7)
	assert.Equal(t, -7.0, IntToFloat[float64](i).Get())

	f := NewFloat[float64, metersTag](-7.9)
	assert.Equal(t, int32(-7), FloatToInt[int32](f).Get(), "truncates toward zero")
	assert.IsType(t, Int[int32, metersTag]{}, FloatToInt[int32](f))
}

func TestNegate(t *testing.T) {
	u := NewInt[uint32, countTag](5)

	n := Negate[int64](u)
	assert.Equal(t, int64(-5), n.Get())
	assert.IsType(t, Int[int64, countTag]{}, n)

	assert.Equal(t, uint32(0xFFFFFFFB), u.Neg().Get(), "Neg wraps on unsigned")
	assert.Equal(t, int8(3), Negate[int8](NewInt[int8, countTag](-3)).Get())
}

func TestLayout(t *testing.T) {
	var i8 Int[int8, offsetTag]
	var u64 Int[uint64, countTag]
	var f32 Float[float32, metersTag]
	var f64 Float[float64, secondsTag]

	assert.Equal(t, unsafe.Sizeof(int8(0)), unsafe.Sizeof(i8))
	assert.Equal(t, unsafe.Alignof(int8(0)), unsafe.Alignof(i8))
	assert.Equal(t, unsafe.Sizeof(uint64(0)), unsafe.Sizeof(u64))
	assert.Equal(t, unsafe.Alignof(uint64(0)), unsafe.Alignof(u64))
	assert.Equal(t, unsafe.Sizeof(float32(0)), unsafe.Sizeof(f32))
	assert.Equal(t, unsafe.Sizeof(float64(0)), unsafe.Sizeof(f64))

	arr := [4]Int[uint16, offsetTag]{}
	assert.Equal(t, unsafe.Sizeof([4]uint16{}), unsafe.Sizeof(arr))
}

func TestSliceViews_ShareMemory(t *testing.T) {
	raw := []uint32{1, 2, 3}

	xs := IntsOf[offsetTag](raw)
	require.Len(t, xs, 3)
	assert.Equal(t, uint32(2), xs[1].Get())

	xs[1].MulAssignN(10)
	assert.Equal(t, uint32(20), raw[1])

	vs := IntValues(xs)
	vs[2] = 7
	assert.Equal(t, uint32(7), xs[2].Get())

	assert.Nil(t, IntsOf[offsetTag]([]uint32{}))
	assert.Nil(t, IntValues([]Int[uint32, offsetTag](nil)))

	fs := FloatsOf[metersTag]([]float64{0.5, 1.5})
	fs[0].AddAssignN(1)
	assert.Equal(t, []float64{1.5, 1.5}, FloatValues(fs))
	assert.Nil(t, FloatValues([]Float[float64, metersTag]{}))
}
