package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pinn-ml/pinn/internal/backend/cpu"
	"github.com/pinn-ml/pinn/internal/tensor"
)

func raw(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.RawFromSlice(data, shape)
	require.NoError(t, err)
	return r
}

func TestAddProducesFreshOutput(t *testing.T) {
	b := cpu.New()
	a := raw(t, []float64{1, 2}, tensor.Shape{2})
	x := raw(t, []float64{3, 4}, tensor.Shape{2})

	out := b.Add(a, x)
	require.Equal(t, []float64{4, 6}, out.Data())

	// The tape identifies graph nodes by pointer, so outputs must never
	// alias an input buffer.
	a.Data()[0] = 99
	require.Equal(t, 4.0, out.Data()[0])
}

func TestElementwiseShapeMismatchPanics(t *testing.T) {
	b := cpu.New()
	a := raw(t, []float64{1, 2}, tensor.Shape{2})
	x := raw(t, []float64{1, 2}, tensor.Shape{2, 1})

	require.Panics(t, func() { b.Add(a, x) })
	require.Panics(t, func() { b.Sub(a, x) })
	require.Panics(t, func() { b.Mul(a, x) })
}

func TestMatMul(t *testing.T) {
	b := cpu.New()
	a := raw(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	x := raw(t, []float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	out := b.MatMul(a, x)
	require.True(t, out.Shape().Equal(tensor.Shape{2, 2}))
	require.Equal(t, []float64{58, 64, 139, 154}, out.Data())
}

func TestMatMulInnerDimMismatchPanics(t *testing.T) {
	b := cpu.New()
	a := raw(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	x := raw(t, []float64{1, 2, 3}, tensor.Shape{3, 1})
	require.Panics(t, func() { b.MatMul(a, x) })
}

func TestTranspose(t *testing.T) {
	b := cpu.New()
	a := raw(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	out := b.Transpose(a)
	require.True(t, out.Shape().Equal(tensor.Shape{3, 2}))
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, out.Data())

	require.Panics(t, func() { b.Transpose(raw(t, []float64{1, 2}, tensor.Shape{2})) })
}

func TestSum(t *testing.T) {
	b := cpu.New()
	a := raw(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	out := b.Sum(a)
	require.True(t, out.Shape().Equal(tensor.Shape{1}))
	require.Equal(t, 10.0, out.Data()[0])
}

func TestSumDim(t *testing.T) {
	b := cpu.New()
	a := raw(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})

	out := b.SumDim(a, 0)
	require.True(t, out.Shape().Equal(tensor.Shape{1, 2}))
	require.Equal(t, []float64{9, 12}, out.Data())

	require.Panics(t, func() { b.SumDim(a, 1) }, "only dim 0 is implemented")
}

func TestExpand(t *testing.T) {
	b := cpu.New()

	t.Run("identical shape copies", func(t *testing.T) {
		a := raw(t, []float64{1, 2}, tensor.Shape{1, 2})
		out := b.Expand(a, tensor.Shape{1, 2})
		require.Equal(t, []float64{1, 2}, out.Data())
		a.Data()[0] = 99
		require.Equal(t, 1.0, out.Data()[0])
	})

	t.Run("scalar fill", func(t *testing.T) {
		a := raw(t, []float64{3}, tensor.Shape{1})
		out := b.Expand(a, tensor.Shape{2, 2})
		require.Equal(t, []float64{3, 3, 3, 3}, out.Data())
	})

	t.Run("row repeat", func(t *testing.T) {
		a := raw(t, []float64{1, 2}, tensor.Shape{1, 2})
		out := b.Expand(a, tensor.Shape{3, 2})
		require.Equal(t, []float64{1, 2, 1, 2, 1, 2}, out.Data())
	})

	t.Run("unsupported expansion panics", func(t *testing.T) {
		a := raw(t, []float64{1, 2}, tensor.Shape{2, 1})
		require.Panics(t, func() { b.Expand(a, tensor.Shape{2, 3}) })
	})
}
