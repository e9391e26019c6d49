package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pinn-ml/pinn/internal/backend/cpu"
	"github.com/pinn-ml/pinn/internal/nn"
	"github.com/pinn-ml/pinn/internal/tensor"
)

func TestLinearShapes(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(1))
	layer := nn.NewLinear(3, 5, rng, b)

	require.Equal(t, 3, layer.InFeatures())
	require.Equal(t, 5, layer.OutFeatures())
	require.True(t, layer.Weight().Tensor().Shape().Equal(tensor.Shape{5, 3}))
	require.True(t, layer.Bias().Tensor().Shape().Equal(tensor.Shape{1, 5}))
	require.Len(t, layer.Parameters(), 2)
}

func TestLinearForward(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(1))
	layer := nn.NewLinear(2, 2, rng, b)

	// Overwrite the random initialization with known values.
	copy(layer.Weight().Tensor().Data(), []float64{1, 2, 3, 4})
	copy(layer.Bias().Tensor().Data(), []float64{0.5, -0.5})

	x, err := tensor.FromSlice([]float64{1, 1, 2, 0}, tensor.Shape{2, 2}, b)
	require.NoError(t, err)

	// y = x @ Wᵀ + b
	out := layer.Forward(x)
	require.True(t, out.Shape().Equal(tensor.Shape{2, 2}))
	require.Equal(t, []float64{3.5, 6.5, 2.5, 5.5}, out.Data())
}

func TestLinearForwardRejectsBadInput(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(1))
	layer := nn.NewLinear(2, 3, rng, b)

	flat, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, b)
	require.NoError(t, err)
	require.Panics(t, func() { layer.Forward(flat) }, "1D input")

	wide, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{1, 3}, b)
	require.NoError(t, err)
	require.Panics(t, func() { layer.Forward(wide) }, "wrong feature count")
}

func TestLinearBiasStartsAtZero(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(1))
	layer := nn.NewLinear(4, 4, rng, b)

	for _, v := range layer.Bias().Tensor().Data() {
		require.Zero(t, v)
	}
}

func TestXavierBound(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(9))

	const fanIn, fanOut = 8, 16
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	w := nn.Xavier(fanIn, fanOut, tensor.Shape{fanOut, fanIn}, rng, b)

	var nonZero int
	for _, v := range w.Data() {
		require.LessOrEqual(t, math.Abs(v), bound)
		if v != 0 {
			nonZero++
		}
	}
	require.NotZero(t, nonZero)
}

func TestSequentialComposition(t *testing.T) {
	b := cpu.New()
	model := nn.NewSequential(nn.NewTanh(), nn.NewTanh())
	require.Equal(t, 2, model.Len())
	require.Empty(t, model.Parameters())

	x, err := tensor.FromSlice([]float64{0.7}, tensor.Shape{1, 1}, b)
	require.NoError(t, err)
	out := model.Forward(x)
	require.InDelta(t, math.Tanh(math.Tanh(0.7)), out.Item(), 1e-15)
}

func TestMLPArchitecture(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(42))
	model := nn.NewMLP(1, 32, 3, 1, rng, b)

	// Linear+Tanh per hidden layer, plus the output Linear.
	require.Equal(t, 7, model.Len())
	require.Len(t, model.Parameters(), 8)

	x, err := tensor.FromSlice([]float64{0.0, 0.5, 1.0}, tensor.Shape{3, 1}, b)
	require.NoError(t, err)
	out := model.Forward(x)
	require.True(t, out.Shape().Equal(tensor.Shape{3, 1}))
}

func TestMLPRequiresHiddenLayer(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(1))
	require.Panics(t, func() { nn.NewMLP(1, 8, 0, 1, rng, b) })
}

func TestMLPSeededDeterminism(t *testing.T) {
	b := cpu.New()

	m1 := nn.NewMLP(1, 8, 2, 1, rand.New(rand.NewSource(42)), b)
	m2 := nn.NewMLP(1, 8, 2, 1, rand.New(rand.NewSource(42)), b)
	m3 := nn.NewMLP(1, 8, 2, 1, rand.New(rand.NewSource(43)), b)

	p1, p2, p3 := m1.Parameters(), m2.Parameters(), m3.Parameters()
	require.Equal(t, len(p1), len(p2))

	var differs bool
	for i := range p1 {
		require.Equal(t, p1[i].Tensor().Data(), p2[i].Tensor().Data(),
			"same seed must give bit-identical weights")
		for j, v := range p1[i].Tensor().Data() {
			if v != p3[i].Tensor().Data()[j] {
				differs = true
			}
		}
	}
	require.True(t, differs, "different seeds must give different weights")
}

func TestParameterGradBookkeeping(t *testing.T) {
	b := cpu.New()
	p := nn.NewScalarParameter("mu", 4.0, b)

	require.Equal(t, "mu", p.Name())
	require.Equal(t, 4.0, p.Item())
	require.Nil(t, p.Grad())

	g, err := tensor.FromSlice([]float64{0.1}, tensor.Shape{1}, b)
	require.NoError(t, err)
	p.SetGrad(g)
	require.Same(t, g, p.Grad())

	p.ZeroGrad()
	require.Nil(t, p.Grad())
}
