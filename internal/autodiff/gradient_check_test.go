package autodiff_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/pinn-ml/pinn/internal/autodiff"
	"github.com/pinn-ml/pinn/internal/nn"
	"github.com/pinn-ml/pinn/internal/tensor"
)

// Finite-difference cross-checks of the tape against gonum/diff/fd.
// Parameters are perturbed in place and restored; network evaluation for
// the numeric side runs with the tape paused so it leaves no trace.

func TestMLPGradientMatchesFiniteDifference(t *testing.T) {
	b := newBackend()
	rng := rand.New(rand.NewSource(7))
	model := nn.NewMLP(1, 4, 2, 1, rng, b)

	x, err := tensor.FromSlice([]float64{0.1, 0.4, 0.9}, tensor.Shape{3, 1}, b)
	require.NoError(t, err)
	loss := func() *tensor.Tensor {
		return model.Forward(x).Square().Mean()
	}

	b.Tape().StartRecording()
	grads := autodiff.Backward(loss(), b)
	b.Tape().StopRecording()
	b.Tape().Clear()

	for _, p := range model.Parameters() {
		g := grads[p.Tensor().Raw()]
		require.NotNil(t, g, "parameter %s received no gradient", p.Name())

		data := p.Tensor().Data()
		for i := range data {
			f := func(w float64) float64 {
				old := data[i]
				data[i] = w
				defer func() { data[i] = old }()
				return loss().Item()
			}
			want := fd.Derivative(f, data[i], nil)
			require.InDelta(t, want, g.Data()[i], 1e-6,
				"parameter %s element %d", p.Name(), i)
		}
	}
}

func TestInputSecondDerivativeMatchesFiniteDifference(t *testing.T) {
	b := newBackend()
	rng := rand.New(rand.NewSource(11))
	model := nn.NewMLP(1, 6, 2, 1, rng, b)

	const t0 = 0.3
	eval := func(at float64) float64 {
		in, err := tensor.FromSlice([]float64{at}, tensor.Shape{1, 1}, b)
		require.NoError(t, err)
		return model.Forward(in).Item()
	}

	b.Tape().StartRecording()
	in, err := tensor.FromSlice([]float64{t0}, tensor.Shape{1, 1}, b)
	require.NoError(t, err)
	u := model.Forward(in)
	du, err := autodiff.Grad(u, in, b)
	require.NoError(t, err)
	d2u, err := autodiff.Grad(du, in, b)
	require.NoError(t, err)
	b.Tape().StopRecording()
	b.Tape().Clear()

	wantDu := fd.Derivative(eval, t0, nil)
	wantD2u := fd.Derivative(eval, t0, &fd.Settings{Formula: fd.Central2nd})
	require.InDelta(t, wantDu, du.Item(), 1e-6)
	require.InDelta(t, wantD2u, d2u.Item(), 1e-4)
}

// The physics residual is differentiated with respect to the weights, so
// the gradient of a second input-derivative through the parameters must be
// exact. This is the grad-of-grad path the whole design exists for.
func TestParameterGradientOfSecondDerivative(t *testing.T) {
	b := newBackend()
	rng := rand.New(rand.NewSource(3))
	model := nn.NewMLP(1, 4, 1, 1, rng, b)

	const t0 = 0.25
	secondDerivative := func() float64 {
		b.Tape().StartRecording()
		defer func() {
			b.Tape().StopRecording()
			b.Tape().Clear()
		}()
		in, err := tensor.FromSlice([]float64{t0}, tensor.Shape{1, 1}, b)
		require.NoError(t, err)
		u := model.Forward(in)
		du, err := autodiff.Grad(u, in, b)
		require.NoError(t, err)
		d2u, err := autodiff.Grad(du, in, b)
		require.NoError(t, err)
		return d2u.Item()
	}

	// Build the graph once more, this time keeping it long enough to
	// backpropagate d²u/dt² to the parameters.
	b.Tape().StartRecording()
	in, err := tensor.FromSlice([]float64{t0}, tensor.Shape{1, 1}, b)
	require.NoError(t, err)
	u := model.Forward(in)
	du, err := autodiff.Grad(u, in, b)
	require.NoError(t, err)
	d2u, err := autodiff.Grad(du, in, b)
	require.NoError(t, err)
	grads := autodiff.Backward(d2u, b)
	b.Tape().StopRecording()
	b.Tape().Clear()

	for _, p := range model.Parameters() {
		g := grads[p.Tensor().Raw()]
		require.NotNil(t, g, "parameter %s received no gradient", p.Name())

		data := p.Tensor().Data()
		for i := range data {
			f := func(w float64) float64 {
				old := data[i]
				data[i] = w
				defer func() { data[i] = old }()
				return secondDerivative()
			}
			want := fd.Derivative(f, data[i], nil)
			require.InDelta(t, want, g.Data()[i], 1e-4,
				"parameter %s element %d", p.Name(), i)
		}
	}
}
