// Package autodiff implements reverse-mode automatic differentiation using
// a gradient tape. It wraps a compute backend and records every operation;
// the tape can then be walked backwards to produce gradients with respect
// to parameters or to inputs.
//
// Backward rules execute through the wrapped backend interface. Running
// them against the recording backend itself makes the resulting gradients
// part of the graph, which is how the trainer obtains du/dt and d²u/dt² as
// differentiable quantities.
package autodiff

import (
	"fmt"

	"github.com/pinn-ml/pinn/internal/autodiff/ops"
	"github.com/pinn-ml/pinn/internal/tensor"
)

// AutodiffBackend wraps a compute backend with gradient tape recording.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	y := x.Tanh()                       // recorded
//	du, err := autodiff.Grad(y, x, backend) // dy/dx, still recorded
//	grads := autodiff.Backward(loss, backend)
type AutodiffBackend struct {
	inner tensor.Backend
	tape  *GradientTape
}

// New creates a new autodiff backend wrapping the given compute backend.
func New(inner tensor.Backend) *AutodiffBackend {
	return &AutodiffBackend{
		inner: inner,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape.
func (b *AutodiffBackend) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped compute backend.
func (b *AutodiffBackend) Inner() tensor.Backend {
	return b.inner
}

// Add computes a + b and records the operation.
func (b *AutodiffBackend) Add(a, x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Add(a, x)
	b.tape.Record(ops.NewAddOp(a, x, out))
	return out
}

// Sub computes a - b and records the operation.
func (b *AutodiffBackend) Sub(a, x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Sub(a, x)
	b.tape.Record(ops.NewSubOp(a, x, out))
	return out
}

// Mul computes a * b and records the operation.
func (b *AutodiffBackend) Mul(a, x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Mul(a, x)
	b.tape.Record(ops.NewMulOp(a, x, out))
	return out
}

// Scale computes c * x and records the operation.
func (b *AutodiffBackend) Scale(x *tensor.RawTensor, c float64) *tensor.RawTensor {
	out := b.inner.Scale(x, c)
	b.tape.Record(ops.NewScaleOp(x, out, c))
	return out
}

// Tanh computes tanh(x) and records the operation.
func (b *AutodiffBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Tanh(x)
	b.tape.Record(ops.NewTanhOp(x, out))
	return out
}

// MatMul computes a @ b and records the operation.
func (b *AutodiffBackend) MatMul(a, x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.MatMul(a, x)
	b.tape.Record(ops.NewMatMulOp(a, x, out))
	return out
}

// Transpose computes xᵀ and records the operation.
func (b *AutodiffBackend) Transpose(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Transpose(x)
	b.tape.Record(ops.NewTransposeOp(x, out))
	return out
}

// Sum computes the total sum and records the operation.
func (b *AutodiffBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Sum(x)
	b.tape.Record(ops.NewSumOp(x, out))
	return out
}

// SumDim sums along a dimension and records the operation.
func (b *AutodiffBackend) SumDim(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	out := b.inner.SumDim(x, dim)
	b.tape.Record(ops.NewSumDimOp(x, out, dim))
	return out
}

// Expand broadcasts x and records the operation.
func (b *AutodiffBackend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	out := b.inner.Expand(x, shape)
	b.tape.Record(ops.NewExpandOp(x, out))
	return out
}

// Backward computes gradients of a scalar loss with respect to every tensor
// on the tape, seeded with 1. The backward rules run on the inner backend,
// so they are not recorded; use this for the final parameter gradients.
func Backward(loss *tensor.Tensor, backend *AutodiffBackend) map[*tensor.RawTensor]*tensor.RawTensor {
	if !loss.Shape().IsScalar() {
		panic(fmt.Sprintf("autodiff.Backward: loss must be a scalar, got shape %v", loss.Shape()))
	}
	seed, err := tensor.RawFromSlice([]float64{1}, loss.Shape())
	if err != nil {
		panic(err)
	}
	return backend.tape.Backward(loss.Raw(), seed, backend.inner)
}

// Grad computes the derivative of sum(out) with respect to wrt, with the
// backward pass itself recorded on the tape. The result is a graph node of
// wrt's shape and can be differentiated again.
//
// For a batched network where each output row depends only on its own input
// row, seeding with ones yields the per-sample derivative d(out_i)/d(wrt_i);
// this is the standard trick for spatial derivatives of a pointwise-applied
// approximator.
//
// Returns an error if out does not depend on wrt.
func Grad(out, wrt *tensor.Tensor, backend *AutodiffBackend) (*tensor.Tensor, error) {
	seed, err := tensor.NewRaw(out.Shape())
	if err != nil {
		return nil, err
	}
	data := seed.Data()
	for i := range data {
		data[i] = 1.0
	}

	grads := backend.tape.Backward(out.Raw(), seed, backend)
	grad, ok := grads[wrt.Raw()]
	if !ok {
		return nil, fmt.Errorf("autodiff.Grad: output does not depend on the requested tensor")
	}
	return tensor.New(grad, backend), nil
}
