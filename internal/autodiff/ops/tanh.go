package ops

import "github.com/pinn-ml/pinn/internal/tensor"

// TanhOp represents the hyperbolic tangent: output = tanh(x).
//
// Backward pass: d(tanh(x))/dx = 1 - tanh²(x). Since the output is the
// already-computed tanh(x):
//
//	grad_input = outputGrad * (1 - output²)
//
// The rule is built from backend Mul/Sub so it stays differentiable; the
// second derivative of tanh, -2·tanh·(1-tanh²), falls out of re-walking
// these recorded operations.
type TanhOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewTanhOp creates a new tanh operation.
func NewTanhOp(input, output *tensor.RawTensor) *TanhOp {
	return &TanhOp{
		input:  input,
		output: output,
	}
}

// Backward computes the gradient for tanh.
func (op *TanhOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	outputSquared := backend.Mul(op.output, op.output)
	derivative := backend.Sub(onesLike(op.output), outputSquared)
	return []*tensor.RawTensor{backend.Mul(outputGrad, derivative)}
}

// Inputs returns the input tensor.
func (op *TanhOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor tanh(x).
func (op *TanhOp) Output() *tensor.RawTensor {
	return op.output
}
