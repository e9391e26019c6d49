package ops

import "github.com/pinn-ml/pinn/internal/tensor"

// ScaleOp represents multiplication by a constant: output = c * x.
//
// Backward pass: d(c*x)/dx = c, so grad_x = c * outputGrad.
type ScaleOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	c      float64
}

// NewScaleOp creates a new ScaleOp.
func NewScaleOp(input, output *tensor.RawTensor, c float64) *ScaleOp {
	return &ScaleOp{
		input:  input,
		output: output,
		c:      c,
	}
}

// Backward scales the output gradient by the constant.
func (op *ScaleOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Scale(outputGrad, op.c)}
}

// Inputs returns the input tensor.
func (op *ScaleOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor c * x.
func (op *ScaleOp) Output() *tensor.RawTensor {
	return op.output
}
