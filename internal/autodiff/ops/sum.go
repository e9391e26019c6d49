package ops

import "github.com/pinn-ml/pinn/internal/tensor"

// SumOp represents a total-sum reduction: output = sum(x), shape {1}.
//
// Backward pass: every element contributed with weight 1, so the scalar
// output gradient is broadcast back to the input shape.
type SumOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSumOp creates a new SumOp.
func NewSumOp(input, output *tensor.RawTensor) *SumOp {
	return &SumOp{
		input:  input,
		output: output,
	}
}

// Backward broadcasts the output gradient to the input shape.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Expand(outputGrad, op.input.Shape())}
}

// Inputs returns the input tensor.
func (op *SumOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the single-element sum tensor.
func (op *SumOp) Output() *tensor.RawTensor {
	return op.output
}
