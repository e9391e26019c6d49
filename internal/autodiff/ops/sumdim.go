package ops

import "github.com/pinn-ml/pinn/internal/tensor"

// SumDimOp represents a keepdim sum along dimension 0: [r, c] -> [1, c].
//
// Backward pass: the row gradient is repeated back over all r rows.
// SumDimOp and ExpandOp are exact duals; each one's backward is the
// other's forward.
type SumDimOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	dim    int
}

// NewSumDimOp creates a new SumDimOp.
func NewSumDimOp(input, output *tensor.RawTensor, dim int) *SumDimOp {
	return &SumDimOp{
		input:  input,
		output: output,
		dim:    dim,
	}
}

// Backward broadcasts the reduced gradient back to the input shape.
func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Expand(outputGrad, op.input.Shape())}
}

// Inputs returns the input tensor.
func (op *SumDimOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the reduced output tensor.
func (op *SumDimOp) Output() *tensor.RawTensor {
	return op.output
}
