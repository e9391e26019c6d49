package ops

import (
	"fmt"

	"github.com/pinn-ml/pinn/internal/tensor"
)

// ExpandOp represents an explicit broadcast: output = x repeated to a
// larger shape. Supported expansions mirror the backend: {1} to any shape
// and {1, c} to {r, c}.
//
// Backward pass: gradients of all positions an element was copied to are
// summed back into that element.
type ExpandOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewExpandOp creates a new ExpandOp.
func NewExpandOp(input, output *tensor.RawTensor) *ExpandOp {
	return &ExpandOp{
		input:  input,
		output: output,
	}
}

// Backward reduces the output gradient back to the input shape.
func (op *ExpandOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inShape := op.input.Shape()
	switch {
	case inShape.Equal(outputGrad.Shape()):
		return []*tensor.RawTensor{outputGrad}
	case len(inShape) == 2 && inShape[0] == 1 && len(outputGrad.Shape()) == 2:
		// {1, c} -> {r, c}: fold the rows back together.
		return []*tensor.RawTensor{backend.SumDim(outputGrad, 0)}
	case inShape.Equal(tensor.Shape{1}):
		return []*tensor.RawTensor{backend.Sum(outputGrad)}
	default:
		panic(fmt.Sprintf("ExpandOp.Backward: unsupported expansion %v -> %v",
			inShape, outputGrad.Shape()))
	}
}

// Inputs returns the input tensor.
func (op *ExpandOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the broadcast output tensor.
func (op *ExpandOp) Output() *tensor.RawTensor {
	return op.output
}
