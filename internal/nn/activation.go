package nn

import "github.com/pinn-ml/pinn/internal/tensor"

// Tanh is a hyperbolic tangent activation module.
//
// Applies the element-wise function tanh(x), squashing values to (-1, 1).
//
// Tanh is the only activation provided: the physics residual differentiates
// the network twice with respect to its input, so the nonlinearity must
// have smooth, non-degenerate second derivatives. A piecewise-linear
// activation such as ReLU has zero second derivative almost everywhere and
// would silently break the physics loss.
type Tanh struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies the element-wise hyperbolic tangent.
func (t *Tanh) Forward(input *tensor.Tensor) *tensor.Tensor {
	return input.Tanh()
}

// Parameters returns an empty slice (Tanh has no trainable parameters).
func (t *Tanh) Parameters() []*Parameter {
	return nil
}
