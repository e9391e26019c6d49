package nn

import "github.com/pinn-ml/pinn/internal/tensor"

// Parameter represents a trainable value in the optimization.
//
// Network weights and biases are Parameters, and so is any learnable
// physical coefficient: the optimizer operates over a flat list of
// Parameters regardless of their semantic role, so discovering an unknown
// ODE coefficient is just one more single-element entry in the list.
type Parameter struct {
	name   string
	tensor *tensor.Tensor
	grad   *tensor.Tensor // Set after a backward pass, nil before
}

// NewParameter creates a new trainable parameter.
// The tensor should be initialized before creating the Parameter.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// NewScalarParameter creates a single-element parameter with the given
// initial value, e.g. a physical coefficient to be discovered.
func NewScalarParameter(name string, value float64, b tensor.Backend) *Parameter {
	t, err := tensor.FromSlice([]float64{value}, tensor.Shape{1}, b)
	if err != nil {
		panic(err)
	}
	return NewParameter(name, t)
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the gradient tensor, or nil before the first backward pass.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.grad
}

// SetGrad sets the gradient tensor.
// Typically called by the optimizer after a backward pass.
func (p *Parameter) SetGrad(grad *tensor.Tensor) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}

// Item extracts the value of a single-element parameter.
func (p *Parameter) Item() float64 {
	return p.tensor.Item()
}
