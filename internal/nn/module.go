// Package nn implements the neural network building blocks for the
// physics-informed trainer:
//   - Module interface: base interface for all components
//   - Parameter: trainable tensors with gradient bookkeeping
//   - Linear: fully connected layer
//   - Tanh: smooth activation (the physics loss needs well-defined second
//     derivatives, so only smooth activations belong here)
//   - Sequential: ordered layer container
//
// Design inspired by PyTorch's nn.Module.
package nn

import "github.com/pinn-ml/pinn/internal/tensor"

// Module is the base interface for all neural network components.
//
// Modules compose into static architectures:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(1, 32, rng, backend),
//	    nn.NewTanh(),
//	    nn.NewLinear(32, 1, rng, backend),
//	)
type Module interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor) *tensor.Tensor

	// Parameters returns all trainable parameters of this module.
	// Returns an empty slice for modules without trainable parameters.
	Parameters() []*Parameter
}
