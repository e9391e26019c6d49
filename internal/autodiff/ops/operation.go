// Package ops defines operation interfaces and implementations for automatic
// differentiation.
//
// Each operation records its inputs and output during the forward pass and
// computes input gradients during the backward pass. Every backward rule is
// expressed exclusively through Backend operations (never raw buffer math),
// so that when the backward pass runs against a recording backend the
// gradients become graph nodes themselves. That property is what makes
// second derivatives work: d²u/dt² is the gradient of a gradient.
package ops

import "github.com/pinn-ml/pinn/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each input tensor.
	// A nil entry means no gradient flows to that input.
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}
