// Package optim implements optimization algorithms for training.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - Adam: adaptive moment estimation (the trainer default; an adaptive
//     per-parameter learning rate tolerates the very different gradient
//     scales of boundary terms, physics terms and a learnable coefficient)
//   - SGD: stochastic gradient descent with optional momentum
//
// Design inspired by PyTorch's torch.optim.
//
// Example usage:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 1e-3})
//
//	for i := 0; i < iterations; i++ {
//	    tape.Clear()
//	    loss := computeLoss(model)
//	    grads := autodiff.Backward(loss, backend)
//	    optimizer.Step(grads)
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/pinn-ml/pinn/internal/nn"
	"github.com/pinn-ml/pinn/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all parameters in-place.
	// Takes the gradient map produced by autodiff.Backward; parameters
	// absent from the map are skipped.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// getGradient safely retrieves the gradient for a parameter.
// Returns nil if no gradient is found (parameter was not part of the graph).
func getGradient(param *nn.Parameter, grads map[*tensor.RawTensor]*tensor.RawTensor) *tensor.RawTensor {
	if param == nil {
		return nil
	}
	return grads[param.Tensor().Raw()]
}
