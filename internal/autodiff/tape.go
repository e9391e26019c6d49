package autodiff

import (
	"github.com/pinn-ml/pinn/internal/autodiff/ops"
	"github.com/pinn-ml/pinn/internal/tensor"
)

// GradientTape records operations during the forward pass and computes
// gradients during the backward pass using reverse-mode automatic
// differentiation.
//
// Unlike a first-order tape, Backward here takes the backend that should
// execute the backward rules. Passing a recording backend keeps the tape
// live through the backward pass, so the produced gradients are graph nodes
// that can themselves be differentiated (grad-of-grad). Passing the plain
// compute backend gives the usual non-recorded backward for the final
// parameter gradients.
type GradientTape struct {
	operations []ops.Operation // Recorded operations (in execution order)
	recording  bool            // Whether tape is currently recording
}

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		operations: make([]ops.Operation, 0, 256),
		recording:  false,
	}
}

// StartRecording enables operation recording.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record adds an operation to the tape.
// Only records if the tape is currently recording.
func (t *GradientTape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear resets the tape, removing all recorded operations.
// Recording state is preserved.
func (t *GradientTape) Clear() {
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *GradientTape) NumOps() int {
	return len(t.operations)
}

// Backward computes gradients of root with respect to every tensor on the
// tape, seeded with the given output gradient.
//
// Algorithm:
//  1. Seed the root tensor with the output gradient
//  2. Walk the operations recorded so far in reverse order
//  3. For each operation whose output has a gradient, apply the chain rule
//  4. Accumulate gradients when the same tensor feeds multiple operations
//
// The walk is bounded by the tape length at entry: when the backward rules
// run on a recording backend they append new operations, and those must not
// be revisited within the same walk.
//
// Returns a map from RawTensor to its accumulated gradient. Tensors the
// root does not depend on are absent from the map.
func (t *GradientTape) Backward(root, seed *tensor.RawTensor, backend tensor.Backend) map[*tensor.RawTensor]*tensor.RawTensor {
	grads := make(map[*tensor.RawTensor]*tensor.RawTensor)
	grads[root] = seed

	n := len(t.operations)
	for i := n - 1; i >= 0; i-- {
		op := t.operations[i]
		outputGrad, ok := grads[op.Output()]
		if !ok {
			continue // No gradient flows through this operation
		}
		inputGrads := op.Backward(outputGrad, backend)
		t.accumulateGrads(op, inputGrads, grads, backend)
	}

	return grads
}

// accumulateGrads adds each input gradient into the gradient map.
// Accumulation runs through the backend so that, under a recording backend,
// fan-in sums stay differentiable.
func (t *GradientTape) accumulateGrads(
	op ops.Operation,
	inputGrads []*tensor.RawTensor,
	grads map[*tensor.RawTensor]*tensor.RawTensor,
	backend tensor.Backend,
) {
	inputs := op.Inputs()
	for j, input := range inputs {
		if j >= len(inputGrads) {
			break
		}
		inputGrad := inputGrads[j]
		if inputGrad == nil {
			continue
		}
		if existing, ok := grads[input]; ok {
			grads[input] = backend.Add(existing, inputGrad)
		} else {
			grads[input] = inputGrad
		}
	}
}
