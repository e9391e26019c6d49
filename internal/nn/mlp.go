package nn

import (
	"fmt"
	"math/rand"

	"github.com/pinn-ml/pinn/internal/tensor"
)

// NewMLP builds a fully connected tanh network: an input layer, the given
// number of hidden layers of uniform width, and a linear output layer.
//
// Layer sizes are fixed for the lifetime of the model. All weights come
// from the supplied random source, so two MLPs built with sources seeded
// identically are bit-identical.
//
// Example (the oscillator approximator, 1 -> 32 -> 32 -> 32 -> 1):
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewMLP(1, 32, 3, 1, rng, backend)
func NewMLP(inFeatures, hidden, hiddenLayers, outFeatures int, rng *rand.Rand, backend tensor.Backend) *Sequential {
	if hiddenLayers < 1 {
		panic(fmt.Sprintf("NewMLP: need at least one hidden layer, got %d", hiddenLayers))
	}

	model := NewSequential(
		NewLinear(inFeatures, hidden, rng, backend),
		NewTanh(),
	)
	for i := 1; i < hiddenLayers; i++ {
		model.Add(NewLinear(hidden, hidden, rng, backend))
		model.Add(NewTanh())
	}
	model.Add(NewLinear(hidden, outFeatures, rng, backend))
	return model
}
