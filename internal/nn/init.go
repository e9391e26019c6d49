package nn

import (
	"math"
	"math/rand"

	"github.com/pinn-ml/pinn/internal/tensor"
)

// Xavier (Glorot) initialization for weights.
//
// Draws values from the uniform distribution
// U(-sqrt(6/(fan_in+fan_out)), sqrt(6/(fan_in+fan_out))), which keeps the
// activation variance roughly constant across layers.
//
// The random source is passed in explicitly: training runs must be
// reproducible from a single seed, so no global rand state is touched.
func Xavier(fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand, b tensor.Backend) *tensor.Tensor {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	t := tensor.Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = (rng.Float64()*2.0 - 1.0) * bound
	}
	return t
}

// Zeros creates a zero tensor, commonly used for bias initialization.
func Zeros(shape tensor.Shape, b tensor.Backend) *tensor.Tensor {
	return tensor.Zeros(shape, b)
}
