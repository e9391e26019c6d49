package ops

import "github.com/pinn-ml/pinn/internal/tensor"

// onesLike returns a constant tensor of ones matching t's shape.
// The result is a leaf: it is created outside the backend on purpose so it
// never lands on the tape and no gradient flows into it.
func onesLike(t *tensor.RawTensor) *tensor.RawTensor {
	ones, err := tensor.NewRaw(t.Shape())
	if err != nil {
		panic(err)
	}
	data := ones.Data()
	for i := range data {
		data[i] = 1.0
	}
	return ones
}
