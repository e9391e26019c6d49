package tensor

import "fmt"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4}, backend)
func Zeros(shape Shape, b Backend) *Tensor {
	raw, err := NewRaw(shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return New(raw, b)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, b Backend) *Tensor {
	return Full(shape, 1.0, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{3, 3}, 3.14, backend)
func Full(shape Shape, value float64, b Backend) *Tensor {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Linspace creates a column vector {n, 1} of n evenly spaced points
// spanning [start, stop] inclusive. Sample grids are fed to networks as
// [points, 1] batches, hence the column shape.
func Linspace(start, stop float64, n int, b Backend) *Tensor {
	if n < 2 {
		panic(fmt.Sprintf("Linspace: need at least 2 points, got %d", n))
	}
	t := Zeros(Shape{n, 1}, b)
	data := t.Data()
	step := (stop - start) / float64(n-1)
	for i := range data {
		data[i] = start + float64(i)*step
	}
	data[n-1] = stop // Avoid accumulated rounding at the endpoint
	return t
}
