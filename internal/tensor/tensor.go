package tensor

import "fmt"

// Tensor is a RawTensor bound to a computation backend. All methods
// dispatch through the backend, so a Tensor built on an autodiff backend
// participates in the gradient tape transparently.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	x, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3, 1}, backend)
//	y := x.Tanh().Square().Mean()
type Tensor struct {
	raw     *RawTensor
	backend Backend
}

// New creates a Tensor from a RawTensor and backend.
func New(raw *RawTensor, b Backend) *Tensor {
	return &Tensor{raw: raw, backend: b}
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice(data []float64, shape Shape, b Backend) (*Tensor, error) {
	raw, err := RawFromSlice(data, shape)
	if err != nil {
		return nil, err
	}
	return New(raw, b), nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.raw.Shape()
}

// Data returns the underlying flat buffer.
func (t *Tensor) Data() []float64 {
	return t.raw.Data()
}

// Raw returns the underlying RawTensor.
// Used by backends and the tape for low-level access.
func (t *Tensor) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor) Backend() Backend {
	return t.backend
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.raw.NumElements()
}

// Item extracts the value of a single-element tensor.
// Panics on tensors with more than one element.
func (t *Tensor) Item() float64 {
	if !t.Shape().IsScalar() {
		panic(fmt.Sprintf("Tensor.Item: expected single-element tensor, got shape %v", t.Shape()))
	}
	return t.raw.Data()[0]
}

// Add returns t + other (element-wise, equal shapes).
func (t *Tensor) Add(other *Tensor) *Tensor {
	return New(t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub returns t - other (element-wise, equal shapes).
func (t *Tensor) Sub(other *Tensor) *Tensor {
	return New(t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul returns t * other (element-wise, equal shapes).
func (t *Tensor) Mul(other *Tensor) *Tensor {
	return New(t.backend.Mul(t.raw, other.raw), t.backend)
}

// Scale returns c * t.
func (t *Tensor) Scale(c float64) *Tensor {
	return New(t.backend.Scale(t.raw, c), t.backend)
}

// Tanh returns the element-wise hyperbolic tangent.
func (t *Tensor) Tanh() *Tensor {
	return New(t.backend.Tanh(t.raw), t.backend)
}

// MatMul returns the matrix product t @ other.
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	return New(t.backend.MatMul(t.raw, other.raw), t.backend)
}

// Transpose returns the transposed 2D tensor.
func (t *Tensor) Transpose() *Tensor {
	return New(t.backend.Transpose(t.raw), t.backend)
}

// Sum reduces to a single-element tensor holding the total sum.
func (t *Tensor) Sum() *Tensor {
	return New(t.backend.Sum(t.raw), t.backend)
}

// SumDim sums along the given dimension, keeping it with size 1.
func (t *Tensor) SumDim(dim int) *Tensor {
	return New(t.backend.SumDim(t.raw, dim), t.backend)
}

// Expand broadcasts the tensor to the target shape.
func (t *Tensor) Expand(shape Shape) *Tensor {
	return New(t.backend.Expand(t.raw, shape), t.backend)
}

// Square returns t * t.
func (t *Tensor) Square() *Tensor {
	return t.Mul(t)
}

// Mean reduces to a single-element tensor holding the arithmetic mean.
func (t *Tensor) Mean() *Tensor {
	return t.Sum().Scale(1.0 / float64(t.NumElements()))
}
