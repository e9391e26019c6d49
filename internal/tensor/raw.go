package tensor

import "fmt"

// RawTensor is the low-level tensor representation: a flat float64 buffer
// plus a shape. Backends operate on RawTensors; the tape identifies graph
// nodes by RawTensor pointer, so every operation output must be a fresh
// allocation.
//
// All tensors are float64. The solver differentiates the network twice with
// respect to its input and once more with respect to the weights; float32
// rounding is visible in the second-derivative residuals, so a single
// double-precision dtype is used throughout.
type RawTensor struct {
	shape Shape
	data  []float64
}

// NewRaw creates a new zero-initialized RawTensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("NewRaw: %w", err)
	}
	return &RawTensor{
		shape: shape.Clone(),
		data:  make([]float64, shape.NumElements()),
	}, nil
}

// RawFromSlice creates a RawTensor copying the given data.
func RawFromSlice(data []float64, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("RawFromSlice: shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}
	copy(raw.data, data)
	return raw, nil
}

// Shape returns the tensor dimensions.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Data returns the underlying flat buffer (row-major).
func (r *RawTensor) Data() []float64 {
	return r.data
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return len(r.data)
}

// Clone returns a deep copy with its own buffer.
func (r *RawTensor) Clone() *RawTensor {
	clone := &RawTensor{
		shape: r.shape.Clone(),
		data:  make([]float64, len(r.data)),
	}
	copy(clone.data, r.data)
	return clone
}

// String returns a short debug representation.
func (r *RawTensor) String() string {
	if len(r.data) <= 8 {
		return fmt.Sprintf("RawTensor%v%v", r.shape, r.data)
	}
	return fmt.Sprintf("RawTensor%v[%d elements]", r.shape, len(r.data))
}
