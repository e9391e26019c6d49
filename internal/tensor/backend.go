package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - cpu.CPUBackend: dense float64 kernels (gonum/mat for linear algebra)
//   - autodiff.AutodiffBackend: wraps another backend and records every
//     operation on a gradient tape
//
// Element-wise binary operations require operands of identical shape;
// broadcasting is always explicit via Expand. Shape violations are
// programmer errors and panic.
type Backend interface {
	// Element-wise binary operations (equal shapes).
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor

	// Scale multiplies every element by a constant.
	Scale(x *RawTensor, c float64) *RawTensor

	// Tanh applies the element-wise hyperbolic tangent.
	Tanh(x *RawTensor) *RawTensor

	// Matrix operations (2D tensors).
	MatMul(a, b *RawTensor) *RawTensor
	Transpose(x *RawTensor) *RawTensor

	// Reductions.
	Sum(x *RawTensor) *RawTensor              // total sum, shape {1}
	SumDim(x *RawTensor, dim int) *RawTensor  // sum along dim (keepdim); only dim 0 of 2D tensors

	// Expand broadcasts x to the target shape. Supported: {1} to any shape,
	// {1, c} to {r, c}, and the identity expansion.
	Expand(x *RawTensor, shape Shape) *RawTensor
}
