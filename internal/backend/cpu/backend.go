// Package cpu implements the dense float64 compute backend.
//
// Element-wise kernels are plain loops; matrix operations delegate to
// gonum/mat. Shape violations panic: they are programmer errors, not
// runtime conditions.
package cpu

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/pinn-ml/pinn/internal/tensor"
)

// CPUBackend performs all computation on the CPU in float64.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// checkSameShape panics with a descriptive message if the operand shapes differ.
func checkSameShape(op string, a, b *tensor.RawTensor) {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("cpu: shape mismatch for %s: %v vs %v", op, a.Shape(), b.Shape()))
	}
}

// newRaw allocates an output tensor, panicking on invalid shapes.
func newRaw(shape tensor.Shape) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape)
	if err != nil {
		panic(err)
	}
	return raw
}

// Add returns a + b element-wise.
func (c *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameShape("Add", a, b)
	out := newRaw(a.Shape())
	ad, bd, od := a.Data(), b.Data(), out.Data()
	for i := range od {
		od[i] = ad[i] + bd[i]
	}
	return out
}

// Sub returns a - b element-wise.
func (c *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameShape("Sub", a, b)
	out := newRaw(a.Shape())
	ad, bd, od := a.Data(), b.Data(), out.Data()
	for i := range od {
		od[i] = ad[i] - bd[i]
	}
	return out
}

// Mul returns a * b element-wise.
func (c *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameShape("Mul", a, b)
	out := newRaw(a.Shape())
	ad, bd, od := a.Data(), b.Data(), out.Data()
	for i := range od {
		od[i] = ad[i] * bd[i]
	}
	return out
}

// Scale returns c * x element-wise.
func (c *CPUBackend) Scale(x *tensor.RawTensor, s float64) *tensor.RawTensor {
	out := newRaw(x.Shape())
	xd, od := x.Data(), out.Data()
	for i := range od {
		od[i] = s * xd[i]
	}
	return out
}

// Tanh returns the element-wise hyperbolic tangent.
func (c *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	out := newRaw(x.Shape())
	xd, od := x.Data(), out.Data()
	for i := range od {
		od[i] = math.Tanh(xd[i])
	}
	return out
}

// MatMul returns the matrix product a @ b for 2D tensors
// [m, k] @ [k, n] -> [m, n].
func (c *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	as, bs := a.Shape(), b.Shape()
	if len(as) != 2 || len(bs) != 2 {
		panic(fmt.Sprintf("cpu: MatMul requires 2D tensors, got %v and %v", as, bs))
	}
	if as[1] != bs[0] {
		panic(fmt.Sprintf("cpu: MatMul inner dimension mismatch: %v @ %v", as, bs))
	}
	m, k, n := as[0], as[1], bs[1]

	am := mat.NewDense(m, k, a.Data())
	bm := mat.NewDense(k, n, b.Data())
	out := newRaw(tensor.Shape{m, n})
	om := mat.NewDense(m, n, out.Data())
	om.Mul(am, bm)
	return out
}

// Transpose returns the transpose of a 2D tensor.
func (c *CPUBackend) Transpose(x *tensor.RawTensor) *tensor.RawTensor {
	xs := x.Shape()
	if len(xs) != 2 {
		panic(fmt.Sprintf("cpu: Transpose requires a 2D tensor, got %v", xs))
	}
	r, cols := xs[0], xs[1]
	xm := mat.NewDense(r, cols, x.Data())
	out := newRaw(tensor.Shape{cols, r})
	om := mat.NewDense(cols, r, out.Data())
	om.Copy(xm.T())
	return out
}

// Sum reduces x to a single-element tensor holding the total sum.
func (c *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	out := newRaw(tensor.Shape{1})
	total := 0.0
	for _, v := range x.Data() {
		total += v
	}
	out.Data()[0] = total
	return out
}

// SumDim sums a 2D tensor along dimension 0, keeping the dimension:
// [r, c] -> [1, c]. Only dim 0 is implemented; it is the reduction the
// bias gradient and the Expand backward need.
func (c *CPUBackend) SumDim(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	xs := x.Shape()
	if len(xs) != 2 || dim != 0 {
		panic(fmt.Sprintf("cpu: SumDim supports dim 0 of 2D tensors, got dim %d of %v", dim, xs))
	}
	r, cols := xs[0], xs[1]
	out := newRaw(tensor.Shape{1, cols})
	xd, od := x.Data(), out.Data()
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			od[j] += xd[i*cols+j]
		}
	}
	return out
}

// Expand broadcasts x to the target shape.
//
// Supported expansions:
//   - identical shape (copy)
//   - {1} to any shape (fill)
//   - {1, c} to {r, c} (repeat rows)
func (c *CPUBackend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	xs := x.Shape()
	switch {
	case xs.Equal(shape):
		return x.Clone()
	case xs.IsScalar():
		out := newRaw(shape)
		v := x.Data()[0]
		od := out.Data()
		for i := range od {
			od[i] = v
		}
		return out
	case len(xs) == 2 && xs[0] == 1 && len(shape) == 2 && shape[1] == xs[1]:
		out := newRaw(shape)
		xd, od := x.Data(), out.Data()
		r, cols := shape[0], shape[1]
		for i := 0; i < r; i++ {
			copy(od[i*cols:(i+1)*cols], xd)
		}
		return out
	default:
		panic(fmt.Sprintf("cpu: cannot expand shape %v to %v", xs, shape))
	}
}
