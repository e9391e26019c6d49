// Copyright 2026 The PINN-ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the float64 tensor types shared by all packages.
//
// Example:
//
//	import (
//	    "github.com/pinn-ml/pinn/backend/cpu"
//	    "github.com/pinn-ml/pinn/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.FromSlice([]float64{0, 0.5, 1}, tensor.Shape{3, 1}, backend)
//	    y := x.Tanh()
//	    _ = y
//	}
package tensor

import "github.com/pinn-ml/pinn/internal/tensor"

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation.
type RawTensor = tensor.RawTensor

// Tensor is a RawTensor bound to a computation backend.
type Tensor = tensor.Tensor

// Backend is the compute backend interface.
type Backend = tensor.Backend

// New creates a Tensor from a RawTensor and backend.
func New(raw *RawTensor, b Backend) *Tensor {
	return tensor.New(raw, b)
}

// NewRaw creates a new zero-initialized RawTensor.
func NewRaw(shape Shape) (*RawTensor, error) {
	return tensor.NewRaw(shape)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice(data []float64, shape Shape, b Backend) (*Tensor, error) {
	return tensor.FromSlice(data, shape, b)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, b Backend) *Tensor {
	return tensor.Zeros(shape, b)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, b Backend) *Tensor {
	return tensor.Ones(shape, b)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64, b Backend) *Tensor {
	return tensor.Full(shape, value, b)
}

// Linspace creates a column vector of n evenly spaced points on [start, stop].
func Linspace(start, stop float64, n int, b Backend) *Tensor {
	return tensor.Linspace(start, stop, n, b)
}
