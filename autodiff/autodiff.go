// Copyright 2026 The PINN-ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides automatic differentiation capabilities.
//
// It implements reverse-mode automatic differentiation (backpropagation)
// using a gradient tape, and additionally supports recording the backward
// pass itself so gradients can be differentiated again. Second derivatives
// of a network output with respect to its input — the quantity a physics
// residual is built from — are obtained by calling Grad twice.
//
// Example:
//
//	base := cpu.New()
//	backend := autodiff.New(base)
//	backend.Tape().StartRecording()
//
//	u := model.Forward(t)                      // recorded
//	du, _ := autodiff.Grad(u, t, backend)      // du/dt, recorded
//	d2u, _ := autodiff.Grad(du, t, backend)    // d²u/dt², recorded
//
//	grads := autodiff.Backward(loss, backend)  // final parameter gradients
package autodiff

import (
	"github.com/pinn-ml/pinn/internal/autodiff"
	"github.com/pinn-ml/pinn/internal/tensor"
)

// Backend is the autodiff-enabled backend.
type Backend = autodiff.AutodiffBackend

// New creates a new autodiff backend wrapping the given compute backend.
func New(inner tensor.Backend) *Backend {
	return autodiff.New(inner)
}

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// Backward computes gradients of a scalar loss via backpropagation.
func Backward(loss *tensor.Tensor, backend *Backend) map[*tensor.RawTensor]*tensor.RawTensor {
	return autodiff.Backward(loss, backend)
}

// Grad computes d(sum out)/d(wrt) as a differentiable graph node.
func Grad(out, wrt *tensor.Tensor, backend *Backend) (*tensor.Tensor, error) {
	return autodiff.Grad(out, wrt, backend)
}
