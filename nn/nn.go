// Copyright 2026 The PINN-ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks: modules, parameters,
// linear layers, the tanh activation and a sequential container.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewMLP(1, 32, 3, 1, rng, backend)
//	out := model.Forward(input)
package nn

import (
	"math/rand"

	"github.com/pinn-ml/pinn/internal/nn"
	"github.com/pinn-ml/pinn/internal/tensor"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Parameter represents a trainable value in the optimization.
type Parameter = nn.Parameter

// Linear implements a fully connected layer.
type Linear = nn.Linear

// Tanh is the hyperbolic tangent activation module.
type Tanh = nn.Tanh

// Sequential chains modules together.
type Sequential = nn.Sequential

// NewParameter creates a new trainable parameter.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// NewScalarParameter creates a single-element parameter, e.g. a physical
// coefficient to be discovered alongside the network weights.
func NewScalarParameter(name string, value float64, b tensor.Backend) *Parameter {
	return nn.NewScalarParameter(name, value, b)
}

// NewLinear creates a new Linear layer with seeded Xavier initialization.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand, backend tensor.Backend) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, rng, backend)
}

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh {
	return nn.NewTanh()
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// NewMLP builds a fully connected tanh network.
func NewMLP(inFeatures, hidden, hiddenLayers, outFeatures int, rng *rand.Rand, backend tensor.Backend) *Sequential {
	return nn.NewMLP(inFeatures, hidden, hiddenLayers, outFeatures, rng, backend)
}

// Xavier initializes a tensor with the Glorot uniform distribution.
func Xavier(fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand, b tensor.Backend) *tensor.Tensor {
	return nn.Xavier(fanIn, fanOut, shape, rng, b)
}
