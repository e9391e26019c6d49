// Copyright 2026 The PINN-ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu exposes the dense float64 CPU compute backend.
//
// Example:
//
//	base := cpu.New()
//	backend := autodiff.New(base)
package cpu

import "github.com/pinn-ml/pinn/internal/backend/cpu"

// CPUBackend performs all computation on the CPU in float64.
type CPUBackend = cpu.CPUBackend

// New creates a new CPU backend.
func New() *CPUBackend {
	return cpu.New()
}
