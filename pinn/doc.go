// Copyright 2026 The PINN-ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pinn implements the physics-informed training core for the
// damped harmonic oscillator.
//
// Two training tasks share one loop:
//
//   - Forward: fit the network to the ODE solution from physics alone.
//     The loss combines boundary residuals at t=0 (value and slope) with
//     the mean-squared ODE residual over a fixed collocation grid.
//
//   - Inverse: jointly fit the solution and discover the unknown damping
//     coefficient mu from noisy observations. The loss combines the ODE
//     residual (with mu as a trainable parameter) and a heavily weighted
//     data-misfit term.
//
// Training is single-threaded and synchronous: each iteration runs forward
// evaluation, residual computation, backward gradient computation and the
// parameter update to completion before the next iteration begins. There is
// one writer (the optimizer) for all mutable state. Termination is purely
// iteration-count based; the only abnormal exit is a detected divergence of
// the loss.
package pinn
