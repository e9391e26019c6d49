package pinn

import (
	"fmt"

	"github.com/pinn-ml/pinn/autodiff"
	"github.com/pinn-ml/pinn/tensor"
)

// boundaryLoss computes the two boundary residuals at t0: the squared
// mismatch of the value against U0 and of the slope against V0.
func (tr *Trainer) boundaryLoss() (value, slope *tensor.Tensor, err error) {
	u0 := tr.model.Forward(tr.boundary)
	du0, err := autodiff.Grad(u0, tr.boundary, tr.backend)
	if err != nil {
		return nil, nil, fmt.Errorf("boundary slope: %w", err)
	}

	wantU := tensor.Full(u0.Shape(), tr.cfg.U0, tr.backend)
	wantV := tensor.Full(u0.Shape(), tr.cfg.V0, tr.backend)

	value = u0.Sub(wantU).Square().Mean()
	slope = du0.Sub(wantV).Square().Mean()
	return value, slope, nil
}

// physicsLoss computes the mean-squared ODE residual m·u'' + mu·u' + k·u
// over the collocation grid. The first and second derivatives come from
// differentiating the network with respect to its input; both backward
// passes stay on the tape so the residual remains differentiable with
// respect to the weights (and mu, when it is trainable).
func (tr *Trainer) physicsLoss() (*tensor.Tensor, error) {
	u := tr.model.Forward(tr.colloc)
	du, err := autodiff.Grad(u, tr.colloc, tr.backend)
	if err != nil {
		return nil, fmt.Errorf("first derivative: %w", err)
	}
	d2u, err := autodiff.Grad(du, tr.colloc, tr.backend)
	if err != nil {
		return nil, fmt.Errorf("second derivative: %w", err)
	}

	osc := tr.cfg.Oscillator
	var damping *tensor.Tensor
	if tr.muParam != nil {
		// Discovered coefficient: broadcast the trainable scalar over the
		// grid so its gradient accumulates across all collocation points.
		damping = tr.muParam.Tensor().Expand(du.Shape()).Mul(du)
	} else {
		damping = du.Scale(osc.Mu)
	}

	residual := d2u.Scale(osc.M).Add(damping).Add(u.Scale(osc.K))
	return residual.Square().Mean(), nil
}

// dataLoss computes the mean-squared misfit between the network and the
// noisy observation set.
func (tr *Trainer) dataLoss() *tensor.Tensor {
	pred := tr.model.Forward(tr.obsT)
	return pred.Sub(tr.obsU).Square().Mean()
}

// loss aggregates the residual families for the configured task.
//
// Forward: boundary_value + lambda1·boundary_slope + lambda2·physics.
// Inverse: physics·PhysicsWeight + lambda·data.
func (tr *Trainer) loss() (*tensor.Tensor, error) {
	phys, err := tr.physicsLoss()
	if err != nil {
		return nil, err
	}

	if tr.muParam != nil {
		return phys.Scale(tr.cfg.PhysicsWeight).
			Add(tr.dataLoss().Scale(tr.cfg.DataWeight)), nil
	}

	value, slope, err := tr.boundaryLoss()
	if err != nil {
		return nil, err
	}
	return value.
		Add(slope.Scale(tr.cfg.BoundarySlopeWeight)).
		Add(phys.Scale(tr.cfg.PhysicsWeight)), nil
}
