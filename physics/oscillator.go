// Package physics models the damped harmonic oscillator used as the
// training target: the ODE m·u'' + mu·u' + k·u = 0 with initial conditions
// u(0) = 1, u'(0) = 0, in the under-damped regime where a closed-form
// oscillatory solution exists to serve as ground truth.
package physics

import (
	"fmt"
	"math"
)

// Oscillator holds the physical parameter set {m, mu, k} of the governing
// equation m·u'' + mu·u' + k·u = 0.
type Oscillator struct {
	M  float64 // mass
	Mu float64 // damping coefficient
	K  float64 // spring constant
}

// Delta returns the damping rate delta = mu / (2m).
func (o Oscillator) Delta() float64 {
	return o.Mu / (2 * o.M)
}

// Omega0 returns the natural angular frequency omega0 = sqrt(k/m).
func (o Oscillator) Omega0() float64 {
	return math.Sqrt(o.K / o.M)
}

// Residual evaluates the governing equation m·u'' + mu·u' + k·u for a
// candidate solution value and its derivatives. A non-zero residual means
// the candidate violates the physics at that point.
func (o Oscillator) Residual(u, du, d2u float64) float64 {
	return o.M*d2u + o.Mu*du + o.K*u
}

// Validate checks the parameter ranges and the under-damping precondition.
// It must pass before the closed-form solution is meaningful.
func (o Oscillator) Validate() error {
	if o.M <= 0 || o.K <= 0 || o.Mu < 0 {
		return fmt.Errorf("%w: m=%g, mu=%g, k=%g", ErrInvalidParams, o.M, o.Mu, o.K)
	}
	if o.Delta() >= o.Omega0() {
		return fmt.Errorf("%w: delta=%g, omega0=%g", ErrNotUnderdamped, o.Delta(), o.Omega0())
	}
	return nil
}

// Solution is the closed-form under-damped solution
//
//	u(t) = 2A·e^(-delta·t)·cos(phi + omega·t)
//
// with omega = sqrt(omega0² - delta²), phi = arctan(-delta/omega) and
// A = 1/(2·cos(phi)), which satisfies u(0) = 1 and u'(0) = 0 exactly.
//
// A Solution can only be obtained through Oscillator.Solution, which
// enforces the under-damping precondition; there is no way to evaluate the
// closed form for an over-damped configuration.
type Solution struct {
	osc   Oscillator
	delta float64
	omega float64
	phi   float64
	amp   float64 // 2A
}

// Solution validates the oscillator and returns its closed-form solution.
func (o Oscillator) Solution() (*Solution, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	delta := o.Delta()
	omega0 := o.Omega0()
	omega := math.Sqrt(omega0*omega0 - delta*delta)
	phi := math.Atan2(-delta, omega)
	amp := 1.0 / math.Cos(phi)
	return &Solution{
		osc:   o,
		delta: delta,
		omega: omega,
		phi:   phi,
		amp:   amp,
	}, nil
}

// Oscillator returns the parameter set the solution was built from.
func (s *Solution) Oscillator() Oscillator {
	return s.osc
}

// Eval returns u(t).
func (s *Solution) Eval(t float64) float64 {
	return s.amp * math.Exp(-s.delta*t) * math.Cos(s.phi+s.omega*t)
}

// Velocity returns u'(t).
func (s *Solution) Velocity(t float64) float64 {
	e := s.amp * math.Exp(-s.delta*t)
	return e * (-s.delta*math.Cos(s.phi+s.omega*t) - s.omega*math.Sin(s.phi+s.omega*t))
}

// Acceleration returns the analytic u''(t). It is derived independently of
// the governing equation, so plugging Eval, Velocity and Acceleration into
// the residual is a genuine zero check, not an identity.
func (s *Solution) Acceleration(t float64) float64 {
	theta := s.phi + s.omega*t
	e := s.amp * math.Exp(-s.delta*t)
	return e * ((s.delta*s.delta-s.omega*s.omega)*math.Cos(theta) + 2*s.delta*s.omega*math.Sin(theta))
}

// Sample evaluates u at every point of ts.
func (s *Solution) Sample(ts []float64) []float64 {
	us := make([]float64, len(ts))
	for i, t := range ts {
		us[i] = s.Eval(t)
	}
	return us
}
