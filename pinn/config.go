package pinn

import "github.com/pinn-ml/pinn/physics"

// Config holds every knob of a training run. The zero value is not usable;
// start from DefaultForwardConfig or DefaultInverseConfig and override.
//
// The loss weights are empirically tuned quantities, not universal
// constants: they balance residual families that live at different natural
// scales, and a different ODE parameter regime may need re-tuning for the
// run to converge at all.
type Config struct {
	// Oscillator is the governing parameter set. In the inverse task its
	// Mu is the ground truth used for reporting only; training starts from
	// MuGuess and never reads the true value.
	Oscillator physics.Oscillator

	// Domain is the solution interval [t0, t1].
	Domain [2]float64

	// CollocationPoints is the size of the fixed interior grid the physics
	// residual is evaluated on every iteration.
	CollocationPoints int

	// Network architecture: hidden width and number of hidden layers.
	Hidden       int
	HiddenLayers int

	// Initial conditions u(t0) = U0 and u'(t0) = V0.
	U0 float64
	V0 float64

	// Optimization.
	LR         float64
	Iterations int
	Seed       int64

	// BoundarySlopeWeight (lambda1) scales the boundary slope residual and
	// PhysicsWeight (lambda2) scales the physics residual in the forward
	// loss. DataWeight (lambda) scales the data misfit in the inverse
	// loss; it is large because the data term must dominate to pull the
	// damping estimate toward the observations, while the physics term
	// regularizes against fitting the noise.
	BoundarySlopeWeight float64
	PhysicsWeight       float64
	DataWeight          float64

	// Inverse task inputs.
	Observations []physics.Observation
	MuGuess      float64

	// Reporting.
	SnapshotEvery int
	EvalPoints    int
	OnSnapshot    func(Snapshot) // optional live progress hook
}

// DefaultForwardConfig returns the reference forward task: delta=2,
// omega0=20 on [0, 1], a 1-32-32-32-1 tanh network, Adam at 1e-3 for
// 15001 iterations.
func DefaultForwardConfig() Config {
	return Config{
		Oscillator:          physics.Oscillator{M: 1, Mu: 4, K: 400},
		Domain:              [2]float64{0, 1},
		CollocationPoints:   30,
		Hidden:              32,
		HiddenLayers:        3,
		U0:                  1,
		V0:                  0,
		LR:                  1e-3,
		Iterations:          15001,
		Seed:                42,
		BoundarySlopeWeight: 1e-1,
		PhysicsWeight:       1e-4,
		SnapshotEvery:       1000,
		EvalPoints:          300,
	}
}

// DefaultInverseConfig returns the reference inverse task: the same
// oscillator with mu=4 treated as unknown (initial guess 0), 40 noisy
// observations (sigma=0.04) drawn from the exact solution, data weight 1e4.
//
// The observation set is generated here from the config seed so a default
// run is fully reproducible; callers with real measurements overwrite
// Observations.
func DefaultInverseConfig() Config {
	cfg := DefaultForwardConfig()
	cfg.BoundarySlopeWeight = 0
	cfg.PhysicsWeight = 1
	cfg.DataWeight = 1e4
	cfg.MuGuess = 0

	sol, err := cfg.Oscillator.Solution()
	if err != nil {
		panic(err) // The reference oscillator is under-damped
	}
	cfg.Observations = sol.Observe(40, cfg.Domain[1], 0.04, uint64(cfg.Seed))
	return cfg
}
