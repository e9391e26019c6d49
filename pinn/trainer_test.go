package pinn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pinn-ml/pinn/physics"
)

// smallForwardConfig shrinks the reference forward task to something a
// unit test can train in a fraction of a second.
func smallForwardConfig() Config {
	cfg := DefaultForwardConfig()
	cfg.Hidden = 8
	cfg.HiddenLayers = 2
	cfg.CollocationPoints = 10
	cfg.Iterations = 300
	cfg.EvalPoints = 50
	cfg.SnapshotEvery = 100
	return cfg
}

func smallInverseConfig() Config {
	cfg := smallForwardConfig()
	cfg.BoundarySlopeWeight = 0
	cfg.PhysicsWeight = 1
	cfg.DataWeight = 1e4
	cfg.MuGuess = 0
	cfg.Iterations = 500

	sol, err := cfg.Oscillator.Solution()
	if err != nil {
		panic(err)
	}
	cfg.Observations = sol.Observe(40, cfg.Domain[1], 0.04, uint64(cfg.Seed))
	return cfg
}

func TestNewForwardRejectsOverdamped(t *testing.T) {
	cfg := smallForwardConfig()
	cfg.Oscillator.Mu = 400

	_, err := NewForward(cfg)
	require.ErrorIs(t, err, physics.ErrNotUnderdamped)
}

func TestNewInverseRequiresObservations(t *testing.T) {
	cfg := smallForwardConfig()
	cfg.Observations = nil

	_, err := NewInverse(cfg)
	require.ErrorIs(t, err, ErrNoObservations)
}

func TestLossTermsFiniteAtInit(t *testing.T) {
	tr, err := NewForward(smallForwardConfig())
	require.NoError(t, err)

	tape := tr.backend.Tape()
	tape.StartRecording()
	defer func() {
		tape.StopRecording()
		tape.Clear()
	}()

	value, slope, err := tr.boundaryLoss()
	require.NoError(t, err)
	require.False(t, math.IsNaN(value.Item()) || math.IsInf(value.Item(), 0))
	require.False(t, math.IsNaN(slope.Item()) || math.IsInf(slope.Item(), 0))
	require.GreaterOrEqual(t, value.Item(), 0.0)
	require.GreaterOrEqual(t, slope.Item(), 0.0)

	phys, err := tr.physicsLoss()
	require.NoError(t, err)
	require.False(t, math.IsNaN(phys.Item()) || math.IsInf(phys.Item(), 0))
	require.GreaterOrEqual(t, phys.Item(), 0.0)
}

func TestStateLifecycle(t *testing.T) {
	tr, err := NewForward(smallForwardConfig())
	require.NoError(t, err)
	require.Equal(t, StateInitialized, tr.State())

	_, err = tr.Run()
	require.NoError(t, err)
	require.Equal(t, StateExhausted, tr.State())

	_, err = tr.Run()
	require.ErrorIs(t, err, ErrAlreadyRun)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "initialized", StateInitialized.String())
	require.Equal(t, "running", StateRunning.String())
	require.Equal(t, "exhausted", StateExhausted.String())
	require.Equal(t, "unknown", State(99).String())
}

func TestForwardLossDecreases(t *testing.T) {
	tr, err := NewForward(smallForwardConfig())
	require.NoError(t, err)

	res, err := tr.Run()
	require.NoError(t, err)
	require.NotEmpty(t, res.History)
	require.Less(t, res.FinalLoss, res.History[0].Loss)
}

func TestForwardDeterminism(t *testing.T) {
	cfg := smallForwardConfig()

	run := func() (*Result, []float64) {
		tr, err := NewForward(cfg)
		require.NoError(t, err)
		res, err := tr.Run()
		require.NoError(t, err)
		return res, tr.Predict(physics.Linspace(0, 1, 20))
	}

	res1, pred1 := run()
	res2, pred2 := run()

	require.Equal(t, res1.FinalLoss, res2.FinalLoss)
	require.Equal(t, res1.History, res2.History)
	require.Equal(t, pred1, pred2, "same seed must reproduce the run bit for bit")
}

func TestSnapshots(t *testing.T) {
	cfg := smallForwardConfig()
	cfg.Iterations = 201
	cfg.SnapshotEvery = 100

	var calls int
	cfg.OnSnapshot = func(Snapshot) { calls++ }

	tr, err := NewForward(cfg)
	require.NoError(t, err)
	res, err := tr.Run()
	require.NoError(t, err)

	require.Len(t, res.History, 3) // iterations 0, 100, 200
	require.Equal(t, 3, calls)
	for i, snap := range res.History {
		require.Equal(t, i*100, snap.Iteration)
		require.False(t, math.IsNaN(snap.MSE))
		require.Equal(t, 4.0, snap.Mu, "forward task reports the configured mu")
	}
}

func TestForwardMuIsConfigured(t *testing.T) {
	tr, err := NewForward(smallForwardConfig())
	require.NoError(t, err)
	require.Equal(t, 4.0, tr.Mu())
}

func TestInverseMuStartsAtGuess(t *testing.T) {
	cfg := smallInverseConfig()
	cfg.MuGuess = 1.5

	tr, err := NewInverse(cfg)
	require.NoError(t, err)
	require.Equal(t, 1.5, tr.Mu())
}

func TestInverseTrainingMovesMu(t *testing.T) {
	tr, err := NewInverse(smallInverseConfig())
	require.NoError(t, err)

	res, err := tr.Run()
	require.NoError(t, err)
	require.False(t, math.IsNaN(res.FinalLoss) || math.IsInf(res.FinalLoss, 0))
	require.NotEqual(t, 0.0, res.Mu, "the damping estimate must leave its initial guess")
	require.Less(t, res.FinalLoss, res.History[0].Loss)
}

func TestDivergenceAborts(t *testing.T) {
	cfg := smallForwardConfig()
	cfg.LR = 1e154 // One step throws the weights past float64 range
	cfg.Iterations = 50

	tr, err := NewForward(cfg)
	require.NoError(t, err)

	_, err = tr.Run()
	require.ErrorIs(t, err, ErrDiverged)
	require.Equal(t, StateExhausted, tr.State())
}

func TestPredictShapeAndEvalGrid(t *testing.T) {
	tr, err := NewForward(smallForwardConfig())
	require.NoError(t, err)

	ts, exact := tr.EvalGrid()
	require.Len(t, ts, 50)
	require.Len(t, exact, 50)

	pred := tr.Predict(ts)
	require.Len(t, pred, 50)
	require.False(t, tr.backend.Tape().IsRecording(), "Predict must not leave the tape recording")
}

func TestDefaultConfigs(t *testing.T) {
	fwd := DefaultForwardConfig()
	require.Equal(t, physics.Oscillator{M: 1, Mu: 4, K: 400}, fwd.Oscillator)
	require.Equal(t, 15001, fwd.Iterations)
	require.Empty(t, fwd.Observations)

	inv := DefaultInverseConfig()
	require.Len(t, inv.Observations, 40)
	require.Zero(t, inv.MuGuess)
	require.Equal(t, 1e4, inv.DataWeight)
	require.Zero(t, inv.BoundarySlopeWeight)
}

// Full-budget convergence of the forward task. Takes the entire reference
// iteration count; skipped with -short.
func TestForwardConverges(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full forward training run in short mode")
	}

	tr, err := NewForward(DefaultForwardConfig())
	require.NoError(t, err)
	res, err := tr.Run()
	require.NoError(t, err)

	mse := tr.EvalMSE()
	t.Logf("final loss %.6g, eval MSE %.6g", res.FinalLoss, mse)
	require.Less(t, mse, 1e-2, "trained network must match the closed-form solution")
}

// Full-budget discovery of the damping coefficient; skipped with -short.
func TestInverseRecoversMu(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full inverse training run in short mode")
	}

	tr, err := NewInverse(DefaultInverseConfig())
	require.NoError(t, err)
	res, err := tr.Run()
	require.NoError(t, err)

	t.Logf("final loss %.6g, learned mu %.4f", res.FinalLoss, res.Mu)
	require.InDelta(t, 4.0, res.Mu, 0.4, "mu must be recovered within ten percent")
}
