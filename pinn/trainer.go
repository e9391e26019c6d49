package pinn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pinn-ml/pinn/autodiff"
	"github.com/pinn-ml/pinn/backend/cpu"
	"github.com/pinn-ml/pinn/nn"
	"github.com/pinn-ml/pinn/optim"
	"github.com/pinn-ml/pinn/physics"
	"github.com/pinn-ml/pinn/tensor"
)

// State is the trainer lifecycle state.
type State int

// Trainer states. The progression is linear: a trainer is initialized,
// runs its fixed iteration budget, and is exhausted. There is no
// convergence test and no early stopping.
const (
	StateInitialized State = iota
	StateRunning
	StateExhausted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Snapshot is one periodic, read-only observation of training state.
type Snapshot struct {
	Iteration int
	Loss      float64
	Mu        float64 // current damping estimate (inverse) or the fixed value (forward)
	MSE       float64 // network-vs-exact mean squared error on the evaluation grid
}

// Result is what a finished run reports: the final loss, the damping
// coefficient (learned, for the inverse task) and the snapshot history.
// The trained parameter vector stays inside the trainer; use Predict to
// evaluate the fitted solution.
type Result struct {
	FinalLoss  float64
	Mu         float64
	Iterations int
	History    []Snapshot
}

// Trainer owns all mutable training state: the network parameters, the
// optional trainable damping coefficient, the optimizer moments and the
// iteration counter. Collocation and observation tensors are built once at
// construction and are read-only afterwards.
type Trainer struct {
	cfg   Config
	state State

	backend   *autodiff.Backend
	model     *nn.Sequential
	muParam   *nn.Parameter // non-nil only for the inverse task
	optimizer optim.Optimizer

	boundary *tensor.Tensor // {1, 1} — the boundary point t0
	colloc   *tensor.Tensor // {N, 1} — fixed interior collocation grid
	obsT     *tensor.Tensor // {M, 1} — observation times (inverse)
	obsU     *tensor.Tensor // {M, 1} — observed values (inverse)

	sol     *physics.Solution // ground truth for evaluation
	evalTs  []float64
	evalUs  []float64
	history []Snapshot
}

// NewForward constructs a trainer for the forward task: solve the ODE from
// the boundary conditions and the physics residual alone.
//
// The under-damping precondition is checked here, before any training
// starts: an oscillator without a valid closed-form ground truth fails
// fast with a descriptive error.
func NewForward(cfg Config) (*Trainer, error) {
	return newTrainer(cfg, false)
}

// NewInverse constructs a trainer for the inverse task: jointly fit the
// solution and discover the damping coefficient mu from cfg.Observations,
// starting at cfg.MuGuess.
func NewInverse(cfg Config) (*Trainer, error) {
	return newTrainer(cfg, true)
}

func newTrainer(cfg Config, inverse bool) (*Trainer, error) {
	sol, err := cfg.Oscillator.Solution()
	if err != nil {
		return nil, err
	}
	if inverse && len(cfg.Observations) == 0 {
		return nil, ErrNoObservations
	}

	backend := autodiff.New(cpu.New())
	rng := rand.New(rand.NewSource(cfg.Seed))
	model := nn.NewMLP(1, cfg.Hidden, cfg.HiddenLayers, 1, rng, backend)

	boundary, err := tensor.FromSlice([]float64{cfg.Domain[0]}, tensor.Shape{1, 1}, backend)
	if err != nil {
		return nil, err
	}
	colloc := tensor.Linspace(cfg.Domain[0], cfg.Domain[1], cfg.CollocationPoints, backend)

	tr := &Trainer{
		cfg:      cfg,
		state:    StateInitialized,
		backend:  backend,
		model:    model,
		boundary: boundary,
		colloc:   colloc,
		sol:      sol,
		evalTs:   physics.Linspace(cfg.Domain[0], cfg.Domain[1], cfg.EvalPoints),
	}
	tr.evalUs = sol.Sample(tr.evalTs)

	params := model.Parameters()
	if inverse {
		tr.muParam = nn.NewScalarParameter("mu", cfg.MuGuess, backend)
		params = append(params, tr.muParam)

		times := make([]float64, len(cfg.Observations))
		values := make([]float64, len(cfg.Observations))
		for i, obs := range cfg.Observations {
			times[i] = obs.T
			values[i] = obs.U
		}
		shape := tensor.Shape{len(cfg.Observations), 1}
		if tr.obsT, err = tensor.FromSlice(times, shape, backend); err != nil {
			return nil, err
		}
		if tr.obsU, err = tensor.FromSlice(values, shape, backend); err != nil {
			return nil, err
		}
	}
	tr.optimizer = optim.NewAdam(params, optim.AdamConfig{LR: cfg.LR})

	return tr, nil
}

// State returns the trainer lifecycle state.
func (tr *Trainer) State() State {
	return tr.state
}

// Mu returns the current damping estimate: the trainable value in the
// inverse task, the configured constant otherwise.
func (tr *Trainer) Mu() float64 {
	if tr.muParam != nil {
		return tr.muParam.Item()
	}
	return tr.cfg.Oscillator.Mu
}

// Run executes the fixed iteration budget and returns the result.
//
// Each iteration: clear the tape, build the loss graph (forward pass plus
// the recorded input-derivative passes), check finiteness, backpropagate to
// the parameters, apply one optimizer step, then optionally snapshot.
// A non-finite loss aborts with ErrDiverged and the iteration number.
func (tr *Trainer) Run() (*Result, error) {
	if tr.state != StateInitialized {
		return nil, fmt.Errorf("%w (state %s)", ErrAlreadyRun, tr.state)
	}
	tr.state = StateRunning

	tape := tr.backend.Tape()
	tape.StartRecording()
	defer func() {
		tape.StopRecording()
		tape.Clear()
		tr.state = StateExhausted
	}()

	lastLoss := math.NaN()
	for i := 0; i < tr.cfg.Iterations; i++ {
		tape.Clear()

		loss, err := tr.loss()
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}
		lastLoss = loss.Item()
		if math.IsNaN(lastLoss) || math.IsInf(lastLoss, 0) {
			return nil, fmt.Errorf("iteration %d: %w", i, ErrDiverged)
		}

		grads := autodiff.Backward(loss, tr.backend)
		tr.optimizer.Step(grads)
		tr.optimizer.ZeroGrad()

		if tr.cfg.SnapshotEvery > 0 && i%tr.cfg.SnapshotEvery == 0 {
			tr.snapshot(i, lastLoss)
		}
	}

	return &Result{
		FinalLoss:  lastLoss,
		Mu:         tr.Mu(),
		Iterations: tr.cfg.Iterations,
		History:    tr.history,
	}, nil
}

// snapshot records one periodic observation. It is read-only with respect
// to training state; the tape pauses so evaluation leaves no trace on the
// graph.
func (tr *Trainer) snapshot(iteration int, loss float64) {
	snap := Snapshot{
		Iteration: iteration,
		Loss:      loss,
		Mu:        tr.Mu(),
		MSE:       tr.EvalMSE(),
	}
	tr.history = append(tr.history, snap)
	if tr.cfg.OnSnapshot != nil {
		tr.cfg.OnSnapshot(snap)
	}
}

// Predict evaluates the network at the given points without touching the
// tape. Safe to call at any lifecycle state.
func (tr *Trainer) Predict(ts []float64) []float64 {
	tape := tr.backend.Tape()
	wasRecording := tape.IsRecording()
	tape.StopRecording()
	defer func() {
		if wasRecording {
			tape.StartRecording()
		}
	}()

	in, err := tensor.FromSlice(ts, tensor.Shape{len(ts), 1}, tr.backend)
	if err != nil {
		panic(err) // ts is a caller-built grid; only an empty one can fail
	}
	out := tr.model.Forward(in)
	return out.Data()
}

// EvalMSE returns the mean squared error between the network and the exact
// solution on the dense evaluation grid.
func (tr *Trainer) EvalMSE() float64 {
	pred := tr.Predict(tr.evalTs)
	var sum float64
	for i, p := range pred {
		d := p - tr.evalUs[i]
		sum += d * d
	}
	return sum / float64(len(pred))
}

// EvalGrid returns the evaluation grid and the exact solution on it.
func (tr *Trainer) EvalGrid() (ts, exact []float64) {
	return tr.evalTs, tr.evalUs
}
