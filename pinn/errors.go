package pinn

import "errors"

// Training errors.
var (
	// ErrDiverged indicates the loss became NaN or infinite. Badly scaled
	// loss weights are the usual cause; the run is aborted with the
	// iteration number rather than silently continuing.
	ErrDiverged = errors.New("pinn: loss diverged (non-finite)")

	// ErrAlreadyRun indicates Run was called on a trainer that has already
	// finished. Trainers are single-use; rerun by constructing a new one.
	ErrAlreadyRun = errors.New("pinn: trainer already run")

	// ErrNoObservations indicates an inverse trainer was constructed
	// without an observation set.
	ErrNoObservations = errors.New("pinn: inverse task requires observations")
)
