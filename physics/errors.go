package physics

import "errors"

// Domain errors for oscillator configuration.
var (
	// ErrNotUnderdamped indicates delta >= omega0: the closed-form
	// oscillatory solution used as ground truth does not exist.
	ErrNotUnderdamped = errors.New("physics: oscillator is not under-damped (delta >= omega0)")

	// ErrInvalidParams indicates a non-physical parameter value
	// (non-positive mass or stiffness, negative damping).
	ErrInvalidParams = errors.New("physics: oscillator parameters out of valid range")
)
