package nn

import "github.com/pinn-ml/pinn/internal/tensor"

// Sequential is a container module that chains multiple modules together.
//
// The architecture is static per run: the modules are stored as a plain
// ordered slice and applied with a fixed loop.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(1, 32, rng, backend),
//	    nn.NewTanh(),
//	    nn.NewLinear(32, 1, rng, backend),
//	)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(input *tensor.Tensor) *tensor.Tensor {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Parameters returns all trainable parameters from all modules.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}
