package physics

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Linspace returns n evenly spaced points spanning [t0, t1] inclusive.
// Collocation grids are fixed per run; they are generated once and never
// resampled.
func Linspace(t0, t1 float64, n int) []float64 {
	if n < 2 {
		panic(fmt.Sprintf("physics: Linspace needs at least 2 points, got %d", n))
	}
	ts := make([]float64, n)
	step := (t1 - t0) / float64(n-1)
	for i := range ts {
		ts[i] = t0 + float64(i)*step
	}
	ts[n-1] = t1
	return ts
}

// Observation is one noisy measurement of the true solution.
type Observation struct {
	T float64 // measurement time
	U float64 // measured displacement
}

// Observe draws n observation times uniformly from [0, tmax] and samples
// the exact solution with additive Gaussian noise N(0, sigma²). The set is
// generated once from the given seed and is immutable for the run.
func (s *Solution) Observe(n int, tmax, sigma float64, seed uint64) []Observation {
	src := rand.NewSource(seed)
	uniform := distuv.Uniform{Min: 0, Max: tmax, Src: src}
	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}

	obs := make([]Observation, n)
	for i := range obs {
		t := uniform.Rand()
		obs[i] = Observation{
			T: t,
			U: s.Eval(t) + noise.Rand(),
		}
	}
	return obs
}
