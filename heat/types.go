package heat

import (
	"errors"
	"math"
)

// Sentinel errors.
var (
	// ErrNoVertices is returned when the vertex set is empty.
	ErrNoVertices = errors.New("heat: no vertices")

	// ErrVertexOutOfRange is returned when start or end is not a vertex.
	ErrVertexOutOfRange = errors.New("heat: vertex out of range")

	// ErrZeroSourceMass is returned when the source vertex touches no
	// non-degenerate triangle, so the heat impulse would be zero.
	ErrZeroSourceMass = errors.New("heat: source vertex has zero mass")

	// ErrNoPath is returned when neither descent nor the edge-graph
	// fallback connects end to start.
	ErrNoPath = errors.New("heat: no path between vertices")
)

// Defaults.
const (
	DefaultHeatMaxIter      = 600
	DefaultPoissonMaxIter   = 1000
	DefaultTolerance        = 1e-6
	DefaultDescentTolerance = 1e-9
	DefaultPlateauTolerance = 1e-6

	// degenerateArea is the triangle area at or below which a face is
	// ignored by assembly.
	degenerateArea = 1e-12
)

// Options tunes the solver.
type Options struct {
	// HeatMaxIter bounds CG on (M − tL)u = δ.
	HeatMaxIter int

	// PoissonMaxIter bounds CG on Lφ = div X.
	PoissonMaxIter int

	// Tolerance is the residual norm at which both CG solves stop.
	Tolerance float64

	// DescentTolerance is the margin by which a neighbor must be lower to
	// count as a strict descent step.
	DescentTolerance float64

	// PlateauTolerance is the margin for a non-increasing step onto an
	// unvisited neighbor when no strict descent exists.
	PlateauTolerance float64
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns 600/1000 CG iterations at 1e-6 and the 1e-9/1e-6
// descent margins.
func DefaultOptions() Options {
	return Options{
		HeatMaxIter:      DefaultHeatMaxIter,
		PoissonMaxIter:   DefaultPoissonMaxIter,
		Tolerance:        DefaultTolerance,
		DescentTolerance: DefaultDescentTolerance,
		PlateauTolerance: DefaultPlateauTolerance,
	}
}

// WithHeatMaxIter sets the heat-solve iteration budget. Panics on n < 1.
func WithHeatMaxIter(n int) Option {
	if n < 1 {
		panic("heat: WithHeatMaxIter: iterations must be positive")
	}

	return func(o *Options) { o.HeatMaxIter = n }
}

// WithPoissonMaxIter sets the Poisson-solve iteration budget. Panics on n < 1.
func WithPoissonMaxIter(n int) Option {
	if n < 1 {
		panic("heat: WithPoissonMaxIter: iterations must be positive")
	}

	return func(o *Options) { o.PoissonMaxIter = n }
}

// WithTolerance sets the CG residual tolerance. Panics unless tol is finite
// and positive.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 1) {
		panic("heat: WithTolerance: tolerance must be finite and positive")
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithDescentTolerance sets the strict-descent margin. Panics on negative or
// non-finite values.
func WithDescentTolerance(eps float64) Option {
	if !(eps >= 0) || math.IsInf(eps, 1) {
		panic("heat: WithDescentTolerance: margin must be finite and non-negative")
	}

	return func(o *Options) { o.DescentTolerance = eps }
}

// WithPlateauTolerance sets the plateau-step margin. Panics on negative or
// non-finite values.
func WithPlateauTolerance(eps float64) Option {
	if !(eps >= 0) || math.IsInf(eps, 1) {
		panic("heat: WithPlateauTolerance: margin must be finite and non-negative")
	}

	return func(o *Options) { o.PlateauTolerance = eps }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Field is the outcome of Solve.
type Field struct {
	// U is the diffused heat.
	U []float64

	// Phi is the reconstructed distance, shifted so that min Phi = 0.
	Phi []float64

	// HeatConverged and PoissonConverged report whether the two CG solves
	// reached Tolerance. The field is usable either way.
	HeatConverged    bool
	PoissonConverged bool

	// HeatIterations and PoissonIterations count CG iterations.
	HeatIterations    int
	PoissonIterations int
}

// Path is the outcome of ExtractPath.
type Path struct {
	// Vertices runs from start to end.
	Vertices []int

	// Fallback is true when greedy descent stalled and the path came from
	// a shortest-path search over the mesh edges.
	Fallback bool
}
