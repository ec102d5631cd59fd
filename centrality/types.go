// Package centrality defines configuration options and error types for
// the eigenvector-centrality kernels.
//
// Two kernels share this surface:
//
//   - Eigenvector: power-method approximation, tunable via
//     WithMaxIterations / WithTolerance / WithInitial.
//   - EigenvectorExact: per-component dense eigen-decomposition,
//     tunable via WithEigenSolver.
//
// Errors (sentinel):
//
//   - ErrNilGraph          if the provided graph pointer is nil.
//   - ErrMultigraph        if the graph permits parallel edges.
//   - ErrNotConverged      if power iteration exhausts its budget;
//     carried by *ConvergenceError together with the iteration count.
//   - ErrNoSolver          if no eigen-decomposition backend is available.
//   - ErrInitialIncomplete if a supplied starting vector misses a vertex.
package centrality

import (
	"errors"
	"fmt"

	"github.com/kastelov/eigenrank/matrix"
)

// Sentinel errors returned by the centrality kernels.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrMultigraph indicates the graph permits parallel edges;
	// eigenvector centrality is not defined for multigraphs.
	ErrMultigraph = errors.New("centrality: not defined for multigraphs")

	// ErrNotConverged indicates power iteration exhausted its iteration
	// budget without meeting the tolerance criterion. Returned wrapped
	// inside *ConvergenceError; match with errors.Is.
	ErrNotConverged = errors.New("centrality: power iteration failed to converge")

	// ErrNoSolver indicates the exact kernel was invoked without an
	// eigen-decomposition backend (WithEigenSolver(nil)).
	ErrNoSolver = errors.New("centrality: eigen-decomposition backend unavailable")

	// ErrInitialIncomplete indicates a supplied starting vector does not
	// cover every vertex of the graph.
	ErrInitialIncomplete = errors.New("centrality: initial vector must cover every vertex")

	// ErrBadMaxIterations reports a non-positive iteration budget
	// (surfaced via panic in the option constructor).
	ErrBadMaxIterations = errors.New("centrality: MaxIterations must be positive")

	// ErrBadTolerance reports a non-positive tolerance
	// (surfaced via panic in the option constructor).
	ErrBadTolerance = errors.New("centrality: Tolerance must be positive")
)

// ConvergenceError reports that power iteration ran its full budget
// without converging. Iterations is the number of rounds attempted.
// errors.Is(err, ErrNotConverged) matches it.
type ConvergenceError struct {
	// Iterations is the number of power-iteration rounds performed.
	Iterations int
}

// Error implements the error interface.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("centrality: power iteration failed to converge in %d iterations", e.Iterations)
}

// Unwrap lets errors.Is match the ErrNotConverged sentinel.
func (e *ConvergenceError) Unwrap() error { return ErrNotConverged }

// EigenSolver is the dense eigen-decomposition capability consumed by
// EigenvectorExact: given a square symmetric matrix it returns all
// eigenvalues and a matrix whose column k is the eigenvector for
// eigenvalue k. Implementations must keep (value, column) pairs aligned.
type EigenSolver func(m matrix.Matrix) (values []float64, vectors matrix.Matrix, err error)

const (
	// DefaultMaxIterations bounds the power-iteration loop.
	DefaultMaxIterations = 100

	// DefaultTolerance is the per-node convergence tolerance; the loop
	// stops once the L1 change falls below nodeCount*DefaultTolerance.
	DefaultTolerance = 1e-6

	// solver defaults for the built-in Jacobi backend.
	defaultSolverTol    = 1e-10
	defaultSolverSweeps = 300
)

// DefaultEigenSolver adapts matrix.Eigen (Jacobi sweeps) as the stock
// decomposition backend for EigenvectorExact.
func DefaultEigenSolver(m matrix.Matrix) ([]float64, matrix.Matrix, error) {
	return matrix.Eigen(m, defaultSolverTol, defaultSolverSweeps)
}

// Options configures the behavior of the centrality kernels.
//
// MaxIterations - power-iteration budget (must be > 0).
// Tolerance     - per-node convergence tolerance (must be > 0).
// Initial       - optional starting scores; when set, must cover every
// vertex of the graph. Nil means a uniform 1/n start.
// Solver        - eigen-decomposition backend for the exact kernel;
// nil models an unavailable backend and fails with ErrNoSolver.
type Options struct {
	MaxIterations int                // Power-iteration budget
	Tolerance     float64            // Per-node convergence tolerance
	Initial       map[string]float64 // Optional starting vector
	Solver        EigenSolver        // Decomposition backend for the exact kernel
}

// Option represents a functional option for configuring a kernel.
type Option func(*Options)

// WithMaxIterations sets the power-iteration budget.
// Must pass a positive value; zero or negative panics with
// ErrBadMaxIterations (invalid configuration, fail early).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the per-node convergence tolerance.
// Must pass a positive value; zero or negative panics with ErrBadTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// WithInitial supplies per-vertex starting scores for power iteration.
// The mapping must cover every vertex of the graph; it is rescaled to
// sum to 1 before the first round and never mutated.
func WithInitial(initial map[string]float64) Option {
	return func(o *Options) {
		o.Initial = initial
	}
}

// WithEigenSolver injects the decomposition backend used by
// EigenvectorExact. Passing nil models an absent backend: the exact
// kernel then fails with ErrNoSolver while power iteration remains
// unaffected.
func WithEigenSolver(s EigenSolver) Option {
	return func(o *Options) {
		o.Solver = s
	}
}

// DefaultOptions returns an Options struct initialized with the
// defaults shared by both kernels. Use as the starting point for
// functional-option overrides.
//
// Defaults:
//   - MaxIterations: 100
//   - Tolerance:     1e-6
//   - Initial:       nil (uniform 1/n start)
//   - Solver:        DefaultEigenSolver (in-package Jacobi)
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Initial:       nil,
		Solver:        DefaultEigenSolver,
	}
}
