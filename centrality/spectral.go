// Package centrality: exact eigenvector centrality via dense
// eigen-decomposition, handled per connected component so disconnected
// graphs are supported.
package centrality

import (
	"fmt"
	"math"

	"github.com/kastelov/eigenrank/core"
	"github.com/kastelov/eigenrank/matrix"
)

// EigenvectorExact computes eigenvector centrality algebraically:
// each connected component's weighted adjacency matrix is fully
// decomposed, the eigenvector of the largest eigenvalue is extracted
// and sign-fixed, and the assembled global vector is renormalized once.
//
// Procedure per component:
//  1. Fix the component's sorted vertex order and build its dense
//     weighted adjacency matrix (matrix.BuildAdjacency).
//  2. Decompose with the configured EigenSolver (default: the
//     in-package Jacobi backend).
//  3. Select the largest eigenvalue (ties broken by solver order, not
//     independently disambiguated) and its eigenvector column.
//  4. Multiply the column by the sign of its maximum entry so dominant
//     entries come out positive. A maximum entry of exactly 0 makes the
//     sign 0 and collapses the whole component to zeros; this inherited
//     edge case is preserved, not corrected.
//  5. Write the component's values into the global vector.
//
// A component with a zero dominant eigenvalue has no edges (an isolated
// vertex); it scores exactly 0 rather than taking the solver's
// arbitrary eigenvector of the zero matrix.
//
// After all components are processed the global vector is divided by
// its combined Euclidean norm. Because each component was scaled by the
// solver's own convention before this single global step, relative
// magnitudes BETWEEN components carry no meaning.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must not permit parallel edges (ErrMultigraph).
//  3. An eigen-decomposition backend must be available (ErrNoSolver);
//     checked before any component is touched.
//
// Errors: ErrNilGraph, ErrMultigraph, ErrNoSolver, or a wrapped solver
// failure (the stock backend surfaces matrix.ErrEigenFailed).
//
// The stock Jacobi backend accepts symmetric matrices only, so directed
// graphs fail with a wrapped matrix.ErrAsymmetry; decompose directed
// adjacency by injecting a general-purpose backend via WithEigenSolver.
//
// Complexity: O(k³) per component of size k with the stock backend;
// no convergence parameters exist on this path.
func EigenvectorExact(g *core.Graph, opts ...Option) (map[string]float64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Reject multigraphs before any decomposition.
	if g.Multigraph() {
		return nil, ErrMultigraph
	}

	// 4) The decomposition capability must be present up front.
	if cfg.Solver == nil {
		return nil, ErrNoSolver
	}

	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return map[string]float64{}, nil
	}
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	// 5) Per-component decomposition; unvisited positions stay 0.
	scores := make([]float64, n)
	for _, comp := range g.ConnectedComponents() {
		col, err := componentEigenvector(g, comp, cfg.Solver)
		if err != nil {
			return nil, err
		}
		for i, id := range comp {
			scores[index[id]] = col[i]
		}
	}

	// 6) One global renormalization over the assembled vector.
	norm := 0.0
	for _, v := range scores {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm != 0 {
		for i := range scores {
			scores[i] /= norm
		}
	}

	result := make(map[string]float64, n)
	for i, id := range ids {
		result[id] = scores[i]
	}

	return result, nil
}

// componentEigenvector decomposes one component's adjacency matrix and
// returns its sign-fixed dominant eigenvector, aligned with comp's
// vertex order.
func componentEigenvector(g *core.Graph, comp []string, solve EigenSolver) ([]float64, error) {
	k := len(comp)

	// Dense weighted adjacency restricted to this component.
	mat, err := matrix.BuildAdjacency(g, comp)
	if err != nil {
		return nil, fmt.Errorf("centrality: component adjacency: %w", err)
	}

	vals, vecs, err := solve(mat)
	if err != nil {
		return nil, fmt.Errorf("centrality: eigen-decomposition: %w", err)
	}
	// Defensive shape check on the injected backend's output.
	if len(vals) != k || vecs == nil || vecs.Rows() != k || vecs.Cols() != k {
		return nil, fmt.Errorf("centrality: solver output shape: %w", matrix.ErrDimensionMismatch)
	}

	// Largest eigenvalue; ties resolve to the first in solver order.
	best := 0
	for i := 1; i < k; i++ {
		if vals[i] > vals[best] {
			best = i
		}
	}

	// A zero dominant eigenvalue means the component has no edges
	// (an isolated vertex): its centrality is exactly 0, not the
	// solver's arbitrary unit eigenvector of the zero matrix.
	if vals[best] == 0 {
		return make([]float64, k), nil
	}

	// Extract the dominant column and locate its maximum entry.
	col := make([]float64, k)
	maxEntry := math.Inf(-1)
	for i := 0; i < k; i++ {
		v, err := vecs.At(i, best)
		if err != nil {
			return nil, fmt.Errorf("centrality: solver column read: %w", err)
		}
		col[i] = v
		if v > maxEntry {
			maxEntry = v
		}
	}

	// Sign convention: scale by sign(max entry). A zero maximum zeroes
	// the component (inherited behavior, intentionally preserved).
	sign := 0.0
	switch {
	case maxEntry > 0:
		sign = 1
	case maxEntry < 0:
		sign = -1
	}
	for i := range col {
		col[i] *= sign
	}

	return col, nil
}
