// Package centrality implements eigenvector centrality on weighted
// graphs: a per-vertex influence score proportional to the scores of
// the vertex's neighbors, i.e. the dominant eigenvector of the weighted
// adjacency matrix.
//
// This file holds the iterative kernel (power method). It needs no
// dense linear-algebra backend and scales to arbitrarily large graphs;
// the exact spectral kernel lives in spectral.go.
package centrality

import (
	"fmt"
	"math"

	"github.com/kastelov/eigenrank/core"
)

// Eigenvector computes eigenvector centrality for every vertex of g
// using the power method: repeated multiplication of the score vector
// by the weighted adjacency matrix, with L2 renormalization each round.
//
// Returns a map from vertex ID to score; on success the Euclidean norm
// of the returned vector is 1 (the edge-free graph is the one
// exception: it converges to the all-zero vector, see below).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must not permit parallel edges (ErrMultigraph), checked before
//     any numeric work.
//  3. A supplied initial vector must cover every vertex
//     (ErrInitialIncomplete).
//
// Options customization:
//
//   - WithMaxIterations(n): iteration budget, default 100.
//   - WithTolerance(tol):   stop once the L1 change of one round falls
//     below nodeCount*tol, default 1e-6.
//   - WithInitial(m):       starting scores; default uniform 1/n. The
//     start vector is rescaled to sum to 1 (L1), intentionally unlike
//     the per-round L2 renormalization.
//
// Behavior notes:
//
//   - An isolated vertex receives score exactly 0: nothing feeds it.
//   - A graph with no edges at all yields the zero vector on the first
//     multiplication; the zero-norm guard keeps the scale factor at 1,
//     the next round's change is 0, and the call converges returning
//     the trivial zero vector. That outcome is expected, not an error.
//   - On directed graphs the traversal follows outgoing edges, giving
//     "right" eigenvector centrality; pass a reversed graph to obtain
//     the "left" variant. No direction inference is performed.
//
// Errors: ErrNilGraph, ErrMultigraph, ErrInitialIncomplete, or a
// *ConvergenceError (matching ErrNotConverged) carrying the number of
// rounds attempted when the budget runs out.
//
// Complexity:
//
//   - Time:  O(I·(V + E)) for I iterations.
//   - Space: O(V + E) for the compiled adjacency and two score buffers.
func Eigenvector(g *core.Graph, opts ...Option) (map[string]float64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Reject multigraphs before any numeric work.
	if g.Multigraph() {
		return nil, ErrMultigraph
	}

	// 4) Fix the vertex ordering once; every buffer below is indexed by it.
	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return map[string]float64{}, nil
	}

	// 5) Compile the weighted adjacency into index-based slices so the
	//    hot loop runs over plain arrays instead of hashing vertex IDs.
	arcs, err := compileArcs(g, ids)
	if err != nil {
		return nil, err
	}

	// 6) Starting vector: uniform 1/n, or the caller's mapping.
	prev := make([]float64, n)
	cur := make([]float64, n)
	if cfg.Initial == nil {
		uniform := 1.0 / float64(n)
		for i := range prev {
			prev[i] = uniform
		}
	} else {
		for i, id := range ids {
			v, ok := cfg.Initial[id]
			if !ok {
				return nil, fmt.Errorf("%w: missing %q", ErrInitialIncomplete, id)
			}
			prev[i] = v
		}
	}

	// 7) Rescale the start vector to sum to 1 (L1). Deliberately not the
	//    L2 normalization used per round.
	sum := 0.0
	for _, v := range prev {
		sum += v
	}
	if sum != 0 {
		for i := range prev {
			prev[i] /= sum
		}
	}

	// 8) Iterate y = A·x with renormalization until the change is small.
	threshold := float64(n) * cfg.Tolerance
	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		// One matrix-vector product over the compiled adjacency.
		for i := range cur {
			acc := 0.0
			for _, a := range arcs[i] {
				acc += prev[a.to] * a.weight
			}
			cur[i] = acc
		}

		// L2 renormalization; an all-zero product keeps scale factor 1.
		norm := 0.0
		for _, v := range cur {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm != 0 {
			for i := range cur {
				cur[i] /= norm
			}
		}

		// Convergence test: L1 distance between successive vectors.
		change := 0.0
		for i := range cur {
			change += math.Abs(cur[i] - prev[i])
		}
		if change < threshold {
			result := make(map[string]float64, n)
			for i, id := range ids {
				result[id] = cur[i]
			}

			return result, nil
		}

		// Swap buffers; prev is never mutated while being read.
		prev, cur = cur, prev
	}

	return nil, &ConvergenceError{Iterations: cfg.MaxIterations}
}

// arc is one compiled adjacency entry: the neighbor's index and the
// edge weight feeding the owning vertex.
type arc struct {
	to     int
	weight float64
}

// compileArcs flattens g's outgoing adjacency into index-based arc
// lists aligned with ids. Weight lookup goes through core.EdgeWeight,
// so unweighted graphs contribute uniform unit weights.
// Complexity: O(V + E) plus the sorted-neighbor lookups.
func compileArcs(g *core.Graph, ids []string) ([][]arc, error) {
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	arcs := make([][]arc, len(ids))
	for i, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("centrality: neighbors of %q: %w", id, err)
		}
		for _, v := range nbrs {
			w, err := g.EdgeWeight(id, v)
			if err != nil {
				return nil, fmt.Errorf("centrality: weight of %q-%q: %w", id, v, err)
			}
			arcs[i] = append(arcs[i], arc{to: index[v], weight: w})
		}
	}

	return arcs, nil
}
