// Package matrix: adapter from core.Graph to a Dense weighted adjacency
// matrix, built in a caller-specified vertex order so submatrices
// (e.g. one connected component) come out in a stable, known layout.
package matrix

import (
	"fmt"

	"github.com/kastelov/eigenrank/core"
)

// BuildAdjacency constructs the dense weighted adjacency matrix of g
// restricted to the given vertex order.
//
//   - g:     source graph (read-only for the duration of the call).
//   - order: vertex IDs defining both the submatrix and its row/column
//     layout; entry (i,j) is the weight of order[i]→order[j], or 0 when
//     no such edge exists. Edges leaving the ordered set are ignored.
//
// Unweighted graphs produce unit entries (core.DefaultEdgeWeight); for
// undirected graphs the result is symmetric by construction.
//
// Errors:
//   - ErrGraphNil when g is nil.
//   - ErrBadShape when order is empty.
//   - ErrUnknownVertex when order references a vertex absent from g.
//
// Complexity: O(V' + E') for V' ordered vertices and their E' incident edges.
func BuildAdjacency(g *core.Graph, order []string) (*Dense, error) {
	// Stage 1: validate inputs.
	if g == nil {
		return nil, matrixErrorf("BuildAdjacency", ErrGraphNil)
	}
	if len(order) == 0 {
		return nil, matrixErrorf("BuildAdjacency", ErrBadShape)
	}

	// Stage 2: index table and zeroed result.
	n := len(order)
	idx := make(map[string]int, n)
	for i, id := range order {
		if !g.HasVertex(id) {
			return nil, matrixErrorf("BuildAdjacency", fmt.Errorf("%q: %w", id, ErrUnknownVertex))
		}
		idx[id] = i
	}
	mat, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("BuildAdjacency", err)
	}

	// Stage 3: populate weights following each ordered vertex's
	// adjacency; undirected edges surface from both endpoints, which
	// yields a symmetric matrix without extra bookkeeping.
	for i, u := range order {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, matrixErrorf("BuildAdjacency", err)
		}
		for _, v := range nbrs {
			j, ok := idx[v]
			if !ok {
				continue // neighbor outside the requested ordering
			}
			w, err := g.EdgeWeight(u, v)
			if err != nil {
				return nil, matrixErrorf("BuildAdjacency", err)
			}
			mat.data[i*n+j] = w
		}
	}

	return mat, nil
}
