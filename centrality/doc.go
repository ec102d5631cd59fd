// Package centrality provides eigenvector centrality for weighted,
// simple graphs: an influence score per vertex, proportional to the
// scores of its neighbors — the dominant eigenvector of the weighted
// adjacency matrix.
//
// Overview:
//
//   - Eigenvector computes an approximation by the power method:
//     repeated y = A·x products with L2 renormalization, stopping once
//     one round changes the vector by less than nodeCount·tolerance
//     (L1). No dense backend needed; suitable for large graphs.
//   - EigenvectorExact computes the answer algebraically: a full
//     eigen-decomposition per connected component, sign-fixed dominant
//     eigenvectors assembled into one vector and renormalized globally.
//
// The two kernels are independent strategies over the same input and
// produce the same shape of result (vertex ID → score). On a connected
// graph they agree up to floating tolerance; with several components
// only EigenvectorExact is meaningful per component, and relative
// magnitudes between components carry no meaning (single global
// renormalization after per-component solver scaling).
//
// Conventions and edge cases:
//
//   - Returned vectors have Euclidean norm 1 — except the edge-free
//     graph, where power iteration converges to the all-zero vector
//     (documented, not an error), and the degenerate sign-collapse in
//     the exact kernel (see EigenvectorExact).
//   - Isolated vertices always score exactly 0 in both kernels.
//   - Directed graphs: outgoing-edge traversal gives "right"
//     eigenvector centrality; reverse the graph for the "left" variant.
//   - Multigraphs are rejected outright (ErrMultigraph), before any
//     numeric work.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:          nil graph pointer.
//   - ErrMultigraph:        graph permits parallel edges.
//   - ErrNotConverged:      iteration budget exhausted; the returned
//     *ConvergenceError carries the attempted iteration count. Retry
//     with a larger budget, looser tolerance, or a better start vector;
//     the kernel never retries internally.
//   - ErrNoSolver:          exact kernel invoked with a nil backend;
//     the power path is unaffected.
//   - ErrInitialIncomplete: supplied start vector misses a vertex.
//
// API reference:
//
//	func Eigenvector(g *core.Graph, opts ...Option) (map[string]float64, error)
//	func EigenvectorExact(g *core.Graph, opts ...Option) (map[string]float64, error)
//
//	Options:
//	  • WithMaxIterations(int):       power-iteration budget (default 100).
//	  • WithTolerance(float64):       per-node tolerance (default 1e-6).
//	  • WithInitial(map[string]float64): starting scores (default uniform 1/n).
//	  • WithEigenSolver(EigenSolver): decomposition backend (default Jacobi).
//
// Complexity:
//
//   - Power method: O(I·(V + E)) time, O(V + E) space.
//   - Exact: O(k³) per component of size k, O(k²) space.
//
// Thread safety:
//
//   - Both kernels are sequential and allocate all state per call;
//     independent calls may run concurrently as long as no caller
//     mutates the graph mid-computation.
//
// See also:
//
//   - core.Graph: graph construction and the EdgeWeight accessor both
//     kernels consume (unweighted edges count as 1.0).
//   - matrix.Eigen: the stock Jacobi decomposition backend.
package centrality
