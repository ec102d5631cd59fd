// Package matrix provides the dense numeric backend of eigenrank.
//
// Overview:
//
//   - Dense: row-major float64 matrix over a flat slice (cache-friendly,
//     bounds-safe At/Set returning sentinel errors instead of panicking).
//   - MatVec: y = A·x with a Dense fast path.
//   - Eigen: full eigen-decomposition of a symmetric matrix via
//     deterministic cyclic Jacobi sweeps — all eigenvalues plus an
//     orthogonal matrix whose columns are the unit eigenvectors.
//   - BuildAdjacency: core.Graph → Dense weighted adjacency in a
//     caller-specified vertex order (component submatrices included).
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNilMatrix —
//     structural misuse of the Dense surface.
//   - ErrAsymmetry — Eigen requires symmetry within the tolerance.
//   - ErrEigenFailed — Jacobi sweeps exhausted without convergence.
//   - ErrGraphNil, ErrUnknownVertex — adapter-level input problems.
//
// Determinism:
//
//   - All kernels use fixed loop orders; identical inputs give
//     bit-identical outputs, which the centrality tests rely on.
//
// Complexity:
//
//   - MatVec O(r·c); Eigen O(sweeps·n³), O(n²) memory.
package matrix
