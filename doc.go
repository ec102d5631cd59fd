// Package eigenrank is an in-memory toolkit for eigenvector centrality
// on weighted graphs — influence scores derived from the dominant
// eigenvector of the adjacency matrix.
//
// 🚀 What is eigenrank?
//
//	A thread-safe, pure-Go library that brings together:
//		• Core primitives: create vertices & weighted edges, mutate safely under locks
//		• Connected components: BFS partition of any graph
//		• Dense matrices: row-major storage, mat-vec products, Jacobi eigen-decomposition
//		• Centrality kernels: power-iteration approximation & exact spectral computation
//
// ✨ Why choose eigenrank?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, sentinel errors, deterministic node ordering
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – inject your own eigen-solver for the spectral path
//
// Under the hood, everything is organized under three subpackages:
//
//	centrality/ — power-iteration & spectral eigenvector centrality
//	core/       — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	matrix/     — dense matrices, adjacency builders, Jacobi eigen-solver
//
// Quick ASCII example:
//
//	    0───1───2───3
//
//	a four-node path; its eigenvector centrality is ≈ [0.37, 0.60, 0.60, 0.37],
//	the middle nodes being the most influential.
//
// Dive into the per-package doc.go files for full contracts, complexity
// notes and error taxonomies.
//
//	go get github.com/kastelov/eigenrank
package eigenrank
