// Package core provides the fundamental graph primitives of eigenrank:
// Vertex, Edge, and the thread-safe Graph container.
//
// Overview:
//
//   - Graphs are built via NewGraph with functional options:
//     WithDirected, WithWeighted, WithMultiEdges, WithLoops.
//   - Edge weights are float64; unweighted graphs report a uniform
//     DefaultEdgeWeight (1.0) through the EdgeWeight accessor, so every
//     numeric consumer sees the same weight semantics.
//   - Vertices() and NeighborIDs() return sorted IDs — the canonical
//     deterministic ordering that index-based numeric kernels build on.
//   - ConnectedComponents() partitions all vertices (direction-blind
//     BFS), one component per contiguous region, singletons included.
//
// Thread safety:
//
//   - Two RWMutexes (vertices vs. edges/adjacency) keep concurrent
//     readers contention-free. Concurrent mutation during a running
//     algorithm is the caller's responsibility to exclude.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyVertexID:       empty vertex ID on AddVertex/AddEdge.
//   - ErrVertexNotFound:      query references a missing vertex.
//   - ErrEdgeNotFound:        EdgeWeight on a non-adjacent pair.
//   - ErrBadWeight:           NaN/Inf weight, or non-zero weight on an
//     unweighted graph.
//   - ErrLoopNotAllowed:      self-loop without WithLoops.
//   - ErrMultiEdgeNotAllowed: parallel edge without WithMultiEdges.
//
// See also:
//
//   - matrix.BuildAdjacency: dense adjacency in a caller-chosen order.
//   - centrality.Eigenvector / centrality.EigenvectorExact: the kernels
//     consuming this graph surface.
package core
