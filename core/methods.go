// Package core: vertex, edge and adjacency operations on Graph.
//
// All mutators validate before touching storage and fail fast with the
// sentinel errors declared in types.go. All accessors that enumerate
// IDs return them in sorted order so downstream numeric code sees a
// deterministic vertex ordering.
package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// AddVertex inserts a vertex with the given ID. Adding an existing
// vertex is a no-op.
//
// Errors: ErrEmptyVertexID.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	// Validate the ID before locking.
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id}
	}

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in sorted order.
// The sorted order is the canonical node ordering used by every
// numeric consumer in this module.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// AddEdge inserts an edge From→To with the given weight and returns the
// generated edge ID. Missing endpoints are added automatically.
//
// Validation order:
//  1. Endpoint IDs must be non-empty (ErrEmptyVertexID).
//  2. Weight must be finite (ErrBadWeight).
//  3. Non-zero weight on an unweighted graph fails (ErrBadWeight).
//  4. Self-loop without WithLoops fails (ErrLoopNotAllowed).
//  5. Parallel edge without WithMultiEdges fails (ErrMultiEdgeNotAllowed).
//
// Complexity: O(1) amortized
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Validate endpoints.
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Reject NaN and ±Inf: downstream numeric kernels assume finite weights.
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	// 3) Unweighted graphs carry implicit unit weights only.
	if !g.weighted && weight != 0 {
		return "", fmt.Errorf("%w: graph is unweighted", ErrBadWeight)
	}
	// 4) Self-loops only when enabled.
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// Ensure both endpoints exist.
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 5) Parallel edges only when enabled.
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// Create the edge with a fresh unique ID.
	eid := "e" + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}

	// Record adjacency; undirected edges are visible from both endpoints.
	g.linkLocked(from, to, eid)
	if !g.directed && from != to {
		g.linkLocked(to, from, eid)
	}

	return eid, nil
}

// linkLocked records eid under adjacency[from][to].
// Caller must hold muEdgeAdj.
func (g *Graph) linkLocked(from, to, eid string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}
}

// HasEdge reports whether at least one edge runs from→to
// (either orientation for undirected graphs).
// Complexity: O(1)
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns all edges sorted by edge ID.
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of stored edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// NeighborIDs returns the sorted IDs of vertices adjacent to id.
// For directed graphs only outgoing edges are followed; undirected
// edges are visible from both endpoints.
//
// Errors: ErrVertexNotFound.
// Complexity: O(deg log deg)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("core: NeighborIDs(%q): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	nbrs := make([]string, 0, len(g.adjacency[id]))
	for to, eids := range g.adjacency[id] {
		if len(eids) > 0 {
			nbrs = append(nbrs, to)
		}
	}
	g.muEdgeAdj.RUnlock()

	sort.Strings(nbrs)

	return nbrs, nil
}

// EdgeWeight returns the weight of the edge from→to.
// Unweighted graphs report DefaultEdgeWeight (1.0) uniformly; this is
// the single weight accessor all numeric consumers share.
// If multiple parallel edges exist, the one with the smallest edge ID
// is reported (deterministic).
//
// Errors: ErrEdgeNotFound.
// Complexity: O(m) for m parallel edges between the pair (m == 1 for simple graphs)
func (g *Graph) EdgeWeight(from, to string) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eids := g.adjacency[from][to]
	if len(eids) == 0 {
		return 0, fmt.Errorf("core: EdgeWeight(%q,%q): %w", from, to, ErrEdgeNotFound)
	}

	// Pick the smallest edge ID for a stable answer under multi-edges.
	best := ""
	for eid := range eids {
		if best == "" || eid < best {
			best = eid
		}
	}

	if !g.weighted {
		return DefaultEdgeWeight, nil
	}

	return g.edges[best].Weight, nil
}
