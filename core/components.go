package core

import "sort"

// ConnectedComponents partitions all vertices into connected components,
// ignoring edge direction. Each component is a sorted slice of vertex
// IDs; components are ordered by their smallest member. Every vertex
// appears in exactly one component; isolated vertices form singleton
// components.
//
// Time:   O(V + E) plus sorting.
// Memory: O(V + E) for the undirected view, visited flags and output.
func (g *Graph) ConnectedComponents() [][]string {
	vertices := g.Vertices()

	// Build an undirected neighbor view once, so directed edges are
	// walkable in both directions during component discovery.
	und := make(map[string][]string, len(vertices))
	for _, e := range g.Edges() {
		und[e.From] = append(und[e.From], e.To)
		if e.From != e.To {
			und[e.To] = append(und[e.To], e.From)
		}
	}

	seen := make(map[string]bool, len(vertices))
	var comps [][]string

	for _, start := range vertices {
		if seen[start] {
			continue
		}
		// BFS to collect the component containing start.
		queue := []string{start}
		seen[start] = true
		var comp []string

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range und[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}

		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps
}
