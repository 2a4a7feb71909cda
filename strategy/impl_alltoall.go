package strategy

import "github.com/seankmartin/SKMNeuralConnections/graph"

// AllToAll wires every source neuron to every target neuron. With
// Recursive set it additionally wires every source to every other source
// within its own region (no self-loops). Dense and deterministic, useful
// mostly for fixtures and small exact experiments.
type AllToAll struct {
	// Recursive enables source-to-source connections within the region.
	Recursive bool
}

// NewAllToAll returns an AllToAll strategy.
func NewAllToAll(recursive bool) *AllToAll {
	return &AllToAll{Recursive: recursive}
}

// CreateConnections emits the full bipartite edge set sources × targets,
// in source-major order.
// Complexity: O(len(sources) * len(targets)).
func (s *AllToAll) CreateConnections(targets, sources []int) (Edges, graph.VertexSet, error) {
	edges := make(Edges, 0, len(sources)*len(targets))
	connected := graph.NewVertexSet()

	for _, src := range sources {
		for _, tgt := range targets {
			edges = append(edges, [2]int{src, tgt})
			connected.Add(tgt)
		}
		if s.Recursive {
			for _, other := range sources {
				if other != src {
					edges = append(edges, [2]int{src, other})
				}
			}
		}
	}

	return edges, connected, nil
}
