package strategy

import (
	"fmt"

	"github.com/seankmartin/SKMNeuralConnections/graph"
)

// Picker selects the ConnectionStrategy for one region of the partition.
// recursive is true only for the last region, which wires back into region
// 0 and may connect neurons within itself.
type Picker func(region int, recursive bool) (ConnectionStrategy, error)

// Assemble builds a connectivity graph over the full region partition.
// Region i (0 <= i < len(sizes)-1) is wired forward into region i+1; the
// last region is wired recursively back into region 0. The returned vertex
// set is the connected set reported by the final forward connection, i.e.
// the entry neurons of the last region.
//
// Every edge a strategy emits is validated against the partition's vertex
// range; a stray edge is surfaced as graph.ErrVertexOutOfRange rather than
// dropped.
// Complexity: O(V + E) plus the cost of the strategies themselves.
func Assemble(sizes graph.Regions, pick Picker) (*graph.Graph, graph.VertexSet, error) {
	if err := sizes.Validate(); err != nil {
		return nil, nil, err
	}

	g, err := graph.New(sizes.Total())
	if err != nil {
		return nil, nil, err
	}

	// Precompute each region's vertex list once.
	verts := make([][]int, len(sizes))
	for i := range sizes {
		if verts[i], err = sizes.Verts(i); err != nil {
			return nil, nil, err
		}
	}

	var connected graph.VertexSet
	for i := range sizes {
		last := i == len(sizes)-1

		strat, err := pick(i, last)
		if err != nil {
			return nil, nil, fmt.Errorf("Assemble: region %d: %w", i, err)
		}
		if strat == nil {
			return nil, nil, fmt.Errorf("Assemble: region %d: %w", i, ErrNilStrategy)
		}

		var targets []int
		if last {
			targets = verts[0] // recursive wrap back to the first region
		} else {
			targets = verts[i+1]
		}

		edges, conn, err := strat.CreateConnections(targets, verts[i])
		if err != nil {
			return nil, nil, fmt.Errorf("Assemble: region %d: %w", i, err)
		}
		for _, e := range edges {
			if err = g.AddEdge(e[0], e[1]); err != nil {
				return nil, nil, fmt.Errorf("Assemble: region %d: edge %d→%d: %w", i, e[0], e[1], err)
			}
		}
		if !last {
			connected = conn
		}
	}

	return g, connected, nil
}
