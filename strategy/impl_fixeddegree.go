package strategy

import (
	"math/rand"

	"github.com/seankmartin/SKMNeuralConnections/graph"
)

// FixedDegree gives every source neuron a fixed number of out-connections
// drawn uniformly, without replacement, from the target pool. With
// Recursive set the pool also includes the other neurons of the source
// region, modelling self-connections within the last region.
//
// Sampling is seeded, so the same seed, regions, and degree always produce
// the same wiring.
type FixedDegree struct {
	// Degree is the number of out-edges per source neuron. When the pool
	// is smaller than Degree, every pool vertex is used once.
	Degree int

	// Recursive adds the source region itself (minus the source neuron)
	// to the target pool.
	Recursive bool

	// Seed fixes the sampling sequence.
	Seed int64
}

// NewFixedDegree returns a FixedDegree strategy.
// Returns ErrBadDegree when degree is negative.
func NewFixedDegree(degree int, recursive bool, seed int64) (*FixedDegree, error) {
	if degree < 0 {
		return nil, ErrBadDegree
	}
	return &FixedDegree{Degree: degree, Recursive: recursive, Seed: seed}, nil
}

// CreateConnections samples each source's targets independently.
// Complexity: O(len(sources) * (pool + Degree)).
func (s *FixedDegree) CreateConnections(targets, sources []int) (Edges, graph.VertexSet, error) {
	if s.Degree < 0 {
		return nil, nil, ErrBadDegree
	}
	if s.Degree > 0 && len(targets) == 0 && !s.Recursive {
		return nil, nil, ErrNoTargets
	}

	rng := rand.New(rand.NewSource(s.Seed))
	edges := make(Edges, 0, len(sources)*s.Degree)
	connected := graph.NewVertexSet()

	for _, src := range sources {
		pool := make([]int, 0, len(targets)+len(sources))
		pool = append(pool, targets...)
		if s.Recursive {
			for _, other := range sources {
				if other != src {
					pool = append(pool, other)
				}
			}
		}
		if len(pool) == 0 {
			continue
		}

		// Partial Fisher–Yates: the first k positions become the sample.
		k := s.Degree
		if k > len(pool) {
			k = len(pool)
		}
		for i := 0; i < k; i++ {
			j := i + rng.Intn(len(pool)-i)
			pool[i], pool[j] = pool[j], pool[i]
			edges = append(edges, [2]int{src, pool[i]})
			connected.Add(pool[i])
		}
	}

	return edges, connected, nil
}
