// Package strategy: the connection-strategy capability and sentinel errors.
package strategy

import (
	"errors"

	"github.com/seankmartin/SKMNeuralConnections/graph"
)

var (
	// ErrNilStrategy indicates the picker produced a nil ConnectionStrategy.
	ErrNilStrategy = errors.New("strategy: nil connection strategy")

	// ErrBadDegree indicates a FixedDegree strategy with a negative degree.
	ErrBadDegree = errors.New("strategy: out-degree must be >= 0")

	// ErrNoTargets indicates a strategy was asked to wire into an empty
	// target pool while a positive out-degree was requested.
	ErrNoTargets = errors.New("strategy: no target vertices to connect to")
)

// Edges is a flat directed edge list, each entry a (source, target) pair.
type Edges [][2]int

// ConnectionStrategy generates the edges wiring a source region into a
// target region. Implementations return the edge list plus the set of
// target vertices that received at least one connection. Strategies
// carrying a recursive configuration may additionally wire sources to one
// another within their own region.
type ConnectionStrategy interface {
	CreateConnections(targets, sources []int) (Edges, graph.VertexSet, error)
}
