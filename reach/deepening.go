package reach

import (
	"context"

	"github.com/seankmartin/SKMNeuralConnections/graph"
)

// searcher is the stateless depth-bounded engine: one per query, holding
// the read-only graph and goal set plus the cancellation context. The
// search frontier itself lives on the call stack as (vertex, remaining
// depth) pairs.
type searcher struct {
	graph *graph.Graph
	goals graph.VertexSet
	ctx   context.Context
}

// DepthLimited explores forward from source to exactly depth edges away.
// At depth 0 it succeeds iff source itself is a goal; at depth > 0 it
// recurses into each child with depth-1, children in adjacency order,
// first goal found wins.
//
// found/ok report the first goal vertex discovered, if any. exhausted
// reports that the subtree was fully explored without any branch being cut
// off by the depth ceiling; when true, deepening further cannot discover
// anything new from source. A depth-0 cutoff always reports
// exhausted=false, whether or not the vertex has children.
//
// There is no within-pass visited guard: on cyclic graphs vertices may be
// re-expanded at different remaining depths (see the package comment).
// An out-of-range source reaches nothing and is exhausted immediately.
//
// Returns ErrGraphNil for a nil graph and ErrOptionViolation for a
// negative depth.
// Complexity: O(b^depth) worst case for branching factor b.
func DepthLimited(g *graph.Graph, source int, goals graph.VertexSet, depth int, opts ...Option) (found int, ok bool, exhausted bool, err error) {
	if g == nil {
		return 0, false, false, ErrGraphNil
	}
	if depth < 0 {
		return 0, false, false, ErrOptionViolation
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, false, false, err
	}
	if !g.Has(source) {
		return 0, false, true, nil
	}

	s := &searcher{graph: g, goals: goals, ctx: o.Ctx}
	return s.dls(source, depth)
}

// dls is one depth-limited descent from v with the given remaining depth.
func (s *searcher) dls(v, depth int) (int, bool, bool, error) {
	// Cancellation check at every recursion point.
	select {
	case <-s.ctx.Done():
		return 0, false, false, s.ctx.Err()
	default:
	}

	if depth == 0 {
		// Cut off here: deeper levels may still hold goals.
		return v, s.goals.Has(v), false, nil
	}

	exhausted := true
	for _, child := range s.graph.Out(v) {
		found, ok, ex, err := s.dls(child, depth-1)
		if err != nil {
			return 0, false, false, err
		}
		if ok {
			return found, true, true, nil
		}
		if !ex {
			exhausted = false
		}
	}
	return 0, false, exhausted, nil
}

// IterativeDeepening runs DepthLimited with depth 0, 1, 2, ..., maxDepth,
// returning the first goal located. It stops early with "not found" as
// soon as a depth level reports full exhaustion, since the whole graph
// reachable from source has then been enumerated. This bounds worst-case
// work on graphs with unreachable large components while still finding
// shallow goals quickly.
//
// Returns ErrGraphNil for a nil graph and ErrOptionViolation for a
// negative maxDepth.
func IterativeDeepening(g *graph.Graph, source int, goals graph.VertexSet, maxDepth int, opts ...Option) (int, bool, error) {
	if g == nil {
		return 0, false, ErrGraphNil
	}
	if maxDepth < 0 {
		return 0, false, ErrOptionViolation
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, false, err
	}
	if !g.Has(source) {
		return 0, false, nil
	}

	s := &searcher{graph: g, goals: goals, ctx: o.Ctx}
	for depth := 0; depth <= maxDepth; depth++ {
		found, ok, exhausted, err := s.dls(source, depth)
		if err != nil {
			return 0, false, err
		}
		if ok {
			return found, true, nil
		}
		if exhausted {
			return 0, false, nil
		}
	}
	return 0, false, nil
}
