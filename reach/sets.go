package reach

import (
	"context"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/sourcegraph/conc/pool"

	"github.com/seankmartin/SKMNeuralConnections/graph"
)

// IsReachable reports whether any vertex in sources has an unbounded-depth
// path to target, trying sources in order and short-circuiting on the
// first success. Out-of-range vertices read as unreachable.
func IsReachable(g *graph.Graph, target int, sources []int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	for _, src := range sources {
		path, err := FindPath(g, src, target)
		if err != nil {
			return false, err
		}
		if path != nil {
			return true, nil
		}
	}
	return false, nil
}

// FindConnected returns the sinks reachable from any vertex in sources,
// with no depth bound, in ascending order. Each sink is an independent
// query; WithParallelism fans them out across goroutines.
func FindConnected(g *graph.Graph, sources, sinks []int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return collectSinks(o, sinks, func(_ context.Context, sink int) (bool, error) {
		return IsReachable(g, sink, sources)
	})
}

// FindConnectedLimited returns the sinks reachable from any vertex in
// sources within maxDepth forward edges, in ascending order. The query is
// phrased backward: one iterative deepening per sink on the reverse graph,
// with the whole source set as goals — cheaper than a forward search from
// every source. The reversal is computed per call unless WithReverseGraph
// supplies one.
//
// Returns ErrGraphNil for a nil graph and ErrOptionViolation for a
// negative maxDepth.
func FindConnectedLimited(g *graph.Graph, sources, sinks []int, maxDepth int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxDepth < 0 {
		return nil, ErrOptionViolation
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	rev := o.Reverse
	if rev == nil {
		rev = g.Reverse()
	}
	goals := graph.NewVertexSet(sources...)

	return collectSinks(o, sinks, func(ctx context.Context, sink int) (bool, error) {
		_, ok, err := IterativeDeepening(rev, sink, goals, maxDepth, WithContext(ctx))
		return ok, err
	})
}

// collectSinks evaluates keep for every sink — serially, or fanned out on a
// context pool when Parallelism > 1 — and returns the kept sinks in
// ascending order. The tree set gives sorted output whatever order the
// goroutines finish in.
func collectSinks(o Options, sinks []int, keep func(ctx context.Context, sink int) (bool, error)) ([]int, error) {
	set := treeset.NewWithIntComparator()

	if o.Parallelism <= 1 {
		for _, sink := range sinks {
			ok, err := keep(o.Ctx, sink)
			if err != nil {
				return nil, err
			}
			if ok {
				set.Add(sink)
			}
		}
	} else {
		var mu sync.Mutex
		p := pool.New().
			WithContext(o.Ctx).
			WithCancelOnError().
			WithFirstError().
			WithMaxGoroutines(o.Parallelism)
		for _, sink := range sinks {
			p.Go(func(ctx context.Context) error {
				ok, err := keep(ctx, sink)
				if err != nil {
					return err
				}
				if ok {
					mu.Lock()
					set.Add(sink)
					mu.Unlock()
				}
				return nil
			})
		}
		if err := p.Wait(); err != nil {
			return nil, err
		}
	}

	out := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(int))
	}
	return out, nil
}
