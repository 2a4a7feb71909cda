package reach

import "github.com/seankmartin/SKMNeuralConnections/graph"

// pathWalker carries the state of one FindPath traversal: the path built so
// far and a membership index for the cycle guard. A fresh walker is built
// per call; nothing is shared between queries.
type pathWalker struct {
	graph  *graph.Graph
	end    int
	path   []int
	onPath []bool // onPath[v] reports v is on the current path
}

// FindPath returns a path from start to end, as the ordered vertex sequence
// including both endpoints, or nil when none exists. Neighbors are tried in
// adjacency order and a vertex already on the current path is never
// revisited, so the search terminates on cyclic graphs and is deterministic
// for a fixed adjacency order. The path found first wins; it is not
// necessarily shortest.
//
// A vertex always reaches itself: FindPath(g, v, v) is [v]. An out-of-range
// start or end reads as "no path" (nil, no error). Only a nil graph is an
// error.
// Complexity: O(V + E) worst case; recursion depth bounded by V.
func FindPath(g *graph.Graph, start, end int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// A zero-edge path: the equality case precedes range checking, so a
	// vertex reaches itself on every graph.
	if start == end {
		return []int{start}, nil
	}
	if !g.Has(start) || !g.Has(end) {
		return nil, nil
	}

	w := &pathWalker{
		graph:  g,
		end:    end,
		path:   make([]int, 0, g.Order()),
		onPath: make([]bool, g.Order()),
	}
	if !w.visit(start) {
		return nil, nil
	}
	return w.path, nil
}

// visit extends the path with v, reporting whether end was reached in the
// subtree below it. On failure the extension is undone before returning.
func (w *pathWalker) visit(v int) bool {
	w.path = append(w.path, v)
	w.onPath[v] = true

	if v == w.end {
		return true
	}
	for _, t := range w.graph.Out(v) {
		if w.onPath[t] {
			continue // already on the current path: cycle guard
		}
		if w.visit(t) {
			return true
		}
	}

	// Backtrack.
	w.path = w.path[:len(w.path)-1]
	w.onPath[v] = false
	return false
}
