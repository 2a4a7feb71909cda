package graph

// Graph is a directed adjacency-list graph over vertices 0..N-1.
// The zero value is an empty graph; use New or FromAdjacency to size it.
type Graph struct {
	adj [][]int // adj[v] lists the targets of v's out-edges, in insertion order
}

// New returns a Graph with n vertices and no edges.
// Returns ErrBadVertexCount when n < 0.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadVertexCount
	}
	return &Graph{adj: make([][]int, n)}, nil
}

// FromAdjacency builds a Graph from a raw adjacency list, deep-copying it.
// Every target must be a valid vertex index; an out-of-range target is a
// malformed graph and returns ErrVertexOutOfRange rather than being dropped.
// Complexity: O(V + E).
func FromAdjacency(adj [][]int) (*Graph, error) {
	n := len(adj)
	g := &Graph{adj: make([][]int, n)}
	for v, targets := range adj {
		for _, t := range targets {
			if t < 0 || t >= n {
				return nil, ErrVertexOutOfRange
			}
		}
		g.adj[v] = append([]int(nil), targets...)
	}
	return g, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// EdgeCount returns the number of directed edges, counting duplicates.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	var n int
	for _, targets := range g.adj {
		n += len(targets)
	}
	return n
}

// Has reports whether v is a vertex of the graph.
func (g *Graph) Has(v int) bool { return v >= 0 && v < len(g.adj) }

// AddEdge appends the directed edge u→v. Self-loops and duplicates are
// permitted and preserved. Returns ErrVertexOutOfRange when either
// endpoint is not a vertex of the graph.
func (g *Graph) AddEdge(u, v int) error {
	if !g.Has(u) || !g.Has(v) {
		return ErrVertexOutOfRange
	}
	g.adj[u] = append(g.adj[u], v)
	return nil
}

// Out returns the out-edge targets of v in insertion order.
// The returned slice is the graph's own storage: callers must treat it as
// read-only. Out-of-range v yields nil.
func (g *Graph) Out(v int) []int {
	if !g.Has(v) {
		return nil
	}
	return g.adj[v]
}

// Adjacency returns a deep copy of the adjacency list, for export to
// matrix- or plot-oriented consumers.
// Complexity: O(V + E).
func (g *Graph) Adjacency() [][]int {
	out := make([][]int, len(g.adj))
	for v, targets := range g.adj {
		out[v] = make([]int, len(targets))
		copy(out[v], targets)
	}
	return out
}

// Clone returns an independent deep copy of the graph.
func (g *Graph) Clone() *Graph {
	return &Graph{adj: g.Adjacency()}
}

// Reverse returns a new graph of the same order in which every edge u→v
// becomes v→u. The receiver is not mutated. Within each vertex's adjacency
// the reversed edges appear in source-scan order, so edge-list order is not
// guaranteed to round-trip through a double reversal.
// Complexity: O(V + E).
func (g *Graph) Reverse() *Graph {
	rev := &Graph{adj: make([][]int, len(g.adj))}
	for u, targets := range g.adj {
		for _, v := range targets {
			rev.adj[v] = append(rev.adj[v], u)
		}
	}
	return rev
}
