// Package neuroconnect analyzes directed graphs of inter-region neural
// connectivity: which "end" neurons can be reached from a set of "start"
// neurons, and through which vertices.
//
// A graph is an adjacency list over integer vertices 0..N-1. The same
// structure can be exchanged with matrix-based tooling as four sparse
// block matrices (AA, AB, BA, BB) partitioning edges by the region group
// of their endpoints.
//
// Everything is organized in small, focused subpackages:
//
//	graph/    — adjacency-list Graph, edge reversal, region partitions, vertex sets
//	matrix/   — Matrix interface, Sparse & Dense implementations, block-quadruple converters
//	reach/    — path finding, depth-limited & iterative-deepening search, set reachability
//	strategy/ — connection-strategy capability and region-wise graph assembly
//	logging/  — zap-backed logger for the CLI
//	cmd/      — the neuroconnect command-line tool
//
// The library itself performs no I/O and no rendering; plotting and layout
// collaborators consume the exported graph, matrices, and reachable sets.
package neuroconnect
