// Package reach answers reachability questions over directed connectivity
// graphs: whether, and through which vertices, a set of start neurons can
// reach a set of end neurons, optionally bounded by a maximum path depth.
//
// Three layers build on each other:
//
//   - FindPath: single-path depth-first search between two vertices with a
//     path-membership cycle guard. Deterministic for a fixed adjacency
//     order; the first path found wins, which is not necessarily shortest.
//   - DepthLimited / IterativeDeepening: a depth-bounded engine. DepthLimited
//     explores to exactly depth edges from the source; IterativeDeepening
//     retries with depth 0, 1, 2, ... and stops early once a level reports
//     full exhaustion (no subtree was truncated by the ceiling, so deeper
//     search cannot find anything new).
//   - IsReachable / FindConnected / FindConnectedLimited: set queries over
//     source and sink sets. The depth-limited variant searches backward on
//     the reverse graph, one iterative deepening per sink against the whole
//     source set as goals.
//
// Vertices outside the graph are never an error in a query position: an
// absent vertex cannot participate in any path, so it reads as "no path /
// not reachable".
//
// DepthLimited deliberately carries no within-pass visited guard (unlike
// FindPath): on cyclic graphs a vertex may be re-expanded at different
// remaining depths. Termination is still bounded by the depth ceiling, and
// which goal is "first found" under ties matches adjacency order at every
// level. Adding a guard would change that tie-breaking, so the engine keeps
// the unguarded behavior; see the package tests for the cyclic cases.
//
// All operations are pure over their inputs. Set queries accept
// WithParallelism(n) to fan the per-sink work out across goroutines, with
// the graph (and any precomputed reverse graph) treated as read-only.
//
// Options:
//
//   - WithContext(ctx)        cancellation threaded into the recursion points
//   - WithReverseGraph(rg)    precomputed reversal reused across queries
//   - WithParallelism(n)      per-sink fan-out, n >= 1 (default 1)
//
// Errors:
//
//   - ErrGraphNil          nil graph
//   - ErrOptionViolation   negative depth or parallelism < 1
//   - context.Canceled / context.DeadlineExceeded when cancelled
package reach
