// Package graph defines the adjacency-list Graph over integer vertices,
// its reversal, region partitions, and vertex sets.
//
// A Graph owns vertices 0..N-1; each vertex owns an ordered slice of
// target vertices (its out-edges). Edge direction matters, cycles are
// allowed, and self-loops and duplicate edges are permitted and preserved.
//
// Key guarantees:
//   - AddEdge validates both endpoints, so every target index stored in a
//     Graph built through the API is a valid vertex index.
//   - Reverse is pure: it never mutates its receiver, and reversing twice
//     yields the same multiset of out-edges per vertex (order within a
//     vertex's adjacency is not guaranteed to round-trip).
//
// Regions describe contiguous blocks of vertex indices (one block per
// neural region); they carry only the size list and derive offsets and
// vertex ranges on demand.
//
// Complexity:
//   - AddEdge, Out, Has: O(1) (amortized for AddEdge).
//   - Reverse, Clone:    O(V + E).
package graph
