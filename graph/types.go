// Package graph: sentinel errors and the vertex-set helper type.
// All algorithms return these sentinels and tests check them via errors.Is.
package graph

import (
	"errors"
	"sort"
)

var (
	// ErrBadVertexCount indicates a negative vertex count was requested.
	ErrBadVertexCount = errors.New("graph: vertex count must be >= 0")

	// ErrVertexOutOfRange indicates an edge endpoint outside 0..Order()-1.
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrBadRegionSize indicates a region partition with a negative size.
	ErrBadRegionSize = errors.New("graph: region size must be >= 0")

	// ErrRegionIndex indicates a region index outside the partition.
	ErrRegionIndex = errors.New("graph: region index out of range")
)

// VertexSet is an unordered set of vertex indices.
// Used for goal sets, source/sink sets, and connected-set results.
type VertexSet map[int]struct{}

// NewVertexSet returns a VertexSet containing the given vertices.
func NewVertexSet(vs ...int) VertexSet {
	s := make(VertexSet, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v into the set.
func (s VertexSet) Add(v int) { s[v] = struct{}{} }

// Has reports whether v is a member of the set.
func (s VertexSet) Has(v int) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s VertexSet) Len() int { return len(s) }

// Sorted returns the members in ascending order.
// Complexity: O(n log n).
func (s VertexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
