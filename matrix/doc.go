// Package matrix bridges adjacency-list graphs and sparse block-matrix
// representations.
//
// A connectivity graph over two vertex groups A (size numA) and B (size
// numB) is equivalently four block matrices partitioning the edges by the
// group of each endpoint:
//
//	AA: A→A edges, numA × numA
//	AB: A→B edges, numA × numB
//	BA: B→A edges, numB × numA
//	BB: B→B edges, numB × numB
//
// FromBlocks assembles an adjacency list of numA+numB vertices (group A
// first) from the structurally-nonzero cells of any subset of quadrants;
// ToBlocks classifies every edge back into its quadrant with occupancy
// semantics (duplicate edges set the same cell once).
//
// Any container implementing the Matrix interface — shape query, nonzero
// enumeration, indexed assignment — is substitutable; Sparse (row-map
// layout) and Dense (row-major flat slice) are provided.
//
// Errors:
//
//   - ErrDimensionMismatch  quadrant shapes mutually inconsistent
//   - ErrOutOfRange         index outside a matrix's bounds
//   - ErrNilMatrix          nil Matrix passed where one is required
//   - ErrBadShape           non-positive dimensions requested
//   - ErrGraphNil           nil graph passed to ToBlocks
package matrix
