// Package matrix: sentinel error set.
// All conversions and implementations return these sentinels and tests
// check them via errors.Is. Context, when essential, is added with
// fmt.Errorf("...: %w", ErrX) at the boundary.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r < 0 or c < 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between the block
	// quadrants, or between a graph's order and numA+numB.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates a nil Matrix was passed where one is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrGraphNil indicates a nil *graph.Graph was passed into a converter.
	ErrGraphNil = errors.New("matrix: graph is nil")
)
