package matrix

// Matrix is a two-dimensional mutable container with structural-nonzero
// enumeration. Any sparse or dense implementation satisfying this contract
// is substitutable in the block conversions.
//
// All methods are expected O(1) except Nonzero (O(nnz) or O(r*c)) and
// Clone (O(storage)).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j).
	// Returns ErrOutOfRange for invalid indices.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j).
	// Returns ErrOutOfRange for invalid indices.
	Set(i, j int, v float64) error

	// Nonzero enumerates the structurally-nonzero cells in row-major order
	// (rows ascending, columns ascending within a row). Enumeration stops
	// early when visit returns false.
	Nonzero(visit func(row, col int) bool)

	// Clone returns a deep copy, independent of the original.
	Clone() Matrix
}

// Blocks is the four-quadrant block-matrix form of a two-group graph.
type Blocks struct {
	AB Matrix // A→B edges, numA × numB
	BA Matrix // B→A edges, numB × numA
	AA Matrix // A→A edges, numA × numA
	BB Matrix // B→B edges, numB × numB
}

// Selector enables or disables each quadrant independently when assembling
// a graph with FromBlocks. A disabled quadrant contributes no edges even
// when its matrix is non-empty.
type Selector struct {
	AB, BA, AA, BB bool
}

// AllQuadrants returns the default Selector with every quadrant enabled.
func AllQuadrants() Selector {
	return Selector{AB: true, BA: true, AA: true, BB: true}
}

// group tags which side of the A/B partition a vertex falls on.
// Classifying once per vertex avoids repeated threshold comparisons at the
// numA boundary.
type group uint8

const (
	groupA group = iota
	groupB
)

// groupOf classifies vertex v against the partition boundary numA.
func groupOf(v, numA int) group {
	if v < numA {
		return groupA
	}
	return groupB
}
