package matrix

import (
	"fmt"

	"github.com/seankmartin/SKMNeuralConnections/graph"
)

// FromBlocks assembles an adjacency-list graph of numA+numB vertices from
// the block quadruple b. Vertices 0..numA-1 are group A, numA.. are group B;
// numA and numB are taken from AB's shape, so b.AB must always be present.
// Each quadrant enabled in sel contributes one directed edge per
// structurally-nonzero cell, in AB, BA, AA, BB order; disabled quadrants
// contribute nothing and their shapes are not inspected.
//
// Returns ErrNilMatrix for a missing enabled quadrant and
// ErrDimensionMismatch when an enabled quadrant's shape is inconsistent
// with (numA, numB).
// Complexity: O(V + nnz) over the enabled quadrants.
func FromBlocks(b Blocks, sel Selector) (*graph.Graph, error) {
	if b.AB == nil {
		return nil, fmt.Errorf("FromBlocks: AB: %w", ErrNilMatrix)
	}
	numA, numB := b.AB.Rows(), b.AB.Cols()

	g, err := graph.New(numA + numB)
	if err != nil {
		return nil, err
	}

	if sel.AB {
		if err = addQuadrant(g, b.AB, 0, numA); err != nil {
			return nil, fmt.Errorf("FromBlocks: AB: %w", err)
		}
	}
	if sel.BA {
		if err = checkShape(b.BA, numB, numA); err != nil {
			return nil, fmt.Errorf("FromBlocks: BA: %w", err)
		}
		if err = addQuadrant(g, b.BA, numA, 0); err != nil {
			return nil, fmt.Errorf("FromBlocks: BA: %w", err)
		}
	}
	if sel.AA {
		if err = checkShape(b.AA, numA, numA); err != nil {
			return nil, fmt.Errorf("FromBlocks: AA: %w", err)
		}
		if err = addQuadrant(g, b.AA, 0, 0); err != nil {
			return nil, fmt.Errorf("FromBlocks: AA: %w", err)
		}
	}
	if sel.BB {
		if err = checkShape(b.BB, numB, numB); err != nil {
			return nil, fmt.Errorf("FromBlocks: BB: %w", err)
		}
		if err = addQuadrant(g, b.BB, numA, numA); err != nil {
			return nil, fmt.Errorf("FromBlocks: BB: %w", err)
		}
	}

	return g, nil
}

// checkShape validates that m is non-nil with exactly rows×cols shape.
func checkShape(m Matrix, rows, cols int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Rows() != rows || m.Cols() != cols {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrDimensionMismatch, m.Rows(), m.Cols(), rows, cols)
	}
	return nil
}

// addQuadrant turns every nonzero cell (r, c) of m into the edge
// (rowOff+r) → (colOff+c).
func addQuadrant(g *graph.Graph, m Matrix, rowOff, colOff int) error {
	var err error
	m.Nonzero(func(r, c int) bool {
		err = g.AddEdge(rowOff+r, colOff+c)
		return err == nil
	})
	return err
}

// ToBlocks splits g into the four block quadrants for a partition of numA
// group-A vertices followed by numB group-B vertices. Cells are occupancy
// valued: any number of duplicate edges between the same pair sets the
// same cell to 1. The quadrants are returned as Sparse matrices.
//
// Returns ErrGraphNil for a nil graph, ErrBadShape for negative group
// sizes, and ErrDimensionMismatch unless g.Order() == numA+numB.
// Complexity: O(V + E).
func ToBlocks(g *graph.Graph, numA, numB int) (Blocks, error) {
	if g == nil {
		return Blocks{}, ErrGraphNil
	}
	if numA < 0 || numB < 0 {
		return Blocks{}, ErrBadShape
	}
	if g.Order() != numA+numB {
		return Blocks{}, fmt.Errorf("%w: graph order %d, partition %d+%d", ErrDimensionMismatch, g.Order(), numA, numB)
	}

	ab, _ := NewSparse(numA, numB)
	ba, _ := NewSparse(numB, numA)
	aa, _ := NewSparse(numA, numA)
	bb, _ := NewSparse(numB, numB)

	var err error
	for i, n := 0, g.Order(); i < n; i++ {
		gi := groupOf(i, numA)
		for _, j := range g.Out(i) {
			switch gj := groupOf(j, numA); {
			case gi == groupA && gj == groupA:
				err = aa.Set(i, j, 1)
			case gi == groupA && gj == groupB:
				err = ab.Set(i, j-numA, 1)
			case gi == groupB && gj == groupA:
				err = ba.Set(i-numA, j, 1)
			default:
				err = bb.Set(i-numA, j-numA, 1)
			}
			if err != nil {
				return Blocks{}, fmt.Errorf("ToBlocks: edge %d→%d: %w", i, j, err)
			}
		}
	}

	return Blocks{AB: ab, BA: ba, AA: aa, BB: bb}, nil
}
