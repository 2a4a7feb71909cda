package matrix

import "sort"

// Sparse is a row-map sparse matrix of float64 values. Each row stores its
// nonzero entries in a map keyed by column, so construction by scattered
// assignment is O(1) per cell and memory is proportional to the number of
// nonzeros. Assigning zero removes the entry, keeping structural and
// numeric nonzeros identical.
type Sparse struct {
	r, c int
	rows []map[int]float64 // rows[i] maps column -> value; nil until first Set
}

// NewSparse creates an r×c Sparse matrix with no nonzero entries.
// Returns ErrBadShape when rows or cols is negative.
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	return &Sparse{r: rows, c: cols, rows: make([]map[int]float64, rows)}, nil
}

// Rows returns the number of rows.
func (m *Sparse) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Sparse) Cols() int { return m.c }

// check validates (row, col) against the matrix bounds.
func (m *Sparse) check(row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return ErrOutOfRange
	}
	return nil
}

// At retrieves the element at (row, col); absent cells read as zero.
func (m *Sparse) At(row, col int) (float64, error) {
	if err := m.check(row, col); err != nil {
		return 0, err
	}
	return m.rows[row][col], nil
}

// Set assigns v at (row, col). Assigning zero deletes the entry.
func (m *Sparse) Set(row, col int, v float64) error {
	if err := m.check(row, col); err != nil {
		return err
	}
	if v == 0 {
		delete(m.rows[row], col)
		return nil
	}
	if m.rows[row] == nil {
		m.rows[row] = make(map[int]float64)
	}
	m.rows[row][col] = v
	return nil
}

// NNZ returns the number of stored nonzero entries.
// Complexity: O(r).
func (m *Sparse) NNZ() int {
	var n int
	for _, row := range m.rows {
		n += len(row)
	}
	return n
}

// Nonzero enumerates nonzero cells row-major, columns ascending within a
// row. Stops early when visit returns false.
// Complexity: O(r + nnz log nnz_row) for the per-row column sort.
func (m *Sparse) Nonzero(visit func(row, col int) bool) {
	for i, row := range m.rows {
		if len(row) == 0 {
			continue
		}
		cols := make([]int, 0, len(row))
		for j := range row {
			cols = append(cols, j)
		}
		sort.Ints(cols)
		for _, j := range cols {
			if !visit(i, j) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the Sparse matrix.
// Complexity: O(r + nnz).
func (m *Sparse) Clone() Matrix {
	cp := &Sparse{r: m.r, c: m.c, rows: make([]map[int]float64, m.r)}
	for i, row := range m.rows {
		if len(row) == 0 {
			continue
		}
		cp.rows[i] = make(map[int]float64, len(row))
		for j, v := range row {
			cp.rows[i][j] = v
		}
	}
	return cp
}
