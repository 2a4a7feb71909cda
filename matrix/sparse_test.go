package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seankmartin/SKMNeuralConnections/matrix"
)

func TestSparse_Basics(t *testing.T) {
	m, err := matrix.NewSparse(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(0, 2, 1))
	require.NoError(t, m.Set(1, 0, 4.5))

	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	// Absent cells read as zero.
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v)

	require.Equal(t, 2, m.NNZ())

	// Assigning zero removes the entry.
	require.NoError(t, m.Set(0, 2, 0))
	require.Equal(t, 1, m.NNZ())
}

func TestSparse_Bounds(t *testing.T) {
	_, err := matrix.NewSparse(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewSparse(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 2, 1), matrix.ErrOutOfRange)
}

// TestSparse_NonzeroOrder pins the row-major, column-ascending enumeration
// contract that graph assembly depends on for determinism.
func TestSparse_NonzeroOrder(t *testing.T) {
	m, err := matrix.NewSparse(3, 3)
	require.NoError(t, err)
	for _, cell := range [][2]int{{2, 0}, {0, 2}, {0, 1}, {1, 1}} {
		require.NoError(t, m.Set(cell[0], cell[1], 1))
	}

	var got [][2]int
	m.Nonzero(func(r, c int) bool {
		got = append(got, [2]int{r, c})
		return true
	})
	require.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 1}, {2, 0}}, got)
}

func TestSparse_NonzeroEarlyStop(t *testing.T) {
	m, err := matrix.NewSparse(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(1, 1, 1))

	var visits int
	m.Nonzero(func(r, c int) bool {
		visits++
		return false
	})
	require.Equal(t, 1, visits)
}

func TestSparse_CloneIndependent(t *testing.T) {
	m, err := matrix.NewSparse(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 7))

	cp := m.Clone()
	require.NoError(t, m.Set(1, 1, 0))

	v, err := cp.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}
