// SPDX-License-Identifier: MIT
// Package matrix_test covers storage, lifecycle and element access.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

// TestNew_ConcreteScenario pins the row-major input contract on a 2×2.
func TestNew_ConcreteScenario(t *testing.T) {
	m := mustNew(t, 2, 2, 1, 2, 3, 4)

	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, 2.0, m.At(0, 1))
	require.Equal(t, 3.0, m.At(1, 0))
	require.Equal(t, 4.0, m.At(1, 1))

	det, err := matrix.Determinant(m)
	require.NoError(t, err)
	require.InDelta(t, -2.0, det, tol)

	tr, err := matrix.Transpose(m, scratch(t))
	require.NoError(t, err)
	require.Equal(t, 3.0, tr.At(0, 1))
}

func TestNew_ShapeErrors(t *testing.T) {
	_, err := matrix.New(nil, matrix.MaxDim+1, 1)
	require.ErrorIs(t, err, matrix.ErrTooLarge)

	_, err = matrix.New(nil, 1, matrix.MaxDim+1)
	require.ErrorIs(t, err, matrix.ErrTooLarge)

	_, err = matrix.New(nil, -1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New([]float64{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, matrix.ErrShortBuffer)

	m, err := matrix.New(nil, matrix.MaxDim, matrix.MaxDim)
	require.NoError(t, err)
	require.Equal(t, matrix.MaxElements, m.Cap())
}

func TestNew_ZeroInitialized(t *testing.T) {
	m := mustNew(t, 3, 4)
	require.Equal(t, make([]float64, 12), rowsOf(t, m))
}

func TestNew_CopiesInput(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	m := mustNew(t, 2, 2, data...)
	data[0] = 99
	require.Equal(t, 1.0, m.At(0, 0))
}

func TestNewSquare(t *testing.T) {
	const n = 5
	id := mustIdentity(t, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.Equal(t, want, id.At(i, j), "(%d,%d)", i, j)
		}
	}

	z, err := matrix.NewSquare(3, matrix.Zero)
	require.NoError(t, err)
	require.Equal(t, make([]float64, 9), rowsOf(t, z))

	_, err = matrix.NewSquare(3, matrix.Kind('X'))
	require.ErrorIs(t, err, matrix.ErrBadKind)

	_, err = matrix.NewSquare(matrix.MaxDim+1, matrix.Identity)
	require.ErrorIs(t, err, matrix.ErrTooLarge)
}

func TestAccessors_NilAndOutOfRange(t *testing.T) {
	var m *matrix.Matrix
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
	assert.Equal(t, 0, matrix.Width(m))
	assert.Equal(t, 0, matrix.Height(m))
	assert.Equal(t, 0.0, m.At(0, 0))
	assert.NotPanics(t, func() { m.Set(0, 0, 1) })
	assert.NotPanics(t, m.Release)

	a := mustNew(t, 2, 3, 1, 2, 3, 4, 5, 6)
	assert.Equal(t, 3, matrix.Width(a))
	assert.Equal(t, 2, matrix.Height(a))
	assert.Equal(t, 0.0, a.At(matrix.Height(a), 0))
	assert.Equal(t, 0.0, a.At(0, -1))

	a.Set(5, 5, 42) // ignored
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, rowsOf(t, a))
}

func TestLookup(t *testing.T) {
	m := mustNew(t, 2, 2, 0, 1, 2, 3)

	v, ok := m.Lookup(0, 0)
	require.True(t, ok)
	require.Equal(t, 0.0, v)

	v, ok = m.Lookup(1, 1)
	require.True(t, ok)
	require.Equal(t, 3.0, v)

	_, ok = m.Lookup(2, 0)
	require.False(t, ok)

	var nilM *matrix.Matrix
	_, ok = nilM.Lookup(0, 0)
	require.False(t, ok)
}

func TestRowMajor_RoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 3}, {3, 2}, {7, 5}, {matrix.MaxDim, 1}} {
		src := randomMatrix(t, int64(dims[0]*100+dims[1]), dims[0], dims[1])

		buf := make([]float64, dims[0]*dims[1])
		out, err := src.RowMajor(buf)
		require.NoError(t, err)
		require.Len(t, out, len(buf))

		dst := mustNew(t, dims[0], dims[1])
		require.NoError(t, dst.SetRowMajor(buf))
		for i := 0; i < dims[0]; i++ {
			for j := 0; j < dims[1]; j++ {
				require.Equal(t, src.At(i, j), dst.At(i, j))
				require.Equal(t, buf[i*dims[1]+j], src.At(i, j))
			}
		}
	}
}

func TestRowMajor_Errors(t *testing.T) {
	m := mustNew(t, 2, 2, 1, 2, 3, 4)

	_, err := m.RowMajor(make([]float64, 3))
	require.ErrorIs(t, err, matrix.ErrShortBuffer)
	require.ErrorIs(t, m.SetRowMajor(make([]float64, 3)), matrix.ErrShortBuffer)

	var nilM *matrix.Matrix
	_, err = nilM.RowMajor(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, nilM.SetRowMajor(nil), matrix.ErrNilMatrix)

	// a longer buffer is fine; only the prefix is written
	long := []float64{9, 9, 9, 9, 9}
	out, err := m.RowMajor(long)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, out)
	require.Equal(t, 9.0, long[4])
}

func TestCopy(t *testing.T) {
	src := mustNew(t, 2, 3, 1, 2, 3, 4, 5, 6)
	dst := scratch(t)

	got, err := matrix.Copy(src, dst)
	require.NoError(t, err)
	require.Same(t, dst, got)
	requireMatrix(t, dst, 2, 3, 0, 1, 2, 3, 4, 5, 6)

	// independent storage
	dst.Set(0, 0, 100)
	require.Equal(t, 1.0, src.At(0, 0))

	small := mustNew(t, 1, 1)
	_, err = matrix.Copy(src, small)
	require.ErrorIs(t, err, matrix.ErrCapacity)

	_, err = matrix.Copy(nil, dst)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	self, err := matrix.Copy(src, src)
	require.NoError(t, err)
	require.Same(t, src, self)
}

func TestClearAndRelease(t *testing.T) {
	m := mustNew(t, 2, 2, 1, 2, 3, 4)
	require.Same(t, m, m.Clear())
	require.Equal(t, make([]float64, 4), rowsOf(t, m))

	m.Release()
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Equal(t, 0, m.Cap())

	require.Nil(t, matrix.Discard(mustNew(t, 1, 1)))
}

func TestResize_GrowPreserves(t *testing.T) {
	m := mustNew(t, 2, 3, 1, 2, 3, 4, 5, 6)
	require.NoError(t, m.Resize(4, 5))

	requireMatrix(t, m, 4, 5, 0,
		1, 2, 3, 0, 0,
		4, 5, 6, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0)
}

func TestResize_ShrinkTruncates(t *testing.T) {
	m := mustNew(t, 3, 3,
		1, 2, 3,
		4, 5, 6,
		7, 8, 9)
	require.NoError(t, m.Resize(2, 2))
	requireMatrix(t, m, 2, 2, 0, 1, 2, 4, 5)

	// capacity is kept, regrowing zero-fills the dropped region
	require.Equal(t, 9, m.Cap())
	require.NoError(t, m.Resize(3, 3))
	requireMatrix(t, m, 3, 3, 0,
		1, 2, 0,
		4, 5, 0,
		0, 0, 0)
}

func TestResize_MixedDirections(t *testing.T) {
	m := mustNew(t, 3, 2,
		1, 2,
		3, 4,
		5, 6)
	require.NoError(t, m.Resize(2, 4))
	requireMatrix(t, m, 2, 4, 0,
		1, 2, 0, 0,
		3, 4, 0, 0)
}

func TestResize_Errors(t *testing.T) {
	m := mustNew(t, 2, 2, 1, 2, 3, 4)
	require.ErrorIs(t, m.Resize(matrix.MaxDim+1, 1), matrix.ErrTooLarge)
	require.ErrorIs(t, m.Resize(-1, 1), matrix.ErrBadShape)
	requireMatrix(t, m, 2, 2, 0, 1, 2, 3, 4)

	var nilM *matrix.Matrix
	require.ErrorIs(t, nilM.Resize(1, 1), matrix.ErrNilMatrix)
}

func TestResizeFacade_CreatesFromNil(t *testing.T) {
	m, err := matrix.Resize(nil, 2, 3)
	require.NoError(t, err)
	requireMatrix(t, m, 2, 3, 0, 0, 0, 0, 0, 0, 0)

	m.Set(1, 2, 7)
	same, err := matrix.Resize(m, 3, 3)
	require.NoError(t, err)
	require.Same(t, m, same)
	require.Equal(t, 7.0, same.At(1, 2))

	_, err = matrix.Resize(m, matrix.MaxDim+1, 1)
	require.ErrorIs(t, err, matrix.ErrTooLarge)
}

func TestZeroValueMatrix(t *testing.T) {
	var m matrix.Matrix
	require.Equal(t, 0, m.Rows())
	require.NoError(t, m.Resize(2, 2))
	requireMatrix(t, &m, 2, 2, 0, 0, 0, 0, 0)
}
