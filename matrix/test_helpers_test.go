// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the unit tests and benchmarks.
//   - Keep all data finite and well-conditioned unless a test asks otherwise.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

// tol is the absolute tolerance for results that go through a factorization.
const tol = 1e-9

// mustNew builds a rows×cols matrix from row-major values or fails the test.
// With no values the matrix is zero.
func mustNew(tb testing.TB, rows, cols int, rowMajor ...float64) *matrix.Matrix {
	tb.Helper()
	var data []float64
	if len(rowMajor) > 0 {
		data = rowMajor
	}
	m, err := matrix.New(data, rows, cols)
	require.NoError(tb, err)

	return m
}

// mustIdentity returns I_n or fails the test.
func mustIdentity(tb testing.TB, n int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewSquare(n, matrix.Identity)
	require.NoError(tb, err)

	return m
}

// scratch returns a full-capacity zero matrix usable as any result.
func scratch(tb testing.TB) *matrix.Matrix {
	tb.Helper()

	return mustNew(tb, matrix.MaxDim, matrix.MaxDim)
}

// rowsOf dumps m in row-major order.
func rowsOf(tb testing.TB, m *matrix.Matrix) []float64 {
	tb.Helper()
	buf, err := m.RowMajor(nil)
	require.NoError(tb, err)

	return buf
}

// requireMatrix asserts shape and row-major content within delta.
func requireMatrix(tb testing.TB, m *matrix.Matrix, rows, cols int, delta float64, rowMajor ...float64) {
	tb.Helper()
	require.Equal(tb, rows, m.Rows(), "rows")
	require.Equal(tb, cols, m.Cols(), "cols")
	require.InDeltaSlice(tb, rowMajor, rowsOf(tb, m), delta)
}

// randomMatrix fills a rows×cols matrix with values in [-1, 1) from seed.
func randomMatrix(tb testing.TB, seed int64, rows, cols int) *matrix.Matrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}

	return mustNew(tb, rows, cols, data...)
}

// wellConditioned returns a random diagonally dominant n×n matrix.
func wellConditioned(tb testing.TB, seed int64, n int) *matrix.Matrix {
	tb.Helper()
	m := randomMatrix(tb, seed, n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, m.At(i, i)+float64(n))
	}

	return m
}
