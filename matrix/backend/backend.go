// SPDX-License-Identifier: MIT

package backend

import "gonum.org/v1/gonum/blas"

// Backend is the column-major kernel contract.
//
// Dgemm computes C := alpha*op(A)*op(B) + beta*C where op(A) is m×k, op(B) is k×n
// and C is m×n. When beta == 0 the previous contents of C are ignored.
//
// Dgetrf computes the LU factorization A = P*L*U of an m×n matrix in place.
// ipiv must hold at least min(m,n) entries.
//
// Dgetri overwrites the n×n matrix a, previously factorized by Dgetrf, with its
// inverse. work must hold at least lwork entries; the minimum lwork is
// implementation-defined (see MinWork).
type Backend interface {
	Name() string
	Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int)
	Dgetrf(m, n int, a []float64, lda int, ipiv []int) (info int)
	Dgetri(n int, a []float64, lda int, ipiv []int, work []float64, lwork int) (info int)
}

// WorkSizer is implemented by backends whose Dgetri workspace is not n.
type WorkSizer interface {
	MinWork(n int) int
}

// MinWork reports the smallest lwork accepted by b.Dgetri for an n×n matrix.
func MinWork(b Backend, n int) int {
	if ws, ok := b.(WorkSizer); ok {
		return ws.MinWork(n)
	}
	if n < 1 {
		return 1
	}

	return n
}
