// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
)

// Routine names used in status messages.
const (
	routineGetrf = "Dgetrf"
	routineGetri = "Dgetri"
)

// Argument positions used in negative status codes (LAPACK numbering).
const (
	argM    = 1
	argN    = 2
	argA    = 3
	argLDA  = 4
	argIPIV = 5

	argGetriN     = 1
	argGetriA     = 2
	argGetriLDA   = 3
	argGetriIPIV  = 4
	argGetriWork  = 5
	argGetriLWork = 6
)

// panic messages for Dgemm (no status channel in the BLAS contract).
const (
	panicBadTrans = "backend: Dgemm: bad transpose flag"
	panicBadDims  = "backend: Dgemm: negative dimension"
	panicBadLDA   = "backend: Dgemm: bad leading dimension of A"
	panicBadLDB   = "backend: Dgemm: bad leading dimension of B"
	panicBadLDC   = "backend: Dgemm: bad leading dimension of C"
	panicShortA   = "backend: Dgemm: insufficient length of A"
	panicShortB   = "backend: Dgemm: insufficient length of B"
	panicShortC   = "backend: Dgemm: insufficient length of C"
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// colMajorLen is the minimum buffer length of an r×c column-major operand.
func colMajorLen(r, c, ld int) int {
	if r == 0 || c == 0 {
		return 0
	}

	return (c-1)*ld + r
}

// checkGemm panics on arguments that would make Dgemm read or write out of bounds.
// Shapes are expressed in column-major terms: A is m×k (k×m when transposed),
// B is k×n (n×k when transposed), C is m×n.
func checkGemm(tA, tB blas.Transpose, m, n, k int, a []float64, lda int, b []float64, ldb int, c []float64, ldc int) {
	if !validTrans(tA) || !validTrans(tB) {
		panic(panicBadTrans)
	}
	if m < 0 || n < 0 || k < 0 {
		panic(panicBadDims)
	}

	ar, ac := m, k
	if tA != blas.NoTrans {
		ar, ac = k, m
	}
	br, bc := k, n
	if tB != blas.NoTrans {
		br, bc = n, k
	}
	if lda < maxInt(1, ar) {
		panic(panicBadLDA)
	}
	if ldb < maxInt(1, br) {
		panic(panicBadLDB)
	}
	if ldc < maxInt(1, m) {
		panic(panicBadLDC)
	}
	if len(a) < colMajorLen(ar, ac, lda) {
		panic(panicShortA)
	}
	if len(b) < colMajorLen(br, bc, ldb) {
		panic(panicShortB)
	}
	if len(c) < colMajorLen(m, n, ldc) {
		panic(panicShortC)
	}
}

// validTrans accepts only the real-valued flags; ConjTrans is meaningless here.
func validTrans(t blas.Transpose) bool {
	return t == blas.NoTrans || t == blas.Trans
}

// checkGetrf returns a negative LAPACK status for invalid Dgetrf arguments, 0 otherwise.
func checkGetrf(m, n int, a []float64, lda int, ipiv []int) int {
	switch {
	case m < 0:
		return -argM
	case n < 0:
		return -argN
	case lda < maxInt(1, m):
		return -argLDA
	case len(a) < colMajorLen(m, n, lda):
		return -argA
	case len(ipiv) < minInt(m, n):
		return -argIPIV
	}

	return 0
}

// checkGetri returns a negative LAPACK status for invalid Dgetri arguments, 0 otherwise.
func checkGetri(n int, a []float64, lda int, ipiv []int, work []float64, lwork, minWork int) int {
	switch {
	case n < 0:
		return -argGetriN
	case lda < maxInt(1, n):
		return -argGetriLDA
	case len(a) < colMajorLen(n, n, lda):
		return -argGetriA
	case len(ipiv) < n:
		return -argGetriIPIV
	case lwork < minWork:
		return -argGetriLWork
	case len(work) < lwork:
		return -argGetriWork
	}

	return 0
}

// zeroPivot scans the diagonal of a factorized column-major matrix and returns the
// 1-based index of the first exact zero, or 0 when the diagonal is clean.
func zeroPivot(n int, a []float64, lda int) int {
	for i := 0; i < n; i++ {
		if a[i+i*lda] == 0 {
			return i + 1
		}
	}

	return 0
}

// StatusError describes a non-zero kernel status in a human-readable form.
// Backends log it when they reject arguments; the matrix package maps
// statuses onto its own sentinels instead.
func StatusError(routine string, info int) error {
	switch {
	case info == 0:
		return nil
	case info > 0:
		return fmt.Errorf("backend: %s: zero pivot at %d", routine, info)
	default:
		return fmt.Errorf("backend: %s: invalid argument %d", routine, -info)
	}
}
