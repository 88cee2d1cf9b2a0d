// SPDX-License-Identifier: MIT

package backend

import "gonum.org/v1/gonum/blas"

// gemmKernel is the row-major Dgemm shared by gonum and netlib BLAS.
type gemmKernel interface {
	Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int)
}

// luKernel is the row-major LU pair shared by gonum and netlib LAPACK.
type luKernel interface {
	Dgetrf(m, n int, a []float64, lda int, ipiv []int) (ok bool)
	Dgetri(n int, a []float64, lda int, ipiv []int, work []float64, lwork int) (ok bool)
}

// rowMajor adapts row-major BLAS/LAPACK kernels to the column-major contract.
//
// A column-major m×n buffer with leading dimension ld is, byte for byte, the
// row-major n×m transpose with stride ld. Hence:
//   - C = op(A)·op(B)  ⇔  Cᵀ = op(B)ᵀ·op(A)ᵀ: swap operands and dimensions, keep flags.
//   - LU of the row-major view factorizes Aᵀ; its diagonal and pivot parity give det(A).
//   - Inverting the row-major view yields (Aᵀ)⁻¹ = (A⁻¹)ᵀ, which read column-major is A⁻¹.
type rowMajor struct {
	name string
	blas gemmKernel
	lu   luKernel
}

func (r rowMajor) Name() string { return r.name }

// Dgemm implements Backend.
func (r rowMajor) Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	checkGemm(tA, tB, m, n, k, a, lda, b, ldb, c, ldc)
	if m == 0 || n == 0 {
		return
	}
	r.blas.Dgemm(tB, tA, n, m, k, alpha, b, ldb, a, lda, beta, c, ldc)
}

// Dgetrf implements Backend.
func (r rowMajor) Dgetrf(m, n int, a []float64, lda int, ipiv []int) int {
	if info := checkGetrf(m, n, a, lda, ipiv); info != 0 {
		return rejected(routineGetrf, info)
	}
	if m == 0 || n == 0 {
		return 0
	}
	// gonum insists on len(ipiv) == min(m,n) exactly.
	if r.lu.Dgetrf(n, m, a, lda, ipiv[:minInt(m, n)]) {
		return 0
	}

	return zeroPivot(minInt(m, n), a, lda)
}

// Dgetri implements Backend.
func (r rowMajor) Dgetri(n int, a []float64, lda int, ipiv []int, work []float64, lwork int) int {
	if info := checkGetri(n, a, lda, ipiv, work, lwork, MinWork(r, n)); info != 0 {
		return rejected(routineGetri, info)
	}
	if n == 0 {
		return 0
	}
	// The row-major kernel only reports ok/!ok; locate a zero pivot up front instead.
	if info := zeroPivot(n, a, lda); info != 0 {
		return info
	}
	if !r.lu.Dgetri(n, a, lda, ipiv[:n], work, lwork) {
		if info := zeroPivot(n, a, lda); info != 0 {
			return info
		}

		return n
	}

	return 0
}
