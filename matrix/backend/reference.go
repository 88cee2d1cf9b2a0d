// SPDX-License-Identifier: MIT

package backend

import (
	"math"

	"gonum.org/v1/gonum/blas"
)

// NameReference identifies the straightforward pure-Go backend.
const NameReference = "reference"

// zeroSum is the initial value of every dot-product accumulator.
const zeroSum = 0.0

// reference implements Backend with textbook column-major loops.
// It trades speed for obviousness and is used to cross-check optimized backends.
type reference struct{}

// Reference returns the textbook backend.
func Reference() Backend { return reference{} }

func (reference) Name() string { return NameReference }

// MinWork implements WorkSizer: the inverse is assembled column by column in work.
func (reference) MinWork(n int) int {
	if n < 1 {
		return 1
	}

	return n * n
}

// Dgemm computes C := alpha*op(A)*op(B) + beta*C.
// Loop order is j→i→p so C is written column by column.
// Complexity: O(m*n*k).
func (reference) Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	checkGemm(tA, tB, m, n, k, a, lda, b, ldb, c, ldc)

	var (
		i, j, p int
		ci      int
		sum     float64
		av, bv  float64
		prev    float64
	)
	transA, transB := tA != blas.NoTrans, tB != blas.NoTrans
	for j = 0; j < n; j++ {
		for i = 0; i < m; i++ {
			sum = zeroSum
			for p = 0; p < k; p++ {
				if transA {
					av = a[p+i*lda]
				} else {
					av = a[i+p*lda]
				}
				if transB {
					bv = b[j+p*ldb]
				} else {
					bv = b[p+j*ldb]
				}
				sum += av * bv
			}
			ci = i + j*ldc
			// beta == 0 must not propagate NaN from an uninitialized C.
			prev = 0
			if beta != 0 {
				prev = beta * c[ci]
			}
			c[ci] = alpha*sum + prev
		}
	}
}

// Dgetrf factorizes A = P*L*U with partial (row) pivoting, Doolittle style.
// Stage 1: for column j pick the row with the largest |a[i,j]|, i ≥ j.
// Stage 2: swap that row into place across all columns and record ipiv[j].
// Stage 3: scale the sub-column into L and update the trailing submatrix.
// A zero pivot is reported through info but the factorization still completes,
// matching LAPACK so the caller can read a zero determinant from the diagonal.
// Complexity: O(m*n*min(m,n)).
func (reference) Dgetrf(m, n int, a []float64, lda int, ipiv []int) int {
	if info := checkGetrf(m, n, a, lda, ipiv); info != 0 {
		return rejected(routineGetrf, info)
	}

	var (
		info          int
		i, j, col, p  int
		best, v       float64
		pivot, factor float64
	)
	steps := minInt(m, n)
	for j = 0; j < steps; j++ {
		// Stage 1: pivot search
		p, best = j, math.Abs(a[j+j*lda])
		for i = j + 1; i < m; i++ {
			if v = math.Abs(a[i+j*lda]); v > best {
				p, best = i, v
			}
		}
		ipiv[j] = p

		if a[p+j*lda] == 0 {
			if info == 0 {
				info = j + 1
			}
			continue
		}

		// Stage 2: row interchange
		if p != j {
			for col = 0; col < n; col++ {
				a[j+col*lda], a[p+col*lda] = a[p+col*lda], a[j+col*lda]
			}
		}

		// Stage 3: elimination
		pivot = a[j+j*lda]
		for i = j + 1; i < m; i++ {
			a[i+j*lda] /= pivot
		}
		for col = j + 1; col < n; col++ {
			factor = a[j+col*lda]
			if factor == 0 {
				continue
			}
			for i = j + 1; i < m; i++ {
				a[i+col*lda] -= a[i+j*lda] * factor
			}
		}
	}

	return info
}

// Dgetri forms A⁻¹ from the factors left by Dgetrf.
// For every basis vector e_col:
//   - apply the recorded row interchanges,
//   - forward solve L*y = P*e_col (unit diagonal),
//   - backward solve U*x = y,
//
// writing x into column col of work. The n×n result is then copied over a.
// Complexity: O(n³) time, n*n workspace.
func (r reference) Dgetri(n int, a []float64, lda int, ipiv []int, work []float64, lwork int) int {
	if info := checkGetri(n, a, lda, ipiv, work, lwork, r.MinWork(n)); info != 0 {
		return rejected(routineGetri, info)
	}
	if info := zeroPivot(n, a, lda); info != 0 {
		return info
	}

	var (
		col, i, k int
		sum       float64
		x         []float64
	)
	for col = 0; col < n; col++ {
		x = work[col*n : (col+1)*n]
		for i = range x {
			x[i] = 0
		}
		x[col] = 1

		// P*e_col
		for i = 0; i < n; i++ {
			if p := ipiv[i]; p != i {
				x[i], x[p] = x[p], x[i]
			}
		}
		// L*y = P*e_col
		for i = 0; i < n; i++ {
			sum = zeroSum
			for k = 0; k < i; k++ {
				sum += a[i+k*lda] * x[k]
			}
			x[i] -= sum
		}
		// U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = zeroSum
			for k = i + 1; k < n; k++ {
				sum += a[i+k*lda] * x[k]
			}
			x[i] = (x[i] - sum) / a[i+i*lda]
		}
	}

	for col = 0; col < n; col++ {
		copy(a[col*lda:col*lda+n], work[col*n:(col+1)*n])
	}

	return 0
}
