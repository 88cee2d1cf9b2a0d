// SPDX-License-Identifier: MIT

// Package matrix - numeric operations.
//
// Purpose:
//   - Scale, weighted Sum, Product, Transpose, Determinant and Inverse over the
//     column-major storage, writing into a caller-supplied result.
//   - Delegate Product and the LU family to backend.Current(), read once per call.
//
// Contract shared by every operation:
//   - Returns (result, nil) on success, (nil, err) on failure.
//   - result must already have capacity for the output (ErrCapacity otherwise);
//     its dimensions are replaced by the output dimensions.
//   - Inputs are never mutated unless they are also the result.
//   - Scratch comes from the pooled workspace; nothing allocates on success.

package matrix

import (
	"github.com/katalvlaran/densemat/matrix/backend"
)

// Operation tags for error wrapping.
const (
	opScale       = "Scale"
	opSum         = "Sum"
	opProduct     = "Product"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
)

// Scale computes result = alpha*m elementwise. result may be m.
//
// Errors: ErrNilMatrix, ErrCapacity.
// Complexity: O(r*c).
func Scale(m *Matrix, alpha float64, result *Matrix) (*Matrix, error) {
	if err := validateNotNil(m, result); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err := validateCapacity(result, m.rows, m.cols); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	src := m.data
	result.reshape(m.rows, m.cols)
	for i, v := range src {
		result.data[i] = alpha * v
	}

	return result, nil
}

// Sum computes result = wa*a + wb*b elementwise. result may alias a or b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrCapacity.
// Complexity: O(r*c).
func Sum(a *Matrix, wa float64, b *Matrix, wb float64, result *Matrix) (*Matrix, error) {
	if err := validateNotNil(a, b, result); err != nil {
		return nil, matrixErrorf(opSum, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSum, err)
	}
	if err := validateCapacity(result, a.rows, a.cols); err != nil {
		return nil, matrixErrorf(opSum, err)
	}

	x, y := a.data, b.data
	result.reshape(a.rows, a.cols)
	for i := range x {
		result.data[i] = wa*x[i] + wb*y[i]
	}

	return result, nil
}

// opDims returns the dimensions of op(m).
func opDims(m *Matrix, t Transform) (rows, cols int) {
	if t == Transposed {
		return m.cols, m.rows
	}

	return m.rows, m.cols
}

// Product computes result = op(a)·op(b), op ∈ {Keep, Transposed}.
//
// Implementation:
//   - Stage 1: validate operands, flags, the coupling dimension and result capacity.
//   - Stage 2: Dgemm into scratch with lda = k|m, ldb = n|k, ldc = m.
//   - Stage 3: reshape result to m×n and copy scratch in.
//
// Behavior highlights:
//   - result may be a or b; operands are fully read before result is touched.
//   - Any zero dimension yields a zero-filled m×n result without calling the backend.
//
// Errors: ErrNilMatrix, ErrBadTransform, ErrDimensionMismatch, ErrCapacity.
// Complexity: O(m*n*k) in the backend.
func Product(a *Matrix, opA Transform, b *Matrix, opB Transform, result *Matrix) (*Matrix, error) {
	if err := validateNotNil(a, b, result); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}
	if err := validateTransform(opA); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}
	if err := validateTransform(opB); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}

	// Stage 1: op(A) is m×k, op(B) is k×n.
	m, k := opDims(a, opA)
	kb, n := opDims(b, opB)
	if k != kb {
		return nil, matrixErrorf(opProduct, ErrDimensionMismatch)
	}
	if err := validateCapacity(result, m, n); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}
	if m == 0 || n == 0 || k == 0 {
		result.reshape(m, n)
		result.Clear()

		return result, nil
	}

	// Stage 2: kernel.
	ws := acquireWorkspace()
	defer releaseWorkspace(ws)

	lda, ldb := m, k
	if opA == Transposed {
		lda = k
	}
	if opB == Transposed {
		ldb = n
	}
	c := ws.a[:m*n]
	backend.Current().Dgemm(opA, opB, m, n, k, 1, a.data, lda, b.data, ldb, 0, c, m)

	// Stage 3: commit.
	result.reshape(m, n)
	copy(result.data, c)

	return result, nil
}

// Transpose writes mᵀ into result. result may be m.
// The transposed image is built in scratch first, so in-place use is safe.
//
// Errors: ErrNilMatrix, ErrCapacity.
// Complexity: O(r*c).
func Transpose(m, result *Matrix) (*Matrix, error) {
	if err := validateNotNil(m, result); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err := validateCapacity(result, m.cols, m.rows); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	ws := acquireWorkspace()
	defer releaseWorkspace(ws)

	r, c := m.rows, m.cols
	t := ws.a[:r*c]
	// (i,j) at j*r+i moves to (j,i) at i*c+j.
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			t[i*c+j] = m.data[j*r+i]
		}
	}
	result.reshape(c, r)
	copy(result.data, t)

	return result, nil
}

// Determinant returns det(m) for a square m.
//
// Implementation:
//   - Stage 1: copy m into scratch; m itself is never touched.
//   - Stage 2: Dgetrf on the copy.
//   - Stage 3: multiply the diagonal of U, flipping the sign once per ipiv[i] != i.
//
// Behavior highlights:
//   - 0×0 yields 1 (empty product).
//   - A zero pivot yields 0 with a nil error; singularity is not a failure here.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBackend.
// Complexity: O(n³).
func Determinant(m *Matrix) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := m.rows
	if n == 0 {
		return 1, nil
	}

	ws := acquireWorkspace()
	defer releaseWorkspace(ws)

	// Stage 1
	lu := ws.a[:n*n]
	copy(lu, m.data)
	ipiv := ws.ipiv[:n]

	// Stage 2
	info := backend.Current().Dgetrf(n, n, lu, n, ipiv)
	switch {
	case info < 0:
		return 0, matrixErrorf(opDeterminant, ErrBackend)
	case info > 0:
		return 0, nil
	}

	// Stage 3
	det := 1.0
	for i := 0; i < n; i++ {
		det *= lu[i*n+i]
		if ipiv[i] != i {
			det = -det
		}
	}

	return det, nil
}

// Inverse writes m⁻¹ into result. result may be m.
//
// Implementation:
//   - Stage 1: copy m into scratch and factorize it with Dgetrf.
//   - Stage 2: Dgetri on the factors, using the second scratch buffer as work.
//   - Stage 3: only now reshape result and copy the inverse in.
//
// Behavior highlights:
//   - On any failure result (and m) are left exactly as they were.
//   - 0×0 inverts to 0×0.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrCapacity, ErrSingular, ErrBackend.
// Complexity: O(n³).
func Inverse(m, result *Matrix) (*Matrix, error) {
	if err := validateNotNil(m, result); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := validateCapacity(result, m.rows, m.cols); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.rows
	if n == 0 {
		result.reshape(0, 0)

		return result, nil
	}

	ws := acquireWorkspace()
	defer releaseWorkspace(ws)

	be := backend.Current()

	// Stage 1
	inv := ws.a[:n*n]
	copy(inv, m.data)
	ipiv := ws.ipiv[:n]
	if err := statusErr(be.Dgetrf(n, n, inv, n, ipiv)); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Stage 2
	if err := statusErr(be.Dgetri(n, inv, n, ipiv, ws.work[:], MaxElements)); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Stage 3
	result.reshape(n, n)
	copy(result.data, inv)

	return result, nil
}

// statusErr maps a kernel status onto the package sentinels.
func statusErr(info int) error {
	switch {
	case info > 0:
		return ErrSingular
	case info < 0:
		return ErrBackend
	}

	return nil
}
