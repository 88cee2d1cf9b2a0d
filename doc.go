// Package densemat is a small dense-matrix library for float64 matrices of
// bounded size, backed by swappable optimized linear-algebra kernels.
//
// What is inside?
//
//	matrix/          - the Matrix handle: storage, access, numeric operations
//	matrix/backend/  - column-major Dgemm/Dgetrf/Dgetri kernels:
//	                   gonum (default), netlib (cgo, -tags netlib), reference
//	examples/        - runnable demonstration programs
//
// Conventions:
//
//   - Public buffers are row-major: element (i,j) of an r×c matrix is buf[i*c+j].
//   - Storage is column-major and never exposed.
//   - Dimensions are capped at matrix.MaxDim; scratch space is bounded by that cap.
//   - Operations return sentinel errors wrapped with the operation name;
//     match them with errors.Is.
//
// Quick start:
//
//	m, _ := matrix.New([]float64{1, 2, 3, 4}, 2, 2)
//	det, _ := matrix.Determinant(m) // -2
//	inv, _ := matrix.NewZeros(2, 2)
//	_, _ = matrix.Inverse(m, inv)
package densemat
