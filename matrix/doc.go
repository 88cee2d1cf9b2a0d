// SPDX-License-Identifier: MIT

// Package matrix offers a small dense matrix handle over optimized kernels.
//
// The matrix package provides:
//
//   - Matrix, an opaque handle owning a column-major float64 buffer of at most
//     MaxDim×MaxDim elements.
//   - Row-major bulk transfer (RowMajor, SetRowMajor) as the single layout boundary.
//   - Structural operations: Copy, Clear, Resize, permissive At/Set and checked Lookup.
//   - Numeric operations writing into caller-supplied results: Scale, Sum,
//     Product, Transpose, Determinant, Inverse.
//   - Diagnostics (Fprint, String) and gonum interop (ToGonum, FromGonum).
//
// Product, Determinant and Inverse call the kernels of the active
// matrix/backend implementation; scratch space comes from a fixed-capacity
// workspace pool, so hot paths do not allocate.
//
// A Matrix is not safe for concurrent mutation; independent matrices may be
// used from any number of goroutines.
//
// See the examples in this package for usage patterns.
package matrix
