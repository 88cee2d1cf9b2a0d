// SPDX-License-Identifier: MIT

// Package backend holds the dense kernels the matrix package delegates to.
//
// Purpose:
//   - Define a single column-major, LAPACK-style contract (Backend) for the three
//     kernels a small dense library needs: Dgemm, Dgetrf and Dgetri.
//   - Ship interchangeable implementations:
//   - Gonum     (default): pure-Go optimized BLAS/LAPACK from gonum.org/v1/gonum.
//   - Netlib    (-tags netlib, cgo): system BLAS/LAPACK through gonum.org/v1/netlib.
//   - Reference : straightforward kernels for environments without either library
//     and for cross-checking the optimized ones.
//
// Conventions:
//   - All buffers are column-major: element (i,j) of an m×n operand with leading
//     dimension ld lives at a[i+j*ld].
//   - Pivots are 0-based: row i was interchanged with row ipiv[i].
//   - Status codes follow LAPACK: 0 success, k>0 zero pivot at (1-based) k,
//     k<0 the (-k)-th argument was invalid.
//   - Dgemm has no status; invalid arguments are programmer errors and panic.
//
// Selection:
//   - Use(b) swaps the process-wide backend atomically; Current() reads it.
//   - ByName looks up a registered implementation ("gonum", "reference", "netlib").
package backend
