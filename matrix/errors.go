// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Operations wrap them
// once with their operation tag ("Product: matrix: dimension mismatch") and
// callers match them via errors.Is. No operation panics on user input.

package matrix

import "errors"

// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/size -> dimension mismatch -> capacity -> numeric (singular).

var (
	// ErrNilMatrix indicates that a nil *Matrix was passed as operand or result.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned for negative dimensions.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrTooLarge is returned when a dimension exceeds MaxDim.
	ErrTooLarge = errors.New("matrix: dimension exceeds maximum")

	// ErrBadKind is returned by NewSquare for kinds other than Zero and Identity.
	ErrBadKind = errors.New("matrix: unknown square matrix kind")

	// ErrBadTransform is returned by Product for flags other than Keep and Transposed.
	ErrBadTransform = errors.New("matrix: unknown transform")

	// ErrShortBuffer indicates a row-major buffer shorter than rows*cols.
	ErrShortBuffer = errors.New("matrix: buffer too short")

	// ErrCapacity indicates a result matrix whose storage cannot hold the output.
	ErrCapacity = errors.New("matrix: result capacity too small")

	// ErrDimensionMismatch indicates incompatible operand shapes
	// (Sum with different shapes, Product with mismatched coupling dimension).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the factorization hits a zero pivot.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrBackend reports an invalid-argument status from the kernel backend.
	// It indicates a bug in this package rather than bad user input.
	ErrBackend = errors.New("matrix: backend rejected arguments")
)
