// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the guards shared by constructors and ops.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly
//    with matrixErrorf and their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.

package matrix

import "fmt"

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateDims checks 0 ≤ rows, cols ≤ MaxDim.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}
	if rows > MaxDim || cols > MaxDim {
		return ErrTooLarge
	}

	return nil
}

// validateNotNil fails on the first nil operand.
func validateNotNil(ms ...*Matrix) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// validateSameShape assumes both operands are non-nil.
func validateSameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateSquare assumes m is non-nil.
func validateSquare(m *Matrix) error {
	if m.rows != m.cols {
		return ErrNonSquare
	}

	return nil
}

// validateCapacity checks that result can hold rows*cols elements without reallocating.
func validateCapacity(result *Matrix, rows, cols int) error {
	if cap(result.data) < rows*cols {
		return ErrCapacity
	}

	return nil
}

// validateTransform accepts Keep and Transposed only.
func validateTransform(t Transform) error {
	if t != Keep && t != Transposed {
		return ErrBadTransform
	}

	return nil
}
