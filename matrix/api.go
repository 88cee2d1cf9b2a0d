// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Each facade delegates to the canonical implementation; no logic is duplicated.
//
// Policy:
//   - Facades never change numeric behavior or error wrapping of the underlying call.

package matrix

// NewZeros returns a zero rows×cols matrix. Alias of New(nil, rows, cols).
func NewZeros(rows, cols int) (*Matrix, error) {
	return New(nil, rows, cols)
}

// NewIdentity returns I_n. Alias of NewSquare(n, Identity).
func NewIdentity(n int) (*Matrix, error) {
	return NewSquare(n, Identity)
}

// Mul computes result = a·b. Alias of Product(a, Keep, b, Keep, result).
func Mul(a, b, result *Matrix) (*Matrix, error) {
	return Product(a, Keep, b, Keep, result)
}

// T writes mᵀ into result. Alias of Transpose.
func T(m, result *Matrix) (*Matrix, error) {
	return Transpose(m, result)
}

// Width returns the column count of m, 0 for nil.
func Width(m *Matrix) int { return m.Cols() }

// Height returns the row count of m, 0 for nil.
func Height(m *Matrix) int { return m.Rows() }

// Resize resizes m in place and returns it. A nil m creates a new zero matrix
// of the requested size, so a nil handle can be grown into existence.
func Resize(m *Matrix, rows, cols int) (*Matrix, error) {
	if m == nil {
		return New(nil, rows, cols)
	}
	if err := m.Resize(rows, cols); err != nil {
		return nil, err
	}

	return m, nil
}

// Discard releases m and returns nil, for the m = matrix.Discard(m) idiom.
func Discard(m *Matrix) *Matrix {
	m.Release()

	return nil
}
