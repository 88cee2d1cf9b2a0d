// SPDX-License-Identifier: MIT

// Package matrix - the row-major ⇄ column-major boundary.
//
// Every public entry point that accepts or returns flat data goes through the
// two helpers below; numeric code works on the column-major buffer only.
//
//	row-major   rm[i*cols + j]
//	column-major cm[j*rows + i]

package matrix

// fromRowMajor writes row-major src into column-major dst.
// Loop order follows the destination so writes are sequential.
func fromRowMajor(dst, src []float64, rows, cols int) {
	var i, j, base int
	for j = 0; j < cols; j++ {
		base = j * rows
		for i = 0; i < rows; i++ {
			dst[base+i] = src[i*cols+j]
		}
	}
}

// toRowMajor writes column-major src into row-major dst.
func toRowMajor(dst, src []float64, rows, cols int) {
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			dst[base+j] = src[j*rows+i]
		}
	}
}

// RowMajor copies m into buf in row-major order and returns buf[:rows*cols].
// A nil buf allocates a fresh slice.
//
// Errors: ErrNilMatrix, ErrShortBuffer (non-nil buf shorter than rows*cols).
func (m *Matrix) RowMajor(buf []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opRowMajor, ErrNilMatrix)
	}
	n := m.rows * m.cols
	if buf == nil {
		buf = make([]float64, n)
	}
	if len(buf) < n {
		return nil, matrixErrorf(opRowMajor, ErrShortBuffer)
	}
	toRowMajor(buf, m.data, m.rows, m.cols)

	return buf[:n], nil
}

// SetRowMajor overwrites every element of m from the row-major buf.
//
// Errors: ErrNilMatrix, ErrShortBuffer (len(buf) < rows*cols).
func (m *Matrix) SetRowMajor(buf []float64) error {
	if m == nil {
		return matrixErrorf(opSetRowMajor, ErrNilMatrix)
	}
	if len(buf) < m.rows*m.cols {
		return matrixErrorf(opSetRowMajor, ErrShortBuffer)
	}
	fromRowMajor(m.data, buf, m.rows, m.cols)

	return nil
}
