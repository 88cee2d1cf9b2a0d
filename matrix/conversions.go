// SPDX-License-Identifier: MIT
// Package matrix - interop with gonum/mat.
//
// Both directions copy; neither side ever aliases the other's storage.

package matrix

import "gonum.org/v1/gonum/mat"

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum returns a *mat.Dense holding a copy of m.
// A matrix with a zero dimension maps to an empty mat.Dense, since gonum
// refuses to construct zero-length dense matrices. The shape is not kept:
// r×0 and 0×c both come back from FromGonum as 0×0.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ToGonum(m *Matrix) (*mat.Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.rows == 0 || m.cols == 0 {
		return &mat.Dense{}, nil
	}
	buf, err := m.RowMajor(nil)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	return mat.NewDense(m.rows, m.cols, buf), nil
}

// FromGonum copies any mat.Matrix into a new *Matrix.
// A *mat.Dense source is read through its raw row-major view; anything else through At.
//
// Errors: ErrNilMatrix, ErrTooLarge.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Matrix, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	if d, ok := src.(*mat.Dense); ok && d.IsEmpty() {
		return New(nil, 0, 0)
	}

	r, c := src.Dims()
	out, err := New(nil, r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	if d, ok := src.(*mat.Dense); ok {
		raw := d.RawMatrix()
		for i := 0; i < r; i++ {
			row := raw.Data[i*raw.Stride : i*raw.Stride+c]
			for j, v := range row {
				out.data[j*r+i] = v
			}
		}

		return out, nil
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[j*r+i] = src.At(i, j)
		}
	}

	return out, nil
}
