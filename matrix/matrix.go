// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/blas"

// Size limits. MaxDim bounds both dimensions; every scratch buffer is sized from it.
const (
	// MaxDim is the largest row or column count a Matrix may have.
	MaxDim = 50

	// MaxElements is the element capacity of a full-size Matrix and of each scratch buffer.
	MaxElements = MaxDim * MaxDim
)

// Kind selects the initial content of a square matrix.
type Kind byte

// Square matrix kinds (the characters match the classic '0' / 'I' codes).
const (
	Zero     Kind = '0'
	Identity Kind = 'I'
)

// Transform selects op(X) for Product. The values are the BLAS flags.
type Transform = blas.Transpose

// Product operand transforms.
const (
	Keep       Transform = blas.NoTrans
	Transposed Transform = blas.Trans
)

// Matrix is an opaque dense matrix.
//   - data holds rows*cols elements in column-major order: (i,j) at j*rows + i.
//   - cap(data) is the allocated capacity; it may exceed len(data) after a shrink.
//
// The zero value is a valid 0×0 matrix with no capacity.
type Matrix struct {
	rows, cols int
	data       []float64
}
