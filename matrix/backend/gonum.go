// SPDX-License-Identifier: MIT

package backend

import (
	gonumblas "gonum.org/v1/gonum/blas/gonum"
	gonumlapack "gonum.org/v1/gonum/lapack/gonum"
)

// NameGonum identifies the pure-Go optimized backend.
const NameGonum = "gonum"

// Gonum returns the backend built on gonum's native BLAS and LAPACK.
// It needs no cgo and is the default unless built with -tags netlib.
func Gonum() Backend {
	return rowMajor{
		name: NameGonum,
		blas: gonumblas.Implementation{},
		lu:   gonumlapack.Implementation{},
	}
}
