// SPDX-License-Identifier: MIT

//go:build netlib && cgo

package backend

// This file wires the system BLAS/LAPACK (OpenBLAS on Linux, Accelerate on macOS)
// through gonum's netlib bindings. Build with: go build -tags netlib

import (
	netblas "gonum.org/v1/netlib/blas/netlib"
	netlapack "gonum.org/v1/netlib/lapack/netlib"
)

// NameNetlib identifies the cgo backend.
const NameNetlib = "netlib"

// Netlib returns the backend calling the native BLAS/LAPACK libraries.
func Netlib() Backend {
	return rowMajor{
		name: NameNetlib,
		blas: netblas.Implementation{},
		lu:   netlapack.Implementation{},
	}
}

func init() {
	Register(Netlib())
}

func defaultBackend() Backend { return Netlib() }
