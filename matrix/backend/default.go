// SPDX-License-Identifier: MIT

//go:build !(netlib && cgo)

package backend

func defaultBackend() Backend { return Gonum() }
