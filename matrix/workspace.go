// SPDX-License-Identifier: MIT

package matrix

import "sync"

// workspace is the fixed-capacity scratch set of one numeric operation.
// Sizes derive from MaxDim, so no operation can request more than the cap.
//   - a:    staging buffer for results / factorizations (MaxElements).
//   - work: kernel workspace for Dgetri (MaxElements).
//   - ipiv: pivot indices (MaxDim).
type workspace struct {
	a    [MaxElements]float64
	work [MaxElements]float64
	ipiv [MaxDim]int
}

var workspaces = sync.Pool{
	New: func() any { return new(workspace) },
}

// acquireWorkspace returns a workspace with unspecified contents.
func acquireWorkspace() *workspace {
	return workspaces.Get().(*workspace)
}

// releaseWorkspace hands ws back to the pool; ws must not be used afterwards.
func releaseWorkspace(ws *workspace) {
	workspaces.Put(ws)
}
