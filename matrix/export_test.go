// SPDX-License-Identifier: MIT

package matrix

// OptionsSnapshot is a read-only view of the resolved Options for matrix_test.
type OptionsSnapshot struct {
	Precision int
	Header    bool
}

// GatherOptionsSnapshot resolves opts the way Fprint does.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Precision: o.precision, Header: o.header}
}
