// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const opFprint = "Fprint"

// Fprint writes a human-readable dump of m to w:
//
//	[2x3] matrix:
//	[ 1.000000 2.000000 3.000000 ]
//	[ 4.000000 5.000000 6.000000 ]
//	<blank line>
//
// Rows are printed top to bottom in logical order regardless of storage layout.
//
// Errors: ErrNilMatrix, or the first write error from w.
func Fprint(w io.Writer, m *Matrix, opts ...Option) error {
	if err := validateNotNil(m); err != nil {
		return matrixErrorf(opFprint, err)
	}
	o := gatherOptions(opts...)

	bw := bufio.NewWriter(w)
	num := make([]byte, 0, 32)
	if o.header {
		bw.WriteByte('[')
		bw.WriteString(strconv.Itoa(m.rows))
		bw.WriteByte('x')
		bw.WriteString(strconv.Itoa(m.cols))
		bw.WriteString("] matrix:\n")
	}
	for i := 0; i < m.rows; i++ {
		bw.WriteString("[ ")
		for j := 0; j < m.cols; j++ {
			num = strconv.AppendFloat(num[:0], m.data[j*m.rows+i], 'f', o.precision, 64)
			bw.Write(num)
			bw.WriteByte(' ')
		}
		bw.WriteString("]\n")
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// String implements fmt.Stringer with the default Fprint layout.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	_ = Fprint(&sb, m)

	return sb.String()
}
