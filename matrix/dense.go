// SPDX-License-Identifier: MIT

// Package matrix - storage & lifecycle.
//
// Purpose:
//   - Own a flat column-major buffer with the explicit index formula j*rows + i.
//   - Keep construction atomic: a fully zeroed *Matrix or (nil, error).
//   - Keep element access permissive (At/Set never fail), with Lookup as the
//     checked alternative.
//
// Complexity quicksheet:
//   - New: O(r*c); At/Set/Lookup: O(1); Copy/Clear: O(r*c); Resize: O(r*c).

package matrix

// Operation tags for error wrapping.
const (
	opNew         = "New"
	opNewSquare   = "NewSquare"
	opCopy        = "Copy"
	opResize      = "Resize"
	opRowMajor    = "RowMajor"
	opSetRowMajor = "SetRowMajor"
)

// New creates a rows×cols matrix.
// A nil data yields a zero matrix; otherwise data is read in row-major order
// (data[i*cols+j] is element (i,j)) and translated into the internal layout.
//
// Errors:
//   - ErrBadShape    (negative dimension).
//   - ErrTooLarge    (rows or cols > MaxDim).
//   - ErrShortBuffer (len(data) < rows*cols).
//
// Complexity: O(rows*cols).
func New(data []float64, rows, cols int) (*Matrix, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if data != nil && len(data) < rows*cols {
		return nil, matrixErrorf(opNew, ErrShortBuffer)
	}

	m := &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols), // zero-filled by the runtime
	}
	if data != nil {
		fromRowMajor(m.data, data, rows, cols)
	}

	return m, nil
}

// NewSquare creates a size×size matrix of the given kind.
// Identity writes 1.0 at the diagonal offsets i*size+i after zero-initialization.
func NewSquare(size int, kind Kind) (*Matrix, error) {
	if kind != Zero && kind != Identity {
		return nil, matrixErrorf(opNewSquare, ErrBadKind)
	}
	m, err := New(nil, size, size)
	if err != nil {
		return nil, matrixErrorf(opNewSquare, err)
	}
	if kind == Identity {
		for i := 0; i < size; i++ {
			m.data[i*size+i] = 1.0
		}
	}

	return m, nil
}

// Release drops the buffer and leaves m as an empty 0×0 matrix.
// Calling Release on a nil matrix is a no-op.
func (m *Matrix) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.rows, m.cols = 0, 0
}

// Rows returns the row count (0 for nil).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.rows
}

// Cols returns the column count (0 for nil).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.cols
}

// Dims returns (Rows(), Cols()).
func (m *Matrix) Dims() (rows, cols int) { return m.Rows(), m.Cols() }

// Cap reports how many elements m can hold without reallocating.
func (m *Matrix) Cap() int {
	if m == nil {
		return 0
	}

	return cap(m.data)
}

// offset returns the column-major offset of (row, col) and whether it is in range.
func (m *Matrix) offset(row, col int) (int, bool) {
	if m == nil || row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, false
	}

	return col*m.rows + row, true
}

// At returns element (row, col), or 0 when m is nil or the indices are out of range.
// The zero is indistinguishable from a stored zero; use Lookup when that matters.
func (m *Matrix) At(row, col int) float64 {
	off, ok := m.offset(row, col)
	if !ok {
		return 0
	}

	return m.data[off]
}

// Lookup returns element (row, col) and whether the coordinates were valid.
func (m *Matrix) Lookup(row, col int) (float64, bool) {
	off, ok := m.offset(row, col)
	if !ok {
		return 0, false
	}

	return m.data[off], true
}

// Set stores v at (row, col). Out-of-range coordinates or a nil m are ignored.
func (m *Matrix) Set(row, col int, v float64) {
	if off, ok := m.offset(row, col); ok {
		m.data[off] = v
	}
}

// Clear zero-fills m in place and returns it. Nil-safe.
func (m *Matrix) Clear() *Matrix {
	if m != nil {
		clear(m.data)
	}

	return m
}

// Copy copies source's dimensions and contents into destination.
// Both buffers are column-major, so the copy is a single flat memmove.
//
// Errors:
//   - ErrNilMatrix (either argument nil).
//   - ErrCapacity  (destination cannot hold source's elements).
func Copy(source, destination *Matrix) (*Matrix, error) {
	if err := validateNotNil(source, destination); err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	if source == destination {
		return destination, nil
	}
	if err := validateCapacity(destination, source.rows, source.cols); err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	destination.reshape(source.rows, source.cols)
	copy(destination.data, source.data)

	return destination, nil
}

// reshape sets new dimensions within the existing capacity.
// Callers must have checked validateCapacity; contents are left as they are.
func (m *Matrix) reshape(rows, cols int) {
	m.rows, m.cols = rows, cols
	m.data = m.data[:rows*cols]
}

// Resize changes the dimensions of m in place.
//
// Implementation:
//   - Stage 1: snapshot the current buffer into scratch.
//   - Stage 2: grow the buffer if rows*cols exceeds capacity, else reslice; zero-fill.
//   - Stage 3: re-place every retained element (i<min(rows), j<min(cols)) at its
//     new column-major offset j*rows + i.
//
// Behavior highlights:
//   - Growing keeps every element at its logical position; new positions are 0.
//   - Shrinking truncates; the retained region is untouched.
//   - Row and column counts may change together; a flat copy would scramble
//     columns, so each retained column segment is moved individually.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrTooLarge.
// Complexity: O(rows*cols + r0*c0).
func (m *Matrix) Resize(rows, cols int) error {
	if m == nil {
		return matrixErrorf(opResize, ErrNilMatrix)
	}
	if err := validateDims(rows, cols); err != nil {
		return matrixErrorf(opResize, err)
	}
	if rows == m.rows && cols == m.cols {
		return nil
	}

	ws := acquireWorkspace()
	defer releaseWorkspace(ws)

	// Stage 1: snapshot.
	oldRows, oldCols := m.rows, m.cols
	old := ws.a[:len(m.data)]
	copy(old, m.data)

	// Stage 2: storage.
	n := rows * cols
	if n > cap(m.data) {
		m.data = make([]float64, n)
	} else {
		m.data = m.data[:n]
		clear(m.data)
	}
	m.rows, m.cols = rows, cols

	// Stage 3: re-place retained columns.
	keepRows, keepCols := min(rows, oldRows), min(cols, oldCols)
	for j := 0; j < keepCols; j++ {
		copy(m.data[j*rows:j*rows+keepRows], old[j*oldRows:j*oldRows+keepRows])
	}

	return nil
}
