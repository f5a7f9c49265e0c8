// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Reject NaN (a missing draw) at the only write path, Set.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); AppendCol: O(r); SelectCols: O(r*c').

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"         // method tag used in error wrappers
	ctxSet       = "Set"        // method tag used in error wrappers
	ctxAppendCol = "AppendCol"  // method tag used in error wrappers
	ctxSelect    = "SelectCols" // method tag used in error wrappers
)

// Matrix is the read-only surface shared by Dense and test doubles.
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows (iterations).
	Rows() int

	// Cols returns the number of columns (parameters).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for interface conformance.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]float64, rows*cols), // make() zero-fills deterministically
	}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1), no allocations.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). ±Inf is a legal draw; NaN is not.
// Errors: ErrOutOfRange, ErrNaN.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) {
		return denseErrorf(ctxSet, row, col, ErrNaN)
	}
	m.data[off] = v

	return nil
}

// AppendCol appends column j (top to bottom) to dst and returns the extended slice.
// Implementation:
//   - Stage 1: bounds-check j once.
//   - Stage 2: strided read of the flat buffer, no per-element checks.
//
// Passing dst[:0] of a reused buffer keeps repeated column scans allocation-free.
// Complexity: Time O(r).
func (m *Dense) AppendCol(dst []float64, j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return dst, denseErrorf(ctxAppendCol, 0, j, ErrOutOfRange)
	}
	for off := j; off < len(m.data); off += m.c {
		dst = append(dst, m.data[off])
	}

	return dst, nil
}

// SelectCols materializes a new r×len(cols) matrix holding the given columns
// in the given order. The receiver is not modified.
//
// Errors: ErrInvalidDimensions (empty cols), ErrOutOfRange (bad index).
// Complexity: Time O(r*len(cols)), Space O(r*len(cols)).
func (m *Dense) SelectCols(cols []int) (*Dense, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxSelect, ErrInvalidDimensions)
	}
	for _, j := range cols {
		if j < 0 || j >= m.c {
			return nil, denseErrorf(ctxSelect, 0, j, ErrOutOfRange)
		}
	}

	out := &Dense{r: m.r, c: len(cols), data: make([]float64, m.r*len(cols))}
	var i, k int
	for i = 0; i < m.r; i++ { // deterministic row order
		src := m.data[i*m.c : (i+1)*m.c]
		dst := out.data[i*out.c : (i+1)*out.c]
		for k = range cols {
			dst[k] = src[cols[k]]
		}
	}

	return out, nil
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}
