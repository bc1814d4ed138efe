// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy views (MatrixView) and copy-based block extraction/assignment (Block, SetBlock).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View: O(1); Block/SetBlock: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxView     = "View"     // ctor tag for Dense.View
	ctxBlock    = "Block"    // ctor tag for Dense.Block
	ctxSetBlock = "SetBlock" // tag for Dense.SetBlock
	ctxFrom     = "NewDenseFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". Preserves the sentinel for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set and Apply.
type Dense struct {
	r, c           int       // row and column counts (>0 for public constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize the default numeric policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseWith creates an r×c zero matrix whose numeric policy is resolved
// from opts (see options.go). Shape errors are the same as NewDense.
// Complexity: O(r*c).
func NewDenseWith(rows, cols int, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	m.validateNaNInf = o.validateNaNInf

	return m, nil
}

// NewDenseFrom builds a Dense from literal rows (copied).
// Implementation:
//   - Stage 1: validate len(rows)>0, len(rows[0])>0 and that every row has the same length.
//   - Stage 2: allocate via NewDense and copy row by row, honoring the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (empty input), ErrBadShape (ragged rows), ErrNaNInf (non-finite value).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFrom, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFrom, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFrom, i, len(rows[i]), c, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxFrom, err)
			}
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// row returns the live backing slice of row i. Callers guarantee 0 ≤ i < r.
func (m *Dense) row(i int) []float64 {
	base := i * m.c

	return m.data[base : base+m.c : base+m.c]
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned bare; At/Set wrap it with method and coordinates.
// Complexity: O(1).
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
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// ToRows copies the matrix out as literal rows (inverse of NewDenseFrom).
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = append([]float64(nil), m.row(i)...)
	}

	return out
}

// String renders rows as lines with comma-separated values (%g).
// Intended for logs and debugging, not hot paths.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// validWindow reports whether [r0:r0+rows, c0:c0+cols) fits into an r×c parent.
func validWindow(r, c, r0, c0, rows, cols int) bool {
	return r0 >= 0 && c0 >= 0 && rows >= 0 && cols >= 0 && r0+rows <= r && c0+cols <= c
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// Implementation:
//   - Stage 1: validate window bounds; zero-area windows are rejected because
//     every Matrix in this package has positive dimensions.
//   - Stage 2: return MatrixView with offsets.
//
// Behavior highlights:
//   - Writes via view reflect in base; policy is inherited.
//   - MatrixView implements Matrix, so views feed Add/Sub/Mul without copies.
//
// Errors:
//   - ErrBadShape when the window is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if rows == 0 || cols == 0 || !validWindow(m.r, m.c, r0, c0, rows, cols) {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView{
		base: m,
		r0:   r0,
		c0:   c0,
		r:    rows,
		c:    cols,
	}, nil
}

// Block extracts the rectangular sub-block [r0:r0+rows, c0:c0+cols) as an
// independent copy.
// Implementation:
//   - Stage 1: validate the window (non-empty, inside bounds).
//   - Stage 2: allocate the result and copy one contiguous row segment at a time.
//
// Behavior highlights:
//   - Policy is preserved from the base (validateNaNInf).
//
// Errors:
//   - ErrBadShape when the window does not fit.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) Block(r0, c0, rows, cols int) (*Dense, error) {
	if rows == 0 || cols == 0 || !validWindow(m.r, m.c, r0, c0, rows, cols) {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxBlock, r0, c0, rows, cols, ErrBadShape)
	}
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = m.validateNaNInf

	var i, src int
	for i = 0; i < rows; i++ {
		src = (r0+i)*m.c + c0
		copy(res.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return res, nil
}

// SetBlock writes src into the region of m whose top-left corner is (r0, c0).
// Implementation:
//   - Stage 1: ValidateNotNil(src); check the region fits inside m.
//   - Stage 2: row-slice copy for package storage types; At-based copy otherwise.
//
// Behavior highlights:
//   - Bulk copy: like Clone and the arithmetic kernels, values are not re-checked
//     against the numeric policy (src already obeyed its own policy on ingestion).
//   - src may be a view over m itself only if the regions do not overlap.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (region outside m), At errors from custom sources.
//
// Complexity:
//   - Time O(src.Rows()*src.Cols()), Space O(1).
func (m *Dense) SetBlock(r0, c0 int, src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxSetBlock, err)
	}
	rows, cols := src.Rows(), src.Cols()
	if !validWindow(m.r, m.c, r0, c0, rows, cols) {
		return fmt.Errorf("Dense.%s(%d,%d) %dx%d into %dx%d: %w",
			ctxSetBlock, r0, c0, rows, cols, m.r, m.c, ErrBadShape)
	}

	var i, j, dst int
	if rs, ok := src.(rowSlicer); ok {
		for i = 0; i < rows; i++ {
			dst = (r0+i)*m.c + c0
			copy(m.data[dst:dst+cols], rs.row(i))
		}

		return nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		dst = (r0+i)*m.c + c0
		for j = 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return fmt.Errorf("Dense.%s: %w", ctxSetBlock, err)
			}
			m.data[dst+j] = v
		}
	}

	return nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// Implementation:
//   - Stage 1: nested loops over rows then cols; compute new value via f.
//   - Stage 2: reject NaN/Inf if policy enabled; write back.
//
// Behavior highlights:
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when the transformer produced a non-finite value (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// MatrixView is a non-owning window into a Dense (shared storage).
// It implements Matrix; Clone materializes an independent *Dense.
type MatrixView struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	r    int    // view height
	c    int    // view width
}

// Rows returns the number of rows in the view.
func (v *MatrixView) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *MatrixView) Cols() int { return v.c }

// row returns the live slice of view row i inside the base buffer.
func (v *MatrixView) row(i int) []float64 {
	start := (v.r0+i)*v.base.c + v.c0

	return v.base.data[start : start+v.c : start+v.c]
}

// At reads element (i,j) in the view or returns ErrOutOfRange.
// Complexity: O(1).
func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Set writes element (i,j) in the view, honoring the base numeric policy.
// Complexity: O(1).
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.base.validateNaNInf && (math.IsNaN(val) || math.IsInf(val, 0)) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val

	return nil
}

// Clone materializes the window into an independent *Dense with the base policy.
// Complexity: O(r*c).
func (v *MatrixView) Clone() Matrix {
	// The window was validated at construction, so Block cannot fail here.
	d, _ := v.base.Block(v.r0, v.c0, v.r, v.c)

	return d
}

// View narrows the view to [r0:r0+rows, c0:c0+cols) relative to its own origin.
// The result is a view over the same base, so nested windows never copy.
// Errors: ErrBadShape when the window does not fit inside v.
// Complexity: O(1).
func (v *MatrixView) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if rows == 0 || cols == 0 || !validWindow(v.r, v.c, r0, c0, rows, cols) {
		return nil, fmt.Errorf("MatrixView.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView{
		base: v.base,
		r0:   v.r0 + r0,
		c0:   v.c0 + c0,
		r:    rows,
		c:    cols,
	}, nil
}
