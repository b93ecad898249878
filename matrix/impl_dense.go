// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Provide a flat column-major buffer with the explicit index formula j*rows + i,
//     so that the linear position used by the literal factories is the raw offset.
//   - Guarantee safety at the public surface: At/Set/AtLinear/SetLinear return errors.
//   - Carry the container's dimension traits (Dims) and refuse resizes that contradict them.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) captured at creation.
//
// Complexity quicksheet:
//   - New/NewDense: O(r*c) zero-init; At/Set: O(1); Resize: O(r*c); SetRow: O(c); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxNewDense  = "NewDense"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxAtLinear  = "AtLinear"
	ctxSetLinear = "SetLinear"
	ctxResize    = "Resize"
	ctxSetRow    = "SetRow"
	ctxRow       = "Row"
	ctxCol       = "Col"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with a uniform Dense context and coordinates.
func denseErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, a, b, err)
}

// Dense is a concrete column-major container.
//   - r,c hold the runtime shape.
//   - dims are the traits the container was created with (fixed or Dynamic per extent).
//   - data is a flat buffer of length r*c (offset = j*r + i).
//   - validateNaNInf enables NaN/Inf rejection on writes.
type Dense[T Scalar] struct {
	r, c           int
	dims           Dims
	data           []T
	validateNaNInf bool
}

var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[int])(nil)
)

// New creates the default-constructed container for the given traits.
// MAIN DESCRIPTION:
//   - Fixed extents are allocated and zero-filled; Dynamic extents start at 0.
//     New[float64](MatrixX) is 0×0, New[float64](VectorX) is 0×1,
//     New[float64](Fixed(2, 3)) is a zeroed 2×3.
//
// Errors:
//   - ErrBadShape when dims carry an extent that is neither Dynamic nor >= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the fixed extents.
func New[T Scalar](dims Dims, opts ...Option) (*Dense[T], error) {
	if err := dims.validate(); err != nil {
		return nil, fmt.Errorf("%s(%s): %w", ctxNew, dims, err)
	}
	o := gatherOptions(opts...)
	r, c := dims.initial()

	return &Dense[T]{
		r:              r,
		c:              c,
		dims:           dims,
		data:           make([]T, r*c),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDense creates a zeroed rows×cols container with MatrixX traits, i.e. a
// dynamic matrix that is already sized.
// Public creation forbids empty dimensions to avoid accidental 0×0 matrices;
// use New(MatrixX) for an unshaped container.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
func NewDense[T Scalar](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(ctxNewDense, rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense[T]{
		r:              rows,
		c:              cols,
		dims:           MatrixX,
		data:           make([]T, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Size returns the total element count rows*cols. Complexity: O(1).
func (m *Dense[T]) Size() int { return len(m.data) }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Dims returns the traits the container was created with.
func (m *Dense[T]) Dims() Dims { return m.dims }

// indexOf bounds-checks (row, col) and returns the column-major offset.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return col*m.r + row, nil
}

// accepts reports whether v may be stored under the container's numeric policy.
func (m *Dense[T]) accepts(v float64) bool {
	return !m.validateNaNInf || !isNonFinite(v)
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values under policy.
//
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if !m.accepts(float64(v)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// AtLinear returns the element at linear (column-major) position p.
// Complexity: O(1).
func (m *Dense[T]) AtLinear(p int) (T, error) {
	if p < 0 || p >= len(m.data) {
		return 0, denseErrorf(ctxAtLinear, p, len(m.data), ErrOutOfRange)
	}

	return m.data[p], nil
}

// SetLinear stores v at linear (column-major) position p.
// Complexity: O(1).
func (m *Dense[T]) SetLinear(p int, v T) error {
	if p < 0 || p >= len(m.data) {
		return denseErrorf(ctxSetLinear, p, len(m.data), ErrOutOfRange)
	}
	if !m.accepts(float64(v)) {
		return denseErrorf(ctxSetLinear, p, len(m.data), ErrNaNInf)
	}
	m.data[p] = v

	return nil
}

// storeLiteral converts a literal value to T and writes it at linear
// position p. The caller guarantees p is in range.
func (m *Dense[T]) storeLiteral(p int, x float64) error {
	if !m.accepts(x) {
		return ErrNaNInf
	}
	m.data[p] = T(x)

	return nil
}

// Resize changes the runtime shape to rows×cols.
// MAIN DESCRIPTION:
//   - Honors the container's traits: a fixed extent may only be "resized" to itself.
//
// Implementation:
//   - Stage 1: reject negatives (ErrInvalidDimensions) and trait violations (ErrDimensionMismatch).
//   - Stage 2: reuse the buffer when the element count is unchanged, else allocate.
//   - Stage 3: zero the buffer.
//
// Behavior highlights:
//   - Values are NOT preserved; the result is zero-filled.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols) when reallocating.
func (m *Dense[T]) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return denseErrorf(ctxResize, rows, cols, ErrInvalidDimensions)
	}
	if !m.dims.Accepts(rows, cols) {
		return fmt.Errorf("Dense.%s(%d,%d): traits %s: %w", ctxResize, rows, cols, m.dims, ErrDimensionMismatch)
	}
	if n := rows * cols; n == len(m.data) {
		clear(m.data)
	} else {
		m.data = make([]T, n)
	}
	m.r, m.c = rows, cols

	return nil
}

// SetRow assigns the vector v wholesale into row i.
// MAIN DESCRIPTION:
//   - v may be a row (1×n) or a column (n×1); its elements are laid out
//     along row i in index order either way.
//
// Implementation:
//   - Stage 1: validate v (non-nil, vector-shaped, length == Cols()) and i.
//   - Stage 2: fast path for *Dense (flat buffer walk), else At-based fallback.
//   - Stage 3: check every value against the numeric policy before writing,
//     so a rejected row leaves the container untouched.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidSubShape, ErrShapeMismatch, ErrOutOfRange, ErrNaNInf.
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Dense[T]) SetRow(i int, v Matrix[T]) error {
	if err := ValidateNotNil(v); err != nil {
		return denseErrorf(ctxSetRow, i, 0, err)
	}
	if err := ValidateVector(v); err != nil {
		return denseErrorf(ctxSetRow, i, 0, err)
	}
	n := v.Rows() * v.Cols()
	if n != m.c {
		return fmt.Errorf("Dense.%s(%d): vector of length %d into %d columns: %w", ctxSetRow, i, n, m.c, ErrShapeMismatch)
	}
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, m.r, ErrOutOfRange)
	}

	row := make([]T, n)
	if d, ok := v.(*Dense[T]); ok {
		// A vector's column-major buffer is already in index order.
		copy(row, d.data)
	} else {
		colVec := v.Cols() == 1
		var err error
		for k := 0; k < n; k++ {
			if colVec {
				row[k], err = v.At(k, 0)
			} else {
				row[k], err = v.At(0, k)
			}
			if err != nil {
				return fmt.Errorf("Dense.%s(%d): %w", ctxSetRow, i, err)
			}
		}
	}
	for j, x := range row {
		if !m.accepts(float64(x)) {
			return denseErrorf(ctxSetRow, i, j, ErrNaNInf)
		}
	}
	for j, x := range row {
		m.data[j*m.r+i] = x
	}

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, m.r, ErrOutOfRange)
	}
	out := make([]T, m.c)
	for j := range out {
		out[j] = m.data[j*m.r+i]
	}

	return out, nil
}

// Col returns a copy of column j (contiguous in storage).
// Complexity: O(r).
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, j, m.c, ErrOutOfRange)
	}
	out := make([]T, m.r)
	copy(out, m.data[j*m.r:(j+1)*m.r])

	return out, nil
}

// Data returns a copy of the column-major backing buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy with the same traits and numeric policy.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{
		r:              m.r,
		c:              m.c,
		dims:           m.dims,
		data:           m.Data(),
		validateNaNInf: m.validateNaNInf,
	}
}

// Equal reports whether o has the same runtime shape and identical elements.
// Traits and numeric policy are not compared.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for p := range m.data {
		if m.data[p] != o.data[p] {
			return false
		}
	}

	return true
}

// String renders logical rows, one per line: "[1, 2]\n[3, 4]\n".
// Intended for diagnostics; not for hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[j*m.r+i])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
