// SPDX-License-Identifier: MIT

// Package matrix - literal-list factories.
//
// Purpose:
//   - Build a container from a flat list of scalars (FromFlat), a nested list of
//     rows (FromNested) or a list of row/column vectors (FromVectors).
//   - Each factory starts from the default-constructed container for the
//     requested traits, resizes it only when it is still empty (size 0),
//     checks the literal's shape against it and copies the values in order.
//
// Determinism & Policy:
//   - Fixed copy orders; no partial results are returned on error.
//   - Every literal value passes the numeric policy (see options.go).
//
// Layout:
//   - Writes use the column-major linear position: the nested value at
//     outer index i, inner index j lands at rows*j + i.

package matrix

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

const (
	ctxFromFlat    = "FromFlat"
	ctxFromNested  = "FromNested"
	ctxFromVectors = "FromVectors"
)

// Mode tells how FromVectors reads its sub-containers.
type Mode uint8

const (
	// ModeVertical: sub-containers are columns.
	ModeVertical Mode = iota + 1
	// ModeHorizontal: sub-containers are rows.
	ModeHorizontal
)

// String returns "vertical", "horizontal" or "invalid".
func (md Mode) String() string {
	switch md {
	case ModeVertical:
		return "vertical"
	case ModeHorizontal:
		return "horizontal"
	default:
		return "invalid"
	}
}

// resizeErrorf reports a failed resize as a literal shape mismatch while
// keeping the Resize sentinel reachable through errors.Is.
func resizeErrorf(ctx string, err error) error {
	return fmt.Errorf("%s: %w: %w", ctx, ErrShapeMismatch, err)
}

// FromFlat builds a container from a flat list of scalars.
// MAIN DESCRIPTION:
//   - An empty (size 0) default container becomes a len(values)×1 column.
//   - Otherwise len(values) must equal the pre-sized element count.
//
// Implementation:
//   - Stage 1: New(dims); resize to (n, 1) when Size()==0.
//   - Stage 2: require n == Size(); ErrShapeMismatch otherwise.
//   - Stage 3: copy values[p] into linear position p, converting to T.
//
// Behavior highlights:
//   - Never truncates or pads.
//   - Empty literal on MatrixX yields a 0×1 container.
//   - On a RowVectorX target the (n, 1) resize contradicts the fixed row
//     extent unless n == 1; build row vectors with FromNested instead.
//
// Errors:
//   - ErrBadShape (dims), ErrShapeMismatch (+ErrDimensionMismatch from
//     Resize), ErrNaNInf.
//
// Complexity:
//   - Time O(n), Space O(n).
func FromFlat[T Scalar](dims Dims, values []float64, opts ...Option) (*Dense[T], error) {
	m, err := New[T](dims, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromFlat, err)
	}
	n := len(values)
	if m.Size() == 0 {
		if err = m.Resize(n, 1); err != nil {
			return nil, resizeErrorf(ctxFromFlat, err)
		}
	}
	if n != m.Size() {
		return nil, fmt.Errorf("%s: %d values for %s target holding %d: %w",
			ctxFromFlat, n, dims, m.Size(), ErrShapeMismatch)
	}
	for p, x := range values {
		if err = m.storeLiteral(p, x); err != nil {
			return nil, fmt.Errorf("%s: value %d: %w", ctxFromFlat, p, err)
		}
	}

	return m, nil
}

// FromNested builds a container from a nested list (rows of scalars).
// MAIN DESCRIPTION:
//   - rows[i][j] is element (i, j) of a len(rows)×len(rows[0]) grid.
//
// Implementation:
//   - Stage 1: New(dims); an empty outer list returns it unresized.
//   - Stage 2: every row must have len(rows[0]) values (ErrRaggedRows lists each offender).
//   - Stage 3: resize to (r, c) when Size()==0; require r*c == Size().
//   - Stage 4: copy rows[i][j] into linear position r*j + i.
//
// Behavior highlights:
//   - Unlike FromFlat, an empty literal does NOT resize: MatrixX stays 0×0.
//   - Only the element count of a pre-sized target is checked, so a 4×1 fixed
//     target accepts a 2×2 literal and receives its column-major buffer.
//
// Errors:
//   - ErrBadShape, ErrRaggedRows, ErrShapeMismatch (+ErrDimensionMismatch), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromNested[T Scalar](dims Dims, rows [][]float64, opts ...Option) (*Dense[T], error) {
	m, err := New[T](dims, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromNested, err)
	}
	r := len(rows)
	if r == 0 {
		return m, nil
	}
	c := len(rows[0])
	if err = validateRowLengths(rows, c); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromNested, err)
	}
	if m.Size() == 0 {
		if err = m.Resize(r, c); err != nil {
			return nil, resizeErrorf(ctxFromNested, err)
		}
	}
	if r*c != m.Size() {
		return nil, fmt.Errorf("%s: %dx%d literal for %s target holding %d: %w",
			ctxFromNested, r, c, dims, m.Size(), ErrShapeMismatch)
	}
	for i, row := range rows {
		for j, x := range row {
			if err = m.storeLiteral(r*j+i, x); err != nil {
				return nil, fmt.Errorf("%s: value (%d,%d): %w", ctxFromNested, i, j, err)
			}
		}
	}

	return m, nil
}

// validateRowLengths collects one error per row whose length differs from want.
func validateRowLengths(rows [][]float64, want int) error {
	var errs *multierror.Error
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != want {
			errs = multierror.Append(errs,
				fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), want, ErrRaggedRows))
		}
	}

	return errs.ErrorOrNil()
}

// StackMode decides how FromVectors reads its sub-containers from the
// sub-container traits and the first sub-container.
//
// Rules, first match wins:
//   - inner.Cols == 1                           → ModeVertical
//   - inner.Rows == 1                           → ModeHorizontal
//   - inner.Cols == Dynamic && first.Cols()==1  → ModeVertical
//   - inner.Rows == Dynamic && first.Rows()==1  → ModeHorizontal
//   - otherwise ErrInvalidSubShape.
//
// Complexity: O(1).
func StackMode[T Scalar](inner Dims, first Matrix[T]) (Mode, error) {
	if err := ValidateNotNil(first); err != nil {
		return 0, err
	}
	switch {
	case inner.Cols == 1:
		return ModeVertical, nil
	case inner.Rows == 1:
		return ModeHorizontal, nil
	case inner.Cols == Dynamic && first.Cols() == 1:
		return ModeVertical, nil
	case inner.Rows == Dynamic && first.Rows() == 1:
		return ModeHorizontal, nil
	}

	return 0, fmt.Errorf("StackMode(%s, %dx%d): %w", inner, first.Rows(), first.Cols(), ErrInvalidSubShape)
}

// emptyStackCols is the column count implied by the sub-container traits
// when no sub-container is given: a fixed-length vector contributes its
// length, a dynamic-length vector contributes 1, anything else 0.
func emptyStackCols(inner Dims) int {
	cols := 0
	if inner.Cols == 1 {
		cols = 1
		if inner.Rows != Dynamic {
			cols = inner.Rows
		}
	}
	if inner.Rows == 1 {
		cols = 1
		if inner.Cols != Dynamic {
			cols = inner.Cols
		}
	}

	return cols
}

// FromVectors stacks row or column vectors into the rows of a container.
// MAIN DESCRIPTION:
//   - vecs[i] becomes row i regardless of being a row or a column vector.
//   - inner are the traits shared by every sub-container.
//
// Implementation:
//   - Stage 1: inner must admit vectors (ErrInvalidSubShape); every vector
//     must be non-nil and carry Dims()==inner.
//   - Stage 2 (empty list): cols from inner (see emptyStackCols); the target
//     traits must allow (0, cols); the result is resized to 0×cols.
//   - Stage 3: pick the Mode from the first vector; cols is its length.
//   - Stage 4: resize to (len(vecs), cols) when Size()==0; the shape must
//     then equal (len(vecs), cols).
//   - Stage 5: SetRow(i, vecs[i]) in order.
//
// Errors:
//   - ErrBadShape, ErrInvalidSubShape, ErrNilMatrix, ErrDimensionMismatch,
//     ErrShapeMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(k*c), Space O(k*c) for k vectors of length c.
func FromVectors[T Scalar](dims, inner Dims, vecs []*Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateSubDims(inner); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromVectors, err)
	}
	for i, v := range vecs {
		if v == nil {
			return nil, fmt.Errorf("%s: vector %d: %w", ctxFromVectors, i, ErrNilMatrix)
		}
		if v.Dims() != inner {
			return nil, fmt.Errorf("%s: vector %d has traits %s, want %s: %w",
				ctxFromVectors, i, v.Dims(), inner, ErrDimensionMismatch)
		}
	}
	m, err := New[T](dims, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromVectors, err)
	}

	rows := len(vecs)
	if rows == 0 {
		cols := emptyStackCols(inner)
		rowsOK := dims.Rows == 0 || dims.Rows == Dynamic
		colsOK := dims.Cols == cols || dims.Cols == Dynamic
		if !rowsOK || !colsOK {
			return nil, fmt.Errorf("%s: empty list implies 0x%d, target %s: %w",
				ctxFromVectors, cols, dims, ErrShapeMismatch)
		}
		if err = m.Resize(0, cols); err != nil {
			return nil, resizeErrorf(ctxFromVectors, err)
		}

		return m, nil
	}

	first := vecs[0]
	mode, err := StackMode[T](inner, first)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromVectors, err)
	}
	cols := first.Rows()
	if mode == ModeHorizontal {
		cols = first.Cols()
	}
	if m.Size() == 0 {
		if err = m.Resize(rows, cols); err != nil {
			return nil, resizeErrorf(ctxFromVectors, err)
		}
	}
	if m.r != rows || m.c != cols {
		return nil, fmt.Errorf("%s: %d %s vectors of length %d for %dx%d target: %w",
			ctxFromVectors, rows, mode, cols, m.r, m.c, ErrShapeMismatch)
	}
	for i, v := range vecs {
		if err = m.SetRow(i, v); err != nil {
			return nil, fmt.Errorf("%s: vector %d: %w", ctxFromVectors, i, err)
		}
	}

	return m, nil
}
