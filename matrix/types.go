// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage and the literal factories.
// This file holds ONLY the element constraint, the dimension traits (Dims)
// and the public Matrix interface. Errors and options live in errors.go and
// options.go.
package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of element types a Dense may hold.
// Literal values are float64 and are converted with T(x) on ingestion.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Dynamic marks an extent that is not fixed by the container's type and is
// decided at run time (by the first resize).
const Dynamic = -1

// ---------- dims literals ----------

const (
	_dimsSep     = "x" // separator between rows and cols: "3x1"
	_dimsDynamic = "X" // rendering of a Dynamic extent: "Xx1"
	_dimsStar    = "*" // accepted alias for Dynamic in ParseDims
)

// Dims are the dimension traits of a container type: each extent is either
// a fixed value (>= 0) or Dynamic.
//
// A fixed extent never changes over the container's lifetime; Resize rejects
// any size contradicting it with ErrDimensionMismatch.
type Dims struct {
	Rows int // fixed row count or Dynamic
	Cols int // fixed column count or Dynamic
}

// Predefined traits mirroring the usual dynamic container family.
var (
	MatrixX    = Dims{Rows: Dynamic, Cols: Dynamic} // fully dynamic matrix
	VectorX    = Dims{Rows: Dynamic, Cols: 1}       // dynamic-length column vector
	RowVectorX = Dims{Rows: 1, Cols: Dynamic}       // dynamic-length row vector
)

// Fixed returns traits for a rows×cols fixed-size matrix.
func Fixed(rows, cols int) Dims { return Dims{Rows: rows, Cols: cols} }

// Vector returns traits for a fixed-length column vector.
func Vector(n int) Dims { return Dims{Rows: n, Cols: 1} }

// RowVector returns traits for a fixed-length row vector.
func RowVector(n int) Dims { return Dims{Rows: 1, Cols: n} }

// validate reports ErrBadShape for an extent that is neither Dynamic nor >= 0.
func (d Dims) validate() error {
	if (d.Rows < 0 && d.Rows != Dynamic) || (d.Cols < 0 && d.Cols != Dynamic) {
		return ErrBadShape
	}

	return nil
}

// initial is the shape of a default-constructed container: fixed extents
// are allocated, dynamic extents start at zero.
func (d Dims) initial() (rows, cols int) {
	rows, cols = d.Rows, d.Cols
	if rows == Dynamic {
		rows = 0
	}
	if cols == Dynamic {
		cols = 0
	}

	return rows, cols
}

// Accepts reports whether a runtime shape rows×cols is compatible with d.
// Complexity: O(1).
func (d Dims) Accepts(rows, cols int) bool {
	return (d.Rows == Dynamic || d.Rows == rows) && (d.Cols == Dynamic || d.Cols == cols)
}

// AdmitsVector reports whether a container with these traits can be a row
// or a column vector: at least one extent is 1 or Dynamic.
func (d Dims) AdmitsVector() bool {
	return d.Rows == 1 || d.Cols == 1 || d.Rows == Dynamic || d.Cols == Dynamic
}

// String renders d as "RxC" with "X" for a Dynamic extent, e.g. "Xx1".
func (d Dims) String() string {
	return extentString(d.Rows) + _dimsSep + extentString(d.Cols)
}

func extentString(n int) string {
	if n == Dynamic {
		return _dimsDynamic
	}

	return strconv.Itoa(n)
}

// ParseDims parses the String form of Dims. A bare "X" (or "*") means
// MatrixX. Either extent may be "X" or "*" for Dynamic.
//
// Errors:
//   - ErrBadShape (wrapped with the offending text) on any malformed input.
//
// Complexity: O(len(s)).
func ParseDims(s string) (Dims, error) {
	s = strings.TrimSpace(s)
	if s == _dimsDynamic || s == _dimsStar {
		return MatrixX, nil
	}
	rs, cs, ok := strings.Cut(s, _dimsSep)
	if !ok {
		return Dims{}, fmt.Errorf("ParseDims(%q): %w", s, ErrBadShape)
	}
	r, err := parseExtent(rs)
	if err != nil {
		return Dims{}, fmt.Errorf("ParseDims(%q): rows: %w", s, err)
	}
	c, err := parseExtent(cs)
	if err != nil {
		return Dims{}, fmt.Errorf("ParseDims(%q): cols: %w", s, err)
	}

	return Dims{Rows: r, Cols: c}, nil
}

func parseExtent(s string) (int, error) {
	if s == _dimsDynamic || s == _dimsStar {
		return Dynamic, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, ErrBadShape
	}

	return n, nil
}

// Matrix is the read/write surface shared by Dense and anything that can be
// stacked into a Dense row (SetRow accepts any Matrix shaped as a vector).
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Scalar] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j) or ErrOutOfRange.
	At(i, j int) (T, error)

	// Set assigns v at (i, j) or returns ErrOutOfRange / ErrNaNInf.
	Set(i, j int, v T) error
}
