// SPDX-License-Identifier: MIT

// Package matrix - Literal: one value for the three literal shapes.
//
// Purpose:
//   - Model {flat scalars, nested scalars, list of vectors} as an explicit
//     tagged union so callers can carry a literal around and build it later.
//   - Build dispatches to FromFlat / FromNested / FromVectors.
//   - Must* helpers turn any error into a panic for fail-fast call sites
//     (package-level fixtures, tests, examples).

package matrix

import "fmt"

// Kind tags the shape of a Literal.
type Kind uint8

const (
	// KindInvalid is the zero Kind; Build rejects it.
	KindInvalid Kind = iota
	// KindFlat: a flat list of scalars.
	KindFlat
	// KindNested: a list of rows of scalars.
	KindNested
	// KindVectors: a list of row or column vectors.
	KindVectors
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindFlat:
		return "flat"
	case KindNested:
		return "nested"
	case KindVectors:
		return "vectors"
	default:
		return "invalid"
	}
}

// Literal holds one literal list. The slices are referenced, not copied;
// the literal is meant to be built right away.
type Literal[T Scalar] struct {
	kind   Kind
	flat   []float64
	nested [][]float64
	inner  Dims
	vecs   []*Dense[T]
}

// Flat returns a flat literal.
func Flat[T Scalar](values ...float64) Literal[T] {
	return Literal[T]{kind: KindFlat, flat: values}
}

// Nested returns a nested (row-wise) literal.
func Nested[T Scalar](rows ...[]float64) Literal[T] {
	return Literal[T]{kind: KindNested, nested: rows}
}

// Vectors returns a list-of-vectors literal whose elements share the traits inner.
func Vectors[T Scalar](inner Dims, vecs ...*Dense[T]) Literal[T] {
	return Literal[T]{kind: KindVectors, inner: inner, vecs: vecs}
}

// Kind reports the literal's shape tag.
func (l Literal[T]) Kind() Kind { return l.kind }

// Len is the outer length: values, rows or vectors.
func (l Literal[T]) Len() int {
	switch l.kind {
	case KindFlat:
		return len(l.flat)
	case KindNested:
		return len(l.nested)
	case KindVectors:
		return len(l.vecs)
	default:
		return 0
	}
}

// Build constructs a container with traits dims from lit.
// Errors are those of the selected factory, or ErrUnknownLiteral.
// Complexity: that of the selected factory.
func Build[T Scalar](dims Dims, lit Literal[T], opts ...Option) (*Dense[T], error) {
	switch lit.kind {
	case KindFlat:
		return FromFlat[T](dims, lit.flat, opts...)
	case KindNested:
		return FromNested[T](dims, lit.nested, opts...)
	case KindVectors:
		return FromVectors[T](dims, lit.inner, lit.vecs, opts...)
	default:
		return nil, fmt.Errorf("Build(%s): %w", dims, ErrUnknownLiteral)
	}
}

// MustBuild is Build that panics on error.
func MustBuild[T Scalar](dims Dims, lit Literal[T], opts ...Option) *Dense[T] {
	return must[T](Build[T](dims, lit, opts...))
}

// MustFlat is FromFlat that panics on error.
func MustFlat[T Scalar](dims Dims, values ...float64) *Dense[T] {
	return must[T](FromFlat[T](dims, values))
}

// MustNested is FromNested that panics on error.
func MustNested[T Scalar](dims Dims, rows ...[]float64) *Dense[T] {
	return must[T](FromNested[T](dims, rows))
}

// MustVectors is FromVectors that panics on error.
func MustVectors[T Scalar](dims, inner Dims, vecs ...*Dense[T]) *Dense[T] {
	return must[T](FromVectors[T](dims, inner, vecs))
}

func must[T Scalar](m *Dense[T], err error) *Dense[T] {
	if err != nil {
		panic(err)
	}

	return m
}
