// SPDX-License-Identifier: MIT

// Package matrix - conversions to and from gonum/mat.
//
// gonum stores *mat.Dense row-major, so every conversion walks elements by
// (i, j) rather than copying buffers.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new row-major *mat.Dense.
// A container with a zero extent maps to an empty (zero value) *mat.Dense,
// since gonum does not allocate zero-length matrices.
// Complexity: O(r*c).
func (m *Dense[T]) ToGonum() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return &mat.Dense{}
	}
	buf := make([]float64, m.r*m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			buf[i*m.c+j] = float64(m.data[j*m.r+i])
		}
	}

	return mat.NewDense(m.r, m.c, buf)
}

// FromGonum copies any mat.Matrix into a MatrixX container of the same shape.
//
// Errors:
//   - ErrNilMatrix for a nil src.
//   - ErrNaNInf when src holds non-finite values under the numeric policy.
//
// Complexity: O(r*c).
func FromGonum[T Scalar](src mat.Matrix, opts ...Option) (*Dense[T], error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := New[T](MatrixX, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	if err = m.Resize(r, c); err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if err = m.storeLiteral(j*r+i, src.At(i, j)); err != nil {
				return nil, denseErrorf("FromGonum", i, j, err)
			}
		}
	}

	return m, nil
}

// VecFromGonum copies a mat.Vector into a VectorX column via FromFlat.
// Complexity: O(n).
func VecFromGonum[T Scalar](v mat.Vector, opts ...Option) (*Dense[T], error) {
	if v == nil {
		return nil, fmt.Errorf("VecFromGonum: %w", ErrNilMatrix)
	}
	values := make([]float64, v.Len())
	for i := range values {
		values[i] = v.AtVec(i)
	}

	return FromFlat[T](VectorX, values, opts...)
}
