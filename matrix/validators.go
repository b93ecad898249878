// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Return plain sentinel errors (tagged, no coordinates) so call sites can wrap uniformly.
//
// Note:
//  - Each validator describes what it assumes (e.g. ValidateVector assumes non-nil).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil. A typed nil
// *Dense stored in the interface counts as nil.
// Complexity: O(1).
func ValidateNotNil[T Scalar](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense[T]); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVector ensures m is a single row or a single column at run time.
// Assumes m is not nil.
// Complexity: O(1).
func ValidateVector[T Scalar](m Matrix[T]) error {
	if m.Rows() != 1 && m.Cols() != 1 {
		return validatorErrorf("ValidateVector", ErrInvalidSubShape)
	}

	return nil
}

// ValidateSubDims ensures traits describe a row-or-column vector family:
// at least one extent is 1 or Dynamic.
// Complexity: O(1).
func ValidateSubDims(d Dims) error {
	if err := d.validate(); err != nil {
		return validatorErrorf("ValidateSubDims", err)
	}
	if !d.AdmitsVector() {
		return validatorErrorf("ValidateSubDims", ErrInvalidSubShape)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal runtime dimensions.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape[T Scalar](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ApproxEqual reports whether a and b have the same shape and every pair of
// elements differs by at most eps (WithEpsilon, DefaultEpsilon otherwise).
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - ErrDimensionMismatch when shapes differ.
//
// Complexity: O(r*c).
func ApproxEqual[T Scalar](a, b Matrix[T], opts ...Option) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, err
	}
	if err := ValidateNotNil(b); err != nil {
		return false, err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, err
	}
	eps := gatherOptions(opts...).eps

	var x, y T
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if x, err = a.At(i, j); err != nil {
				return false, err
			}
			if y, err = b.At(i, j); err != nil {
				return false, err
			}
			if math.Abs(float64(x)-float64(y)) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}
