// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every public function
// returns one of these (possibly wrapped with call-site context) and tests
// match them via errors.Is. Panics are reserved for the Must* helpers and for
// nonsensical option parameters (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// wrap with fmt.Errorf("<Ctx>: ...: %w", ErrX); a literal factory may wrap two
// sentinels at once (e.g. ErrShapeMismatch and the ErrDimensionMismatch that
// Resize reported) so callers can match either.
//
// ERROR PRIORITY (enforced in tests):
// bad dims -> nil operand -> sub-container shape -> ragged rows
// -> shape mismatch -> numeric policy.

var (
	// ErrBadShape is returned when a Dims value carries an extent that is
	// neither Dynamic nor >= 0, or when a dims string cannot be parsed.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates negative (or, for NewDense, non-positive)
	// runtime dimensions.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row, column or linear position)
	// is outside valid bounds. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// or a resize that contradicts a fixed extent.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrShapeMismatch is the "invalid shape" kind of the literal factories:
	// the literal's element/row/column count does not fit the target.
	ErrShapeMismatch = errors.New("matrix: literal shape does not match target")

	// ErrInvalidSubShape signals a sub-container that is neither a row nor a
	// column vector (statically or at run time).
	ErrInvalidSubShape = errors.New("matrix: sub-container is neither a row nor a column")

	// ErrRaggedRows signals a nested literal whose rows differ in length.
	ErrRaggedRows = errors.New("matrix: nested literal rows differ in length")

	// ErrUnknownLiteral is returned by Build for a zero Literal value.
	ErrUnknownLiteral = errors.New("matrix: unknown literal kind")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (literal ingestion, Set, SetRow).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
