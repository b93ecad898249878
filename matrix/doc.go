// Package matrix offers a generic column-major dense container and factories
// that build it from literal lists.
//
// The matrix package provides:
//
//   - Dense[T], a rectangular container over any integer or float element
//     type, carrying dimension traits (Dims) in which each extent is fixed or
//     Dynamic. New(dims) yields the default-constructed container: fixed
//     extents allocated, dynamic extents zero.
//   - FromFlat: {1, 2, 3, 4} on an empty container gives a 4×1 column;
//     on a pre-sized container the count must match.
//   - FromNested: {{1, 2}, {3, 4}} gives a 2×2 whose raw buffer is
//     [1, 3, 2, 4] (column-major).
//   - FromVectors: a list of row or column vectors becomes the rows of a
//     larger container.
//   - Literal / Build: the three shapes as one tagged value.
//   - ToGonum / FromGonum for interop with gonum.org/v1/gonum/mat.
//
// Shape errors are returned as sentinels (ErrShapeMismatch,
// ErrInvalidSubShape, ErrRaggedRows, ...). Use the Must* helpers where a
// wrong literal is a programming error and should stop the program.
//
// See the examples in this package for usage patterns.
package matrix
