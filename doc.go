// Package matlit builds dense matrices from initializer-list literals.
//
// 🚀 What is matlit?
//
//	A small, generic library for writing matrix values inline:
//		• Flat lists: {1, 2, 3, 4} fills a vector (or any matching shape)
//		• Nested lists: {{1, 2}, {3, 4}} fills row by row
//		• Stacked vectors: {v1, v2} lays row or column vectors out as rows
//
// Every factory honors the container's dimension traits (fixed or dynamic
// rows and columns), resizes dynamic containers on demand and reports shape
// problems as sentinel errors you can match with errors.Is.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/       Dims traits, the column-major Dense container & literal factories
//	literal/      text parser for "{...}" literals feeding matrix.Build
//	cmd/matlit/   command-line front end (cobra + zap + YAML config)
//	examples/     runnable programs
//
// Quick start:
//
//	m, err := matrix.FromNested[float64](matrix.MatrixX, [][]float64{{1, 2}, {3, 4}})
//
// Install:
//
//	go get github.com/katalvlaran/matlit/matrix
package matlit
