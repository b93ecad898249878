// SPDX-License-Identifier: MIT

// Package literal parses brace-enclosed literal lists written as text,
// e.g. "{1, 2, 3, 4}" or "{{1, 2}, {3, 4}}", into values the matrix
// factories accept.
//
// Braces and brackets are interchangeable. After normalizing braces to
// brackets the text is a YAML flow sequence, so numbers follow YAML rules:
// 1, -2.5, 1e3, .inf and .nan are all accepted.
package literal

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matlit/matrix"
)

var (
	// ErrSyntax is returned for text that is not a list of numbers.
	ErrSyntax = errors.New("literal: syntax error")

	// ErrMixedDepth is returned when one list mixes scalars and lists.
	ErrMixedDepth = errors.New("literal: scalars and lists mixed at one level")

	// ErrTooDeep is returned for lists nested more than two levels.
	ErrTooDeep = errors.New("literal: nesting deeper than two levels")
)

var braces = strings.NewReplacer("{", "[", "}", "]")

// Value is a parsed literal: flat (Depth 1) or nested (Depth 2).
// An empty outer list ("{}") is flat.
type Value struct {
	depth  int
	flat   []float64
	nested [][]float64
}

// Depth is 1 for a flat list and 2 for a nested one.
func (v Value) Depth() int { return v.depth }

// Flat returns the scalars of a flat literal (nil for nested).
func (v Value) Flat() []float64 { return v.flat }

// Nested returns the rows of a nested literal (nil for flat).
func (v Value) Nested() [][]float64 { return v.nested }

// Literal converts v into the matching matrix literal.
func (v Value) Literal() matrix.Literal[float64] {
	if v.depth == 2 {
		return matrix.Nested[float64](v.nested...)
	}

	return matrix.Flat[float64](v.flat...)
}

// Parse reads a single literal list from src.
//
// Errors:
//   - ErrSyntax: malformed text, non-numeric scalar, a mapping, or no list at all.
//   - ErrMixedDepth: e.g. "{1, {2}}".
//   - ErrTooDeep: e.g. "{{{1}}}".
//
// Row lengths of nested literals are not checked here; FromNested reports
// ragged rows with matrix.ErrRaggedRows.
func Parse(src string) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(braces.Replace(src)), &doc); err != nil {
		return Value{}, fmt.Errorf("Parse(%q): %w: %v", src, ErrSyntax, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return Value{}, fmt.Errorf("Parse(%q): empty input: %w", src, ErrSyntax)
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return Value{}, fmt.Errorf("Parse(%q): not a list: %w", src, ErrSyntax)
	}

	switch depthOf(root) {
	case 1:
		flat, err := scalars(root, ErrMixedDepth)
		if err != nil {
			return Value{}, fmt.Errorf("Parse(%q): %w", src, err)
		}

		return Value{depth: 1, flat: flat}, nil
	case 2:
		nested := make([][]float64, len(root.Content))
		for i, row := range root.Content {
			if row.Kind != yaml.SequenceNode {
				return Value{}, fmt.Errorf("Parse(%q): row %d: %w", src, i, ErrMixedDepth)
			}
			vals, err := scalars(row, ErrTooDeep)
			if err != nil {
				return Value{}, fmt.Errorf("Parse(%q): row %d: %w", src, i, err)
			}
			nested[i] = vals
		}

		return Value{depth: 2, nested: nested}, nil
	}

	return Value{}, fmt.Errorf("Parse(%q): element 0: %w", src, ErrSyntax)
}

// depthOf classifies a sequence by its first element: 1 when it holds
// scalars (or nothing), 2 when it holds sequences, 0 otherwise.
func depthOf(seq *yaml.Node) int {
	if len(seq.Content) == 0 {
		return 1
	}
	switch seq.Content[0].Kind {
	case yaml.ScalarNode:
		return 1
	case yaml.SequenceNode:
		return 2
	default:
		return 0
	}
}

// scalars decodes a sequence whose children must all be numeric scalars.
// A child sequence is reported as onList.
func scalars(seq *yaml.Node, onList error) ([]float64, error) {
	out := make([]float64, len(seq.Content))
	for i, n := range seq.Content {
		switch n.Kind {
		case yaml.ScalarNode:
		case yaml.SequenceNode:
			return nil, fmt.Errorf("element %d: %w", i, onList)
		default:
			return nil, fmt.Errorf("element %d: %w", i, ErrSyntax)
		}
		if err := n.Decode(&out[i]); err != nil {
			return nil, fmt.Errorf("element %d %q: %w", i, n.Value, ErrSyntax)
		}
	}

	return out, nil
}
