package literal_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matlit/literal"
	"github.com/katalvlaran/matlit/matrix"
)

func TestParseFlat(t *testing.T) {
	cases := map[string][]float64{
		"{1, 2, 3, 4}":   {1, 2, 3, 4},
		"[6,5,8,6]":      {6, 5, 8, 6},
		"{-2.5, 1e3, 0}": {-2.5, 1000, 0},
		"{}":             {},
		"  { 7 }  ":      {7},
	}
	for src, want := range cases {
		v, err := literal.Parse(src)
		require.NoError(t, err, src)
		require.Equal(t, 1, v.Depth(), src)
		require.Nil(t, v.Nested())
		if diff := cmp.Diff(want, v.Flat()); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", src, diff)
		}
	}
}

func TestParseNested(t *testing.T) {
	cases := map[string][][]float64{
		"{{1, 2}, {3, 4}}":  {{1, 2}, {3, 4}},
		"[[1],[2],[3]]":     {{1}, {2}, {3}},
		"{{1, 2, 3}}":       {{1, 2, 3}},
		"{{}}":              {{}},
		"{{1, 2}, {3}}":     {{1, 2}, {3}},
		"{ {0.5}, [-1.5] }": {{0.5}, {-1.5}},
	}
	for src, want := range cases {
		v, err := literal.Parse(src)
		require.NoError(t, err, src)
		require.Equal(t, 2, v.Depth(), src)
		require.Nil(t, v.Flat())
		if diff := cmp.Diff(want, v.Nested()); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", src, diff)
		}
	}
}

func TestParseSpecialFloats(t *testing.T) {
	v, err := literal.Parse("{.inf, -.inf, .nan}")
	require.NoError(t, err)
	got := v.Flat()
	require.Len(t, got, 3)
	require.True(t, math.IsInf(got[0], 1))
	require.True(t, math.IsInf(got[1], -1))
	require.True(t, math.IsNaN(got[2]))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src  string
		want error
	}{
		{"", literal.ErrSyntax},
		{"1, 2, 3", literal.ErrSyntax},
		{"{1, 2", literal.ErrSyntax},
		{"{a, b}", literal.ErrSyntax},
		{"{true}", literal.ErrSyntax},
		{"{key: 1}", literal.ErrSyntax},
		{"{1, {2}}", literal.ErrMixedDepth},
		{"{{1}, 2}", literal.ErrMixedDepth},
		{"{{{1}}}", literal.ErrTooDeep},
		{"{{1, {2}}}", literal.ErrTooDeep},
	}
	for _, tc := range cases {
		_, err := literal.Parse(tc.src)
		require.ErrorIs(t, err, tc.want, tc.src)
	}
}

// TestValueLiteral feeds parsed values straight into matrix.Build.
func TestValueLiteral(t *testing.T) {
	v, err := literal.Parse("{{1, 2}, {3, 4}}")
	require.NoError(t, err)
	lit := v.Literal()
	require.Equal(t, matrix.KindNested, lit.Kind())
	m, err := matrix.Build(matrix.MatrixX, lit)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 2, 4}, m.Data())

	v, err = literal.Parse("{1, 2, 3, 4}")
	require.NoError(t, err)
	m, err = matrix.Build(matrix.Vector(4), v.Literal())
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, m.Data())

	v, err = literal.Parse("{{1, 2}, {3}}")
	require.NoError(t, err)
	_, err = matrix.Build(matrix.MatrixX, v.Literal())
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}
