// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matlit/matrix"
)

// TestNewDefaultShapes checks the default-constructed shape for each trait family.
func TestNewDefaultShapes(t *testing.T) {
	cases := []struct {
		name       string
		dims       matrix.Dims
		rows, cols int
	}{
		{"MatrixX", matrix.MatrixX, 0, 0},
		{"VectorX", matrix.VectorX, 0, 1},
		{"RowVectorX", matrix.RowVectorX, 1, 0},
		{"Fixed2x3", matrix.Fixed(2, 3), 2, 3},
		{"Vector3", matrix.Vector(3), 3, 1},
		{"FixedZeroRows", matrix.Fixed(0, 4), 0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.New[float64](tc.dims)
			require.NoError(t, err)
			r, c := m.Shape()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			require.Equal(t, tc.rows*tc.cols, m.Size())
			require.Equal(t, tc.dims, m.Dims())
		})
	}
}

// TestNewBadDims ensures New rejects extents that are neither Dynamic nor >= 0.
func TestNewBadDims(t *testing.T) {
	_, err := matrix.New[float64](matrix.Fixed(-2, 1))
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewDenseInvalidDimensions ensures NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[float64](0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[float64](5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense[int](2, 3)
	require.NoError(t, err)
	require.Equal(t, matrix.MatrixX, m.Dims())
}

// TestAtSetOutOfBounds ensures indexers return ErrOutOfRange instead of panicking.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	_, err = m.AtLinear(4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetLinear(-1, 1), matrix.ErrOutOfRange)
}

// TestColumnMajorLayout verifies that (i,j) lives at linear position j*rows + i.
func TestColumnMajorLayout(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7))
	require.NoError(t, m.Set(0, 1, 5))

	v, err := m.AtLinear(2*2 + 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
	require.Equal(t, []float64{0, 0, 5, 0, 0, 7}, m.Data())

	require.NoError(t, m.SetLinear(1, 9))
	got, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 9.0, got)
}

// TestSetNaNPolicy verifies the numeric guard and its opt-out.
func TestSetNaNPolicy(t *testing.T) {
	m, err := matrix.NewDense[float64](1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.SetLinear(0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense[float64](1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
}

// TestResizeHonorsTraits checks that fixed extents cannot change.
func TestResizeHonorsTraits(t *testing.T) {
	v, err := matrix.New[float64](matrix.VectorX)
	require.NoError(t, err)
	require.NoError(t, v.Resize(4, 1))
	require.Equal(t, 4, v.Size())
	require.ErrorIs(t, v.Resize(2, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, v.Resize(-1, 1), matrix.ErrInvalidDimensions)

	f, err := matrix.New[float64](matrix.Fixed(2, 2))
	require.NoError(t, err)
	require.ErrorIs(t, f.Resize(4, 1), matrix.ErrDimensionMismatch)
	require.NoError(t, f.Resize(2, 2))
}

// TestResizeZeroes ensures values are not preserved across a resize.
func TestResizeZeroes(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 3))

	require.NoError(t, m.Resize(1, 4)) // same element count
	require.Equal(t, []float64{0, 0, 0, 0}, m.Data())

	require.NoError(t, m.Resize(3, 3))
	require.Equal(t, 9, m.Size())
}

// TestSetRowFromRowAndColumn lays both vector orientations along a row.
func TestSetRowFromRowAndColumn(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)

	col := matrix.MustFlat[float64](matrix.VectorX, 1, 2, 3)
	row := matrix.MustNested[float64](matrix.RowVectorX, []float64{4, 5, 6})

	require.NoError(t, m.SetRow(0, col))
	require.NoError(t, m.SetRow(1, row))
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String())

	r1, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, r1)
	c2, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, c2)
}

// vecOnly hides the concrete type so SetRow takes its At-based path.
type vecOnly struct{ matrix.Matrix[float64] }

// TestSetRowFallbackPath checks the non-*Dense branch gives the same result.
func TestSetRowFallbackPath(t *testing.T) {
	m, err := matrix.NewDense[float64](1, 2)
	require.NoError(t, err)
	src := matrix.MustNested[float64](matrix.RowVectorX, []float64{8, 9})

	require.NoError(t, m.SetRow(0, vecOnly{src}))
	require.Equal(t, []float64{8, 9}, m.Data())
}

// TestSetRowErrors walks SetRow's error priority.
func TestSetRowErrors(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)

	require.ErrorIs(t, m.SetRow(0, nil), matrix.ErrNilMatrix)
	var nilDense *matrix.Dense[float64]
	require.ErrorIs(t, m.SetRow(0, nilDense), matrix.ErrNilMatrix)

	square, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, m.SetRow(0, square), matrix.ErrInvalidSubShape)

	long := matrix.MustFlat[float64](matrix.VectorX, 1, 2, 3)
	require.ErrorIs(t, m.SetRow(0, long), matrix.ErrShapeMismatch)

	ok := matrix.MustFlat[float64](matrix.VectorX, 1, 2)
	require.ErrorIs(t, m.SetRow(2, ok), matrix.ErrOutOfRange)

	loose, err := matrix.FromFlat[float64](matrix.VectorX, []float64{1, math.NaN()}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, m.SetRow(0, loose), matrix.ErrNaNInf)
	require.Equal(t, []float64{0, 0, 0, 0}, m.Data(), "rejected row must not be written")
	require.NoError(t, m.SetRow(0, ok))
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := matrix.MustNested[float64](matrix.MatrixX, []float64{1, 2}, []float64{3, 4})
	clone := m.Clone()
	require.True(t, m.Equal(clone))
	require.Equal(t, m.Dims(), clone.Dims())

	require.NoError(t, clone.Set(0, 0, 10))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.False(t, m.Equal(clone))
}

// TestEqualShapes compares shape before data.
func TestEqualShapes(t *testing.T) {
	col := matrix.MustFlat[int](matrix.MatrixX, 1, 2)
	row := matrix.MustNested[int](matrix.MatrixX, []float64{1, 2})
	require.False(t, col.Equal(row))

	var a, b *matrix.Dense[int]
	require.True(t, a.Equal(b))
	require.False(t, col.Equal(nil))
}

// TestStringOutput checks String renders logical rows.
func TestStringOutput(t *testing.T) {
	m := matrix.MustNested[int](matrix.Fixed(2, 2), []float64{1, 2}, []float64{3, 4})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	empty, err := matrix.New[int](matrix.MatrixX)
	require.NoError(t, err)
	require.Equal(t, "", empty.String())
}
