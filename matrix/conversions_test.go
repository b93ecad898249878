package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matlit/matrix"
)

// TestToGonumKeepsLogicalLayout: gonum is row-major, values keep their (i,j).
func TestToGonumKeepsLogicalLayout(t *testing.T) {
	m := matrix.MustNested[float64](matrix.MatrixX, []float64{1, 2, 3}, []float64{4, 5, 6})
	g := m.ToGonum()
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, g.RawMatrix().Data)
	require.Equal(t, 6.0, g.At(1, 2))
}

// TestToGonumEmpty maps zero extents to an empty gonum matrix.
func TestToGonumEmpty(t *testing.T) {
	m := matrix.MustFlat[float64](matrix.MatrixX)
	require.True(t, m.ToGonum().IsEmpty())
}

// TestFromGonumRoundTrip rebuilds the same matrix.
func TestFromGonumRoundTrip(t *testing.T) {
	src := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	m, err := matrix.FromGonum[float64](src)
	require.NoError(t, err)
	require.Equal(t, matrix.MatrixX, m.Dims())
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
	require.True(t, mat.Equal(src, m.ToGonum()))

	ints, err := matrix.FromGonum[int](src.T())
	require.NoError(t, err)
	require.Equal(t, "[1, 3]\n[2, 4]\n", ints.String())
}

// TestFromGonumErrors covers nil input and the numeric policy.
func TestFromGonumErrors(t *testing.T) {
	_, err := matrix.FromGonum[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	src := mat.NewDense(1, 2, []float64{1, math.NaN()})
	_, err = matrix.FromGonum[float64](src)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.FromGonum[float64](src, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.Equal(t, 2, m.Size())
}

// TestVecFromGonum builds a VectorX column usable by FromVectors.
func TestVecFromGonum(t *testing.T) {
	a, err := matrix.VecFromGonum[float64](mat.NewVecDense(3, []float64{1, 2, 3}))
	require.NoError(t, err)
	b, err := matrix.VecFromGonum[float64](mat.NewVecDense(3, []float64{4, 5, 6}))
	require.NoError(t, err)
	require.Equal(t, matrix.VectorX, a.Dims())

	m, err := matrix.FromVectors(matrix.MatrixX, matrix.VectorX, []*matrix.Dense[float64]{a, b})
	require.NoError(t, err)
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String())

	_, err = matrix.VecFromGonum[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
