package genmatrix_test

import (
	"testing"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/genmatrix"
	"github.com/stretchr/testify/require"
)

func TestTriangleShape(t *testing.T) {
	m := genmatrix.Triangle()
	require.Equal(t, 7, m.NumCols())
	require.Equal(t, 2, boundary.MaxDim(m))
	require.Equal(t, 9, boundary.NumEntries(m))
}

func TestRandomRejectsInvalidInput(t *testing.T) {
	_, err := genmatrix.Random(0, 3)
	require.ErrorIs(t, err, genmatrix.ErrTooFewColumns)

	_, err = genmatrix.Random(10, -1)
	require.ErrorIs(t, err, genmatrix.ErrInvalidDensity)
}

func TestRandomDeterministicForSameSeed(t *testing.T) {
	a, err := genmatrix.Random(200, 3, genmatrix.WithSeed(42))
	require.NoError(t, err)
	b, err := genmatrix.Random(200, 3, genmatrix.WithSeed(42))
	require.NoError(t, err)
	require.True(t, boundary.Equal(a, b))
}

func TestRandomRespectsDimensionInvariant(t *testing.T) {
	m, err := genmatrix.Random(500, 4, genmatrix.WithSeed(1))
	require.NoError(t, err)
	for i := 0; i < m.NumCols(); i++ {
		for _, r := range m.Col(i) {
			require.Equal(t, m.Dim(int(r))+1, m.Dim(i), "entry %d in column %d", r, i)
			require.Less(t, r, int64(i))
		}
	}
}
