package homology_test

import (
	"testing"

	"github.com/katalvlaran/homology/genmatrix"
	"github.com/katalvlaran/homology/homology"
	"github.com/katalvlaran/homology/pairs"
	"github.com/katalvlaran/homology/reduce"
	"github.com/stretchr/testify/require"
)

func TestComputeDefaultReducer(t *testing.T) {
	got, err := homology.Compute(genmatrix.Triangle(), nil)
	require.NoError(t, err)
	require.True(t, pairs.Equal(pairs.Pairs{
		Pairs:     []pairs.Pair{{1, 3}, {2, 4}, {5, 6}},
		Essential: []int64{0},
	}, got))
}

func TestComputeDualizedMatchesCompute(t *testing.T) {
	direct, err := homology.Compute(genmatrix.FilledTetrahedron(), reduce.Standard)
	require.NoError(t, err)

	dualized, err := homology.ComputeDualized(genmatrix.FilledTetrahedron(), reduce.Standard)
	require.NoError(t, err)

	require.True(t, pairs.Equal(direct, dualized))
}

func TestComputeWithExplicitReducer(t *testing.T) {
	got, err := homology.ComputeWith(reduce.Twist, genmatrix.Edge())
	require.NoError(t, err)
	require.True(t, pairs.Equal(pairs.Pairs{
		Pairs:     []pairs.Pair{{1, 2}},
		Essential: []int64{0},
	}, got))
}
