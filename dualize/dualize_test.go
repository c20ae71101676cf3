package dualize_test

import (
	"testing"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/dualize"
	"github.com/katalvlaran/homology/genmatrix"
	"github.com/katalvlaran/homology/pairs"
	"github.com/katalvlaran/homology/reduce"
	"github.com/stretchr/testify/require"
)

// TestDualizeIsInvolution is testable property 5: dualizing twice returns
// the original matrix.
func TestDualizeIsInvolution(t *testing.T) {
	for name, build := range map[string]func() boundary.Matrix{
		"Triangle":          genmatrix.Triangle,
		"Edge":              genmatrix.Edge,
		"FilledTetrahedron": genmatrix.FilledTetrahedron,
	} {
		t.Run(name, func(t *testing.T) {
			original := build()
			twice := build()
			dualize.Dualize(twice)
			dualize.Dualize(twice)
			require.True(t, boundary.Equal(original, twice))
		})
	}
}

// TestDualizePairsRoundTrip is testable property 6: extracting pairs from
// a reducer run directly on M matches dualizing the pairs found by the
// same reducer run on dualize(M).
func TestDualizePairsRoundTrip(t *testing.T) {
	for name, build := range map[string]func() boundary.Matrix{
		"Triangle":          genmatrix.Triangle,
		"Edge":              genmatrix.Edge,
		"FilledTetrahedron": genmatrix.FilledTetrahedron,
	} {
		t.Run(name, func(t *testing.T) {
			direct := build()
			require.NoError(t, reduce.Standard(direct))
			directPairs := pairs.Extract(direct)

			dual := build()
			n := dual.NumCols()
			dualize.Dualize(dual)
			require.NoError(t, reduce.Standard(dual))
			dualPairs := dualize.DualizePairs(pairs.Extract(dual), n)

			require.True(t, pairs.Equal(directPairs, dualPairs))
		})
	}
}
