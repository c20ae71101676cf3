package reduce_test

import (
	"testing"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/genmatrix"
	"github.com/katalvlaran/homology/pairs"
	"github.com/katalvlaran/homology/reduce"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	name string
	new  func() boundary.Matrix
}

var fixtures = []fixture{
	{"Triangle", genmatrix.Triangle},
	{"TwoPoints", genmatrix.TwoPoints},
	{"Edge", genmatrix.Edge},
	{"FilledTetrahedron", genmatrix.FilledTetrahedron},
}

func TestStandardTriangle(t *testing.T) {
	m := genmatrix.Triangle()
	require.NoError(t, reduce.Standard(m))
	require.True(t, boundary.IsReduced(m))

	got := pairs.Extract(m)
	want := pairs.Pairs{
		Pairs:     []pairs.Pair{{1, 3}, {2, 4}, {5, 6}},
		Essential: []int64{0},
	}
	require.True(t, pairs.Equal(want, got))
}

var reducers = map[string]reduce.Reducer{
	"Standard": reduce.Standard,
	"Twist":    reduce.Twist,
	"Row":      reduce.Row,
	"Chunk":    func(m boundary.Matrix) error { return reduce.Chunk(m) },
	"Spectral": func(m boundary.Matrix) error { return reduce.Spectral(m) },
}

// TestReducersAgree is testable property 3: every reducer, on the same
// input, extracts the same persistence pairs.
func TestReducersAgree(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			reference := pairs.Extract(mustReduce(t, reduce.Standard, fx.new()))
			for name, r := range reducers {
				t.Run(name, func(t *testing.T) {
					got := pairs.Extract(mustReduce(t, r, fx.new()))
					require.True(t, pairs.Equal(reference, got), "%s vs Standard", name)
				})
			}
		})
	}
}

// TestChunkAndSpectralAgreeOnRandomMatrix is scenario S6: a larger random
// matrix reduced in parallel must agree with a sequential reduction of an
// identical copy.
func TestChunkAndSpectralAgreeOnRandomMatrix(t *testing.T) {
	build := func() boundary.Matrix {
		m, err := genmatrix.Random(1000, 3, genmatrix.WithSeed(7))
		require.NoError(t, err)
		return m
	}
	reference := pairs.Extract(mustReduce(t, reduce.Standard, build()))

	chunked := pairs.Extract(mustReduce(t, func(m boundary.Matrix) error {
		return reduce.Chunk(m, reduce.WithParallelism(4))
	}, build()))
	require.True(t, pairs.Equal(reference, chunked))

	spectral := pairs.Extract(mustReduce(t, func(m boundary.Matrix) error {
		return reduce.Spectral(m, reduce.WithSpectralParallelism(4))
	}, build()))
	require.True(t, pairs.Equal(reference, spectral))
}

func mustReduce(t *testing.T, r reduce.Reducer, m boundary.Matrix) boundary.Matrix {
	t.Helper()
	require.NoError(t, r(m))
	require.True(t, boundary.IsReduced(m))
	return m
}
