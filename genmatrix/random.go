package genmatrix

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/column"
	"github.com/katalvlaran/homology/reps"
)

// dimFractions partitions a Random matrix's columns into up to 4
// dimension levels, biggest at dimension 0 and shrinking geometrically —
// the shape any real filtration has (many vertices, fewer high-dimensional
// cells) — with the last level absorbing whatever n doesn't evenly split.
var dimFractions = []float64{0.5, 0.3, 0.15, 0.05}

// Random returns a boundary matrix of n columns with dimensions assigned
// per dimFractions; every column of dimension d > 0 draws up to density
// entries at random, without replacement, from the block of columns at
// dimension d-1 (which entirely precedes it by construction, satisfying
// the filtration-order requirement that every entry refer to an earlier
// column). Columns of dimension 0 are always empty.
//
// Entries are sampled independently per column, so the result satisfies
// the dimension invariant but in general not the boundary-of-a-boundary-is-
// zero property: it is not the boundary matrix of a simplicial complex.
//
// n must be >= 1 and density >= 0.
func Random(n int, density int, opts ...Option) (boundary.Matrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("genmatrix: n=%d: %w", n, ErrTooFewColumns)
	}
	if density < 0 {
		return nil, fmt.Errorf("genmatrix: density=%d: %w", density, ErrInvalidDensity)
	}
	cfg := newConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	dims, bounds := assignDims(n)

	m := reps.NewVectorVector(n)
	for i, d := range dims {
		m.SetDim(i, d)
	}
	for i, d := range dims {
		if d == 0 {
			continue
		}
		lo, hi := bounds[d-1], bounds[d]
		m.SetCol(i, sampleEntries(cfg.rng, lo, hi, density))
	}
	return m, nil
}

// assignDims returns, for n columns, a dims slice and a bounds slice such
// that dims[i] == lvl for bounds[lvl] <= i < bounds[lvl+1].
func assignDims(n int) ([]int, []int) {
	dims := make([]int, n)
	bounds := make([]int, len(dimFractions)+1)
	idx := 0
	for lvl, frac := range dimFractions {
		bounds[lvl] = idx
		size := int(float64(n) * frac)
		if lvl == len(dimFractions)-1 {
			size = n - idx
		}
		if idx+size > n {
			size = n - idx
		}
		for k := 0; k < size; k++ {
			dims[idx] = lvl
			idx++
		}
	}
	for idx < n {
		dims[idx] = len(dimFractions) - 1
		idx++
	}
	bounds[len(dimFractions)] = n
	return dims, bounds
}

func sampleEntries(rng *rand.Rand, lo, hi, density int) column.Column {
	avail := hi - lo
	if avail <= 0 {
		return column.Column{}
	}
	count := density
	if count > avail {
		count = avail
	}
	picked := rng.Perm(avail)[:count]
	out := make(column.Column, count)
	for i, p := range picked {
		out[i] = column.Index(lo + p)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}
