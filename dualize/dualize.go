package dualize

import (
	"sort"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/column"
	"github.com/katalvlaran/homology/pairs"
)

// Dualize replaces m's contents in place with its anti-transpose. Row i
// becomes column N-1-i and vice versa; column dimension D-dim(N-1-i)
// replaces dim(i), where D is the matrix's top dimension and N its column
// count. Every nonzero entry (r, c) of the original matrix becomes
// nonzero entry (N-1-c, N-1-r) in the result.
//
// Dualize reads a full snapshot of m before writing anything, so it is
// safe to call on m itself (the usual case) even though writes and reads
// interleave column by column.
func Dualize(m boundary.Matrix) {
	n := m.NumCols()
	if n == 0 {
		return
	}
	top := boundary.MaxDim(m)

	oldDims := make([]int, n)
	oldCols := make([]column.Column, n)
	for i := 0; i < n; i++ {
		oldDims[i] = m.Dim(i)
		oldCols[i] = m.Col(i)
	}

	newEntries := make([][]column.Index, n)
	for c := 0; c < n; c++ {
		for _, r := range oldCols[c] {
			newCol := n - 1 - int(r)
			newEntries[newCol] = append(newEntries[newCol], column.Index(n-1-c))
		}
	}

	for i := 0; i < n; i++ {
		sort.Slice(newEntries[i], func(a, b int) bool { return newEntries[i][a] < newEntries[i][b] })
		m.SetDim(i, top-oldDims[n-1-i])
		m.SetCol(i, column.Column(newEntries[i]))
	}
}

// DualizePairs carries a set of pairs extracted from dualize(M) back into
// M's own index space: (b, d) becomes (n-1-d, n-1-b). n is the column
// count of M (equivalently, of dualize(M)).
func DualizePairs(p pairs.Pairs, n int) pairs.Pairs {
	out := pairs.Pairs{
		Pairs:     make([]pairs.Pair, len(p.Pairs)),
		Essential: make([]int64, len(p.Essential)),
	}
	last := int64(n - 1)
	for i, pr := range p.Pairs {
		out.Pairs[i] = pairs.Pair{Birth: last - pr.Death, Death: last - pr.Birth}
	}
	for i, e := range p.Essential {
		out.Essential[i] = last - e
	}
	return out
}
