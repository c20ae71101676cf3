package reduce

import (
	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/column"
	"github.com/katalvlaran/homology/dualize"
	"github.com/katalvlaran/homology/pairs"
)

// Row implements §4.3's row reduction. The open question of whether to
// give it a genuinely row-wise elimination loop or to derive it from the
// column algorithm was resolved in favor of the latter, composed through
// pair dualization rather than through a second matrix dualization: Row
// dualizes m, reduces the dual with Standard, extracts the dual's pairs,
// and carries them back into m's own index space with DualizePairs (the
// same remapping homology.ComputeDualized uses). Re-dualizing the reduced
// dual matrix directly does not reproduce Standard's own pairs — dualize
// is an involution on the *unreduced* matrix's structure, not on a
// reduced one, since AddTo's column-elimination order has no symmetric
// counterpart once replayed through a second anti-transpose. m's columns
// are rebuilt from the remapped pairs instead: column d becomes the
// singleton {birth} for every finite pair (birth, d), and empty
// otherwise, which satisfies boundary.IsReduced and makes pairs.Extract
// read off exactly the remapped pairs.
func Row(m boundary.Matrix) error {
	n := m.NumCols()
	if n == 0 {
		return nil
	}

	origDims := make([]int, n)
	for i := 0; i < n; i++ {
		origDims[i] = m.Dim(i)
	}

	dualize.Dualize(m)
	if err := Standard(m); err != nil {
		return err
	}
	result := dualize.DualizePairs(pairs.Extract(m), n)

	for i := 0; i < n; i++ {
		m.SetDim(i, origDims[i])
		m.SetCol(i, column.Column{})
	}
	for _, pr := range result.Pairs {
		m.SetCol(int(pr.Death), column.Column{column.Index(pr.Birth)})
	}
	return nil
}
