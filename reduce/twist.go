package reduce

import (
	"sort"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/column"
)

// Twist implements §4.3's twist reduction: columns are visited in
// decreasing dimension order so that every pair (b, d) is discovered
// before column b itself would otherwise be reduced. As soon as a pair is
// found, column b is cleared immediately, which both saves the work of
// reducing it and stops it from being misread as an independent death by
// the extractor.
func Twist(m boundary.Matrix) error {
	order := decreasingDimOrder(m)
	low := make(map[column.Index]int, len(order))
	for _, j := range order {
		if err := reduceColumn(m, low, j); err != nil {
			return err
		}
		if !m.IsEmpty(j) {
			m.SetCol(int(m.Low(j)), column.Column{})
		}
	}
	return nil
}

// decreasingDimOrder returns column indices sorted by decreasing
// dimension, index order preserved among ties.
func decreasingDimOrder(m boundary.Matrix) []int {
	order := identityOrder(m.NumCols())
	sort.SliceStable(order, func(a, b int) bool {
		return m.Dim(order[a]) > m.Dim(order[b])
	})
	return order
}
