package reduce

import (
	"fmt"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/column"
)

// Standard implements §4.3's standard reduction: a single left-to-right
// pass maintaining L, a map from row index to the column that currently
// owns it as a low. Each column is reduced against L until its low is
// either unclaimed or the column is empty.
func Standard(m boundary.Matrix) error {
	return reduceInOrder(m, identityOrder(m.NumCols()))
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// reduceInOrder runs the standard inner loop over order, a permutation (or
// subset) of column indices, against a single shared low-ownership map.
func reduceInOrder(m boundary.Matrix, order []int) error {
	low := make(map[column.Index]int, len(order))
	for _, j := range order {
		if err := reduceColumn(m, low, j); err != nil {
			return err
		}
	}
	return nil
}

// reduceColumn runs the standard while-loop for column j: while j is
// nonempty and its low is already owned by some earlier column, add that
// owner into j. When j survives nonempty, it claims its low in the map.
//
// ErrLowDidNotDecrease signals a caller error (a non-boundary matrix, or a
// representation that violated AddTo's contract) rather than a condition
// reachable from a well-formed boundary matrix.
func reduceColumn(m boundary.Matrix, low map[column.Index]int, j int) error {
	for !m.IsEmpty(j) {
		l := m.Low(j)
		owner, owned := low[l]
		if !owned {
			break
		}
		m.AddTo(owner, j)
		if !m.IsEmpty(j) && m.Low(j) >= l {
			return fmt.Errorf("reduce: column %d: %w", j, boundary.ErrLowDidNotDecrease)
		}
	}
	if !m.IsEmpty(j) {
		low[m.Low(j)] = j
	}
	return nil
}

// clearKilledColumns empties, for every nonempty column d, the column at
// row index low(d). Once d's low is claimed, column low(d) can never again
// be used as a target or reported as its own death without being wrong:
// the standard persistence pairing theorem guarantees low(d) reduces to
// empty on its own anyway, so clearing it early only skips redundant work.
func clearKilledColumns(m boundary.Matrix) {
	n := m.NumCols()
	for d := 0; d < n; d++ {
		if !m.IsEmpty(d) {
			m.SetCol(int(m.Low(d)), column.Column{})
		}
	}
}
