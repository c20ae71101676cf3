package boundary

import "github.com/katalvlaran/homology/column"

// IsReduced reports whether m satisfies the reduced-matrix invariant: for
// all nonempty columns i != j, Low(i) != Low(j). Used by tests to check
// testable property 1 against any reducer's output.
//
// Complexity: O(N) time and space.
func IsReduced(m Matrix) bool {
	seen := make(map[column.Index]int, m.NumCols())
	for i := 0; i < m.NumCols(); i++ {
		if m.IsEmpty(i) {
			continue
		}
		low := m.Low(i)
		if _, dup := seen[low]; dup {
			return false
		}
		seen[low] = i
	}
	return true
}
