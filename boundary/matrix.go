// Package boundary defines the representation-agnostic Matrix contract that
// every column representation in reps/ implements, plus the read-only
// helpers that depend only on that contract (MaxDim, NumEntries, Equal, ...).
//
// Matrix mirrors the interface documented in SPEC_FULL.md's COMPONENT DESIGN
// section: an addressable collection of columns with per-column dimension,
// canonical read/write, XOR addition, a low (pivot) query, and the two
// finalize/sync hooks that lazy representations need to drain deferred
// state before a canonical read.
package boundary

import "github.com/katalvlaran/homology/column"

// Matrix is the abstract boundary-matrix contract. Representations in
// reps/ each provide a concrete type satisfying this interface; reducers
// in reduce/ and the extractor in pairs/ operate only through it.
//
// Implementations must maintain, at every public boundary, the dimension
// invariant from the data model: for every nonzero entry (r, c),
// Dim(r) == Dim(c)-1.
type Matrix interface {
	// NumCols returns N, the number of columns the matrix was initialized
	// with. Columns are never inserted or removed after Init.
	NumCols() int

	// Dim returns the dimension of column i.
	Dim(i int) int

	// SetDim sets the dimension of column i. Called during population,
	// before reduction begins.
	SetDim(i int, d int)

	// Col returns the canonical (strictly increasing) contents of column i.
	// Finalizes column i first if its representation defers canonicalization.
	Col(i int) column.Column

	// SetCol overwrites column i with the given canonical sequence.
	SetCol(i int, c column.Column)

	// IsEmpty reports whether column i has no nonzero entries.
	IsEmpty(i int) bool

	// Low returns the largest row index of column i, or column.NoIndex if
	// column i is empty.
	Low(i int) column.Index

	// AddTo replaces column target with target XOR source, leaving source
	// untouched. The reducers' only mutating primitive.
	AddTo(source, target int)

	// Finalize materializes any deferred state for column i so that
	// subsequent reads of i are canonical. Eager representations implement
	// this as a no-op.
	Finalize(i int)

	// Sync finalizes every column. Must be called before any concurrent
	// read of the matrix and after any concurrent-write episode (see
	// SPEC_FULL.md's concurrency model).
	Sync()
}

// MaxDim returns the largest column dimension in m, or -1 if m has no
// columns.
//
// Complexity: O(N).
func MaxDim(m Matrix) int {
	max := -1
	for i := 0; i < m.NumCols(); i++ {
		if d := m.Dim(i); d > max {
			max = d
		}
	}
	return max
}

// NumRows returns the number of nonzero entries in column i.
//
// Complexity: O(|column i|).
func NumRows(m Matrix, i int) int {
	return len(m.Col(i))
}

// MaxColEntries returns the largest number of nonzero entries across all
// columns, or -1 if m has no columns (mirrors the reference
// implementation's sentinel of -1, not 0, so an empty matrix is
// distinguishable from a matrix of all-empty columns).
//
// Complexity: O(N + total entries).
func MaxColEntries(m Matrix) int {
	max := -1
	for i := 0; i < m.NumCols(); i++ {
		if n := NumRows(m, i); n > max {
			max = n
		}
	}
	return max
}

// MaxRowEntries returns the largest number of columns that reference any
// single row, computed by transposing the matrix on the fly. This is a
// diagnostic helper, not a permanently maintained structure: the
// representation still owns all storage exclusively.
//
// Complexity: O(N + total entries) time and space.
func MaxRowEntries(m Matrix) int {
	n := m.NumCols()
	counts := make(map[column.Index]int, n)
	for c := 0; c < n; c++ {
		for _, r := range m.Col(c) {
			counts[r]++
		}
	}
	max := 0
	for _, cnt := range counts {
		if cnt > max {
			max = cnt
		}
	}
	return max
}

// NumEntries returns the total number of nonzero entries across every
// column of m.
//
// Complexity: O(N + total entries).
func NumEntries(m Matrix) int {
	total := 0
	for i := 0; i < m.NumCols(); i++ {
		total += NumRows(m, i)
	}
	return total
}

// Equal reports structural equality between two matrices of, potentially,
// different representations: equal column count, equal dimensions, and
// equal canonical column contents at every index.
//
// Complexity: O(N + total entries).
func Equal(a, b Matrix) bool {
	if a.NumCols() != b.NumCols() {
		return false
	}
	for i := 0; i < a.NumCols(); i++ {
		if a.Dim(i) != b.Dim(i) {
			return false
		}
		if !column.Equal(a.Col(i), b.Col(i)) {
			return false
		}
	}
	return true
}
