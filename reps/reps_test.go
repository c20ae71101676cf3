package reps_test

import (
	"testing"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/column"
	"github.com/katalvlaran/homology/reps"
	"github.com/stretchr/testify/require"
)

// triangleDims/triangleCols is scenario S1 from SPEC_FULL.md/spec.md: a
// filled triangle's boundary matrix, 3 vertices + 3 edges + 1 face.
var triangleDims = []int{0, 0, 0, 1, 1, 1, 2}
var triangleCols = [][]column.Index{
	{}, {}, {},
	{0, 1}, {1, 2}, {0, 2},
	{3, 4, 5},
}

func allReps(n int) map[string]boundary.Matrix {
	return map[string]boundary.Matrix{
		"VectorVector": reps.NewVectorVector(n),
		"VectorSet":    reps.NewVectorSet(n),
		"VectorHeap":   reps.NewVectorHeap(n),
		"SparsePivot":  reps.NewSparsePivot(n),
		"HeapPivot":    reps.NewHeapPivot(n),
		"FullPivot":    reps.NewFullPivot(n),
		"BitTreePivot": reps.NewBitTreePivot(n),
	}
}

func populate(m boundary.Matrix, dims []int, cols [][]column.Index) {
	for i, d := range dims {
		m.SetDim(i, d)
		m.SetCol(i, column.Column(cols[i]))
	}
}

func TestRepresentationsAgreeOnRead(t *testing.T) {
	for name, m := range allReps(len(triangleDims)) {
		t.Run(name, func(t *testing.T) {
			populate(m, triangleDims, triangleCols)
			m.Sync()

			require.Equal(t, 7, m.NumCols())
			for i, want := range triangleCols {
				require.Equal(t, triangleDims[i], m.Dim(i))
				require.Equal(t, column.Column(want).IsEmpty(), m.IsEmpty(i))
				require.True(t, column.Equal(column.Column(want), m.Col(i)), "col %d", i)
				require.Equal(t, column.Column(want).Low(), m.Low(i))
			}
		})
	}
}

func TestRepresentationsAgreeOnAddTo(t *testing.T) {
	for name, m := range allReps(len(triangleDims)) {
		t.Run(name, func(t *testing.T) {
			populate(m, triangleDims, triangleCols)
			m.Sync()

			// column 4 (1,2) XOR column 5 (0,2) -> (0,1)
			m.AddTo(5, 4)
			m.Sync()
			require.True(t, column.Equal(column.Column{0, 1}, m.Col(4)))
			require.Equal(t, column.Index(1), m.Low(4))

			// adding a column to itself empties it
			m.AddTo(3, 3)
			m.Sync()
			require.True(t, m.IsEmpty(3))
			require.Equal(t, column.NoIndex, m.Low(3))
		})
	}
}

func TestStructuralEqualityAcrossRepresentations(t *testing.T) {
	all := allReps(len(triangleDims))
	for _, m := range all {
		populate(m, triangleDims, triangleCols)
		m.Sync()
	}
	names := []string{"VectorVector", "VectorSet", "VectorHeap", "SparsePivot", "HeapPivot", "FullPivot", "BitTreePivot"}
	for _, a := range names {
		for _, b := range names {
			require.True(t, boundary.Equal(all[a], all[b]), "%s vs %s", a, b)
		}
	}
}

func TestBitTreePivotManyColumnsDescend(t *testing.T) {
	// Exercise a tree with more than one internal level: N > 64*64 forces
	// three levels (leaf, summary, root).
	const n = 5000
	m := reps.NewBitTreePivot(n)
	m.SetDim(0, 0)
	m.SetCol(0, column.Column{7, 4096, 4999})
	require.Equal(t, column.Index(4999), m.Low(0))
	require.True(t, column.Equal(column.Column{7, 4096, 4999}, m.Col(0)))

	m.SetCol(1, column.Column{4999})
	m.AddTo(1, 0) // cancels 4999
	require.Equal(t, column.Index(4096), m.Low(0))
}
