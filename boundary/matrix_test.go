package boundary_test

import (
	"testing"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/column"
	"github.com/stretchr/testify/require"
)

// fakeMatrix is a minimal, deliberately naive Matrix used to exercise the
// representation-agnostic helpers without depending on reps/.
type fakeMatrix struct {
	dims []int
	cols []column.Column
}

func newFake(dims []int, cols [][]column.Index) *fakeMatrix {
	fm := &fakeMatrix{dims: dims, cols: make([]column.Column, len(cols))}
	for i, c := range cols {
		fm.cols[i] = column.Column(c)
	}
	return fm
}

func (f *fakeMatrix) NumCols() int                 { return len(f.dims) }
func (f *fakeMatrix) Dim(i int) int                { return f.dims[i] }
func (f *fakeMatrix) SetDim(i int, d int)          { f.dims[i] = d }
func (f *fakeMatrix) Col(i int) column.Column      { return f.cols[i] }
func (f *fakeMatrix) SetCol(i int, c column.Column) { f.cols[i] = c }
func (f *fakeMatrix) IsEmpty(i int) bool           { return f.cols[i].IsEmpty() }
func (f *fakeMatrix) Low(i int) column.Index       { return f.cols[i].Low() }
func (f *fakeMatrix) AddTo(source, target int) {
	f.cols[target] = column.Add(f.cols[source], f.cols[target])
}
func (f *fakeMatrix) Finalize(int) {}
func (f *fakeMatrix) Sync()        {}

func triangleFixture() *fakeMatrix {
	return newFake(
		[]int{0, 0, 0, 1, 1, 1, 2},
		[][]column.Index{
			{}, {}, {},
			{0, 1}, {1, 2}, {0, 2},
			{3, 4, 5},
		},
	)
}

func TestMaxDim(t *testing.T) {
	require.Equal(t, 2, boundary.MaxDim(triangleFixture()))
	require.Equal(t, -1, boundary.MaxDim(newFake(nil, nil)))
}

func TestMaxColEntries(t *testing.T) {
	require.Equal(t, 3, boundary.MaxColEntries(triangleFixture()))
}

func TestMaxRowEntries(t *testing.T) {
	// row 1 is referenced by columns 3 and 4 => 2 references.
	require.Equal(t, 2, boundary.MaxRowEntries(triangleFixture()))
}

func TestNumEntries(t *testing.T) {
	require.Equal(t, 9, boundary.NumEntries(triangleFixture()))
}

func TestEqual(t *testing.T) {
	a := triangleFixture()
	b := triangleFixture()
	require.True(t, boundary.Equal(a, b))

	b.SetCol(3, column.Column{0})
	require.False(t, boundary.Equal(a, b))
}

func TestIsReduced(t *testing.T) {
	m := triangleFixture()
	require.False(t, boundary.IsReduced(m)) // columns 4 and 5 both have low 2

	reduced := newFake(
		[]int{0, 0, 0, 1, 1, 1, 2},
		[][]column.Index{
			{}, {}, {},
			{0, 1}, {1, 2}, {},
			{4, 5},
		},
	)
	require.True(t, boundary.IsReduced(reduced))
}
