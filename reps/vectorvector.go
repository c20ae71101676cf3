// Package reps provides the seven concrete column representations of
// SPEC_FULL.md's COMPONENT DESIGN section, each satisfying
// boundary.Matrix: VectorVector, VectorSet, VectorHeap, SparsePivot,
// HeapPivot, FullPivot, and BitTreePivot.
//
// All representations are eager except VectorHeap and HeapPivot's body,
// which defer canonicalization until Finalize/Sync drains accumulated
// duplicates. Their Syncs, and SparsePivot's (which refreshes its cached
// pivots), are the package's nontrivial ones; every other representation's
// Sync is a no-op.
package reps

import "github.com/katalvlaran/homology/column"

// VectorVector stores each column as a canonical sorted slice, merged
// directly on every AddTo. It is the simplest representation and the
// baseline the others are measured against.
//
// Complexity: AddTo O(|a|+|b|), Low O(1), Col O(|column|) (returns a copy
// of the backing slice, already canonical).
type VectorVector struct {
	dims []int
	cols []column.Column
}

// NewVectorVector returns a VectorVector sized for n columns, all initially
// empty with dimension 0.
func NewVectorVector(n int) *VectorVector {
	return &VectorVector{
		dims: make([]int, n),
		cols: make([]column.Column, n),
	}
}

func (v *VectorVector) NumCols() int  { return len(v.dims) }
func (v *VectorVector) Dim(i int) int { return v.dims[i] }
func (v *VectorVector) SetDim(i int, d int) { v.dims[i] = d }
func (v *VectorVector) Col(i int) column.Column { return v.cols[i].Clone() }
func (v *VectorVector) SetCol(i int, c column.Column) { v.cols[i] = c.Clone() }
func (v *VectorVector) IsEmpty(i int) bool { return v.cols[i].IsEmpty() }
func (v *VectorVector) Low(i int) column.Index { return v.cols[i].Low() }

func (v *VectorVector) AddTo(source, target int) {
	v.cols[target] = column.Add(v.cols[source], v.cols[target])
}

func (v *VectorVector) Finalize(int) {}
func (v *VectorVector) Sync()        {}
