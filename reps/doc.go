// Package reps implements the seven column representations from
// SPEC_FULL.md's COMPONENT DESIGN section (§4.2), all satisfying
// boundary.Matrix: VectorVector, VectorSet, VectorHeap, SparsePivot,
// HeapPivot, FullPivot, and BitTreePivot. See each type's doc comment for
// its storage strategy and where it's grounded in the example corpus.
package reps
