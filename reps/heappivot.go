package reps

import (
	"container/heap"

	"github.com/katalvlaran/homology/column"
)

// HeapPivot stores each column's body in a max-heap (duplicates resolved
// lazily by adjacent pop-cancel, same trick as VectorHeap but oriented
// toward the maximum instead of the minimum) and keeps the current pivot
// eagerly refreshed after every AddTo, so Low is a genuine O(1) field read
// rather than a drain. This is the "hybrid" representation from
// SPEC_FULL.md's table: heap for the body, explicit eager pivot on top.
//
// Complexity: AddTo O(|b| log n) (push each incoming entry, then one
// eager refresh), Low O(1), Col O(n log n) (nondestructive full drain).
type HeapPivot struct {
	dims  []int
	body  []indexMaxHeap
	pivot []column.Index
}

// NewHeapPivot returns a HeapPivot sized for n columns.
func NewHeapPivot(n int) *HeapPivot {
	h := &HeapPivot{
		dims:  make([]int, n),
		body:  make([]indexMaxHeap, n),
		pivot: make([]column.Index, n),
	}
	for i := range h.pivot {
		h.pivot[i] = column.NoIndex
	}
	return h
}

func (h *HeapPivot) NumCols() int        { return len(h.dims) }
func (h *HeapPivot) Dim(i int) int       { return h.dims[i] }
func (h *HeapPivot) SetDim(i int, d int) { h.dims[i] = d }

func (h *HeapPivot) SetCol(i int, c column.Column) {
	body := make(indexMaxHeap, len(c))
	copy(body, c)
	heap.Init(&body)
	h.body[i] = body
	h.pivot[i] = c.Low()
}

func (h *HeapPivot) IsEmpty(i int) bool     { return h.pivot[i] == column.NoIndex }
func (h *HeapPivot) Low(i int) column.Index { return h.pivot[i] }

// Col performs a full, nondestructive drain of the body heap (a copy of
// it) to recover the canonical ascending sequence.
func (h *HeapPivot) Col(i int) column.Column {
	cp := make(indexMaxHeap, len(h.body[i]))
	copy(cp, h.body[i])
	heap.Init(&cp)

	desc := make(column.Column, 0, len(cp))
	for cp.Len() > 0 {
		top := heap.Pop(&cp).(column.Index)
		if cp.Len() > 0 && cp[0] == top {
			heap.Pop(&cp) // cancels with top
			continue
		}
		desc = append(desc, top)
	}
	// desc is in decreasing order; reverse in place for the canonical
	// increasing form.
	for l, r := 0, len(desc)-1; l < r; l, r = l+1, r-1 {
		desc[l], desc[r] = desc[r], desc[l]
	}
	return desc
}

// AddTo pushes every entry of the source column's canonical form onto the
// target's body heap, then eagerly re-derives the target's pivot: pop the
// true maximum, cancelling any adjacent duplicate along the way, and push
// the survivor back so the body remains the authoritative full multiset.
func (h *HeapPivot) AddTo(source, target int) {
	src := h.Col(source)
	body := &h.body[target]
	for _, idx := range src {
		heap.Push(body, idx)
	}
	h.pivot[target] = ensureMaxPivot(body)
}

// Finalize drains column i's body heap, cancelling duplicate pairs, and
// rebuilds it from the survivors, so the body holds each entry once.
func (h *HeapPivot) Finalize(i int) { h.SetCol(i, h.Col(i)) }

// Sync finalizes every column.
func (h *HeapPivot) Sync() {
	for i := range h.body {
		h.Finalize(i)
	}
}

// ensureMaxPivot pops the heap's true surviving maximum (cancelling
// adjacent duplicate pairs as it goes), restores it to the heap, and
// returns it, or column.NoIndex if the heap drains to empty.
func ensureMaxPivot(body *indexMaxHeap) column.Index {
	for {
		if body.Len() == 0 {
			return column.NoIndex
		}
		top := heap.Pop(body).(column.Index)
		if body.Len() > 0 && (*body)[0] == top {
			heap.Pop(body) // cancel the pair; keep searching
			continue
		}
		heap.Push(body, top) // restore: genuine surviving maximum
		return top
	}
}

// indexMaxHeap is a container/heap.Interface over column.Index ordered so
// the maximum is at the root; only HeapPivot uses it.
type indexMaxHeap []column.Index

func (h indexMaxHeap) Len() int            { return len(h) }
func (h indexMaxHeap) Less(i, j int) bool  { return h[i] > h[j] }
func (h indexMaxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *indexMaxHeap) Push(x interface{}) { *h = append(*h, x.(column.Index)) }
func (h *indexMaxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
