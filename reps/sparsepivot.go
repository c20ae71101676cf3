package reps

import (
	"sort"

	"github.com/katalvlaran/homology/column"
)

// SparsePivot stores each column's body as a presence set (a Go map,
// standing in for PHAT's sparse bag of active entries) and caches the
// pivot lazily: AddTo toggles presence for every incoming entry in O(1)
// amortized per entry and marks the cache stale, Low only pays the O(size)
// refresh scan the first time it's asked after a mutation. This is the
// "amortized sparse add, O(1)-after-refresh max_index" representation from
// SPEC_FULL.md's table, distinct from HeapPivot's eager heap-based refresh.
//
// Complexity: AddTo O(|b|) amortized, Low O(1) amortized (O(size) only
// immediately after a mutation), Col O(n log n) (sorts the presence set).
type SparsePivot struct {
	dims  []int
	body  []map[column.Index]struct{}
	pivot []column.Index
	dirty []bool
}

// NewSparsePivot returns a SparsePivot sized for n columns.
func NewSparsePivot(n int) *SparsePivot {
	s := &SparsePivot{
		dims:  make([]int, n),
		body:  make([]map[column.Index]struct{}, n),
		pivot: make([]column.Index, n),
		dirty: make([]bool, n),
	}
	for i := range s.body {
		s.body[i] = make(map[column.Index]struct{})
		s.pivot[i] = column.NoIndex
	}
	return s
}

func (s *SparsePivot) NumCols() int        { return len(s.dims) }
func (s *SparsePivot) Dim(i int) int       { return s.dims[i] }
func (s *SparsePivot) SetDim(i int, d int) { s.dims[i] = d }

func (s *SparsePivot) SetCol(i int, c column.Column) {
	body := make(map[column.Index]struct{}, len(c))
	for _, idx := range c {
		body[idx] = struct{}{}
	}
	s.body[i] = body
	s.pivot[i] = c.Low()
	s.dirty[i] = false
}

func (s *SparsePivot) IsEmpty(i int) bool { return len(s.body[i]) == 0 }

func (s *SparsePivot) Low(i int) column.Index {
	s.refresh(i)
	return s.pivot[i]
}

func (s *SparsePivot) Col(i int) column.Column {
	out := make(column.Column, 0, len(s.body[i]))
	for idx := range s.body[i] {
		out = append(out, idx)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

// AddTo toggles presence for every entry of the source column's canonical
// form; a present entry is deleted (cancels under GF(2)), an absent one is
// inserted. The pivot is marked stale rather than refreshed immediately.
func (s *SparsePivot) AddTo(source, target int) {
	for _, idx := range s.Col(source) {
		if _, ok := s.body[target][idx]; ok {
			delete(s.body[target], idx)
		} else {
			s.body[target][idx] = struct{}{}
		}
	}
	s.dirty[target] = true
}

// Finalize refreshes column i's cached pivot if stale. SparsePivot is
// otherwise eager (its body is always canonical, only the pivot cache
// lags), so this is cheap and optional: Low calls it internally too.
func (s *SparsePivot) Finalize(i int) { s.refresh(i) }

// Sync refreshes every column's pivot cache.
func (s *SparsePivot) Sync() {
	for i := range s.body {
		s.refresh(i)
	}
}

func (s *SparsePivot) refresh(i int) {
	if !s.dirty[i] {
		return
	}
	max := column.NoIndex
	for idx := range s.body[i] {
		if idx > max {
			max = idx
		}
	}
	s.pivot[i] = max
	s.dirty[i] = false
}
