package reps

import (
	"math/bits"

	"github.com/katalvlaran/homology/column"
)

// BitTreePivot is the canonical default representation: each column is a
// hierarchical tree of word-sized bitmaps of height ceil(log_W N), where W
// is the machine word width (64). Level 0 holds the column's raw bits
// (N of them, packed into ceil(N/64) words); level k+1 summarizes level k
// one bit per word ("is this word of level k nonzero?"), shrinking by a
// factor of 64 each level, until a level of exactly one word (the root)
// is reached.
//
// Low descends from the root, at each level taking the highest set bit of
// the current word to select which word to inspect one level down — the
// word-index arithmetic is idx = idx*64 + bitPos at every step, which also
// happens to be correct for the very first step from the single-word
// root. AddTo XORs only the source's nonzero leaf words into the target
// and repairs the ancestor chain for each touched leaf word immediately
// (an O(log_64 N) walk per touched word, not a whole-tree rebuild) — an
// incremental ancestor recomputation modeled on gaissmai-bart's
// popcount-compressed summary bitmaps, adapted here to plain set/clear
// bits since GF(2) columns need no popcount, only presence.
//
// Complexity: AddTo O(N/W + k * log_64 N) for k nonzero source leaf words
// (a scan of the source's leaf words, then one leaf touch + ancestor
// repair per nonzero one), Low O(log_64 N), Col O(N/W + |column|).
type BitTreePivot struct {
	dims   []int
	sizes  []int // word count per level, sizes[last] == 1
	levels [][][]uint64
}

// NewBitTreePivot returns a BitTreePivot sized for n columns over n
// possible row indices.
func NewBitTreePivot(n int) *BitTreePivot {
	sizes := levelSizes(n)
	b := &BitTreePivot{
		dims:   make([]int, n),
		sizes:  sizes,
		levels: make([][][]uint64, n),
	}
	for i := range b.levels {
		b.levels[i] = newLevels(sizes)
	}
	return b
}

func levelSizes(n int) []int {
	cur := int(wordsFor(n))
	sizes := []int{cur}
	for cur > 1 {
		cur = (cur + wordBits - 1) / wordBits
		sizes = append(sizes, cur)
	}
	return sizes
}

func newLevels(sizes []int) [][]uint64 {
	levels := make([][]uint64, len(sizes))
	for k, sz := range sizes {
		levels[k] = make([]uint64, sz)
	}
	return levels
}

func (b *BitTreePivot) NumCols() int        { return len(b.dims) }
func (b *BitTreePivot) Dim(i int) int       { return b.dims[i] }
func (b *BitTreePivot) SetDim(i int, d int) { b.dims[i] = d }

// SetCol zeroes column i's tree, sets the raw leaf bits for c, and rebuilds
// every summary level from scratch (population time only; not the hot
// path the incremental touchLeaf path optimizes).
func (b *BitTreePivot) SetCol(i int, c column.Column) {
	levels := b.levels[i]
	for _, lvl := range levels {
		for w := range lvl {
			lvl[w] = 0
		}
	}
	for _, idx := range c {
		levels[0][idx/wordBits] |= 1 << uint(idx%wordBits)
	}
	for lvl := 0; lvl < len(levels)-1; lvl++ {
		for w, word := range levels[lvl] {
			if word != 0 {
				levels[lvl+1][w/wordBits] |= 1 << uint(w%wordBits)
			}
		}
	}
}

func (b *BitTreePivot) IsEmpty(i int) bool {
	levels := b.levels[i]
	return levels[len(levels)-1][0] == 0
}

// Low descends from the root, taking the highest set bit of the current
// word at each level to pick the word to inspect one level down.
func (b *BitTreePivot) Low(i int) column.Index {
	levels := b.levels[i]
	idx := 0
	for lvl := len(levels) - 1; lvl >= 0; lvl-- {
		word := levels[lvl][idx]
		if word == 0 {
			return column.NoIndex
		}
		bitPos := bits.Len64(word) - 1
		idx = idx*wordBits + bitPos
	}
	return column.Index(idx)
}

// Col walks the leaf level left to right, emitting set bit positions in
// increasing order (ascending word index, ascending bit-within-word).
func (b *BitTreePivot) Col(i int) column.Column {
	leaves := b.levels[i][0]
	out := make(column.Column, 0)
	for w, word := range leaves {
		for word != 0 {
			bitPos := bits.TrailingZeros64(word)
			out = append(out, column.Index(w*wordBits+bitPos))
			word &^= 1 << uint(bitPos)
		}
	}
	return out
}

// AddTo XORs every nonzero leaf word of source into target and repairs
// the ancestor chain for each leaf word it touched.
func (b *BitTreePivot) AddTo(source, target int) {
	srcLeaves := b.levels[source][0]
	tgtLevels := b.levels[target]
	for w, word := range srcLeaves {
		if word == 0 {
			continue
		}
		tgtLevels[0][w] ^= word
		touchAncestors(tgtLevels, w)
	}
}

// touchAncestors recomputes the summary bit for leaf/word index w at
// every level above 0, following the single path from that word to the
// root.
func touchAncestors(levels [][]uint64, w int) {
	idx := w
	for lvl := 0; lvl < len(levels)-1; lvl++ {
		wordIdx := idx / wordBits
		bitPos := uint(idx % wordBits)
		if levels[lvl][idx] != 0 {
			levels[lvl+1][wordIdx] |= 1 << bitPos
		} else {
			levels[lvl+1][wordIdx] &^= 1 << bitPos
		}
		idx = wordIdx
	}
}

func (b *BitTreePivot) Finalize(int) {}
func (b *BitTreePivot) Sync()        {}
