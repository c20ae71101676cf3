package reps

import (
	"math/rand"

	"github.com/katalvlaran/homology/column"
)

// VectorSet stores each column in a balanced binary search tree (a treap)
// of row indices rather than a flat slice. Go's standard library has no
// ordered-set container and none of the example corpus's dependencies
// supply one either, so VectorSet carries a small package-private treap
// (randomized priorities, no external dependency) instead of a sorted
// slice — this is the one representation where "balanced set" from
// SPEC_FULL.md's table is taken literally rather than approximated by a
// slice, at the cost of heavier per-entry allocation.
//
// Complexity: AddTo O(|b| log n) amortized (one insert/delete per entry of
// the source column), Low O(log n), Col O(n) in-order walk.
type VectorSet struct {
	dims []int
	cols []*treap
}

// NewVectorSet returns a VectorSet sized for n columns, all initially
// empty with dimension 0.
func NewVectorSet(n int) *VectorSet {
	v := &VectorSet{
		dims: make([]int, n),
		cols: make([]*treap, n),
	}
	for i := range v.cols {
		v.cols[i] = newTreap()
	}
	return v
}

func (v *VectorSet) NumCols() int           { return len(v.dims) }
func (v *VectorSet) Dim(i int) int          { return v.dims[i] }
func (v *VectorSet) SetDim(i int, d int)    { v.dims[i] = d }
func (v *VectorSet) Col(i int) column.Column {
	return v.cols[i].inorder()
}
func (v *VectorSet) SetCol(i int, c column.Column) {
	t := newTreap()
	for _, idx := range c {
		t.insert(idx)
	}
	v.cols[i] = t
}
func (v *VectorSet) IsEmpty(i int) bool       { return v.cols[i].size == 0 }
func (v *VectorSet) Low(i int) column.Index   { return v.cols[i].max() }

// AddTo XORs every entry of the source column into the target's treap:
// present entries are deleted (cancel under GF(2)), absent ones inserted.
//
// The source's entries are snapshotted into a plain slice before any
// mutation begins: source and target may be the same column (self-add
// must empty it), and walking a treap while deleting nodes from that same
// live tree would corrupt the in-progress traversal.
func (v *VectorSet) AddTo(source, target int) {
	srcEntries := v.cols[source].inorder()
	tgt := v.cols[target]
	for _, idx := range srcEntries {
		if tgt.has(idx) {
			tgt.delete(idx)
		} else {
			tgt.insert(idx)
		}
	}
}

func (v *VectorSet) Finalize(int) {}
func (v *VectorSet) Sync()        {}

// treap is a minimal randomized balanced binary search tree over
// column.Index, used only to back VectorSet. It is not safe for
// concurrent use; each column owns its own tree exclusively.
type treap struct {
	root *treapNode
	size int
	rng  *rand.Rand
}

type treapNode struct {
	key         column.Index
	priority    int64
	left, right *treapNode
}

func newTreap() *treap {
	return &treap{rng: rand.New(rand.NewSource(1))}
}

func (t *treap) has(key column.Index) bool {
	n := t.root
	for n != nil {
		switch {
		case key == n.key:
			return true
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return false
}

func (t *treap) max() column.Index {
	if t.root == nil {
		return column.NoIndex
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key
}

func (t *treap) insert(key column.Index) {
	if t.has(key) {
		return
	}
	t.root = treapInsert(t.root, &treapNode{key: key, priority: t.rng.Int63()})
	t.size++
}

func (t *treap) delete(key column.Index) {
	if !t.has(key) {
		return
	}
	t.root = treapDelete(t.root, key)
	t.size--
}

func (t *treap) walk(fn func(column.Index)) {
	var rec func(n *treapNode)
	rec = func(n *treapNode) {
		if n == nil {
			return
		}
		rec(n.left)
		fn(n.key)
		rec(n.right)
	}
	rec(t.root)
}

func (t *treap) inorder() column.Column {
	out := make(column.Column, 0, t.size)
	t.walk(func(idx column.Index) { out = append(out, idx) })
	return out
}

func treapInsert(n *treapNode, node *treapNode) *treapNode {
	if n == nil {
		return node
	}
	if node.key < n.key {
		n.left = treapInsert(n.left, node)
		if n.left.priority > n.priority {
			n = rotateRight(n)
		}
	} else {
		n.right = treapInsert(n.right, node)
		if n.right.priority > n.priority {
			n = rotateLeft(n)
		}
	}
	return n
}

func treapDelete(n *treapNode, key column.Index) *treapNode {
	if n == nil {
		return nil
	}
	switch {
	case key < n.key:
		n.left = treapDelete(n.left, key)
	case key > n.key:
		n.right = treapDelete(n.right, key)
	default:
		switch {
		case n.left == nil:
			return n.right
		case n.right == nil:
			return n.left
		case n.left.priority > n.right.priority:
			n = rotateRight(n)
			n.right = treapDelete(n.right, key)
		default:
			n = rotateLeft(n)
			n.left = treapDelete(n.left, key)
		}
	}
	return n
}

func rotateLeft(n *treapNode) *treapNode {
	r := n.right
	n.right = r.left
	r.left = n
	return r
}

func rotateRight(n *treapNode) *treapNode {
	l := n.left
	n.left = l.right
	l.right = n
	return l
}
