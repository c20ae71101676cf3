// Package pairs implements §4.5's persistence-pair extraction: reading
// births and deaths off a reduced boundary matrix, plus the essential
// (never-killed) classes that extraction reports alongside them.
package pairs

import (
	"sort"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/column"
)

// Pair is one persistence pair: the simplex at index Birth is created and
// the feature it opens is killed when the simplex at index Death is
// added. Birth is always strictly less than Death.
type Pair struct {
	Birth int64
	Death int64
}

// Pairs is the ordered result of extraction: the persistence pairs found,
// plus the indices of classes that are born and never killed.
type Pairs struct {
	Pairs     []Pair
	Essential []int64
}

// Len reports the number of finite pairs.
func (p Pairs) Len() int { return len(p.Pairs) }

// SortByDeath orders the pairs by death index (then birth, for ties that
// cannot actually occur since death indices are unique), giving a
// deterministic, comparable ordering independent of extraction order.
func (p Pairs) SortByDeath() {
	sort.Slice(p.Pairs, func(i, j int) bool {
		if p.Pairs[i].Death != p.Pairs[j].Death {
			return p.Pairs[i].Death < p.Pairs[j].Death
		}
		return p.Pairs[i].Birth < p.Pairs[j].Birth
	})
	sort.Slice(p.Essential, func(i, j int) bool { return p.Essential[i] < p.Essential[j] })
}

// Equal reports whether p and o contain the same pairs and the same
// essential classes, as sets (order-independent).
func Equal(p, o Pairs) bool {
	if len(p.Pairs) != len(o.Pairs) || len(p.Essential) != len(o.Essential) {
		return false
	}
	a, b := p, o
	a.SortByDeath()
	b.SortByDeath()
	for i := range a.Pairs {
		if a.Pairs[i] != b.Pairs[i] {
			return false
		}
	}
	for i := range a.Essential {
		if a.Essential[i] != b.Essential[i] {
			return false
		}
	}
	return true
}

// Extract reads persistence pairs off a reduced matrix m: for every
// nonempty column d, low(d) = b is a birth killed at d. Any column index
// whose row is never claimed as a low, and which is itself empty, is an
// essential class — born, never killed.
//
// Extract does not reduce m; call a reduce.Reducer first. Its result is
// only meaningful on an already-reduced matrix (boundary.IsReduced).
func Extract(m boundary.Matrix) Pairs {
	n := m.NumCols()
	claimed := make(map[column.Index]struct{}, n)
	out := Pairs{}
	for d := 0; d < n; d++ {
		if m.IsEmpty(d) {
			continue
		}
		b := m.Low(d)
		out.Pairs = append(out.Pairs, Pair{Birth: int64(b), Death: int64(d)})
		claimed[b] = struct{}{}
	}
	for i := 0; i < n; i++ {
		if !m.IsEmpty(i) {
			continue
		}
		if _, isClaimed := claimed[column.Index(i)]; isClaimed {
			continue
		}
		out.Essential = append(out.Essential, int64(i))
	}
	return out
}
