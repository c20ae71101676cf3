// Package homology wires together boundary.Matrix, a reduce.Reducer, and
// pairs extraction into the two entry points described in SPEC_FULL.md's
// EXTERNAL INTERFACES section: Compute (reduce then extract directly) and
// ComputeDualized (reduce the anti-transpose, then carry the pairs back).
// ComputeWith generalizes both into a single call that takes the reducer
// as an explicit argument rather than relying on a package-level default.
package homology

import (
	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/dualize"
	"github.com/katalvlaran/homology/pairs"
	"github.com/katalvlaran/homology/reduce"
)

// Reducer mutates m into reduced form in place. reduce.Standard,
// reduce.Twist, reduce.Row, reduce.Chunk, and reduce.Spectral (bound with
// their own options) all satisfy this signature.
type Reducer func(m boundary.Matrix) error

// DefaultReducer is Twist: the eager-clearing variant of standard
// reduction, and the fastest single-threaded choice for most inputs.
var DefaultReducer Reducer = reduce.Twist

// Compute reduces m with reducer (DefaultReducer if reducer is nil) and
// extracts its persistence pairs. m is mutated in place.
func Compute(m boundary.Matrix, reducer Reducer) (pairs.Pairs, error) {
	if reducer == nil {
		reducer = DefaultReducer
	}
	if err := reducer(m); err != nil {
		return pairs.Pairs{}, err
	}
	return pairs.Extract(m), nil
}

// ComputeDualized reduces dualize(m) with reducer and carries the
// resulting pairs back into m's own index space. m ends up holding the
// reduced dual matrix, not a reduced form of the original — callers that
// need both the pairs and the original's own reduced form should use
// Compute instead, or dualize.Dualize a copy themselves.
func ComputeDualized(m boundary.Matrix, reducer Reducer) (pairs.Pairs, error) {
	if reducer == nil {
		reducer = DefaultReducer
	}
	n := m.NumCols()
	dualize.Dualize(m)
	if err := reducer(m); err != nil {
		return pairs.Pairs{}, err
	}
	return dualize.DualizePairs(pairs.Extract(m), n), nil
}

// ComputeWith is Compute with the reducer as its first, required
// argument: the generalized entry point SPEC_FULL.md's driver exposes
// when the algorithm choice is itself part of a caller's own signature.
func ComputeWith(reducer Reducer, m boundary.Matrix) (pairs.Pairs, error) {
	return Compute(m, reducer)
}
