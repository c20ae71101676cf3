// Package reduce implements the five reducers of SPEC_FULL.md's
// COMPONENT DESIGN §4.3: Standard, Twist, Row, Chunk, and Spectral. Every
// reducer mutates a boundary.Matrix in place into reduced form (distinct
// nonempty columns have distinct lows); all five are deterministic and
// agree on the multiset of extracted persistence pairs, per testable
// property 3.
//
// Standard, Twist, and Row run single-threaded with no synchronization.
// Chunk and Spectral partition columns across goroutines for an initial
// parallel phase, bounded by golang.org/x/sync/errgroup, followed by a
// sequential barrier (boundary.Matrix.Sync plus a final Standard pass)
// that guarantees the reduced-matrix invariant regardless of how far the
// parallel phase got — see chunk.go and spectral.go for why that safety
// net is there and what it costs.
package reduce
