// Package persistence is the root of a GF(2) boundary-matrix reduction
// engine for persistent homology.
//
// Given a boundary matrix — one column per simplex, each holding the row
// indices of its codimension-1 faces — this module reduces it to compute
// persistence pairs: which simplex kills which, and which classes live
// forever. The reduction algorithm and the column storage strategy are
// independent choices, each pluggable on its own axis:
//
//	column/    — the canonical column codec: a strictly increasing []int64
//	boundary/  — the Matrix contract every representation satisfies
//	reps/      — seven column representations, from plain slices to a
//	             hierarchical bitmap tree
//	reduce/    — five reducers: standard, twist, row, chunk, spectral
//	dualize/   — the anti-transpose transform between homology and
//	             cohomology
//	pairs/     — persistence-pair extraction from a reduced matrix
//	persist/   — ASCII and binary serialization of matrices and pairs
//	genmatrix/ — deterministic and randomized boundary-matrix fixtures
//	homology/  — the driver tying a representation and a reducer together
//
// Any Matrix implementation works with any reducer; every reducer agrees
// on the persistence pairs it produces for a given input, regardless of
// representation or algorithm.
package persistence
