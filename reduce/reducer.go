package reduce

import "github.com/katalvlaran/homology/boundary"

// Reducer mutates a boundary.Matrix into reduced form in place. Standard,
// Twist, and Row satisfy this signature directly; Chunk and Spectral take
// extra options, so callers that need a bare Reducer from one of them
// should wrap the call, e.g. func(m boundary.Matrix) error { return
// Chunk(m, WithParallelism(4)) }.
type Reducer func(m boundary.Matrix) error
