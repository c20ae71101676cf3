package reduce

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/column"
)

// ChunkOption configures Chunk's partitioning and parallelism.
type ChunkOption func(*chunkConfig)

type chunkConfig struct {
	chunkSize   int
	parallelism int
}

func defaultChunkConfig(n int) chunkConfig {
	size := int(math.Sqrt(float64(n)))
	if size < 1 {
		size = 1
	}
	return chunkConfig{chunkSize: size}
}

// WithChunkSize overrides the contiguous column-range size phase 1
// partitions the matrix into. Panics if size < 1.
func WithChunkSize(size int) ChunkOption {
	if size < 1 {
		panic("reduce: WithChunkSize requires size >= 1")
	}
	return func(c *chunkConfig) { c.chunkSize = size }
}

// WithParallelism caps the number of chunk workers run concurrently; 0 (the
// default) leaves it unbounded. Panics if n < 0.
func WithParallelism(n int) ChunkOption {
	if n < 0 {
		panic("reduce: WithParallelism requires n >= 0")
	}
	return func(c *chunkConfig) { c.parallelism = n }
}

// Chunk implements §4.3's chunk reduction. Phase 1 partitions the columns
// into disjoint contiguous ranges and reduces each range independently and
// concurrently, using a local low map scoped to that range alone — no
// goroutine ever reads or writes a column outside its own range, so this
// phase needs no locking. Phase 2 runs Standard over the whole matrix: by
// the time phase 1 finishes, most columns are already in their final form,
// but phase 2 is what actually guarantees the reduced-matrix invariant,
// since two columns in different ranges can still collide on a low that
// phase 1 had no way to see. Phase 3 re-sweeps to clear killed columns, so
// Chunk's output matches Twist's column-cleared shape rather than
// Standard's.
func Chunk(m boundary.Matrix, opts ...ChunkOption) error {
	n := m.NumCols()
	cfg := defaultChunkConfig(n)
	for _, opt := range opts {
		opt(&cfg)
	}

	var g errgroup.Group
	if cfg.parallelism > 0 {
		g.SetLimit(cfg.parallelism)
	}
	for start := 0; start < n; start += cfg.chunkSize {
		start := start
		end := start + cfg.chunkSize
		if end > n {
			end = n
		}
		g.Go(func() error {
			return reduceRange(m, start, end)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	m.Sync()

	if err := Standard(m); err != nil {
		return err
	}
	clearKilledColumns(m)
	return nil
}

func reduceRange(m boundary.Matrix, start, end int) error {
	low := make(map[column.Index]int, end-start)
	for j := start; j < end; j++ {
		if err := reduceColumn(m, low, j); err != nil {
			return err
		}
	}
	return nil
}
