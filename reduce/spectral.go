package reduce

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/homology/boundary"
)

// SpectralOption configures Spectral's page size and parallelism.
type SpectralOption func(*spectralConfig)

type spectralConfig struct {
	step        int
	parallelism int
}

func defaultSpectralConfig(n int) spectralConfig {
	step := n / 8
	if step < 1 {
		step = 1
	}
	return spectralConfig{step: step}
}

// WithStep overrides the page width. Panics if step < 1.
func WithStep(step int) SpectralOption {
	if step < 1 {
		panic("reduce: WithStep requires step >= 1")
	}
	return func(c *spectralConfig) { c.step = step }
}

// WithSpectralParallelism caps the number of columns reduced concurrently
// within a page; 0 (the default) leaves it unbounded.
func WithSpectralParallelism(n int) SpectralOption {
	if n < 0 {
		panic("reduce: WithSpectralParallelism requires n >= 0")
	}
	return func(c *spectralConfig) { c.parallelism = n }
}

// Spectral implements §4.3's spectral-sequence reduction: columns are
// grouped into pages of width step, processed left to right. On page g,
// every column in [g*step, (g+1)*step) attempts to cancel its low against
// columns strictly to the left of the page — a prefix that, by
// construction, no goroutine this page ever writes to, since each
// goroutine only writes its own column. That makes the prefix safe to read
// concurrently without a lock, at the cost of widening each page's
// visibility to the whole frozen prefix rather than the single-width band
// the informal description suggests: simpler to make race-free, and it can
// only converge in at most as many pages since it only ever sees more
// candidates, never fewer.
//
// A collision confined to the interior of a single page (no candidate
// appears in the already-frozen prefix) is left for the final Standard
// pass, which — as in Chunk — guarantees the reduced-matrix invariant
// regardless of how much the windowed phase resolved on its own.
func Spectral(m boundary.Matrix, opts ...SpectralOption) error {
	n := m.NumCols()
	cfg := defaultSpectralConfig(n)
	for _, opt := range opts {
		opt(&cfg)
	}
	step := cfg.step

	for lo := 0; lo < n; lo += step {
		hi := lo + step
		if hi > n {
			hi = n
		}
		var g errgroup.Group
		if cfg.parallelism > 0 {
			g.SetLimit(cfg.parallelism)
		}
		frozen := lo
		for j := lo; j < hi; j++ {
			j := j
			g.Go(func() error {
				return attemptWindowed(m, j, 0, frozen)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		m.Sync()
	}

	if err := Standard(m); err != nil {
		return err
	}
	clearKilledColumns(m)
	return nil
}

// attemptWindowed repeatedly tries to cancel column j's low using a
// column in [lo, hi) that currently shares it, stopping when j is empty or
// no such candidate remains in the window.
func attemptWindowed(m boundary.Matrix, j, lo, hi int) error {
	for !m.IsEmpty(j) {
		l := m.Low(j)
		owner := -1
		for k := lo; k < hi; k++ {
			if k == j || m.IsEmpty(k) {
				continue
			}
			if m.Low(k) == l {
				owner = k
				break
			}
		}
		if owner < 0 {
			return nil
		}
		m.AddTo(owner, j)
		if !m.IsEmpty(j) && m.Low(j) >= l {
			return fmt.Errorf("reduce: column %d: %w", j, boundary.ErrLowDidNotDecrease)
		}
	}
	return nil
}
