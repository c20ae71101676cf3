package genmatrix

import "math/rand"

// Option customizes Random by mutating a config before generation begins.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func newConfig() config {
	return config{rng: rand.New(rand.NewSource(1))}
}

// WithSeed makes Random deterministic for the given seed. The default
// seed (used if no seed/rand option is given) is fixed, so even unseeded
// calls are reproducible; WithSeed exists for tests that want a distinct,
// named seed rather than relying on the default.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("genmatrix: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}
