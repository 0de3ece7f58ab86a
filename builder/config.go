// SPDX-License-Identifier: MIT
// Package: adp/builder
//
// config.go: resolved generator configuration and its defaults.

package builder

import "math/rand"

// Defaults used when no option overrides them.
const (
	DefaultSeed      int64 = 1
	DefaultMinWeight       = 1
	DefaultMaxWeight       = 10
)

// builderConfig holds every knob the generators read.
type builderConfig struct {
	rng       *rand.Rand
	minWeight int
	maxWeight int
	directed  bool
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		minWeight: DefaultMinWeight,
		maxWeight: DefaultMaxWeight,
		directed:  true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// pair draws an ordered pair of distinct vertex ids in [0,n). n must be >= 2.
func (c builderConfig) pair(n int) (int, int) {
	from := c.rng.Intn(n)
	to := c.rng.Intn(n)
	for to == from {
		to = c.rng.Intn(n)
	}

	return from, to
}

// weight draws a weight in [minWeight, maxWeight].
func (c builderConfig) weight() int {
	return c.minWeight + c.rng.Intn(c.maxWeight-c.minWeight+1)
}
