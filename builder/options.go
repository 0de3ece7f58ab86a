// SPDX-License-Identifier: MIT
// Package: adp/builder
//
// options.go: functional options for the generators.
//
// Option constructors validate and panic on meaningless inputs; the
// generators themselves return errors and never panic.

package builder

import "math/rand"

// BuilderOption customizes a generator by mutating its builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightRange sets the inclusive weight bounds. Panics unless
// 1 <= lo <= hi; a zero weight would read as "no edge" in a matrix.
func WithWeightRange(lo, hi int) BuilderOption {
	if lo < 1 || hi < lo {
		panic("builder: WithWeightRange requires 1 <= lo <= hi")
	}
	return func(c *builderConfig) {
		c.minWeight, c.maxWeight = lo, hi
	}
}

// WithUndirected makes RandomGraph return an undirected core.Graph. The
// slice generators ignore it.
func WithUndirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = false
	}
}
