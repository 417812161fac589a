// SPDX-License-Identifier: MIT
// Package: geodesiclab/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and BuildMesh never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/geodesiclab/vec3"
)

// BuilderOption customizes mesh construction by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for jitter. Panics on nil.
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

// WithJitter perturbs every vertex by independent N(0, sigma²) offsets per
// axis. Requires an RNG (WithSeed/WithRand). Panics if sigma < 0 or is not
// finite.
func WithJitter(sigma float64) BuilderOption {
	if !(sigma >= 0) || math.IsInf(sigma, 1) {
		panic("builder: WithJitter(sigma<0)")
	}

	return func(c *builderConfig) {
		c.jitter = sigma
	}
}

// WithScale multiplies every vertex by s. Panics unless s is finite and
// positive.
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 1) {
		panic("builder: WithScale(s<=0)")
	}

	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithOffset translates every vertex by d. Panics on non-finite components.
func WithOffset(d vec3.Vec) BuilderOption {
	if !vec3.IsFinite(d) {
		panic("builder: WithOffset(non-finite)")
	}

	return func(c *builderConfig) {
		c.offset = d
	}
}
