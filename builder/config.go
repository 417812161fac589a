// SPDX-License-Identifier: MIT
// Package: geodesiclab/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil        (no randomness unless seeded)
//   • jitter = 0          (vertices exactly on the primitive)
//   • scale  = 1
//   • offset = (0, 0, 0)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/geodesiclab/vec3"
)

// builderConfig aggregates all knobs used by constructors and placement.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for jitter; nil means “no randomness”.
	rng *rand.Rand

	// Standard deviation of the per-axis Gaussian vertex perturbation.
	jitter float64

	// Uniform scale applied after jitter.
	scale float64

	// Translation applied last.
	offset vec3.Vec
}

const (
	defaultScale  = 1.0
	defaultJitter = 0.0
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scale:  defaultScale,
		jitter: defaultJitter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
