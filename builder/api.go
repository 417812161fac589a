// SPDX-License-Identifier: MIT
// Package: geodesiclab/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMesh(bopts, cons...). Creates an empty mesh,
//     resolves cfg, runs cons in order, then applies the global placement
//     (jitter, scale, offset).
//   - Constructors append geometry; indices in their faces are shifted by the
//     number of vertices already present, so several primitives may share a
//     mesh.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     meshes.
//   - Safety: constructors return sentinel errors; only option constructors
//     panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geodesiclab/mesh"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// Constructor appends one primitive to m using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before touching m.
//   - Offset their face indices by len(m.Vertices) at entry.
//   - Preserve determinism for the same config and call order.
type Constructor func(m *mesh.Mesh, cfg builderConfig) error

// BuildMesh creates a mesh from the constructors in order, then moves every
// vertex by the configured jitter, scale and offset (in that order).
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against
//     ErrTooFewSegments, ErrBadSize, ErrNeedRandSource, ErrConstructFailed.
//
// Complexity: Σ cost of each constructor plus O(V) for placement.
func BuildMesh(bopts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	m := &mesh.Mesh{}
	cfg := newBuilderConfig(bopts...)

	// 1) Reject configurations that cannot be honored.
	if cfg.jitter > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("BuildMesh: jitter=%g: %w", cfg.jitter, ErrNeedRandSource)
	}

	// 2) Apply constructors in order.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}

	// 3) Placement.
	for i, p := range m.Vertices {
		if cfg.jitter > 0 {
			p = vec3.Add(p, vec3.Vec{
				X: cfg.rng.NormFloat64() * cfg.jitter,
				Y: cfg.rng.NormFloat64() * cfg.jitter,
				Z: cfg.rng.NormFloat64() * cfg.jitter,
			})
		}
		m.Vertices[i] = vec3.Add(vec3.Scale(cfg.scale, p), cfg.offset)
	}

	return m, nil
}

// Build is BuildMesh for a single constructor.
func Build(con Constructor, opts ...BuilderOption) (*mesh.Mesh, error) {
	return BuildMesh(opts, con)
}
