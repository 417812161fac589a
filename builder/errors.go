// SPDX-License-Identifier: MIT
// Package: geodesiclab/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, prefixed by the Method* tag.

package builder

import "errors"

// ErrTooFewSegments indicates that a tessellation count (slices, stacks,
// divisions, segments, cells) is below the minimum for the primitive.
var ErrTooFewSegments = errors.New("builder: too few segments")

// ErrBadSize indicates a non-positive or non-finite radius or extent.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates that jitter was requested without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a primitive could not be produced
// (nil constructor, SDF evaluation failure, empty tessellation).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownSolid indicates an unsupported PlatonicName.
var ErrUnknownSolid = errors.New("builder: unknown solid")
