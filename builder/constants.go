// SPDX-License-Identifier: MIT
// Package: geodesiclab/builder
//
// constants.go — shared constants used by mesh constructors.

package builder

//-----------------------------------------------------------------------------
// Method name constants, used to prefix errors with the constructor name.
//-----------------------------------------------------------------------------
const (
	MethodPlane         = "Plane"
	MethodSaddle        = "Saddle"
	MethodUVSphere      = "UVSphere"
	MethodTorus         = "Torus"
	MethodPlatonicSolid = "PlatonicSolid"
	MethodSDFSphere     = "SDFSphere"
)

//-----------------------------------------------------------------------------
// Minimum tessellation counts
//-----------------------------------------------------------------------------

// MinDivisions is the smallest grid resolution for Plane and Saddle.
const MinDivisions = 1

// MinSlices is the smallest number of meridians for a UV sphere.
const MinSlices = 3

// MinStacks is the smallest number of latitude bands for a UV sphere
// (one ring between the poles).
const MinStacks = 2

// MinTorusSegments is the smallest segment count around either torus circle
// that still yields a manifold without repeated faces.
const MinTorusSegments = 3

// MinSDFCells is the smallest marching-cubes resolution along the longest
// axis.
const MinSDFCells = 4

//-----------------------------------------------------------------------------
// Defaults matching cmd/meshgen
//-----------------------------------------------------------------------------
const (
	DefaultSphereRadius  = 1.0
	DefaultSphereSlices  = 64
	DefaultSphereStacks  = 32
	LowSphereSlices      = 12
	LowSphereStacks      = 6
	DefaultTorusMajor    = 1.4
	DefaultTorusMinor    = 0.45
	DefaultTorusSegMajor = 80
	DefaultTorusSegMinor = 36
	DefaultSaddleSize    = 1.2
	DefaultSaddleDiv     = 60
	DefaultSaddleHeight  = 0.6
	DefaultPlaneSize     = 1.4
	DefaultPlaneDiv      = 64
)
