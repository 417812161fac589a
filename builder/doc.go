// Package builder provides deterministic triangle-mesh primitives in the
// functional-options style used across the module: fixtures for tests and
// benchmarks, and the models written by cmd/meshgen.
//
// Key components:
//
//   - Orchestration:
//     – BuildMesh(opts, cons...) runs Constructors in order on one mesh.
//     – Build(con, opts...) is the single-constructor shorthand.
//   - Constructors (each returns a Constructor closure):
//     – Plane(size, div):              square grid in z = 0.
//     – Saddle(size, div, height):     grid on z = height·(x² − y²).
//     – UVSphere(r, slices, stacks):   latitude/longitude sphere, no seams.
//     – Torus(R, r, segMajor, segMinor): welded ring torus.
//     – PlatonicSolid(name, r):        tetrahedron, octahedron, icosahedron.
//     – SDFSphere(r, cells):           marching-cubes sphere via sdfx.
//   - Options (panic on meaningless values):
//     – WithSeed / WithRand:  RNG for jitter.
//     – WithJitter(sigma):    Gaussian vertex noise.
//     – WithScale, WithOffset: placement.
//
// Errors are sentinels (ErrTooFewSegments, ErrBadSize, ErrNeedRandSource,
// ErrConstructFailed, ErrUnknownSolid) wrapped with the constructor name.
package builder
