package analytic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodesiclab/analytic"
	"github.com/katalvlaran/geodesiclab/curve"
	"github.com/katalvlaran/geodesiclab/surface"
	"github.com/katalvlaran/geodesiclab/vec3"
)

func assertVecInDelta(t *testing.T, want, got vec3.Vec, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func TestPlane(t *testing.T) {
	p1, p2 := vec3.Vec{X: -1, Y: -1}, vec3.Vec{X: 1, Y: 1}
	c := analytic.Plane(p1, p2, 5)

	assert.Equal(t, curve.PlaneStraightLine, c.Name)
	require.Len(t, c.Points, 5)
	assert.InDelta(t, 2*math.Sqrt2, c.Length, 1e-12)
	assert.Equal(t, p1, c.Points[0])
	assert.Equal(t, p2, c.Points[4])
	assertVecInDelta(t, vec3.Vec{X: -0.5, Y: -0.5}, c.Points[1], 1e-12)

	step := vec3.Dist(c.Points[0], c.Points[1])
	for i := 1; i < len(c.Points); i++ {
		assert.InDelta(t, step, vec3.Dist(c.Points[i-1], c.Points[i]), 1e-12)
	}

	assert.Len(t, analytic.Plane(p1, p2, 1).Points, 2)
}

func TestSphere_RightAngle(t *testing.T) {
	c := analytic.Sphere(vec3.Vec{X: 1}, vec3.Vec{Y: 1}, 129)

	assert.Equal(t, curve.SphereGreatCircle, c.Name)
	require.Len(t, c.Points, 129)
	assert.InDelta(t, math.Pi/2, c.Length, 1e-12)
	assertVecInDelta(t, vec3.Vec{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, c.Points[64], 1e-12)
	for _, p := range c.Points {
		assert.InDelta(t, 1.0, vec3.Norm(p), 1e-12)
		assert.InDelta(t, 0.0, p.Z, 1e-12)
	}
	assert.InDelta(t, c.Length, vec3.PolylineLength(c.Points), 1e-4)
}

func TestSphere_Identical(t *testing.T) {
	p := vec3.Vec{X: 0.3, Y: 0.4}
	c := analytic.Sphere(p, p, 16)

	require.Len(t, c.Points, 16)
	assert.Equal(t, 0.0, c.Length)
	for _, q := range c.Points {
		assertVecInDelta(t, p, q, 1e-12)
	}
}

func TestSphere_Antipodal(t *testing.T) {
	c := analytic.Sphere(vec3.Vec{X: 2}, vec3.Vec{X: -1}, 129)

	r := 1.5
	require.Len(t, c.Points, 129)
	assert.InDelta(t, r*math.Pi, c.Length, 1e-12)
	assertVecInDelta(t, vec3.Vec{X: r}, c.Points[0], 1e-12)
	assertVecInDelta(t, vec3.Vec{Z: r}, c.Points[64], 1e-12)
	assertVecInDelta(t, vec3.Vec{X: -r}, c.Points[128], 1e-12)
	for _, p := range c.Points {
		assert.InDelta(t, r, vec3.Norm(p), 1e-12)
	}
}

func TestSphere_ZeroRadiusEndpoint(t *testing.T) {
	c := analytic.Sphere(vec3.Vec{}, vec3.Vec{Z: 1}, 8)
	assert.Equal(t, 0.0, c.Length)
	for _, p := range c.Points {
		assertVecInDelta(t, vec3.Vec{Z: 1}, p, 1e-12)
	}
}

func TestTorus_Converges(t *testing.T) {
	tp := analytic.TorusParams{Major: 1, Minor: 0.35}
	s := tp.Surface()
	p1, p2 := s.Eval(0, 0.3), s.Eval(1.0, -0.2)

	c, rep := analytic.Torus(p1, p2, tp, analytic.TorusSamples)

	require.True(t, rep.Converged, "shooting error: %v", rep.Err)
	assert.NoError(t, rep.Err)
	assert.Equal(t, curve.TorusGeodesic, c.Name)
	require.Len(t, c.Points, analytic.TorusSamples)
	assert.Equal(t, p1, c.Points[0])
	assert.Equal(t, p2, c.Points[len(c.Points)-1])
	assert.InDelta(t, vec3.PolylineLength(c.Points), c.Length, 1e-12)
	assert.GreaterOrEqual(t, c.Length, vec3.Dist(p1, p2))

	for _, p := range c.Points {
		rho := math.Hypot(p.X, p.Y)
		assert.InDelta(t, tp.Minor, math.Hypot(rho-tp.Major, p.Z), 1e-6)
	}
}

func TestTorus_SamePoint(t *testing.T) {
	tp := analytic.TorusParams{Major: 1, Minor: 0.25}
	p := tp.Surface().Eval(0.5, 0.5)

	c, rep := analytic.Torus(p, p, tp, 10)
	assert.True(t, rep.Converged)
	assert.Equal(t, 0, rep.Iterations)
	require.Len(t, c.Points, 10)
	assert.InDelta(t, 0.0, c.Length, 1e-12)
}

func TestSaddle_Converges(t *testing.T) {
	sp := analytic.SaddleParams{A: 0.5}
	s := sp.Surface()
	p1, p2 := s.Eval(-0.5, 0.2), s.Eval(0.5, -0.1)

	c, rep := analytic.Saddle(p1, p2, sp, analytic.SaddleSamples)

	require.True(t, rep.Converged, "shooting error: %v", rep.Err)
	assert.Equal(t, curve.SaddleGeodesic, c.Name)
	assert.Equal(t, p1, c.Points[0])
	assert.Equal(t, p2, c.Points[len(c.Points)-1])
	for _, p := range c.Points {
		assert.InDelta(t, sp.A*(p.X*p.X-p.Y*p.Y), p.Z, 1e-9)
	}
}

func TestSaddle_FallbackOnNonConvergence(t *testing.T) {
	sp := analytic.SaddleParams{A: 0.5}
	s := sp.Surface()
	p1, p2 := s.Eval(-0.8, -0.3), s.Eval(0.7, 0.5)

	c, rep := analytic.Saddle(p1, p2, sp, 11, surface.WithShootMaxIter(0))

	assert.False(t, rep.Converged)
	assert.ErrorIs(t, rep.Err, surface.ErrNotConverged)
	require.Len(t, c.Points, 11)
	assert.Equal(t, p1, c.Points[0])
	assert.Equal(t, p2, c.Points[10])
	// Linear in parameter space: the midpoint sits above (−0.05, 0.1).
	assertVecInDelta(t, s.Eval(-0.05, 0.1), c.Points[5], 1e-12)
	assert.InDelta(t, vec3.PolylineLength(c.Points), c.Length, 1e-12)
}

func TestShootCurve_SingularFallsBack(t *testing.T) {
	bad := surface.Func(func(u, v float64) vec3.Vec { return vec3.Vec{X: math.NaN()} })
	p1, p2 := vec3.Vec{}, vec3.Vec{X: 1}

	c, rep := analytic.ShootCurve("broken", bad, 0, 0, 1, 0, p1, p2, 4)
	assert.False(t, rep.Converged)
	assert.Error(t, rep.Err)
	require.Len(t, c.Points, 4)
	assert.Equal(t, p1, c.Points[0])
	assert.Equal(t, p2, c.Points[3])
}
