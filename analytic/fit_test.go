package analytic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/geodesiclab/analytic"
	"github.com/katalvlaran/geodesiclab/surface"
	"github.com/katalvlaran/geodesiclab/vec3"
)

func torusGrid(s surface.Torus, nu, nv int) []vec3.Vec {
	pts := make([]vec3.Vec, 0, nu*nv)
	for i := 0; i < nu; i++ {
		for j := 0; j < nv; j++ {
			pts = append(pts, s.Eval(2*math.Pi*float64(i)/float64(nu), 2*math.Pi*float64(j)/float64(nv)))
		}
	}

	return pts
}

func TestFitTorus(t *testing.T) {
	want := surface.Torus{Center: vec3.Vec{X: 0.1, Z: -0.2}, Major: 0.7, Minor: 0.2}
	got := analytic.FitTorus(torusGrid(want, 32, 16))

	assert.InDelta(t, want.Center.X, got.Center.X, 1e-9)
	assert.InDelta(t, want.Center.Y, got.Center.Y, 1e-9)
	assert.InDelta(t, want.Center.Z, got.Center.Z, 1e-9)
	assert.InDelta(t, want.Major, got.Major, 1e-9)
	assert.InDelta(t, want.Minor, got.Minor, 1e-9)
}

func TestFitTorus_Degenerate(t *testing.T) {
	got := analytic.FitTorus([]vec3.Vec{{X: 1, Y: 1, Z: 1}})
	assert.Equal(t, analytic.DefaultMajorRadius, got.Major)
	assert.Equal(t, analytic.DefaultMinorRadius, got.Minor)

	empty := analytic.FitTorus(nil)
	assert.Equal(t, analytic.DefaultMajorRadius, empty.Major)
	assert.Equal(t, analytic.DefaultMinorRadius, empty.Minor)
}

func TestFitSaddle(t *testing.T) {
	s := surface.Saddle{A: 0.6}
	var pts []vec3.Vec
	for i := -4; i <= 4; i++ {
		for j := -4; j <= 4; j++ {
			pts = append(pts, s.Eval(float64(i)/4, float64(j)/4))
		}
	}

	got := analytic.FitSaddle(pts)
	assert.InDelta(t, 0.6, got.A, 1e-9)
}

func TestFitSaddle_Flat(t *testing.T) {
	// x² − y² vanishes on the diagonal.
	got := analytic.FitSaddle([]vec3.Vec{{X: -1, Y: -1}, {}, {X: 1, Y: 1}})
	assert.Equal(t, analytic.DefaultSaddleA, got.A)
}
