package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/geodesiclab/curve"
	"github.com/katalvlaran/geodesiclab/vec3"
)

func TestNewAndScaled(t *testing.T) {
	c := curve.New(curve.HeatGeodesic, []vec3.Vec{{}, {X: 3}, {X: 3, Y: 4}})
	assert.Equal(t, 7.0, c.Length)
	assert.False(t, c.Empty())

	s := c.Scaled(2)
	assert.Equal(t, 14.0, s.Length)
	assert.Equal(t, 7.0, c.Length)

	tr := c.Transformed(func(p vec3.Vec) vec3.Vec { return vec3.Scale(2, p) }, 2)
	assert.Equal(t, vec3.Vec{X: 6, Y: 8}, tr.Points[2])
	assert.Equal(t, vec3.Vec{X: 3, Y: 4}, c.Points[2])
	assert.Equal(t, 14.0, tr.Length)

	assert.True(t, curve.Curve{}.Empty())
}

func TestSamplesAndParam(t *testing.T) {
	assert.Equal(t, 2, curve.Samples(0))
	assert.Equal(t, 2, curve.Samples(-5))
	assert.Equal(t, 64, curve.Samples(64))

	assert.Equal(t, 0.0, curve.Param(0, 5))
	assert.Equal(t, 0.25, curve.Param(1, 5))
	assert.Equal(t, 1.0, curve.Param(4, 5))
	assert.Equal(t, 0.0, curve.Param(0, 1))
}
