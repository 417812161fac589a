package geodesic_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodesiclab/builder"
	"github.com/katalvlaran/geodesiclab/curve"
	"github.com/katalvlaran/geodesiclab/dijkstra"
	"github.com/katalvlaran/geodesiclab/geodesic"
	"github.com/katalvlaran/geodesiclab/mesh"
	"github.com/katalvlaran/geodesiclab/vec3"
)

func build(t testing.TB, con builder.Constructor) *mesh.Mesh {
	t.Helper()
	m, err := builder.Build(con)
	require.NoError(t, err)

	return m
}

// twoIslands holds two triangles that share no vertex.
func twoIslands() *mesh.Mesh {
	return &mesh.Mesh{
		Vertices: []vec3.Vec{{}, {X: 1}, {Y: 1}, {X: 5}, {X: 6}, {X: 5, Y: 1}},
		Faces:    []mesh.Face{{0, 1, 2}, {3, 4, 5}},
	}
}

func singleCurve(t *testing.T, res geodesic.Result) curve.Curve {
	t.Helper()
	require.NoError(t, res.Err)
	require.Empty(t, res.Error)
	require.True(t, res.OK())
	require.Len(t, res.Curves, 1)

	return res.Curves[0]
}

func TestAnalytic_Plane(t *testing.T) {
	m := build(t, builder.Plane(5, 2))
	res := geodesic.New().Analytic("plane.obj", m, 0, 8)

	assert.Equal(t, "plane.obj", res.InputFileName)
	assert.Equal(t, 0, res.StartID)
	assert.Equal(t, 8, res.EndID)
	assert.Equal(t, "plane", res.SurfaceType)

	c := singleCurve(t, res)
	assert.Equal(t, curve.PlaneStraightLine, c.Name)
	assert.Len(t, c.Points, 64)
	// Points live in the normalized frame, the length in model units.
	assert.InDelta(t, 0, vec3.Dist(vec3.Vec{X: -1, Y: -1}, c.Points[0]), 1e-12)
	assert.InDelta(t, 0, vec3.Dist(vec3.Vec{X: 1, Y: 1}, c.Points[63]), 1e-12)
	assert.InDelta(t, 10*math.Sqrt2, c.Length, 1e-9)
}

func TestAnalytic_FacelessPlaneStillSolves(t *testing.T) {
	m := &mesh.Mesh{Vertices: []vec3.Vec{{}, {X: 1}}}
	c := singleCurve(t, geodesic.New().Analytic("tiny_plane.obj", m, 0, 1))
	assert.InDelta(t, 1.0, c.Length, 1e-12)
}

func TestAnalytic_SphereAntipodes(t *testing.T) {
	m := build(t, builder.UVSphere(3, 8, 4))
	north, south := 0, len(m.Vertices)-1

	res := geodesic.New().Analytic(`C:\models\Sphere_Hi.OBJ`, m, north, south)
	assert.Equal(t, "sphere", res.SurfaceType)

	c := singleCurve(t, res)
	assert.Equal(t, curve.SphereGreatCircle, c.Name)
	assert.Len(t, c.Points, 128)
	assert.InDelta(t, 3*math.Pi, c.Length, 1e-9)
	for _, p := range c.Points {
		assert.InDelta(t, 1.0, vec3.Norm(p), 1e-9)
	}
}

func TestAnalytic_TorusAndSaddle(t *testing.T) {
	cases := []struct {
		name       string
		con        builder.Constructor
		start, end int
		surface    string
		curve      string
		samples    int
	}{
		{"donut.obj", builder.Torus(1.4, 0.45, 24, 12), 0, 72, "torus", curve.TorusGeodesic, 160},
		{"my_torus.obj", builder.Torus(1.4, 0.45, 24, 12), 0, 3, "torus", curve.TorusGeodesic, 160},
		{"saddle.obj", builder.Saddle(1.2, 8, 0.6), 0, 80, "saddle", curve.SaddleGeodesic, 160},
	}

	e := geodesic.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := build(t, tc.con)
			res := e.Analytic(tc.name, m, tc.start, tc.end)
			assert.Equal(t, tc.surface, res.SurfaceType)

			c := singleCurve(t, res)
			assert.Equal(t, tc.curve, c.Name)
			require.Len(t, c.Points, tc.samples)

			// A polyline between the endpoints is never shorter than the chord.
			chord := vec3.Dist(m.Vertices[tc.start], m.Vertices[tc.end])
			assert.False(t, math.IsNaN(c.Length))
			assert.GreaterOrEqual(t, c.Length, chord-1e-9)

			tr := mesh.Normalize(m.Vertices)
			assert.InDelta(t, 0, vec3.Dist(tr.Apply(m.Vertices[tc.start]), c.Points[0]), 1e-12)
			assert.InDelta(t, 0, vec3.Dist(tr.Apply(m.Vertices[tc.end]), c.Points[tc.samples-1]), 1e-12)
		})
	}
}

func TestAnalytic_MeshUsesHeatMethod(t *testing.T) {
	m, err := builder.IcosahedronMesh(2)
	require.NoError(t, err)

	res := geodesic.New().Analytic("bunny.obj", m, 0, 3)
	assert.Equal(t, "mesh", res.SurfaceType)

	c := singleCurve(t, res)
	assert.Equal(t, curve.HeatGeodesic, c.Name)
	require.Len(t, c.Points, 4)
	edge := vec3.Dist(m.Vertices[0], m.Vertices[11])
	assert.InDelta(t, 3*edge, c.Length, 1e-9)
}

func TestAnalytic_Errors(t *testing.T) {
	e := geodesic.New()
	cube := build(t, builder.Plane(1, 1))

	cases := []struct {
		name    string
		model   string
		m       *mesh.Mesh
		start   int
		end     int
		err     error
		msg     string
		surface string
	}{
		{"nil mesh", "plane.obj", nil, 0, 0, geodesic.ErrNoVertices, geodesic.MsgNoVertices, ""},
		{"empty mesh", "plane.obj", &mesh.Mesh{}, 0, 0, geodesic.ErrNoVertices, geodesic.MsgNoVertices, ""},
		{"negative start", "plane.obj", cube, -1, 0, geodesic.ErrOutOfRange, geodesic.MsgOutOfRange, ""},
		{"end past last", "plane.obj", cube, 0, 4, geodesic.ErrOutOfRange, geodesic.MsgOutOfRange, ""},
		{"faceless unnamed", "points.obj", &mesh.Mesh{Vertices: []vec3.Vec{{}, {X: 1}}}, 0, 1,
			geodesic.ErrUnsupported, geodesic.MsgUnsupported, "unsupported"},
		{"heat without path", "islands.obj", twoIslands(), 0, 4,
			geodesic.ErrHeatFailed, geodesic.MsgHeatFailed, "mesh"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := e.Analytic(tc.model, tc.m, tc.start, tc.end)
			require.ErrorIs(t, res.Err, tc.err)
			assert.Equal(t, tc.msg, res.Error)
			assert.Equal(t, tc.surface, res.SurfaceType)
			assert.Empty(t, res.Curves)
			assert.False(t, res.OK())
		})
	}
}

func TestHeat(t *testing.T) {
	e := geodesic.New()

	t.Run("ignores the name", func(t *testing.T) {
		m := build(t, builder.UVSphere(1, 8, 4))
		res := e.Heat("sphere.obj", m, 0, len(m.Vertices)-1)
		assert.Equal(t, "mesh", res.SurfaceType)
		c := singleCurve(t, res)
		assert.Equal(t, curve.HeatGeodesic, c.Name)
		assert.Greater(t, c.Length, 2.0)
	})

	t.Run("start equals end", func(t *testing.T) {
		m := build(t, builder.UVSphere(1, 8, 4))
		c := singleCurve(t, e.Heat("x.obj", m, 5, 5))
		assert.Len(t, c.Points, 1)
		assert.Equal(t, 0.0, c.Length)
	})

	t.Run("error order", func(t *testing.T) {
		res := e.Heat("x.obj", &mesh.Mesh{}, 0, 0)
		assert.Equal(t, geodesic.MsgNoVertices, res.Error)
		assert.Equal(t, "mesh", res.SurfaceType)

		res = e.Heat("x.obj", &mesh.Mesh{Vertices: []vec3.Vec{{}}}, 0, 7)
		assert.Equal(t, geodesic.MsgNoFaces, res.Error)

		res = e.Heat("x.obj", twoIslands(), 0, 7)
		assert.Equal(t, geodesic.MsgOutOfRange, res.Error)

		res = e.Heat("x.obj", twoIslands(), 0, 4)
		assert.Equal(t, geodesic.MsgHeatFailed, res.Error)
		assert.Empty(t, res.Curves)
	})
}

func TestShortestPath(t *testing.T) {
	e := geodesic.New()
	m, err := builder.IcosahedronMesh(1)
	require.NoError(t, err)

	r, err := e.ShortestPath(m, 0, 3)
	require.NoError(t, err)
	assert.True(t, r.Reachable)
	require.Len(t, r.Path, 4)
	assert.Equal(t, 0, r.Path[0])
	assert.Equal(t, 3, r.Path[3])
	edge := vec3.Dist(m.Vertices[0], m.Vertices[11])
	assert.InDelta(t, 3*edge, r.Distance, 1e-12)

	r, err = e.ShortestPath(twoIslands(), 0, 4)
	require.NoError(t, err)
	assert.False(t, r.Reachable)
	assert.Nil(t, r.Path)
	assert.Equal(t, dijkstra.Unreachable, r.Distance)

	_, err = e.ShortestPath(m, 0, 12)
	require.ErrorIs(t, err, geodesic.ErrOutOfRange)
	_, err = e.ShortestPath(nil, 0, 0)
	require.ErrorIs(t, err, geodesic.ErrNoVertices)
}

func TestOptions(t *testing.T) {
	m := build(t, builder.Plane(1, 2))

	e := geodesic.New(geodesic.WithSamples(geodesic.KindPlane, 5))
	c := singleCurve(t, e.Analytic("plane.obj", m, 0, 8))
	assert.Len(t, c.Points, 5)
	assert.Equal(t, 5, e.Options().PlaneSamples)
	assert.Equal(t, 128, e.Options().SphereSamples)

	always := geodesic.ClassifierFunc(func(string, *mesh.Mesh) geodesic.Kind { return geodesic.KindSphere })
	res := geodesic.New(geodesic.WithClassifier(always)).Analytic("plane.obj", m, 0, 8)
	assert.Equal(t, "sphere", res.SurfaceType)

	assert.Panics(t, func() { geodesic.WithSamples(geodesic.KindTorus, 1) })
	assert.Panics(t, func() { geodesic.WithClassifier(nil) })
}

func TestNameClassifier(t *testing.T) {
	faceless := &mesh.Mesh{Vertices: []vec3.Vec{{}}}
	withFaces := twoIslands()

	cases := []struct {
		name string
		m    *mesh.Mesh
		want geodesic.Kind
	}{
		{"plane.obj", faceless, geodesic.KindPlane},
		{"PLANET.obj", faceless, geodesic.KindPlane},
		{"planet_sphere.obj", faceless, geodesic.KindPlane},
		{"data/Sphere.obj", faceless, geodesic.KindSphere},
		{`C:\models\Donut.obj`, faceless, geodesic.KindTorus},
		{"torus_hi.obj", faceless, geodesic.KindTorus},
		{"SADDLE.OBJ", withFaces, geodesic.KindSaddle},
		{"plane/bunny.obj", withFaces, geodesic.KindMesh},
		{`sphere\bunny.obj`, faceless, geodesic.KindUnsupported},
		{"", withFaces, geodesic.KindMesh},
	}
	for _, tc := range cases {
		got := geodesic.NameClassifier{}.Classify(tc.name, tc.m)
		assert.Equal(t, tc.want, got, tc.name)
	}

	assert.Equal(t, "unsupported", geodesic.Kind(99).String())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", geodesic.Message(nil))
	assert.Equal(t, geodesic.MsgOutOfRange, geodesic.Message(geodesic.ErrOutOfRange))
	assert.Equal(t, "boom", geodesic.Message(errors.New("boom")))
	assert.Equal(t, geodesic.MsgHeatFailed, geodesic.Message(fmt.Errorf("%w: stalled", geodesic.ErrHeatFailed)))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	geodesic.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { geodesic.SetLogger(nil) })

	res := geodesic.New().Heat("islands.obj", twoIslands(), 0, 4)
	require.ErrorIs(t, res.Err, geodesic.ErrHeatFailed)

	out := buf.String()
	assert.Contains(t, out, "different components")
	assert.Contains(t, out, "heat method failed")
	// heat shares the logger.
	assert.Contains(t, out, "heat: assembled")

	buf.Reset()
	m, err := builder.IcosahedronMesh(1)
	require.NoError(t, err)
	require.True(t, geodesic.New().Heat("ico.obj", m, 0, 3).OK())
	assert.Contains(t, buf.String(), "endpoints connected")
	assert.Contains(t, buf.String(), "hops=")
}
