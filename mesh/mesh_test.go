package mesh_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodesiclab/dijkstra"
	"github.com/katalvlaran/geodesiclab/mesh"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// unitSquare is two triangles sharing the diagonal 0-2.
func unitSquare() *mesh.Mesh {
	m, _ := mesh.New(
		[]vec3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		[]mesh.Face{{0, 1, 2}, {0, 2, 3}},
	)

	return m
}

func TestNew_DropsInvalidFaces(t *testing.T) {
	m, dropped := mesh.New(
		[]vec3.Vec{{}, {X: 1}, {Y: 1}},
		[]mesh.Face{{0, 1, 2}, {0, 1, 3}, {-1, 1, 2}},
	)
	assert.Equal(t, 2, dropped)
	assert.Equal(t, []mesh.Face{{0, 1, 2}}, m.Faces)
	require.NoError(t, m.Validate())

	bad := &mesh.Mesh{Vertices: []vec3.Vec{{}}, Faces: []mesh.Face{{0, 0, 4}}}
	require.ErrorIs(t, bad.Validate(), mesh.ErrVertexOutOfRange)
	require.ErrorIs(t, (&mesh.Mesh{}).Validate(), mesh.ErrNoVertices)
}

func TestBuildGraph_ParallelEdges(t *testing.T) {
	g, err := unitSquare().BuildGraph()
	require.NoError(t, err)

	// Six face edges, the shared diagonal twice.
	assert.Equal(t, 6, g.Size())
	assert.Equal(t, 4, g.Degree(0))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.Target(3))
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.InDelta(t, 2.0, res.Distance, 1e-12)
}

func TestAreaEdgeLengthAndCompact(t *testing.T) {
	m := unitSquare()
	assert.InDelta(t, 1.0, m.Area(), 1e-12)
	assert.InDelta(t, (4+2*1.4142135623730951)/6, m.MeanEdgeLength(), 1e-12)

	m.Vertices = append(m.Vertices, vec3.Vec{Z: 9})
	m.Faces = []mesh.Face{{1, 2, 4}}
	remap := m.Compact()
	assert.Equal(t, []int{-1, 0, 1, -1, 2}, remap)
	assert.Len(t, m.Vertices, 3)
	assert.Equal(t, []mesh.Face{{0, 1, 2}}, m.Faces)
	assert.Equal(t, 0.0, (&mesh.Mesh{}).MeanEdgeLength())
}

func TestNormalize_RoundTrip(t *testing.T) {
	pts := []vec3.Vec{{X: 10, Y: -2, Z: 3}, {X: 14, Y: 0, Z: 3}, {X: 12, Y: 1, Z: 4}}
	tr := mesh.Normalize(pts)
	assert.Equal(t, vec3.Vec{X: 12, Y: -0.5, Z: 3.5}, tr.Center)
	assert.InDelta(t, 0.5, tr.Scale, 1e-15)
	assert.InDelta(t, 2.0, tr.LengthScale(), 1e-15)

	for _, p := range pts {
		q := tr.Invert(tr.Apply(p))
		assert.InDelta(t, 0.0, vec3.Dist(p, q), 1e-12)
	}
	lo, hi := vec3.Bounds(tr.ApplyAll(pts))
	assert.InDelta(t, 2.0, hi.X-lo.X, 1e-12)

	flat := mesh.Normalize([]vec3.Vec{{X: 5}, {X: 5}})
	assert.Equal(t, 1.0, flat.Scale)
	assert.Equal(t, 1.0, flat.LengthScale())
	assert.Equal(t, 1.0, mesh.Identity.LengthScale())
}

func TestReadOBJ(t *testing.T) {
	src := `# quad with texture/normal indices
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1 4/1/1
f -4 -3 -2
f 1 2 9
f 0 1 2
f 1 x 2
f 1 2
`
	m, stats, err := mesh.ReadOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 4)
	assert.Equal(t, []mesh.Face{{0, 1, 2}, {0, 2, 3}, {0, 1, 2}}, m.Faces)
	assert.Equal(t, 3, stats.DroppedFaces)
	assert.Equal(t, 1, stats.Triangulated)
}

func TestWriteOBJ_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, mesh.WriteOBJ(&buf, unitSquare(), "unit square", "two faces"))
	assert.True(t, strings.HasPrefix(buf.String(), "# unit square\n# two faces\nv 0.000000 0.000000 0.000000\n"))

	back, _, err := mesh.ReadOBJ(&buf)
	require.NoError(t, err)
	assert.Equal(t, unitSquare().Faces, back.Faces)
	assert.Equal(t, unitSquare().Vertices, back.Vertices)
}

func TestSaveLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.obj")
	require.NoError(t, mesh.SaveOBJ(path, unitSquare()))

	m, _, err := mesh.LoadOBJ(path)
	require.NoError(t, err)
	assert.Len(t, m.Faces, 2)

	_, _, err = mesh.LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
