package geodesic_test

import (
	"fmt"

	"github.com/katalvlaran/geodesiclab/builder"
	"github.com/katalvlaran/geodesiclab/geodesic"
)

// ExampleEngine_Analytic connects the poles of a sphere of radius 3. The
// file name selects the closed-form great circle.
func ExampleEngine_Analytic() {
	m, err := builder.Build(builder.UVSphere(3, 8, 4))
	if err != nil {
		panic(err)
	}

	res := geodesic.New().Analytic("sphere.obj", m, 0, len(m.Vertices)-1)
	c := res.Curves[0]
	fmt.Printf("%s %s %d %.3f\n", res.SurfaceType, c.Name, len(c.Points), c.Length)
	// Output: sphere sphere_great_circle 128 9.425
}

// ExampleEngine_Analytic_unsupported shows the result for a point cloud
// whose name matches no analytic surface.
func ExampleEngine_Analytic_unsupported() {
	m, err := builder.Build(builder.Plane(1, 1))
	if err != nil {
		panic(err)
	}
	m.Faces = nil

	res := geodesic.New().Analytic("cloud.obj", m, 0, 3)
	fmt.Println(res.SurfaceType, len(res.Curves))
	fmt.Println(res.Error)
	// Output:
	// unsupported 0
	// Analytics currently supports plane.obj, sphere.obj, donut.obj, saddle.obj, or heat method on triangle meshes
}

// ExampleEngine_ShortestPath runs Dijkstra across a 2×2 grid along its
// diagonal edges.
func ExampleEngine_ShortestPath() {
	m, err := builder.Build(builder.Plane(1, 2))
	if err != nil {
		panic(err)
	}

	r, err := geodesic.New().ShortestPath(m, 2, 6)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%v %v %.4f\n", r.Reachable, r.Path, r.Distance)
	// Output: true [2 4 6] 2.8284
}
