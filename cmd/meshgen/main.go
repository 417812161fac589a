// Command meshgen writes the sample models used by the viewer: UV spheres,
// a plane grid, a torus ("donut"), a saddle, an icosahedron and optionally
// a marching-cubes sphere.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/geodesiclab/builder"
	"github.com/katalvlaran/geodesiclab/mesh"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// model is one output file.
type model struct {
	file   string
	con    builder.Constructor
	header []string
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("meshgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "", "Output directory for OBJ files (required)")

	sphereSlices := fs.Int("sphere-slices", builder.DefaultSphereSlices, "UV sphere slices")
	sphereStacks := fs.Int("sphere-stacks", builder.DefaultSphereStacks, "UV sphere stacks")
	sphereRadius := fs.Float64("sphere-radius", builder.DefaultSphereRadius, "Sphere radius")

	torusMajor := fs.Float64("torus-major", builder.DefaultTorusMajor, "Torus major radius")
	torusMinor := fs.Float64("torus-minor", builder.DefaultTorusMinor, "Torus minor radius")
	torusSegMajor := fs.Int("torus-seg-major", builder.DefaultTorusSegMajor, "Torus segments around the axis")
	torusSegMinor := fs.Int("torus-seg-minor", builder.DefaultTorusSegMinor, "Torus segments around the tube")

	saddleSize := fs.Float64("saddle-size", builder.DefaultSaddleSize, "Saddle half extent")
	saddleDiv := fs.Int("saddle-divisions", builder.DefaultSaddleDiv, "Saddle grid divisions")
	saddleHeight := fs.Float64("saddle-height", builder.DefaultSaddleHeight, "Saddle height h in z = h(x²−y²)")

	planeSize := fs.Float64("plane-size", builder.DefaultPlaneSize, "Plane half extent")
	planeDiv := fs.Int("plane-divisions", builder.DefaultPlaneDiv, "Plane grid divisions")

	sdfCells := fs.Int("sdf-cells", 0, "Also write sphere_sdf.obj with this many marching-cubes cells (0 = skip)")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *out == "" {
		fmt.Fprintln(stderr, "Error: -out is required")
		fs.PrintDefaults()
		return 1
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	models := []model{
		{"sphere.obj", builder.UVSphere(*sphereRadius, *sphereSlices, *sphereStacks), []string{
			"Generated sphere (UV)",
			fmt.Sprintf("slices=%d", *sphereSlices),
			fmt.Sprintf("stacks=%d", *sphereStacks),
			fmt.Sprintf("radius=%g", *sphereRadius),
		}},
		{"sphere_low.obj", builder.UVSphere(*sphereRadius, builder.LowSphereSlices, builder.LowSphereStacks), []string{
			"Generated sphere (UV) - low resolution",
			fmt.Sprintf("slices=%d", builder.LowSphereSlices),
			fmt.Sprintf("stacks=%d", builder.LowSphereStacks),
			fmt.Sprintf("radius=%g", *sphereRadius),
		}},
		{"plane.obj", builder.Plane(*planeSize, *planeDiv), []string{
			"Generated plane grid (Z=0)",
			fmt.Sprintf("size=%g", *planeSize),
			fmt.Sprintf("divisions=%d", *planeDiv),
		}},
		{"donut.obj", builder.Torus(*torusMajor, *torusMinor, *torusSegMajor, *torusSegMinor), []string{
			"Generated torus",
			fmt.Sprintf("major_radius=%g", *torusMajor),
			fmt.Sprintf("minor_radius=%g", *torusMinor),
			fmt.Sprintf("segments_major=%d", *torusSegMajor),
			fmt.Sprintf("segments_minor=%d", *torusSegMinor),
		}},
		{"saddle.obj", builder.Saddle(*saddleSize, *saddleDiv, *saddleHeight), []string{
			"Generated saddle z = h*(x^2 - y^2)",
			fmt.Sprintf("size=%g", *saddleSize),
			fmt.Sprintf("divisions=%d", *saddleDiv),
			fmt.Sprintf("height=%g", *saddleHeight),
		}},
		{"icosahedron.obj", builder.PlatonicSolid(builder.Icosahedron, *sphereRadius), []string{
			"Generated icosahedron",
			fmt.Sprintf("radius=%g", *sphereRadius),
		}},
	}
	if *sdfCells > 0 {
		models = append(models, model{"sphere_sdf.obj", builder.SDFSphere(*sphereRadius, *sdfCells), []string{
			"Generated sphere (marching cubes)",
			fmt.Sprintf("cells=%d", *sdfCells),
			fmt.Sprintf("radius=%g", *sphereRadius),
		}})
	}

	for _, md := range models {
		m, err := builder.Build(md.con)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", md.file, err)
			return 1
		}
		m.Compact()
		path := filepath.Join(*out, md.file)
		if err = mesh.SaveOBJ(path, m, md.header...); err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", md.file, err)
			return 1
		}
		fmt.Fprintf(stdout, "%s: %d vertices, %d faces\n", path, len(m.Vertices), len(m.Faces))
	}

	return 0
}
