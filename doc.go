// Package geodesiclab computes shortest and geodesic paths between two
// vertices of a 3-D surface.
//
// Three solvers cover different inputs:
//
//   - Dijkstra on the mesh edge graph: exact shortest path along edges.
//   - Analytic geodesics when the model is a plane, sphere, torus or
//     saddle: closed forms for plane and sphere, and for torus and saddle
//     the geodesic ODE integrated with RK4 and solved as a two-point
//     boundary problem by Newton shooting.
//   - The heat method on any triangle mesh: cotangent Laplacian, heat
//     diffusion and Poisson solves by conjugate gradients, then descent on
//     the recovered distance field.
//
// Packages, leaves first:
//
//	vec3/     3-D point kernel on gonum r3
//	core/     index-based weighted edge graph
//	bfs/      hop traversal and connected components
//	dijkstra/ single-source shortest paths with early exit
//	mesh/     triangle mesh, normalization transform, OBJ I/O
//	matrix/   implicit operators and conjugate gradients
//	surface/  parametric surfaces, metric, Christoffel symbols, RK4, shooting
//	curve/    named polyline result
//	analytic/ plane, sphere, torus and saddle generators, surface fitting
//	heat/     heat-method geodesics
//	geodesic/ solver dispatch, normalization, Result
//	report/   JSON documents for the viewer
//	builder/  procedural meshes (grids, UV sphere, torus, Platonic, SDF)
//	render/   wireframe and path preview images (PNG, WebP)
//	config/   JSON config with flag overrides
//	server/   gin HTTP API
//
// Commands live under cmd/: geodesic (one solve, writes JSON), meshgen
// (sample models) and geodesic-server.
//
// Quick start:
//
//	m, _, err := mesh.LoadOBJ("donut.obj")
//	if err != nil { ... }
//	res := geodesic.New().Analytic("donut.obj", m, 0, 42)
//	if res.Error != "" { ... }
//	fmt.Println(res.SurfaceType, res.Curves[0].Length)
package geodesiclab
