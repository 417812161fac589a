// Package geodesic selects and runs a geodesic solver for a mesh and two
// vertex indices.
//
// Engine.Analytic normalizes the model (bounding box centered at the
// origin, largest extent 2), asks a Classifier which surface the model is,
// and runs the matching solver:
//
//	plane   → straight segment            (analytic.Plane)
//	sphere  → great-circle arc            (analytic.Sphere)
//	torus   → fitted torus + shooting     (analytic.Torus)
//	saddle  → fitted saddle + shooting    (analytic.Saddle)
//	mesh    → heat method                 (heat.Run)
//
// Curve points stay in the normalized frame; lengths are converted back to
// model units. Engine.Heat forces the heat method and Engine.ShortestPath
// runs Dijkstra on the raw edge graph.
//
// Failures are reported inside Result (Error holds the user-facing message,
// Err the sentinel) so a caller can always serialize the outcome.
package geodesic
