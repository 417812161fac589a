package geodesic

import (
	"fmt"

	"github.com/katalvlaran/geodesiclab/analytic"
	"github.com/katalvlaran/geodesiclab/bfs"
	"github.com/katalvlaran/geodesiclab/curve"
	"github.com/katalvlaran/geodesiclab/dijkstra"
	"github.com/katalvlaran/geodesiclab/heat"
	"github.com/katalvlaran/geodesiclab/mesh"
	"github.com/katalvlaran/geodesiclab/surface"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// Result is the outcome of one solve. Exactly one of Curves and Error is
// non-empty. SurfaceType is set whenever the solver was selected, so it
// stays empty when validation fails first.
type Result struct {
	InputFileName string
	StartID       int
	EndID         int
	SurfaceType   string
	Curves        []curve.Curve

	// Error is the user-facing message; Err the matching sentinel.
	Error string
	Err   error
}

// OK reports whether the solve produced a curve.
func (r Result) OK() bool { return r.Err == nil && len(r.Curves) > 0 }

func (r *Result) fail(err error) Result {
	r.Err = err
	r.Error = Message(err)
	r.Curves = nil

	return *r
}

// Engine dispatches solves. It holds only configuration and is safe for
// concurrent use.
type Engine struct {
	opts Options
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...)}
}

// Options returns a copy of the engine configuration.
func (e *Engine) Options() Options {
	o := e.opts
	o.Heat = append([]heat.Option(nil), o.Heat...)
	o.Shoot = append([]surface.ShootOption(nil), o.Shoot...)

	return o
}

// validate applies the range checks shared by every solve.
func validate(m *mesh.Mesh, start, end int, needFaces bool) error {
	if m == nil || len(m.Vertices) == 0 {
		return ErrNoVertices
	}
	if needFaces && len(m.Faces) == 0 {
		return ErrNoFaces
	}
	if !m.HasVertex(start) || !m.HasVertex(end) {
		return fmt.Errorf("%w: start=%d end=%d n=%d", ErrOutOfRange, start, end, len(m.Vertices))
	}

	return nil
}

// Analytic normalizes the model, lets the classifier pick a solver and
// returns its curve. Curve points are in the normalized frame; lengths are
// in model units.
//
// Steps:
//  1. Validate the model and endpoints.
//  2. Normalize: center the bounding box, scale its largest extent to 2.
//  3. Classify and run: closed form for plane and sphere, fitted shooting
//     for torus and saddle, the heat method for other meshes with faces.
//  4. Rescale lengths by 1/Scale.
func (e *Engine) Analytic(name string, m *mesh.Mesh, start, end int) Result {
	res := Result{InputFileName: name, StartID: start, EndID: end}

	// 1) Validate.
	if err := validate(m, start, end, false); err != nil {
		return res.fail(err)
	}

	// 2) Normalize.
	t := mesh.Normalize(m.Vertices)
	verts := t.ApplyAll(m.Vertices)
	p1, p2 := verts[start], verts[end]

	// 3) Classify and run.
	kind := e.opts.Classifier.Classify(name, m)
	res.SurfaceType = kind.String()

	var c curve.Curve
	switch kind {
	case KindPlane:
		c = analytic.Plane(p1, p2, e.opts.PlaneSamples)
	case KindSphere:
		c = analytic.Sphere(p1, p2, e.opts.SphereSamples)
	case KindTorus:
		tp := analytic.FitTorus(verts)
		Logger().Debug("geodesic: torus fit", "major", tp.Major, "minor", tp.Minor)
		var rep analytic.Report
		c, rep = analytic.Torus(p1, p2, tp, e.opts.TorusSamples, e.opts.Shoot...)
		e.logShooting(name, kind, rep)
	case KindSaddle:
		sp := analytic.FitSaddle(verts)
		Logger().Debug("geodesic: saddle fit", "a", sp.A)
		var rep analytic.Report
		c, rep = analytic.Saddle(p1, p2, sp, e.opts.SaddleSamples, e.opts.Shoot...)
		e.logShooting(name, kind, rep)
	case KindMesh:
		var err error
		if c, err = e.heat(name, m, verts, start, end); err != nil {
			return res.fail(err)
		}
	default:
		return res.fail(ErrUnsupported)
	}

	// 4) Rescale.
	res.Curves = []curve.Curve{c.Scaled(t.LengthScale())}
	Logger().Info("geodesic: analytic solve",
		"model", name, "surface", res.SurfaceType, "curve", c.Name,
		"points", len(c.Points), "length", res.Curves[0].Length)

	return res
}

// Heat runs the heat method on the normalized model regardless of its
// name. The model must have faces.
func (e *Engine) Heat(name string, m *mesh.Mesh, start, end int) Result {
	res := Result{InputFileName: name, StartID: start, EndID: end, SurfaceType: KindMesh.String()}
	if err := validate(m, start, end, true); err != nil {
		return res.fail(err)
	}

	t := mesh.Normalize(m.Vertices)
	c, err := e.heat(name, m, t.ApplyAll(m.Vertices), start, end)
	if err != nil {
		return res.fail(err)
	}
	res.Curves = []curve.Curve{c.Scaled(t.LengthScale())}
	Logger().Info("geodesic: heat solve",
		"model", name, "points", len(c.Points), "length", res.Curves[0].Length)

	return res
}

// heat runs the heat method on already normalized vertices and maps every
// failure to ErrHeatFailed.
func (e *Engine) heat(name string, m *mesh.Mesh, verts []vec3.Vec, start, end int) (curve.Curve, error) {
	checkConnectivity(name, m, start, end)

	r, err := heat.Run(verts, m.Faces, start, end, e.opts.Heat...)
	if err != nil || r.Curve.Empty() {
		Logger().Warn("geodesic: heat method failed", "model", name, "start", start, "end", end, "error", err)
		return curve.Curve{}, fmt.Errorf("%w: %v", ErrHeatFailed, err)
	}
	if r.Path.Fallback {
		Logger().Warn("geodesic: heat descent fell back to edge graph", "model", name)
	}

	return r.Curve, nil
}

// checkConnectivity logs when start and end lie in different components of
// the edge graph, and their hop distance otherwise. The heat method is
// attempted either way.
func checkConnectivity(name string, m *mesh.Mesh, start, end int) {
	if start == end {
		return
	}
	g, err := m.BuildGraph()
	if err != nil {
		return
	}
	label, count, err := bfs.Components(g)
	if err != nil {
		return
	}
	if label[start] != label[end] {
		Logger().Warn("geodesic: start and end in different components",
			"model", name, "components", count,
			"startComponent", label[start], "endComponent", label[end])
		return
	}
	if r, err := bfs.BFS(g, start, bfs.Target(end)); err == nil {
		Logger().Debug("geodesic: endpoints connected", "model", name, "hops", r.Hops(end))
	}
}

func (e *Engine) logShooting(name string, kind Kind, rep analytic.Report) {
	if rep.Converged {
		Logger().Debug("geodesic: shooting converged", "model", name, "surface", kind, "iterations", rep.Iterations)
		return
	}
	Logger().Warn("geodesic: shooting did not converge, using straight parameter line",
		"model", name, "surface", kind, "iterations", rep.Iterations, "error", rep.Err)
}

// ShortestPath runs Dijkstra from start to end on the raw (not normalized)
// edge graph. An unreachable end is a result with Reachable false, not an
// error.
//
// Errors: ErrNoVertices, ErrOutOfRange, or a wrapped graph error.
func (e *Engine) ShortestPath(m *mesh.Mesh, start, end int) (*dijkstra.Result, error) {
	if err := validate(m, start, end, false); err != nil {
		return nil, err
	}
	g, err := m.BuildGraph()
	if err != nil {
		return nil, fmt.Errorf("geodesic: edge graph: %w", err)
	}
	r, err := dijkstra.Dijkstra(g, dijkstra.Source(start), dijkstra.Target(end))
	if err != nil {
		return nil, fmt.Errorf("geodesic: dijkstra: %w", err)
	}
	Logger().Info("geodesic: shortest path",
		"start", start, "end", end, "reachable", r.Reachable, "distance", r.Distance)

	return r, nil
}
