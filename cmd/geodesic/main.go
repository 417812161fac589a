// Command geodesic computes a path between two vertices of an OBJ model and
// writes the JSON document the viewer reads.
//
// Usage:
//
//	geodesic [flags] <start_id> <end_id> <model_path> [mode]
//
// Modes: "" or "dijkstra" (result.json), "analytics" (analytics.json),
// "heat" (heat_result.json). Exit status is 0 on success, 1 on usage or
// load errors and 2 when the solver reports an error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/geodesiclab/config"
	"github.com/katalvlaran/geodesiclab/curve"
	"github.com/katalvlaran/geodesiclab/geodesic"
	"github.com/katalvlaran/geodesiclab/mesh"
	"github.com/katalvlaran/geodesiclab/render"
	"github.com/katalvlaran/geodesiclab/report"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// Exit codes.
const (
	exitOK    = 0
	exitUsage = 1
	exitSolve = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(fs *flag.FlagSet, stderr io.Writer) {
	fmt.Fprintln(stderr, "Usage: geodesic [flags] <start_id> <end_id> <model_path> [mode]")
	fmt.Fprintln(stderr, "  mode: dijkstra  (default, writes result.json)")
	fmt.Fprintln(stderr, "  mode: analytics (writes analytics.json)")
	fmt.Fprintln(stderr, "  mode: heat      (writes heat_result.json)")
	fs.PrintDefaults()
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("geodesic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "Path to config.json file")
	outputDir := fs.String("output", "", "Output directory (default: ./frontend/public/)")
	preview := fs.String("preview", "", "Also write a preview image (.png or .webp)")
	verbose := fs.Bool("v", false, "Debug logging")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	// 1) Positional arguments.
	rest := fs.Args()
	if len(rest) < 3 || len(rest) > 4 {
		usage(fs, stderr)
		return exitUsage
	}
	start, errS := strconv.Atoi(rest[0])
	end, errE := strconv.Atoi(rest[1])
	if errS != nil || errE != nil {
		fmt.Fprintf(stderr, "Error: start_id and end_id must be integers, got %q %q\n", rest[0], rest[1])
		return exitUsage
	}
	modelPath := rest[2]
	mode := ""
	if len(rest) == 4 {
		mode = rest[3]
	}
	if mode != "" && mode != "dijkstra" && mode != "analytics" && mode != "heat" {
		fmt.Fprintf(stderr, "Error: unknown mode %q\n", mode)
		usage(fs, stderr)
		return exitUsage
	}

	// 2) Configuration and logging.
	var cfg config.Config
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return exitUsage
		}
	}
	cfg.Resolve(config.Flags{OutputDir: *outputDir, Preview: *preview, Verbose: *verbose})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	geodesic.SetLogger(logger)
	defer geodesic.SetLogger(nil)

	// 3) Model.
	m, stats, err := mesh.LoadOBJ(modelPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: Could not find %s\n", modelPath)
		return exitUsage
	}
	if stats.DroppedFaces > 0 {
		logger.Warn("dropped faces with invalid indices", "model", modelPath, "count", stats.DroppedFaces)
	}

	// 4) Solve.
	e := geodesic.New(cfg.EngineOptions()...)
	switch mode {
	case "analytics":
		res := e.Analytic(modelPath, m, start, end)
		return finishCurves(stdout, stderr, logger, cfg, "Analytics", report.AnalyticsFile, m, res)
	case "heat":
		res := e.Heat(modelPath, m, start, end)
		return finishCurves(stdout, stderr, logger, cfg, "Heat Method", report.HeatFile, m, res)
	default:
		return finishDijkstra(stdout, stderr, logger, cfg, e, modelPath, m, start, end)
	}
}

func finishCurves(stdout, stderr io.Writer, logger *slog.Logger, cfg config.Config,
	title, file string, m *mesh.Mesh, res geodesic.Result) int {
	if err := report.WriteFile(filepath.Join(cfg.OutputDir, file), report.Analytics(res)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	fmt.Fprintf(stdout, "--- Geodesic Lab: %s ---\n", title)
	if res.Error != "" {
		fmt.Fprintf(stdout, "Error: %s\n", res.Error)
	} else {
		fmt.Fprintf(stdout, "Surface: %s\n", res.SurfaceType)
		fmt.Fprintf(stdout, "Curves: %d\n", len(res.Curves))
		for _, c := range res.Curves {
			fmt.Fprintf(stdout, "  %s: %d points, length %g\n", c.Name, len(c.Points), c.Length)
		}
	}
	fmt.Fprintln(stdout, "------------------------------")

	if res.Error != "" {
		return exitSolve
	}
	if cfg.Preview != "" {
		// Curves are in the normalized frame.
		t := mesh.Normalize(m.Vertices)
		scene := render.Scene{
			Mesh:   &mesh.Mesh{Vertices: t.ApplyAll(m.Vertices), Faces: m.Faces},
			Curves: res.Curves,
		}
		writePreview(logger, cfg, scene)
	}

	return exitOK
}

func finishDijkstra(stdout, stderr io.Writer, logger *slog.Logger, cfg config.Config,
	e *geodesic.Engine, modelPath string, m *mesh.Mesh, start, end int) int {
	r, err := e.ShortestPath(m, start, end)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", geodesic.Message(err))
		return exitSolve
	}
	if err = report.WriteFile(filepath.Join(cfg.OutputDir, report.ShortestPathFile), report.ShortestPath(modelPath, r)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	fmt.Fprintln(stdout, "--- Geodesic Lab: Dijkstra ---")
	if !r.Reachable {
		fmt.Fprintln(stdout, "Target Distance: (unreachable)")
	} else {
		fmt.Fprintf(stdout, "Target Distance: %g\n", r.Distance)
	}
	fmt.Fprint(stdout, "Path:")
	for _, v := range r.Path {
		fmt.Fprintf(stdout, " %d", v)
	}
	fmt.Fprintln(stdout, "\n------------------------------")

	if cfg.Preview != "" && r.Reachable {
		pts := make([]vec3.Vec, len(r.Path))
		for i, v := range r.Path {
			pts[i] = m.Vertices[v]
		}
		writePreview(logger, cfg, render.Scene{Mesh: m, Curves: []curve.Curve{curve.New("dijkstra_path", pts)}})
	}

	return exitOK
}

// writePreview renders and saves the preview. Failures are logged; the
// JSON result is already written.
func writePreview(logger *slog.Logger, cfg config.Config, scene render.Scene) {
	img, err := render.Preview(scene, render.WithSize(cfg.PreviewSize))
	if err == nil {
		err = render.WriteFile(cfg.Preview, img)
	}
	if err != nil {
		logger.Warn("preview not written", "path", cfg.Preview, "error", err)
		return
	}
	logger.Info("preview written", "path", cfg.Preview)
}
