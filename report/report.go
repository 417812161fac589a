// Package report turns solver results into the JSON documents consumed by
// the viewer: result.json for Dijkstra, analytics.json and heat_result.json
// for curve solves.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/katalvlaran/geodesiclab/curve"
	"github.com/katalvlaran/geodesiclab/dijkstra"
	"github.com/katalvlaran/geodesiclab/geodesic"
)

// Output file names, relative to the output directory.
const (
	ShortestPathFile = "result.json"
	AnalyticsFile    = "analytics.json"
	HeatFile         = "heat_result.json"
)

// ShortestPathDoc is the result.json document. Nil distances encode as
// null: TotalDistance when the target is unreachable, AllDistances entries
// for vertices never reached.
type ShortestPathDoc struct {
	InputFileName string     `json:"inputFileName"`
	Reachable     bool       `json:"reachable"`
	TotalDistance *float64   `json:"totalDistance"`
	Path          []int      `json:"path"`
	AllDistances  []*float64 `json:"allDistances"`
}

// CurveDoc is one polyline of an AnalyticsDoc.
type CurveDoc struct {
	Name   string       `json:"name"`
	Length float64      `json:"length"`
	Points [][3]float64 `json:"points"`
}

// AnalyticsDoc is the analytics.json and heat_result.json document.
type AnalyticsDoc struct {
	InputFileName string     `json:"inputFileName"`
	StartID       int        `json:"startId"`
	EndID         int        `json:"endId"`
	SurfaceType   string     `json:"surfaceType"`
	Error         string     `json:"error"`
	Curves        []CurveDoc `json:"curves"`
}

// finite returns &x, or nil when x is NaN, infinite or beyond half the
// largest float.
func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) >= math.MaxFloat64/2 {
		return nil
	}

	return &x
}

// ShortestPath builds the document for a Dijkstra run on the model name.
// A nil result yields an unreachable document with empty arrays.
func ShortestPath(name string, r *dijkstra.Result) ShortestPathDoc {
	doc := ShortestPathDoc{InputFileName: name, Path: []int{}, AllDistances: []*float64{}}
	if r == nil {
		return doc
	}

	doc.Reachable = r.Reachable
	if r.Reachable {
		doc.TotalDistance = finite(r.Distance)
	}
	if r.Path != nil {
		doc.Path = r.Path
	}
	doc.AllDistances = make([]*float64, len(r.AllDistances))
	for i, d := range r.AllDistances {
		doc.AllDistances[i] = finite(d)
	}

	return doc
}

// Curve converts one curve.
func Curve(c curve.Curve) CurveDoc {
	pts := make([][3]float64, len(c.Points))
	for i, p := range c.Points {
		pts[i] = [3]float64{p.X, p.Y, p.Z}
	}

	return CurveDoc{Name: c.Name, Length: c.Length, Points: pts}
}

// Analytics builds the document for an analytic or heat solve.
func Analytics(res geodesic.Result) AnalyticsDoc {
	doc := AnalyticsDoc{
		InputFileName: res.InputFileName,
		StartID:       res.StartID,
		EndID:         res.EndID,
		SurfaceType:   res.SurfaceType,
		Error:         res.Error,
		Curves:        make([]CurveDoc, 0, len(res.Curves)),
	}
	for _, c := range res.Curves {
		doc.Curves = append(doc.Curves, Curve(c))
	}

	return doc
}

// Encode writes doc as indented JSON followed by a newline.
func Encode(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}

	return nil
}

// WriteFile writes doc as indented JSON to path, creating the parent
// directory when needed.
func WriteFile(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("report: encode %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	if err = os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}
