package server

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/geodesiclab/geodesic"
	"github.com/katalvlaran/geodesiclab/mesh"
	"github.com/katalvlaran/geodesiclab/report"
)

// computeRequest is the body of every solve route.
type computeRequest struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Model string `json:"model"`
}

// modelPath keeps only the base name of the requested model, so a request
// cannot leave the data directory.
func (s *Server) modelPath(model string) string {
	name := filepath.Base(strings.ReplaceAll(model, `\`, "/"))

	return filepath.Join(s.DataDir, name)
}

// load binds the request and reads its model. On failure it writes the
// response and returns ok == false.
func (s *Server) load(c *gin.Context) (req computeRequest, m *mesh.Mesh, path string, ok bool) {
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, nil, "", false
	}

	path = s.modelPath(req.Model)
	m, stats, err := mesh.LoadOBJ(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     fmt.Sprintf("Could not find %s", path),
			"modelPath": path,
		})
		return req, nil, path, false
	}
	if stats.DroppedFaces > 0 {
		s.logger().Warn("server: dropped faces", "model", path, "count", stats.DroppedFaces)
	}

	return req, m, path, true
}

// respond persists doc when an output directory is set and writes it.
func (s *Server) respond(c *gin.Context, file string, doc any) {
	if s.OutputDir != "" {
		s.writeMu.Lock()
		err := report.WriteFile(filepath.Join(s.OutputDir, file), doc)
		s.writeMu.Unlock()
		if err != nil {
			s.logger().Error("server: write result", "file", file, "error", err)
		}
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) handleDijkstra(c *gin.Context) {
	req, m, path, ok := s.load(c)
	if !ok {
		return
	}

	r, err := s.Engine.ShortestPath(m, req.Start, req.End)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, geodesic.ErrOutOfRange) || errors.Is(err, geodesic.ErrNoVertices) {
			msg = geodesic.Message(err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "modelPath": path})
		return
	}
	s.respond(c, report.ShortestPathFile, report.ShortestPath(path, r))
}

func (s *Server) handleAnalytics(c *gin.Context) {
	s.solve(c, report.AnalyticsFile, s.Engine.Analytic)
}

func (s *Server) handleHeat(c *gin.Context) {
	s.solve(c, report.HeatFile, s.Engine.Heat)
}

// solve runs a curve solver. A result carrying an error is still written to
// the output directory, but the response is a 500.
func (s *Server) solve(c *gin.Context, file string, run func(string, *mesh.Mesh, int, int) geodesic.Result) {
	req, m, path, ok := s.load(c)
	if !ok {
		return
	}

	res := run(path, m, req.Start, req.End)
	if res.Error != "" {
		if s.OutputDir != "" {
			s.writeMu.Lock()
			_ = report.WriteFile(filepath.Join(s.OutputDir, file), report.Analytics(res))
			s.writeMu.Unlock()
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error, "modelPath": path})
		return
	}
	s.respond(c, file, report.Analytics(res))
}
