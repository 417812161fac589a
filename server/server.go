// Package server exposes the geodesic engine over HTTP for the browser
// viewer. Every request names a model file inside the data directory and
// two vertex indices; the response is the same JSON document the CLI
// writes.
//
// Routes:
//
//	POST /compute_dijkstra_path   → report.ShortestPathDoc
//	POST /compute_analytics_path  → report.AnalyticsDoc
//	POST /compute_heat_path       → report.AnalyticsDoc
//	GET  /health                  → {"status":"ok"}
package server

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/geodesiclab/geodesic"
)

// Route paths.
const (
	RouteDijkstra  = "/compute_dijkstra_path"
	RouteAnalytics = "/compute_analytics_path"
	RouteHeat      = "/compute_heat_path"
	RouteHealth    = "/health"
)

// Server answers solve requests in-process.
type Server struct {
	// DataDir holds the model files requests may name.
	DataDir string

	// OutputDir, when non-empty, also receives every response document
	// under its usual file name (result.json, analytics.json,
	// heat_result.json) for viewers that poll the files.
	OutputDir string

	// Engine runs the solves; nil means geodesic.New().
	Engine *geodesic.Engine

	// Logger receives one record per request; nil means slog.Default().
	Logger *slog.Logger

	writeMu sync.Mutex
}

func (s *Server) engine() *geodesic.Engine {
	if s.Engine == nil {
		s.Engine = geodesic.New()
	}

	return s.Engine
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}

	return s.Logger
}

// Router builds the gin engine with permissive CORS for the viewer's dev
// server.
func (s *Server) Router() *gin.Engine {
	s.engine()

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	r.POST(RouteDijkstra, s.handleDijkstra)
	r.POST(RouteAnalytics, s.handleAnalytics)
	r.POST(RouteHeat, s.handleHeat)
	r.GET(RouteHealth, func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

// requestLog logs method, path, status and latency of every request.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger().Info("server: request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start))
	}
}
