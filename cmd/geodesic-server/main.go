// Command geodesic-server serves the geodesic engine over HTTP for the
// browser viewer. The listen address defaults to ":$PORT" (8080 when PORT
// is unset).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/geodesiclab/config"
	"github.com/katalvlaran/geodesiclab/geodesic"
	"github.com/katalvlaran/geodesiclab/server"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	dataDir := flag.String("data", "", "Model directory (default: ./frontend/public/data)")
	outputDir := flag.String("output", "", "Also write result documents here (default: ./frontend/public/)")
	listen := flag.String("listen", "", "Listen address (default: :$PORT or :8080)")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{DataDir: *dataDir, OutputDir: *outputDir, Listen: *listen, Verbose: *verbose})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	geodesic.SetLogger(logger)
	if level > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &server.Server{
		DataDir:   cfg.DataDir,
		OutputDir: cfg.OutputDir,
		Engine:    geodesic.New(cfg.EngineOptions()...),
		Logger:    logger,
	}
	logger.Info("listening", "addr", cfg.Listen, "data", cfg.DataDir, "output", cfg.OutputDir)
	if err := s.Router().Run(cfg.Listen); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
