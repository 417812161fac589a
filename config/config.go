// Package config holds the settings shared by the command-line tools: where
// models and results live, how many samples each analytic curve gets and
// the iteration policy of the numeric solvers.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/geodesiclab/geodesic"
	"github.com/katalvlaran/geodesiclab/heat"
	"github.com/katalvlaran/geodesiclab/surface"
)

// ErrInvalid indicates a setting outside its valid range.
var ErrInvalid = errors.New("config: invalid setting")

// Defaults applied by Resolve.
const (
	DefaultOutputDir   = "./frontend/public/"
	DefaultDataDir     = "./frontend/public/data"
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultPreviewSize = 512
)

// Config holds all configurable paths and solver settings.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir"`
	DataDir   string `json:"data_dir"`
	Preview   string `json:"preview"`

	// Server
	Listen string `json:"listen"`

	// Logging
	LogLevel string `json:"log_level"`

	// Analytic curves
	PlaneSamples  int `json:"plane_samples"`
	SphereSamples int `json:"sphere_samples"`
	TorusSamples  int `json:"torus_samples"`
	SaddleSamples int `json:"saddle_samples"`

	// Shooting
	ShootMaxIter   int     `json:"shoot_max_iter"`
	ShootTolerance float64 `json:"shoot_tolerance"`

	// Heat method
	HeatMaxIter    int     `json:"heat_max_iter"`
	PoissonMaxIter int     `json:"poisson_max_iter"`
	Tolerance      float64 `json:"tolerance"`

	// Preview image edge length in pixels
	PreviewSize int `json:"preview_size"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	DataDir   string
	Preview   string
	Listen    string
	Verbose   bool
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Default returns a fully resolved Config with no file and no flags.
func Default() Config {
	var c Config
	c.Resolve(Flags{})

	return c
}

// Resolve applies flag overrides, then fills every unset field with its
// default. Flags take priority when non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.DataDir != "" {
		c.DataDir = flags.DataDir
	}
	if flags.Preview != "" {
		c.Preview = flags.Preview
	}
	if flags.Listen != "" {
		c.Listen = flags.Listen
	}
	if flags.Verbose {
		c.LogLevel = "debug"
	}

	// Paths
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.Listen == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = DefaultPort
		}
		c.Listen = ":" + port
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}

	// Solver settings
	defaults := geodesic.DefaultOptions()
	setInt(&c.PlaneSamples, defaults.PlaneSamples)
	setInt(&c.SphereSamples, defaults.SphereSamples)
	setInt(&c.TorusSamples, defaults.TorusSamples)
	setInt(&c.SaddleSamples, defaults.SaddleSamples)
	setInt(&c.ShootMaxIter, surface.DefaultShootMaxIter)
	setFloat(&c.ShootTolerance, surface.DefaultShootTolerance)
	setInt(&c.HeatMaxIter, heat.DefaultHeatMaxIter)
	setInt(&c.PoissonMaxIter, heat.DefaultPoissonMaxIter)
	setFloat(&c.Tolerance, heat.DefaultTolerance)
	setInt(&c.PreviewSize, DefaultPreviewSize)
}

func setInt(p *int, def int) {
	if *p <= 0 {
		*p = def
	}
}

func setFloat(p *float64, def float64) {
	if !(*p > 0) {
		*p = def
	}
}

// Level parses LogLevel ("debug", "info", "warn", "error", with optional
// offsets such as "info+2").
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return l, nil
}

// Validate reports the first setting a resolved Config cannot honor.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	samples := []struct {
		name string
		n    int
	}{
		{"plane_samples", c.PlaneSamples},
		{"sphere_samples", c.SphereSamples},
		{"torus_samples", c.TorusSamples},
		{"saddle_samples", c.SaddleSamples},
	}
	for _, s := range samples {
		if s.n < 2 {
			return fmt.Errorf("%w: %s=%d (must be ≥ 2)", ErrInvalid, s.name, s.n)
		}
	}
	if c.ShootMaxIter < 0 || c.HeatMaxIter < 1 || c.PoissonMaxIter < 1 {
		return fmt.Errorf("%w: iteration limits shoot=%d heat=%d poisson=%d",
			ErrInvalid, c.ShootMaxIter, c.HeatMaxIter, c.PoissonMaxIter)
	}
	if !(c.ShootTolerance > 0) || !(c.Tolerance > 0) {
		return fmt.Errorf("%w: tolerances shoot=%g cg=%g", ErrInvalid, c.ShootTolerance, c.Tolerance)
	}
	if c.PreviewSize < 16 {
		return fmt.Errorf("%w: preview_size=%d (must be ≥ 16)", ErrInvalid, c.PreviewSize)
	}

	return nil
}

// EngineOptions converts the solver settings into geodesic options. The
// Config must be resolved and valid, otherwise the option constructors
// panic.
func (c Config) EngineOptions() []geodesic.Option {
	return []geodesic.Option{
		geodesic.WithSamples(geodesic.KindPlane, c.PlaneSamples),
		geodesic.WithSamples(geodesic.KindSphere, c.SphereSamples),
		geodesic.WithSamples(geodesic.KindTorus, c.TorusSamples),
		geodesic.WithSamples(geodesic.KindSaddle, c.SaddleSamples),
		geodesic.WithShootOptions(
			surface.WithShootMaxIter(c.ShootMaxIter),
			surface.WithShootTolerance(c.ShootTolerance),
		),
		geodesic.WithHeatOptions(
			heat.WithHeatMaxIter(c.HeatMaxIter),
			heat.WithPoissonMaxIter(c.PoissonMaxIter),
			heat.WithTolerance(c.Tolerance),
		),
	}
}
