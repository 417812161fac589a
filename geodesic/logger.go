package geodesic

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/katalvlaran/geodesiclab/heat"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with running solves.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for geodesic and the solver packages it
// drives. By default nothing is logged. Pass nil to restore the silent
// default.
//
// Log levels:
//   - [slog.LevelDebug]: solver internals (CG iterations and residuals,
//     shooting iterations, assembly sizes)
//   - [slog.LevelInfo]: one summary per solve
//   - [slog.LevelWarn]: degraded results (shooting fallback, descent
//     fallback, start and end in different components)
//
// Example:
//
//	geodesic.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	heat.SetLogger(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
