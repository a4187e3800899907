package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/graphsketch/internal/config"
	"github.com/katalvlaran/graphsketch/internal/pipeline"
)

// newLogger creates a logger with timestamps formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// app carries per-invocation state resolved by the root command.
type app struct {
	cfg         config.Config
	logger      *log.Logger
	runner      *pipeline.Runner
	jsonOut     bool
	inputFormat string

	// direction is set when --bidirectional was given explicitly.
	direction *bool
}

type ctxKey int

const appKey ctxKey = 0

func withApp(ctx context.Context, a *app) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// appFromContext returns the app stored by the root command, or a default
// one when a command runs outside the tree.
func appFromContext(ctx context.Context) *app {
	if a, ok := ctx.Value(appKey).(*app); ok {
		return a
	}
	cfg := config.Default()
	return &app{cfg: cfg, logger: log.Default(), runner: pipeline.NewRunner(cfg, log.Default()), inputFormat: "json"}
}
