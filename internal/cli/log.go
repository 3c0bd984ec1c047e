// Package cli implements the routeviz command-line interface.
//
// This package provides commands for rendering routing results to image,
// text and Graphviz formats, listing vias and path statistics, browsing the
// figures in the terminal and serving them over HTTP. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, PNG, PDF, text or DOT visualizations
//   - vias: List detected vias
//   - stats: Summarize net paths and wirelength
//   - view: Interactive terminal viewer
//   - serve: HTTP server for the rendered figures
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger, writing timestamped lines prefixed with
// the application name ("14:32:01.45 INFO routeviz: ...").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// progress times one command run over an input file.
type progress struct {
	logger *log.Logger
	input  string
	start  time.Time
}

func newProgress(l *log.Logger, input string) *progress {
	return &progress{logger: l, input: input, start: time.Now()}
}

// done logs msg at info level with the input, the given key-value pairs and
// the elapsed time, e.g. "Rendered input=routes.csv files=4 vias=2 elapsed=12ms".
func (p *progress) done(msg string, keyvals ...any) {
	kv := make([]any, 0, len(keyvals)+4)
	kv = append(kv, "input", p.input)
	kv = append(kv, keyvals...)
	kv = append(kv, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, kv...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by the root command, or a
// logger that discards everything when run outside of it.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.New(io.Discard)
}
