package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/routeviz/pkg/observability"
	"github.com/matzehuels/routeviz/pkg/plot"
	"github.com/matzehuels/routeviz/pkg/routing"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, the default charmbracelet logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → detect → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, err := r.Prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	renderStart := time.Now()
	if err := r.RenderViews(ctx, result, opts); err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"views", opts.Views,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Prepare runs the load and detect stages. The returned result has no
// figures or artifacts.
func (r *Runner) Prepare(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLoad(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hooks := observability.Pipeline()

	// Stage 1: Load
	loadStart := time.Now()
	hooks.OnLoadStart(ctx, opts.Source)
	table, err := routing.Load(opts.Source)
	if err != nil {
		hooks.OnLoadComplete(ctx, opts.Source, 0, 0, time.Since(loadStart), err)
		return nil, fmt.Errorf("load: %w", err)
	}
	result := &Result{
		Table:     table,
		Paths:     table.Paths(),
		Figures:   make(map[string]plot.Figure),
		Artifacts: make(map[ArtifactKey][]byte),
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.PointCount = len(table.Points)
	result.Stats.NetCount = len(result.Paths)
	hooks.OnLoadComplete(ctx, opts.Source, result.Stats.PointCount, result.Stats.NetCount, result.Stats.LoadTime, nil)

	opts.Logger.Info("loaded routing table",
		"points", result.Stats.PointCount,
		"nets", result.Stats.NetCount,
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Detect
	detectStart := time.Now()
	result.Vias = routing.DetectVias(result.Paths)
	result.Stats.DetectTime = time.Since(detectStart)
	result.Stats.ViaCount = len(result.Vias)
	hooks.OnDetectComplete(ctx, result.Stats.NetCount, result.Stats.ViaCount, result.Stats.DetectTime)

	opts.Logger.Debug("detected vias", "count", result.Stats.ViaCount)
	for _, v := range result.Vias {
		opts.Logger.Debug("via", "net", v.Net, "at", v.String())
	}

	return result, nil
}

// RenderViews builds every requested view of a prepared result and renders
// it in every requested format, filling result.Figures and result.Artifacts.
func (r *Runner) RenderViews(ctx context.Context, result *Result, opts Options) error {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	hooks := observability.Pipeline()

	if result.Figures == nil {
		result.Figures = make(map[string]plot.Figure)
	}
	if result.Artifacts == nil {
		result.Artifacts = make(map[ArtifactKey][]byte)
	}

	for _, view := range opts.Views {
		start := time.Now()
		hooks.OnRenderStart(ctx, view, opts.Formats)

		artifacts, err := r.renderView(ctx, result, view, opts)
		hooks.OnRenderComplete(ctx, view, opts.Formats, time.Since(start), err)
		if err != nil {
			return fmt.Errorf("render %s view: %w", view, err)
		}
		for format, data := range artifacts {
			result.Artifacts[ArtifactKey{View: view, Format: format}] = data
		}
	}
	return nil
}

func (r *Runner) renderView(ctx context.Context, result *Result, view string, opts Options) (map[string][]byte, error) {
	fig, err := BuildFigure(view, result.Paths, result.Vias, *opts.Style)
	if err != nil {
		return nil, err
	}
	result.Figures[view] = fig
	opts.Logger.Debug("built figure", "view", view, "panels", len(fig.Panels))
	return Render(ctx, fig, opts)
}

// applyLogger sets the runner's logger on options if not already set.
// Stages log through opts.Logger so callers can redirect a single run.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
