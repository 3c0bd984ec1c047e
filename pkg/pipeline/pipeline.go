// Package pipeline provides the visualization pipeline for routeviz.
//
// This package implements the complete load → detect → render pipeline that
// is shared by every command. By centralizing this logic, the CLI, the
// terminal viewer and the HTTP server produce identical figures.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the routing table and group it into per-net paths
//  2. Detect: Find the vias where consecutive points change layer
//  3. Render: Build the requested views and encode them in every format
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Source:  "routes.csv",
//	    Views:   []string{pipeline.ViewLayers, pipeline.ViewCombined},
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts[pipeline.ArtifactKey{View: "combined", Format: "svg"}]
//
// Run individual stages:
//
//	// Load and detect only
//	result, err := runner.Prepare(ctx, opts)
//
//	// Render one view from prepared paths
//	fig, err := pipeline.BuildFigure(pipeline.ViewCombined, result.Paths, result.Vias, style)
//	artifacts, err := pipeline.Render(ctx, fig, opts)
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/routeviz/pkg/errors"
	"github.com/matzehuels/routeviz/pkg/plot"
	"github.com/matzehuels/routeviz/pkg/plot/sink"
	"github.com/matzehuels/routeviz/pkg/render"
	"github.com/matzehuels/routeviz/pkg/routing"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultScale is the default PNG scale factor.
const DefaultScale = sink.DefaultPNGScale

// Format constants for output formats.
const (
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatPDF   = "pdf"
	FormatText  = "text"
	FormatDOT   = "dot"
	FormatGraph = "graph"
)

// View constants for the figures the pipeline can build.
const (
	ViewLayers   = "layers"
	ViewCombined = "combined"
)

// Formats lists the supported output formats in display order.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatText, FormatDOT, FormatGraph}

// Views lists the supported views in display order.
var Views = []string{ViewLayers, ViewCombined}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:   true,
	FormatPNG:   true,
	FormatPDF:   true,
	FormatText:  true,
	FormatDOT:   true,
	FormatGraph: true,
}

// ValidViews is the set of supported views.
var ValidViews = map[string]bool{
	ViewLayers:   true,
	ViewCombined: true,
}

// FileExtension returns the file extension used for format. Graphviz SVG
// gets a compound extension so it never collides with the svg format.
func FileExtension(format string) string {
	switch format {
	case FormatText:
		return "txt"
	case FormatDOT:
		return "dot"
	case FormatGraph:
		return "graph.svg"
	default:
		return format
	}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
type Options struct {
	// Load options
	Source string

	// Render options
	Views   []string
	Formats []string
	// Style is the figure style; nil means [plot.DefaultStyle].
	Style *plot.Style
	// Scale is the PNG scale factor.
	Scale float64

	// Runtime options
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ArtifactKey identifies one rendered output.
type ArtifactKey struct {
	View   string
	Format string
}

func (k ArtifactKey) String() string { return k.View + "." + k.Format }

// Result contains the outputs of a pipeline run.
type Result struct {
	// Table is the loaded routing table.
	Table *routing.Table

	// Paths are the per-net paths in order of first appearance.
	Paths []routing.NetPath

	// Vias are the detected layer transitions.
	Vias []routing.Via

	// Figures contains the built figures keyed by view.
	Figures map[string]plot.Figure

	// Artifacts contains rendered outputs keyed by view and format.
	Artifacts map[ArtifactKey][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PointCount int
	NetCount   int
	ViaCount   int
	LoadTime   time.Duration
	DetectTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateView checks that a view is valid.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return errors.New(errors.ErrCodeInvalidView, "invalid view: %q (must be one of: %s)",
			view, strings.Join(Views, ", "))
	}
	return nil
}

// ValidateViews checks that all views are valid.
func ValidateViews(views []string) error {
	for _, v := range views {
		if err := ValidateView(v); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Source == "" {
		return errors.New(errors.ErrCodeInvalidInput, "source file is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Views) == 0 {
		o.Views = append([]string(nil), Views...)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == nil {
		st := plot.DefaultStyle()
		o.Style = &st
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering. PDF output
// is rejected up front when rsvg-convert is not installed.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateViews(o.Views); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if slices.Contains(o.Formats, FormatPDF) && !render.Available() {
		return errors.New(errors.ErrCodeUnsupported, "pdf output requires rsvg-convert on PATH (brew install librsvg, apt install librsvg2-bin)")
	}
	return nil
}
