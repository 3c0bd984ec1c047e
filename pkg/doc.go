// Package pkg provides the core libraries for routeviz routing visualization.
//
// # Overview
//
// Routeviz turns the output of a two-layer grid router (one row per routed
// cell: net, x, y, layer) into plots of the final routing. The pkg
// directory is organized into these areas:
//
//  1. [routing] - Routed-point tables, net paths, via detection and statistics
//  2. [plot] - Backend-neutral figures for the layers and combined views
//  3. [plot/sink] - SVG, PNG, PDF, text and Graphviz encoders for figures
//  4. [pipeline] - Orchestration (load → detect → build → render)
//  5. [config] - TOML style configuration
//
// # Architecture
//
// The typical data flow through routeviz:
//
//	routed_output.csv
//	         ↓
//	    [routing] package (load table, group paths, detect vias)
//	         ↓
//	    [plot] package (layers and combined figures)
//	         ↓
//	    [plot/sink] package (encode)
//	         ↓
//	    SVG/PNG/PDF/text/DOT output
//
// # Quick Start
//
//	table, err := routing.Load("routed_output.csv")
//	if err != nil {
//	    return err
//	}
//	paths := table.Paths()
//	vias := routing.DetectVias(paths)
//
//	fig, err := plot.Combined(paths, vias, plot.DefaultStyle())
//	if err != nil {
//	    return err // UNKNOWN_LAYER or EMPTY_PATH
//	}
//	svg := sink.RenderSVG(fig)
//
// The [pipeline] package wraps these steps with validation, hooks and
// multi-format output:
//
//	result, err := pipeline.NewRunner(logger).Execute(ctx, pipeline.Options{
//	    Source:  "routed_output.csv",
//	    Formats: []string{"svg", "png"},
//	})
//
// # Supporting Packages
//
//   - [errors] - Coded errors (LOAD_ERROR, UNKNOWN_LAYER, EMPTY_PATH, ...)
//   - [observability] - Pipeline and server hooks with a logging implementation
//   - [render] - SVG to PDF conversion through rsvg-convert
//   - [buildinfo] - Version information set at build time
//
// [routing]: github.com/matzehuels/routeviz/pkg/routing
// [plot]: github.com/matzehuels/routeviz/pkg/plot
// [plot/sink]: github.com/matzehuels/routeviz/pkg/plot/sink
// [pipeline]: github.com/matzehuels/routeviz/pkg/pipeline
// [config]: github.com/matzehuels/routeviz/pkg/config
// [errors]: github.com/matzehuels/routeviz/pkg/errors
// [observability]: github.com/matzehuels/routeviz/pkg/observability
// [render]: github.com/matzehuels/routeviz/pkg/render
// [buildinfo]: github.com/matzehuels/routeviz/pkg/buildinfo
package pkg
