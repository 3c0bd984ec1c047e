package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/routeviz/pkg/plot"
	"github.com/matzehuels/routeviz/pkg/plot/sink"
	"github.com/matzehuels/routeviz/pkg/routing"
)

// BuildFigure builds the named view from paths and vias.
func BuildFigure(view string, paths []routing.NetPath, vias []routing.Via, st plot.Style) (plot.Figure, error) {
	switch view {
	case ViewLayers:
		return plot.Layers(paths, vias, st), nil
	case ViewCombined:
		return plot.Combined(paths, vias, st)
	default:
		return plot.Figure{}, ValidateView(view)
	}
}

// Render encodes a figure in each of the requested formats.
func Render(ctx context.Context, fig plot.Figure, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()
	artifacts := make(map[string][]byte, len(opts.Formats))
	svgOpts := []sink.SVGOption{sink.WithBackground(opts.Style.Background)}

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(fig, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(fig, sink.WithScale(opts.Scale), sink.WithPNGBackground(opts.Style.Background))
		case FormatPDF:
			data, err = sink.RenderPDF(fig, sink.WithPDFSVGOptions(svgOpts...))
		case FormatText:
			data = sink.RenderText(fig)
		case FormatDOT:
			data = []byte(sink.ToDOT(fig))
		case FormatGraph:
			data, err = sink.RenderGraph(ctx, sink.ToDOT(fig))
		default:
			return nil, ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
