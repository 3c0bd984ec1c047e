package sink

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/matzehuels/routeviz/pkg/plot"
)

const (
	defaultFontFamily = "DejaVu Sans, Helvetica, Arial, sans-serif"
	gridLineColor     = "#b0b0b0"
	legendRowHeight   = 18.0
	legendCharWidth   = 7.0
	legendPad         = 8.0
	legendSwatch      = 24.0
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background string
	fontFamily string
	showGrid   bool
}

// WithBackground sets the canvas fill color. An empty color leaves the
// canvas transparent.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithFontFamily sets the CSS font-family of all text.
func WithFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// WithoutGrid omits the grid lines.
func WithoutGrid() SVGOption {
	return func(r *svgRenderer) { r.showGrid = false }
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{background: "#ffffff", fontFamily: defaultFontFamily, showGrid: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders the figure as a standalone SVG document.
func RenderSVG(fig plot.Figure, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="%s">`+"\n",
		fig.Width, fig.Height, fig.Width, fig.Height, html.EscapeString(r.fontFamily))

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect class="background" x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			fig.Width, fig.Height, r.background)
	}
	if fig.Title != "" {
		fmt.Fprintf(&buf, `  <text class="figure-title" x="%.1f" y="%.1f" text-anchor="middle" font-size="16">%s</text>`+"\n",
			fig.Width/2, plot.FigureTitleHeight*0.65, html.EscapeString(fig.Title))
	}

	frames := plot.Frames(fig)
	for i, p := range fig.Panels {
		r.renderPanel(&buf, i, p, frames[i], fig.LineWidth)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderPanel(buf *bytes.Buffer, idx int, p plot.Panel, f plot.Frame, lineWidth float64) {
	fmt.Fprintf(buf, `  <g class="panel" id="panel-%d">`+"\n", idx)

	if p.Title != "" {
		fmt.Fprintf(buf, `    <text class="panel-title" x="%.1f" y="%.1f" text-anchor="middle" font-size="13">%s</text>`+"\n",
			f.Left+f.Side/2, f.Top-10, html.EscapeString(p.Title))
	}

	if r.showGrid {
		for i := 0; i < f.Grid; i++ {
			t := f.Tick(i)
			fmt.Fprintf(buf, `    <line class="grid" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.8"/>`+"\n",
				f.Left+t, f.Top, f.Left+t, f.Bottom(), gridLineColor)
			fmt.Fprintf(buf, `    <line class="grid" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.8"/>`+"\n",
				f.Left, f.Top+t, f.Right(), f.Top+t, gridLineColor)
		}
	}
	for i := 0; i < f.Grid; i++ {
		t := f.Tick(i)
		fmt.Fprintf(buf, `    <text class="tick" x="%.2f" y="%.2f" text-anchor="middle" font-size="10">%d</text>`+"\n",
			f.Left+t, f.Bottom()+14, i)
		fmt.Fprintf(buf, `    <text class="tick" x="%.2f" y="%.2f" text-anchor="end" font-size="10">%d</text>`+"\n",
			f.Left-6, f.Top+t+3.5, i)
	}
	fmt.Fprintf(buf, `    <rect class="frame" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="#000000" stroke-width="0.8"/>`+"\n",
		f.Left, f.Top, f.Side, f.Side)

	fmt.Fprintf(buf, `    <clipPath id="clip-panel-%d"><rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"/></clipPath>`+"\n",
		idx, f.Left, f.Top, f.Side, f.Side)
	fmt.Fprintf(buf, `    <g class="data" clip-path="url(#clip-panel-%d)">`+"\n", idx)
	for _, s := range p.Series {
		renderSVGSeries(buf, s, f, lineWidth)
	}
	buf.WriteString("    </g>\n")
	renderSVGLegend(buf, p.Legend(), f, lineWidth)

	buf.WriteString("  </g>\n")
}

func renderSVGSeries(buf *bytes.Buffer, s plot.Series, f plot.Frame, lineWidth float64) {
	fmt.Fprintf(buf, `    <g class="series %s" data-net="%s">`+"\n", s.Role, html.EscapeString(s.Net))
	if s.Line && len(s.Points) > 1 {
		pts := make([]string, len(s.Points))
		for i, p := range s.Points {
			x, y := f.Map(p)
			pts[i] = fmt.Sprintf("%.2f,%.2f", x, y)
		}
		fmt.Fprintf(buf, `      <polyline points="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-linejoin="round"/>`+"\n",
			strings.Join(pts, " "), s.Color, lineWidth)
	}
	for _, p := range s.Points {
		x, y := f.Map(p)
		svgMarker(buf, "      ", s.Marker, x, y, s.Size, s.Color)
	}
	buf.WriteString("    </g>\n")
}

func svgMarker(buf *bytes.Buffer, indent string, m plot.Marker, x, y, size float64, color string) {
	switch m {
	case plot.MarkerSquare:
		fmt.Fprintf(buf, `%s<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			indent, x-size/2, y-size/2, size, size, color)
	default:
		fmt.Fprintf(buf, `%s<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
			indent, x, y, size/2, color)
	}
}

// legendBox returns the legend rectangle anchored to the upper right corner
// of the plotting area.
func legendBox(entries []plot.LegendEntry, f plot.Frame, textWidth func(string) float64) (x, y, w, h float64) {
	maxW := 0.0
	for _, e := range entries {
		if tw := textWidth(e.Label); tw > maxW {
			maxW = tw
		}
	}
	w = legendPad*3 + legendSwatch + maxW
	h = legendPad*2 + legendRowHeight*float64(len(entries)) - 4
	return f.Right() - w - 6, f.Top + 6, w, h
}

func svgTextWidth(s string) float64 { return float64(len([]rune(s))) * legendCharWidth }

func renderSVGLegend(buf *bytes.Buffer, entries []plot.LegendEntry, f plot.Frame, lineWidth float64) {
	if len(entries) == 0 {
		return
	}
	x, y, w, h := legendBox(entries, f, svgTextWidth)
	buf.WriteString(`    <g class="legend">` + "\n")
	fmt.Fprintf(buf, `      <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="3" fill="#ffffff" fill-opacity="0.8" stroke="#cccccc"/>`+"\n",
		x, y, w, h)
	for i, e := range entries {
		cy := y + legendPad + legendRowHeight*float64(i) + legendRowHeight/2 - 2
		sx := x + legendPad
		if e.Line {
			fmt.Fprintf(buf, `      <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
				sx, cy, sx+legendSwatch, cy, e.Color, lineWidth)
		}
		svgMarker(buf, "      ", e.Marker, sx+legendSwatch/2, cy, legendMarkerSize(e), e.Color)
		fmt.Fprintf(buf, `      <text x="%.2f" y="%.2f" font-size="11">%s</text>`+"\n",
			sx+legendSwatch+legendPad, cy+4, html.EscapeString(e.Label))
	}
	buf.WriteString("    </g>\n")
}

// legendMarkerSize caps marker swatches so that large via squares fit a row.
func legendMarkerSize(e plot.LegendEntry) float64 {
	if e.Size > legendRowHeight-6 {
		return legendRowHeight - 6
	}
	return e.Size
}
