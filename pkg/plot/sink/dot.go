package sink

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/routeviz/pkg/plot"
)

// dotPitch is the distance between grid cells in inches.
const dotPitch = 0.5

// ToDOT converts a figure to Graphviz DOT source. Every node carries a pinned
// position, so the source must be laid out with neato (or rendered with
// [RenderGraph]). Panels are placed left to right with a two-cell gap.
func ToDOT(fig plot.Figure) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	if fig.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=18;\n", fig.Title)
	}
	buf.WriteString("  node [label=\"\", fixedsize=true, style=filled, penwidth=0];\n")
	lw := fig.LineWidth
	if lw <= 0 {
		lw = 1
	}
	fmt.Fprintf(&buf, "  edge [penwidth=%s];\n", fmtFloat(lw))

	offset := 0.0
	for i, p := range fig.Panels {
		buf.WriteString("\n")
		writePanelDOT(&buf, i, p, offset)
		offset += float64(p.Grid+2) * dotPitch
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writePanelDOT(buf *bytes.Buffer, idx int, p plot.Panel, offset float64) {
	grid := p.Grid
	if grid <= 0 {
		grid = 1
	}
	pos := func(x, y float64) string {
		return fmt.Sprintf("%s,%s!", fmtFloat(offset+x*dotPitch), fmtFloat(float64(grid-1)*dotPitch-y*dotPitch))
	}
	id := func(parts ...any) string {
		s := make([]string, 0, len(parts)+1)
		s = append(s, "p"+strconv.Itoa(idx))
		for _, p := range parts {
			s = append(s, fmt.Sprint(p))
		}
		return strconv.Quote(strings.Join(s, "."))
	}

	fmt.Fprintf(buf, "  %s [shape=plaintext, style=\"\", fixedsize=false, fontsize=14, label=%q, pos=%q];\n",
		id("title"), p.Title, pos(float64(grid-1)/2, -1.2))

	lo, hi := -0.5, float64(grid)-0.5
	for i := 0; i <= grid; i++ {
		at := float64(i) - 0.5
		fmt.Fprintf(buf, "  %s [style=invis, width=0, height=0, pos=%q];\n", id("gx", i, 0), pos(at, lo))
		fmt.Fprintf(buf, "  %s [style=invis, width=0, height=0, pos=%q];\n", id("gx", i, 1), pos(at, hi))
		fmt.Fprintf(buf, "  %s [style=invis, width=0, height=0, pos=%q];\n", id("gy", i, 0), pos(lo, at))
		fmt.Fprintf(buf, "  %s [style=invis, width=0, height=0, pos=%q];\n", id("gy", i, 1), pos(hi, at))
		fmt.Fprintf(buf, "  %s -- %s [color=%q, penwidth=0.5];\n", id("gx", i, 0), id("gx", i, 1), gridLineColor)
		fmt.Fprintf(buf, "  %s -- %s [color=%q, penwidth=0.5];\n", id("gy", i, 0), id("gy", i, 1), gridLineColor)
	}
	for i := 0; i < grid; i++ {
		fmt.Fprintf(buf, "  %s [shape=plaintext, style=\"\", fixedsize=false, fontsize=8, label=\"%d\", pos=%q];\n",
			id("tx", i), i, pos(float64(i), float64(grid)+0.1))
		fmt.Fprintf(buf, "  %s [shape=plaintext, style=\"\", fixedsize=false, fontsize=8, label=\"%d\", pos=%q];\n",
			id("ty", i), i, pos(-1.1, float64(i)))
	}

	for si, s := range p.Series {
		shape := "circle"
		if s.Marker == plot.MarkerSquare {
			shape = "square"
		}
		size := fmtFloat(s.Size / 72)
		for pi, pt := range s.Points {
			if !p.InAxes(pt) {
				continue
			}
			fmt.Fprintf(buf, "  %s [shape=%s, width=%s, height=%s, fillcolor=%q, class=%q, pos=%q];\n",
				id("s", si, pi), shape, size, size, s.Color, s.Role.String(), pos(pt.X, pt.Y))
		}
		if !s.Line {
			continue
		}
		// Graphviz cannot clip, so segments leaving the axes are dropped.
		for pi := 1; pi < len(s.Points); pi++ {
			if !p.InAxes(s.Points[pi-1]) || !p.InAxes(s.Points[pi]) {
				continue
			}
			fmt.Fprintf(buf, "  %s -- %s [color=%q];\n", id("s", si, pi-1), id("s", si, pi), s.Color)
		}
	}

	entries := p.Legend()
	if len(entries) == 0 {
		return
	}
	var rows strings.Builder
	for _, e := range entries {
		glyph := "&#9679;"
		if e.Marker == plot.MarkerSquare {
			glyph = "&#9632;"
		}
		fmt.Fprintf(&rows, "<tr><td><font color=\"%s\">%s</font></td><td align=\"left\">%s</td></tr>",
			e.Color, glyph, html.EscapeString(e.Label))
	}
	fmt.Fprintf(buf, "  %s [shape=plaintext, style=\"\", fixedsize=false, fontsize=10, label=<<table border=\"0\" cellspacing=\"0\">%s</table>>, pos=%q];\n",
		id("legend"), rows.String(), pos(float64(grid-1)/2, float64(grid)+1+0.35*float64(len(entries))))
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderGraph lays out DOT source produced by [ToDOT] with neato and
// returns SVG.
func RenderGraph(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one whose
// width and height match the viewBox, so the output scales like the other
// SVG sinks.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
