package sink

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/routeviz/pkg/plot"
)

func TestRenderSVGLayers(t *testing.T) {
	svg := string(RenderSVG(layersFigure()))

	if !strings.HasPrefix(svg, "<svg") {
		t.Fatalf("output does not start with <svg: %.40q", svg)
	}
	if !strings.Contains(svg, `width="1200" height="600"`) {
		t.Error("missing 1200x600 canvas size")
	}
	if got := strings.Count(svg, `class="panel"`); got != 2 {
		t.Errorf("panels = %d, want 2", got)
	}
	for _, title := range []string{
		"Maze Routing Visualization: Layer 1 vs Layer 2",
		"Layer 1 (Horizontal Preferred)",
		"Layer 2 (Vertical Preferred)",
	} {
		if !strings.Contains(svg, ">"+title+"<") {
			t.Errorf("missing title %q", title)
		}
	}
	// 10 vertical and 10 horizontal lines per panel.
	if got := strings.Count(svg, `class="grid"`); got != 40 {
		t.Errorf("grid lines = %d, want 40", got)
	}
	// The via appears on both panels, labelled once on each.
	if got := strings.Count(svg, `<g class="series via" data-net="N1">`); got != 2 {
		t.Errorf("via series = %d, want 2", got)
	}
	if got := strings.Count(svg, ">Via</text>"); got != 2 {
		t.Errorf("via legend entries = %d, want 2", got)
	}
}

func TestRenderSVGCombined(t *testing.T) {
	svg := string(RenderSVG(combinedFigure(t)))

	if !strings.Contains(svg, `width="600" height="600"`) {
		t.Error("missing 600x600 canvas size")
	}
	if strings.Contains(svg, `class="figure-title"`) {
		t.Error("combined figure should not carry a figure title")
	}
	if !strings.Contains(svg, ">Combined Routing View (Layers 1 &amp; 2)<") {
		t.Error("missing escaped panel title")
	}
	if !strings.Contains(svg, ">N1 (L1)</text>") {
		t.Error("missing first segment label")
	}
	if strings.Count(svg, "<polyline") != 3 {
		t.Errorf("polylines = %d, want 3 segments", strings.Count(svg, "<polyline"))
	}
	if !strings.Contains(svg, `stroke="#0000ff"`) || !strings.Contains(svg, `stroke="#ffa500"`) {
		t.Error("segments should use both layer colors")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	svg := string(RenderSVG(combinedFigure(t),
		WithoutGrid(),
		WithBackground("#fafafa"),
		WithFontFamily("Fira Sans"),
	))

	if strings.Contains(svg, `class="grid"`) {
		t.Error("WithoutGrid() still draws grid lines")
	}
	if !strings.Contains(svg, `fill="#fafafa"`) {
		t.Error("background color not applied")
	}
	if !strings.Contains(svg, `font-family="Fira Sans"`) {
		t.Error("font family not applied")
	}
}

func TestRenderSVGClipsToAxes(t *testing.T) {
	fig := strayFigure()
	svg := string(RenderSVG(fig))

	if got := strings.Count(svg, "<clipPath"); got != 2 {
		t.Errorf("clip paths = %d, want one per panel", got)
	}
	f := plot.Frames(fig)[0]
	rect := fmt.Sprintf(`<clipPath id="clip-panel-0"><rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"/></clipPath>`,
		f.Left, f.Top, f.Side, f.Side)
	if !strings.Contains(svg, rect) {
		t.Errorf("missing frame clip %s", rect)
	}

	// The series of panel 0 must sit inside its clipped group.
	open := strings.Index(svg, `<g class="data" clip-path="url(#clip-panel-0)">`)
	end := strings.Index(svg, `<g class="series end" data-net="A">`)
	next := strings.Index(svg, `id="panel-1"`)
	if open < 0 || end < open || end > next {
		t.Errorf("end marker at %d not inside clipped group at %d (next panel at %d)", end, open, next)
	}
}
