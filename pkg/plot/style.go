package plot

import "fmt"

// Style holds every visual constant of the figures. [DefaultStyle] follows
// matplotlib's default look.
type Style struct {
	Grid int

	LayersTitle   string
	LayerTitles   map[int]string
	CombinedTitle string

	LayersWidth    float64
	LayersHeight   float64
	CombinedWidth  float64
	CombinedHeight float64

	// Palette is cycled per panel for net paths in the layers view.
	Palette []string
	// LayerColors colors combined-view segments by layer.
	LayerColors map[int]string
	StartColor  string
	EndColor    string
	ViaColor    string
	// Background fills the canvas of the image sinks.
	Background string

	PointSize float64
	ViaSize   float64
	LineWidth float64

	ViaLabel string
}

// Tab10 is the default ten-color qualitative palette.
var Tab10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// DefaultStyle returns the default figure style.
func DefaultStyle() Style {
	return Style{
		Grid:          10,
		LayersTitle:   "Maze Routing Visualization: Layer 1 vs Layer 2",
		LayerTitles:   map[int]string{1: "Layer 1 (Horizontal Preferred)", 2: "Layer 2 (Vertical Preferred)"},
		CombinedTitle: "Combined Routing View (Layers 1 & 2)",

		LayersWidth:    1200,
		LayersHeight:   600,
		CombinedWidth:  600,
		CombinedHeight: 600,

		Palette:     append([]string(nil), Tab10...),
		LayerColors: map[int]string{1: "#0000ff", 2: "#ffa500"},
		StartColor:  "#008000",
		EndColor:    "#ff0000",
		ViaColor:    "#000000",
		Background:  "#ffffff",

		PointSize: 8,
		ViaSize:   14,
		LineWidth: 1.5,

		ViaLabel: "Via",
	}
}

func (s Style) paletteColor(i int) string {
	if len(s.Palette) == 0 {
		return Tab10[i%len(Tab10)]
	}
	return s.Palette[i%len(s.Palette)]
}

func (s Style) layerTitle(layer int) string {
	if t, ok := s.LayerTitles[layer]; ok {
		return t
	}
	return fmt.Sprintf("Layer %d", layer)
}
