package sink

import (
	"testing"

	"github.com/matzehuels/routeviz/pkg/plot"
	"github.com/matzehuels/routeviz/pkg/routing"
)

// fixturePaths is one net that climbs to layer 2 after two cells:
// (0,0,1) (0,1,1) (0,2,2) (1,2,2), giving a single via at (0,2).
func fixturePaths() ([]routing.NetPath, []routing.Via) {
	tbl := routing.NewTable([]routing.Point{
		{Net: "N1", X: 0, Y: 0, Layer: 1},
		{Net: "N1", X: 0, Y: 1, Layer: 1},
		{Net: "N1", X: 0, Y: 2, Layer: 2},
		{Net: "N1", X: 1, Y: 2, Layer: 2},
	})
	paths := tbl.Paths()
	return paths, routing.DetectVias(paths)
}

func layersFigure() plot.Figure {
	paths, vias := fixturePaths()
	return plot.Layers(paths, vias, plot.DefaultStyle())
}

func combinedFigure(t *testing.T) plot.Figure {
	t.Helper()
	paths, vias := fixturePaths()
	fig, err := plot.Combined(paths, vias, plot.DefaultStyle())
	if err != nil {
		t.Fatalf("Combined() error: %v", err)
	}
	return fig
}

// strayFigure is the layers figure of a layer-1 net running from column 0
// to column 14, past the right edge of the 10 cell grid.
func strayFigure() plot.Figure {
	tbl := routing.NewTable([]routing.Point{
		{Net: "A", X: 0, Y: 0, Layer: 1},
		{Net: "A", X: 0, Y: 14, Layer: 1},
	})
	paths := tbl.Paths()
	return plot.Layers(paths, routing.DetectVias(paths), plot.DefaultStyle())
}
