package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/routeviz/pkg/plot"
)

func TestPanelCells(t *testing.T) {
	fig := combinedFigure(t)
	cells, nets := panelCells(fig.Panels[0])

	if len(cells) != 10 || len(cells[0]) != 10 {
		t.Fatalf("grid = %dx%d, want 10x10", len(cells), len(cells[0]))
	}
	if len(nets) != 1 || nets[0] != "N1" {
		t.Errorf("nets = %v, want [N1]", nets)
	}

	tests := []struct {
		row, col int
		want     rune
	}{
		{0, 0, 'S'},
		{0, 1, '1'},
		{0, 2, 'V'},
		{1, 2, 'E'},
		{5, 5, '.'},
	}
	for _, tt := range tests {
		if got := cells[tt.row][tt.col].symbol; got != tt.want {
			t.Errorf("cell(%d,%d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestPanelCellsNetOrdinals(t *testing.T) {
	p := plot.Panel{Grid: 3}
	for i, net := range []string{"A", "B"} {
		p.Series = append(p.Series, plot.Series{
			Role:   plot.RolePath,
			Net:    net,
			Points: []plot.Point{{X: float64(i), Y: 2}},
		})
	}
	// Out-of-grid points are dropped.
	p.Series = append(p.Series, plot.Series{Role: plot.RoleVia, Points: []plot.Point{{X: 7, Y: 7}}})

	cells, _ := panelCells(p)
	if cells[2][0].symbol != '1' || cells[2][1].symbol != '2' {
		t.Errorf("row 2 = %q%q, want 12", cells[2][0].symbol, cells[2][1].symbol)
	}
}

func TestNetSymbol(t *testing.T) {
	tests := []struct {
		i    int
		want rune
	}{
		{0, '1'},
		{8, '9'},
		{9, 'a'},
		{34, 'z'},
		{35, '+'},
	}
	for _, tt := range tests {
		if got := netSymbol(tt.i); got != tt.want {
			t.Errorf("netSymbol(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}

func TestRenderTextPlain(t *testing.T) {
	out := string(RenderText(layersFigure()))

	if strings.Contains(out, "\x1b[") {
		t.Error("default renderer should not emit escape sequences")
	}
	for _, want := range []string{
		"Maze Routing Visualization: Layer 1 vs Layer 2",
		"Layer 1 (Horizontal Preferred)",
		"Layer 2 (Vertical Preferred)",
		"1 N1",
		"S start  E end  V via",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Both panels share the lines of their blocks.
	lines := strings.Split(out, "\n")
	var header string
	for _, l := range lines {
		if strings.Contains(l, "Layer 1 (Horizontal") {
			header = l
			break
		}
	}
	if !strings.Contains(header, "Layer 2 (Vertical") {
		t.Errorf("panels are not side by side: %q", header)
	}
}

func TestRenderTextCombinedRow(t *testing.T) {
	out := string(RenderText(combinedFigure(t)))
	if !strings.Contains(out, " 0  S  1  V  .") {
		t.Errorf("row 0 not rendered as expected:\n%s", out)
	}
	if !strings.Contains(out, " 1  .  .  E  .") {
		t.Errorf("row 1 not rendered as expected:\n%s", out)
	}
}
