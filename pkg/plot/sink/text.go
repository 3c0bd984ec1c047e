package sink

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/routeviz/pkg/plot"
)

// Cell symbols of the text grid.
const (
	symbolEmpty = '.'
	symbolStart = 'S'
	symbolEnd   = 'E'
	symbolVia   = 'V'
)

// netSymbols are assigned to nets in order of first appearance in a panel.
const netSymbols = "123456789abcdefghijklmnopqrstuvwxyz"

// TextOption configures text rendering.
type TextOption func(*textRenderer)

type textRenderer struct {
	renderer  *lipgloss.Renderer
	highlight string
}

// WithRenderer styles the output for the given lipgloss renderer. By default
// output is plain text with no escape sequences.
func WithRenderer(r *lipgloss.Renderer) TextOption {
	return func(t *textRenderer) { t.renderer = r }
}

// WithHighlight dims every net except the named one.
func WithHighlight(net string) TextOption {
	return func(t *textRenderer) { t.highlight = net }
}

type cell struct {
	symbol rune
	color  string
	net    string
	role   plot.Role
}

// RenderText draws each panel as a character grid, panels side by side:
// '.' is an empty cell, digits and letters are nets in order of appearance,
// S and E mark path starts and ends and V marks vias.
func RenderText(fig plot.Figure, opts ...TextOption) []byte {
	t := textRenderer{renderer: lipgloss.NewRenderer(io.Discard)}
	for _, opt := range opts {
		opt(&t)
	}

	blocks := make([]string, 0, len(fig.Panels))
	for i, p := range fig.Panels {
		block := t.panel(p)
		if i < len(fig.Panels)-1 {
			block = t.renderer.NewStyle().PaddingRight(3).Render(block)
		}
		blocks = append(blocks, block)
	}

	var b strings.Builder
	if fig.Title != "" {
		b.WriteString(t.renderer.NewStyle().Bold(true).Render(fig.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	b.WriteString("\n")
	return []byte(b.String())
}

func (t *textRenderer) panel(p plot.Panel) string {
	cells, nets := panelCells(p)
	grid := len(cells)

	var b strings.Builder
	b.WriteString(t.renderer.NewStyle().Bold(true).Render(p.Title))
	b.WriteString("\n")

	b.WriteString("   ")
	for c := 0; c < grid; c++ {
		fmt.Fprintf(&b, "%3d", c)
	}
	b.WriteString("\n")

	for r, row := range cells {
		fmt.Fprintf(&b, "%2d ", r)
		for _, c := range row {
			b.WriteString(" ")
			b.WriteString(t.styleCell(c).Render(string(c.symbol)))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	var keys []string
	for i, n := range nets {
		keys = append(keys, fmt.Sprintf("%c %s", netSymbol(i), n))
	}
	if len(keys) > 0 {
		b.WriteString(strings.Join(keys, "  "))
		b.WriteString("\n")
	}
	b.WriteString("S start  E end  V via")
	return b.String()
}

func (t *textRenderer) styleCell(c cell) lipgloss.Style {
	s := t.renderer.NewStyle()
	switch {
	case c.symbol == symbolEmpty:
		return s.Faint(true)
	case c.role == plot.RoleVia:
		s = s.Bold(true).Reverse(true)
	case c.color != "":
		s = s.Foreground(lipgloss.Color(c.color))
	}
	if t.highlight != "" && c.net != t.highlight {
		s = s.Faint(true)
	}
	return s
}

// panelCells rasterises a panel onto its grid. Later series overwrite
// earlier ones on the same cell, except that markers always win over path
// points: vias over starts over ends.
func panelCells(p plot.Panel) ([][]cell, []string) {
	grid := p.Grid
	if grid <= 0 {
		grid = 1
	}
	cells := make([][]cell, grid)
	for r := range cells {
		cells[r] = make([]cell, grid)
		for c := range cells[r] {
			cells[r][c] = cell{symbol: symbolEmpty}
		}
	}

	netIdx := make(map[string]int)
	var nets []string
	for _, s := range p.SeriesByRole(plot.RolePath) {
		if _, ok := netIdx[s.Net]; !ok {
			netIdx[s.Net] = len(nets)
			nets = append(nets, s.Net)
		}
	}

	put := func(s plot.Series, sym rune) {
		for _, pt := range s.Points {
			r, c := int(math.Round(pt.Y)), int(math.Round(pt.X))
			if r < 0 || r >= grid || c < 0 || c >= grid {
				continue
			}
			cells[r][c] = cell{symbol: sym, color: s.Color, net: s.Net, role: s.Role}
		}
	}

	for _, s := range p.SeriesByRole(plot.RolePath) {
		put(s, netSymbol(netIdx[s.Net]))
	}
	for _, s := range p.SeriesByRole(plot.RoleEnd) {
		put(s, symbolEnd)
	}
	for _, s := range p.SeriesByRole(plot.RoleStart) {
		put(s, symbolStart)
	}
	for _, s := range p.SeriesByRole(plot.RoleVia) {
		put(s, symbolVia)
	}
	return cells, nets
}

func netSymbol(i int) rune {
	if i < len(netSymbols) {
		return rune(netSymbols[i])
	}
	return '+'
}
