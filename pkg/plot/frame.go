package plot

import "math"

// Panel margins in pixels around the square plotting area.
const (
	FigureTitleHeight = 36.0
	PanelTitleHeight  = 28.0
	MarginLeft        = 36.0
	MarginRight       = 16.0
	MarginBottom      = 28.0
)

// Frame is the pixel placement of one panel's plotting area.
type Frame struct {
	// PanelLeft and PanelWidth delimit the panel's column of the canvas.
	PanelLeft  float64
	PanelWidth float64
	// Left and Top are the corner of the square plotting area, Side its edge.
	Left, Top, Side float64
	Grid            int
}

// Frames lays the panels of fig out left to right and returns the plotting
// area of each, in panel order.
func Frames(fig Figure) []Frame {
	n := len(fig.Panels)
	if n == 0 {
		return nil
	}
	top := 0.0
	if fig.Title != "" {
		top = FigureTitleHeight
	}
	pw := fig.Width / float64(n)
	availW := pw - MarginLeft - MarginRight
	availH := fig.Height - top - PanelTitleHeight - MarginBottom
	side := math.Max(0, math.Min(availW, availH))

	frames := make([]Frame, n)
	for i, p := range fig.Panels {
		grid := p.Grid
		if grid <= 0 {
			grid = 1
		}
		panelLeft := float64(i) * pw
		frames[i] = Frame{
			PanelLeft:  panelLeft,
			PanelWidth: pw,
			Left:       panelLeft + MarginLeft + (availW-side)/2,
			Top:        top + PanelTitleHeight + (availH-side)/2,
			Side:       side,
			Grid:       grid,
		}
	}
	return frames
}

// Cell returns the pixel size of one grid cell.
func (f Frame) Cell() float64 { return f.Side / float64(f.Grid) }

// Map converts a grid position to pixels. The axis limits are -0.5 and
// Grid-0.5 on both axes, and rows grow downwards.
func (f Frame) Map(p Point) (x, y float64) {
	c := f.Cell()
	return f.Left + (p.X+0.5)*c, f.Top + (p.Y+0.5)*c
}

// Tick returns the pixel offset of integer grid index i along either axis,
// relative to Left or Top.
func (f Frame) Tick(i int) float64 {
	return (float64(i) + 0.5) * f.Cell()
}

// Right returns the x coordinate of the right edge of the plotting area.
func (f Frame) Right() float64 { return f.Left + f.Side }

// Bottom returns the y coordinate of the bottom edge of the plotting area.
func (f Frame) Bottom() float64 { return f.Top + f.Side }
