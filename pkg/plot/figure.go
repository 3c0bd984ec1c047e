package plot

// Role identifies what a series depicts.
type Role int

const (
	// RolePath is a net path or one segment of it.
	RolePath Role = iota
	// RoleStart marks the first point of a path.
	RoleStart
	// RoleEnd marks the last point of a path.
	RoleEnd
	// RoleVia marks a layer transition.
	RoleVia
)

func (r Role) String() string {
	switch r {
	case RolePath:
		return "path"
	case RoleStart:
		return "start"
	case RoleEnd:
		return "end"
	case RoleVia:
		return "via"
	default:
		return "unknown"
	}
}

// Marker is the glyph drawn at each point of a series.
type Marker int

const (
	MarkerCircle Marker = iota
	MarkerSquare
)

// Point is a position in grid units. X is the screen column, Y the screen row.
type Point struct {
	X, Y float64
}

// Series is one draw call.
type Series struct {
	Role Role
	// Net is the net the series belongs to. For vias it is the net that
	// switched layer.
	Net string
	// Label is the legend text. Empty means no legend entry.
	Label  string
	Color  string
	Points []Point
	// Line connects consecutive points.
	Line   bool
	Marker Marker
	// Size is the marker diameter (circle) or side (square) in pixels.
	Size float64
}

// Panel is one grid plot.
type Panel struct {
	Title  string
	Grid   int
	Series []Series
}

// InAxes reports whether pt lies within the panel's axis limits,
// -0.5 to Grid-0.5 on both axes. Sinks clip everything outside.
func (p Panel) InAxes(pt Point) bool {
	lo, hi := -0.5, float64(p.Grid)-0.5
	return pt.X >= lo && pt.X <= hi && pt.Y >= lo && pt.Y <= hi
}

// LegendEntry is one line of a panel legend.
type LegendEntry struct {
	Label  string
	Color  string
	Line   bool
	Marker Marker
	Size   float64
}

// Legend returns the labelled series of the panel in draw order.
func (p Panel) Legend() []LegendEntry {
	var out []LegendEntry
	for _, s := range p.Series {
		if s.Label == "" {
			continue
		}
		out = append(out, LegendEntry{
			Label:  s.Label,
			Color:  s.Color,
			Line:   s.Line,
			Marker: s.Marker,
			Size:   s.Size,
		})
	}
	return out
}

// SeriesByRole returns the series of the panel with the given role.
func (p Panel) SeriesByRole(role Role) []Series {
	var out []Series
	for _, s := range p.Series {
		if s.Role == role {
			out = append(out, s)
		}
	}
	return out
}

// Figure is a titled group of panels laid out left to right.
type Figure struct {
	Title string
	// Width and Height are the canvas size in pixels.
	Width  float64
	Height float64
	// LineWidth is the stroke width of path series in pixels.
	LineWidth float64
	Panels    []Panel
}
