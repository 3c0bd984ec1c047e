package plot

import (
	"fmt"

	"github.com/matzehuels/routeviz/pkg/errors"
	"github.com/matzehuels/routeviz/pkg/routing"
)

func toPoint(p routing.Point) Point {
	return Point{X: float64(p.Y), Y: float64(p.X)}
}

func toPoints(ps []routing.Point) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = toPoint(p)
	}
	return out
}

// Layers builds the side-by-side figure with one panel per routing layer.
//
// Each panel draws every net's points on that layer as one continuous line,
// even when the net leaves and re-enters the layer, and marks the first and
// last of those points as start and end. Nets with no point on a layer are
// skipped on that panel.
func Layers(paths []routing.NetPath, vias []routing.Via, st Style) Figure {
	fig := Figure{
		Title:     st.LayersTitle,
		Width:     st.LayersWidth,
		Height:    st.LayersHeight,
		LineWidth: st.LineWidth,
	}
	for _, layer := range routing.Layers {
		panel := Panel{Title: st.layerTitle(layer), Grid: st.Grid}
		drawn := 0
		for _, p := range paths {
			seg := p.OnLayer(layer)
			if seg.Len() == 0 {
				continue
			}
			pts := toPoints(seg.Points)
			panel.Series = append(panel.Series,
				Series{
					Role:   RolePath,
					Net:    p.Net,
					Label:  p.Net,
					Color:  st.paletteColor(drawn),
					Points: pts,
					Line:   true,
					Marker: MarkerCircle,
					Size:   st.PointSize,
				},
				endpoint(RoleStart, p.Net, pts[0], st.StartColor, st.PointSize),
				endpoint(RoleEnd, p.Net, pts[len(pts)-1], st.EndColor, st.PointSize),
			)
			drawn++
		}
		panel.Series = append(panel.Series, viaSeries(vias, st)...)
		fig.Panels = append(fig.Panels, panel)
	}
	return fig
}

// Combined builds the single-panel figure with every net's full path.
//
// Each consecutive pair of points becomes one segment colored by the layer
// of the later point; only a net's first segment is labelled. The net's true
// first and last points are marked after its segments.
//
// It fails with [errors.ErrCodeEmptyPath] for a path without points and with
// [errors.ErrCodeUnknownLayer] when a segment ends on a layer that has no
// color.
func Combined(paths []routing.NetPath, vias []routing.Via, st Style) (Figure, error) {
	panel := Panel{Title: st.CombinedTitle, Grid: st.Grid}
	for _, p := range paths {
		first, err := p.First()
		if err != nil {
			return Figure{}, err
		}
		last, err := p.Last()
		if err != nil {
			return Figure{}, err
		}

		for i := 1; i < len(p.Points); i++ {
			prev, cur := p.Points[i-1], p.Points[i]
			color, ok := st.LayerColors[cur.Layer]
			if !ok {
				return Figure{}, errors.New(errors.ErrCodeUnknownLayer,
					"net %q point %d at (%d,%d): no color for layer %d", p.Net, i, cur.X, cur.Y, cur.Layer)
			}
			label := ""
			if i == 1 {
				label = fmt.Sprintf("%s (L%d)", p.Net, cur.Layer)
			}
			panel.Series = append(panel.Series, Series{
				Role:   RolePath,
				Net:    p.Net,
				Label:  label,
				Color:  color,
				Points: []Point{toPoint(prev), toPoint(cur)},
				Line:   true,
				Marker: MarkerCircle,
				Size:   st.PointSize,
			})
		}

		panel.Series = append(panel.Series,
			endpoint(RoleStart, p.Net, toPoint(first), st.StartColor, st.PointSize),
			endpoint(RoleEnd, p.Net, toPoint(last), st.EndColor, st.PointSize),
		)
	}
	panel.Series = append(panel.Series, viaSeries(vias, st)...)

	return Figure{
		Width:     st.CombinedWidth,
		Height:    st.CombinedHeight,
		LineWidth: st.LineWidth,
		Panels:    []Panel{panel},
	}, nil
}

func endpoint(role Role, net string, p Point, color string, size float64) Series {
	return Series{
		Role:   role,
		Net:    net,
		Color:  color,
		Points: []Point{p},
		Marker: MarkerCircle,
		Size:   size,
	}
}

// viaSeries returns one square marker per via. Only the first carries the
// legend label, whatever the coordinates of the others.
func viaSeries(vias []routing.Via, st Style) []Series {
	out := make([]Series, 0, len(vias))
	labelled := false
	for _, v := range vias {
		label := ""
		if !labelled {
			label = st.ViaLabel
			labelled = true
		}
		out = append(out, Series{
			Role:   RoleVia,
			Net:    v.Net,
			Label:  label,
			Color:  st.ViaColor,
			Points: []Point{{X: float64(v.Y), Y: float64(v.X)}},
			Marker: MarkerSquare,
			Size:   st.ViaSize,
		})
	}
	return out
}
