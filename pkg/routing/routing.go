package routing

import (
	"fmt"

	"github.com/matzehuels/routeviz/pkg/errors"
)

// Routing layers written by the router. Layer 1 prefers horizontal runs and
// layer 2 vertical runs.
const (
	Layer1 = 1
	Layer2 = 2
)

// Layers lists the layers known to the renderers, in panel order.
var Layers = []int{Layer1, Layer2}

// Point is one routed grid cell of a net.
// X is the grid row and Y the grid column.
type Point struct {
	Net   string
	X     int
	Y     int
	Layer int
}

func (p Point) String() string {
	return fmt.Sprintf("%s(%d,%d,L%d)", p.Net, p.X, p.Y, p.Layer)
}

// NetPath is the ordered sequence of points belonging to one net, in the
// order they appear in the source.
type NetPath struct {
	Net    string
	Points []Point
}

// Len returns the number of points in the path.
func (p NetPath) Len() int { return len(p.Points) }

// First returns the first point of the path.
// It returns an [errors.ErrCodeEmptyPath] error for a path with no points.
func (p NetPath) First() (Point, error) {
	if len(p.Points) == 0 {
		return Point{}, errors.New(errors.ErrCodeEmptyPath, "net %q has no points", p.Net)
	}
	return p.Points[0], nil
}

// Last returns the last point of the path.
// It returns an [errors.ErrCodeEmptyPath] error for a path with no points.
func (p NetPath) Last() (Point, error) {
	if len(p.Points) == 0 {
		return Point{}, errors.New(errors.ErrCodeEmptyPath, "net %q has no points", p.Net)
	}
	return p.Points[len(p.Points)-1], nil
}

// OnLayer returns the subsequence of points on the given layer, in path
// order. Points on the layer that are not contiguous in the path are kept
// together in the result; no attempt is made to split the run.
func (p NetPath) OnLayer(layer int) NetPath {
	out := NetPath{Net: p.Net}
	for _, pt := range p.Points {
		if pt.Layer == layer {
			out.Points = append(out.Points, pt)
		}
	}
	return out
}

// Table is the full routed-point table of one run.
type Table struct {
	// Points holds every row in source order.
	Points []Point
	// Nets holds the distinct net names in order of first appearance.
	Nets []string
}

// NewTable builds a table from points, deriving the net order from the
// first appearance of each net.
func NewTable(points []Point) *Table {
	t := &Table{Points: points}
	seen := make(map[string]bool)
	for _, p := range points {
		if !seen[p.Net] {
			seen[p.Net] = true
			t.Nets = append(t.Nets, p.Net)
		}
	}
	return t
}

// Paths groups the table by net. The result has one path per entry of
// t.Nets, in that order, and each path keeps the source order of its points.
func (t *Table) Paths() []NetPath {
	idx := make(map[string]int, len(t.Nets))
	paths := make([]NetPath, len(t.Nets))
	for i, net := range t.Nets {
		idx[net] = i
		paths[i].Net = net
	}
	for _, p := range t.Points {
		i, ok := idx[p.Net]
		if !ok {
			continue
		}
		paths[i].Points = append(paths[i].Points, p)
	}
	return paths
}

// Path returns the path of a single net.
func (t *Table) Path(net string) (NetPath, bool) {
	out := NetPath{Net: net}
	for _, p := range t.Points {
		if p.Net == net {
			out.Points = append(out.Points, p)
		}
	}
	return out, len(out.Points) > 0
}
