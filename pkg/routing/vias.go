package routing

import "fmt"

// Via marks a cell where a net's path changes layer between two consecutive
// points. X and Y are the coordinates of the later point of the transition.
type Via struct {
	X   int
	Y   int
	Net string
}

func (v Via) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// At reports whether the via sits on the given grid cell.
func (v Via) At(x, y int) bool { return v.X == x && v.Y == y }

// DetectVias scans every path for layer changes between consecutive points.
//
// The result is ordered by path, then by point index. Paths with fewer than
// two points contribute nothing, and transitions are never looked for across
// path boundaries. Coordinates shared by several nets are reported once per
// transition.
func DetectVias(paths []NetPath) []Via {
	var vias []Via
	for _, p := range paths {
		vias = append(vias, pathVias(p)...)
	}
	return vias
}

func pathVias(p NetPath) []Via {
	var vias []Via
	for i := 1; i < len(p.Points); i++ {
		prev, cur := p.Points[i-1], p.Points[i]
		if cur.Layer != prev.Layer {
			vias = append(vias, Via{X: cur.X, Y: cur.Y, Net: p.Net})
		}
	}
	return vias
}
