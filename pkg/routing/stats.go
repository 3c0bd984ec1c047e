package routing

import (
	"gonum.org/v1/gonum/stat"
)

// NetStats summarizes one net path.
type NetStats struct {
	Net      string
	Points   int
	Segments int
	// PerLayer counts points by layer value, including unexpected layers.
	PerLayer map[int]int
	Vias     int
	// Wirelength is the Manhattan length of the path in grid cells.
	Wirelength int
}

// Summary aggregates [NetStats] over a table.
type Summary struct {
	Nets           []NetStats
	TotalPoints    int
	TotalVias      int
	TotalLength    int
	MeanLength     float64
	StdDevLength   float64
	DuplicateVias  int
	LayersObserved []int
}

// Summarize computes per-net and aggregate statistics. vias must be the
// output of [DetectVias] for the same paths.
func Summarize(paths []NetPath, vias []Via) Summary {
	s := Summary{TotalVias: len(vias)}

	viasByNet := make(map[string]int)
	for _, v := range vias {
		viasByNet[v.Net]++
	}

	layerSeen := make(map[int]bool)
	lengths := make([]float64, 0, len(paths))
	for _, p := range paths {
		ns := NetStats{
			Net:      p.Net,
			Points:   len(p.Points),
			PerLayer: make(map[int]int),
			Vias:     viasByNet[p.Net],
		}
		if ns.Points > 1 {
			ns.Segments = ns.Points - 1
		}
		for i, pt := range p.Points {
			ns.PerLayer[pt.Layer]++
			if !layerSeen[pt.Layer] {
				layerSeen[pt.Layer] = true
				s.LayersObserved = append(s.LayersObserved, pt.Layer)
			}
			if i > 0 {
				ns.Wirelength += manhattan(p.Points[i-1], pt)
			}
		}
		s.Nets = append(s.Nets, ns)
		s.TotalPoints += ns.Points
		s.TotalLength += ns.Wirelength
		lengths = append(lengths, float64(ns.Wirelength))
	}

	switch len(lengths) {
	case 0:
	case 1:
		s.MeanLength = lengths[0]
	default:
		s.MeanLength, s.StdDevLength = stat.MeanStdDev(lengths, nil)
	}

	seen := make(map[[2]int]bool)
	for _, v := range vias {
		k := [2]int{v.X, v.Y}
		if seen[k] {
			s.DuplicateVias++
		}
		seen[k] = true
	}
	return s
}

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
