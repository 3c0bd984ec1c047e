package routing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pts(net string, cells ...[3]int) []Point {
	out := make([]Point, len(cells))
	for i, c := range cells {
		out[i] = Point{Net: net, X: c[0], Y: c[1], Layer: c[2]}
	}
	return out
}

func TestDetectVias(t *testing.T) {
	tests := []struct {
		name  string
		paths []NetPath
		want  []Via
	}{
		{
			name:  "single transition uses later point",
			paths: []NetPath{{Net: "N1", Points: pts("N1", [3]int{0, 0, 1}, [3]int{0, 1, 1}, [3]int{0, 2, 2})}},
			want:  []Via{{X: 0, Y: 2, Net: "N1"}},
		},
		{
			name:  "single point",
			paths: []NetPath{{Net: "N2", Points: pts("N2", [3]int{1, 1, 1})}},
			want:  nil,
		},
		{
			name:  "empty path",
			paths: []NetPath{{Net: "N0"}},
			want:  nil,
		},
		{
			name: "transition back and forth",
			paths: []NetPath{{Net: "A", Points: pts("A",
				[3]int{2, 2, 1}, [3]int{2, 2, 2}, [3]int{3, 2, 2}, [3]int{3, 2, 1}, [3]int{3, 3, 1})}},
			want: []Via{{X: 2, Y: 2, Net: "A"}, {X: 3, Y: 2, Net: "A"}},
		},
		{
			name: "no comparison across nets",
			paths: []NetPath{
				{Net: "A", Points: pts("A", [3]int{0, 0, 1}, [3]int{0, 1, 1})},
				{Net: "B", Points: pts("B", [3]int{0, 2, 2}, [3]int{0, 3, 2})},
			},
			want: nil,
		},
		{
			name: "duplicates preserved in net order",
			paths: []NetPath{
				{Net: "A", Points: pts("A", [3]int{3, 2, 1}, [3]int{3, 3, 2})},
				{Net: "B", Points: pts("B", [3]int{2, 3, 2}, [3]int{3, 3, 1})},
			},
			want: []Via{{X: 3, Y: 3, Net: "A"}, {X: 3, Y: 3, Net: "B"}},
		},
		{
			name:  "unexpected layer still counts as a change",
			paths: []NetPath{{Net: "X", Points: pts("X", [3]int{0, 0, 1}, [3]int{0, 1, 3})}},
			want:  []Via{{X: 0, Y: 1, Net: "X"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectVias(tt.paths)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DetectVias() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDetectViasCountMatchesLayerChanges(t *testing.T) {
	layers := []int{1, 1, 2, 2, 1, 2, 2, 2, 1, 1}
	p := NetPath{Net: "N"}
	for i, l := range layers {
		p.Points = append(p.Points, Point{Net: "N", X: i % 10, Y: i / 10, Layer: l})
	}

	want := 0
	for i := 1; i < len(layers); i++ {
		if layers[i] != layers[i-1] {
			want++
		}
	}

	vias := DetectVias([]NetPath{p})
	if len(vias) != want {
		t.Fatalf("len(vias) = %d, want %d", len(vias), want)
	}
	j := 0
	for i := 1; i < len(layers); i++ {
		if layers[i] == layers[i-1] {
			continue
		}
		if !vias[j].At(p.Points[i].X, p.Points[i].Y) {
			t.Errorf("vias[%d] = %v, want later point %v", j, vias[j], p.Points[i])
		}
		j++
	}
}

func TestDetectViasIdempotent(t *testing.T) {
	table := NewTable(append(
		pts("A", [3]int{0, 0, 1}, [3]int{0, 1, 2}, [3]int{1, 1, 1}),
		pts("B", [3]int{5, 5, 2}, [3]int{5, 6, 1})...,
	))
	paths := table.Paths()

	first := DetectVias(paths)
	second := DetectVias(paths)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}
