package routing

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	table := NewTable(append(
		pts("A", [3]int{0, 0, 1}, [3]int{0, 1, 1}, [3]int{0, 2, 2}, [3]int{1, 2, 2}),
		pts("B", [3]int{0, 2, 1})...,
	))
	paths := table.Paths()
	vias := DetectVias(paths)
	s := Summarize(paths, vias)

	if len(s.Nets) != 2 {
		t.Fatalf("len(Nets) = %d, want 2", len(s.Nets))
	}

	a := s.Nets[0]
	if a.Points != 4 || a.Segments != 3 || a.Vias != 1 || a.Wirelength != 3 {
		t.Errorf("A stats = %+v", a)
	}
	if a.PerLayer[1] != 2 || a.PerLayer[2] != 2 {
		t.Errorf("A PerLayer = %v, want 2/2", a.PerLayer)
	}

	b := s.Nets[1]
	if b.Points != 1 || b.Segments != 0 || b.Vias != 0 || b.Wirelength != 0 {
		t.Errorf("B stats = %+v", b)
	}

	if s.TotalPoints != 5 || s.TotalVias != 1 || s.TotalLength != 3 {
		t.Errorf("totals = %d points, %d vias, %d length", s.TotalPoints, s.TotalVias, s.TotalLength)
	}
	if s.MeanLength != 1.5 {
		t.Errorf("MeanLength = %v, want 1.5", s.MeanLength)
	}
	// sample standard deviation of {3, 0}
	if want := math.Sqrt(4.5); math.Abs(s.StdDevLength-want) > 1e-9 {
		t.Errorf("StdDevLength = %v, want %v", s.StdDevLength, want)
	}
}

func TestSummarizeDuplicateVias(t *testing.T) {
	paths := []NetPath{
		{Net: "A", Points: pts("A", [3]int{3, 2, 1}, [3]int{3, 3, 2})},
		{Net: "B", Points: pts("B", [3]int{2, 3, 2}, [3]int{3, 3, 1})},
	}
	s := Summarize(paths, DetectVias(paths))
	if s.TotalVias != 2 || s.DuplicateVias != 1 {
		t.Errorf("TotalVias = %d, DuplicateVias = %d; want 2, 1", s.TotalVias, s.DuplicateVias)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)
	if s.MeanLength != 0 || s.StdDevLength != 0 || len(s.Nets) != 0 {
		t.Errorf("Summarize(nil) = %+v", s)
	}
}
