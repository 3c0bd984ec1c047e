package plot

import (
	"math"
	"testing"
)

func TestFrames(t *testing.T) {
	fig := Figure{
		Title:  "title",
		Width:  1200,
		Height: 600,
		Panels: []Panel{{Grid: 10}, {Grid: 10}},
	}
	frames := Frames(fig)
	if len(frames) != 2 {
		t.Fatalf("len(frames) = %d, want 2", len(frames))
	}

	for i, f := range frames {
		if f.Side <= 0 {
			t.Fatalf("frame %d: side = %v", i, f.Side)
		}
		if f.Left < f.PanelLeft || f.Right() > f.PanelLeft+f.PanelWidth {
			t.Errorf("frame %d: plot area [%v,%v] outside panel [%v,%v]",
				i, f.Left, f.Right(), f.PanelLeft, f.PanelLeft+f.PanelWidth)
		}
		if f.Top < FigureTitleHeight || f.Bottom() > fig.Height {
			t.Errorf("frame %d: plot area rows [%v,%v] outside canvas", i, f.Top, f.Bottom())
		}
	}
	if frames[1].Left <= frames[0].Right() {
		t.Error("panels overlap")
	}
}

func TestFrameMap(t *testing.T) {
	f := Frame{Left: 100, Top: 50, Side: 200, Grid: 10}

	tests := []struct {
		name   string
		p      Point
		wx, wy float64
	}{
		{"origin is top-left cell centre", Point{X: 0, Y: 0}, 110, 60},
		{"last cell", Point{X: 9, Y: 9}, 290, 240},
		{"lower limit", Point{X: -0.5, Y: -0.5}, 100, 50},
		{"upper limit", Point{X: 9.5, Y: 9.5}, 300, 250},
		{"row grows downwards", Point{X: 0, Y: 3}, 110, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := f.Map(tt.p)
			if math.Abs(x-tt.wx) > 1e-9 || math.Abs(y-tt.wy) > 1e-9 {
				t.Errorf("Map(%v) = (%v, %v), want (%v, %v)", tt.p, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestFramesEmpty(t *testing.T) {
	if frames := Frames(Figure{Width: 100, Height: 100}); frames != nil {
		t.Errorf("Frames(no panels) = %v, want nil", frames)
	}
}

func TestPanelInAxes(t *testing.T) {
	p := Panel{Grid: 10}
	tests := []struct {
		pt   Point
		want bool
	}{
		{Point{X: 0, Y: 0}, true},
		{Point{X: 9, Y: 9}, true},
		{Point{X: -0.5, Y: 9.5}, true},
		{Point{X: 14, Y: 0}, false},
		{Point{X: 0, Y: -1}, false},
	}
	for _, tt := range tests {
		if got := p.InAxes(tt.pt); got != tt.want {
			t.Errorf("InAxes(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}
}
