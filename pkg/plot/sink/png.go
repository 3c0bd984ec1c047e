package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/routeviz/pkg/plot"
)

// DefaultPNGScale renders PNGs at twice the figure size.
const DefaultPNGScale = 2.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background string
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithPNGBackground sets the canvas fill color.
func WithPNGBackground(color string) PNGOption {
	return func(r *pngRenderer) { r.background = color }
}

var (
	goRegular     *truetype.Font
	goRegularErr  error
	goRegularOnce sync.Once
)

func regularFont() (*truetype.Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = truetype.Parse(goregular.TTF)
	})
	return goRegular, goRegularErr
}

// painter draws in figure units on a context scaled by a constant factor.
// Glyphs are not affected by gg's transform matrix, so scaling is applied
// to every coordinate explicitly instead.
type painter struct {
	dc    *gg.Context
	scale float64
	font  *truetype.Font
	faces map[float64]font.Face
}

func (p *painter) setColor(hex string) {
	p.dc.SetColor(parseColor(hex))
}

func (p *painter) line(x1, y1, x2, y2, width float64) {
	p.dc.SetLineWidth(width * p.scale)
	p.dc.DrawLine(x1*p.scale, y1*p.scale, x2*p.scale, y2*p.scale)
	p.dc.Stroke()
}

func (p *painter) polyline(pts [][2]float64, width float64) {
	if len(pts) < 2 {
		return
	}
	p.dc.SetLineWidth(width * p.scale)
	p.dc.SetLineJoin(gg.LineJoinRound)
	p.dc.MoveTo(pts[0][0]*p.scale, pts[0][1]*p.scale)
	for _, pt := range pts[1:] {
		p.dc.LineTo(pt[0]*p.scale, pt[1]*p.scale)
	}
	p.dc.Stroke()
}

func (p *painter) marker(m plot.Marker, x, y, size float64) {
	switch m {
	case plot.MarkerSquare:
		p.dc.DrawRectangle((x-size/2)*p.scale, (y-size/2)*p.scale, size*p.scale, size*p.scale)
	default:
		p.dc.DrawCircle(x*p.scale, y*p.scale, size/2*p.scale)
	}
	p.dc.Fill()
}

func (p *painter) rect(x, y, w, h float64, fill, stroke string) {
	p.dc.DrawRectangle(x*p.scale, y*p.scale, w*p.scale, h*p.scale)
	if fill != "" {
		p.setColor(fill)
		if stroke != "" {
			p.dc.FillPreserve()
		} else {
			p.dc.Fill()
		}
	}
	if stroke != "" {
		p.setColor(stroke)
		p.dc.SetLineWidth(0.8 * p.scale)
		p.dc.Stroke()
	}
}

// clip restricts drawing to the rectangle until dc.ResetClip.
func (p *painter) clip(x, y, w, h float64) {
	p.dc.DrawRectangle(x*p.scale, y*p.scale, w*p.scale, h*p.scale)
	p.dc.Clip()
}

func (p *painter) face(size float64) font.Face {
	if f, ok := p.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(p.font, &truetype.Options{Size: size * p.scale, DPI: 72, Hinting: font.HintingFull})
	p.faces[size] = f
	return f
}

func (p *painter) text(s string, size, x, y, ax, ay float64) {
	p.dc.SetFontFace(p.face(size))
	p.dc.DrawStringAnchored(s, x*p.scale, y*p.scale, ax, ay)
}

func (p *painter) textWidth(size float64) func(string) float64 {
	return func(s string) float64 {
		p.dc.SetFontFace(p.face(size))
		w, _ := p.dc.MeasureString(s)
		return w / p.scale
	}
}

// RenderPNG rasterises the figure.
func RenderPNG(fig plot.Figure, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultPNGScale, background: "#ffffff"}
	for _, opt := range opts {
		opt(&r)
	}

	f, err := regularFont()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	w, h := int(fig.Width*r.scale+0.5), int(fig.Height*r.scale+0.5)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid canvas size %.0fx%.0f", fig.Width, fig.Height)
	}
	p := &painter{dc: gg.NewContext(w, h), scale: r.scale, font: f, faces: make(map[float64]font.Face)}

	if r.background != "" {
		p.setColor(r.background)
		p.dc.Clear()
	}
	if fig.Title != "" {
		p.setColor("#000000")
		p.text(fig.Title, 16, fig.Width/2, plot.FigureTitleHeight*0.65, 0.5, 0)
	}

	frames := plot.Frames(fig)
	for i, panel := range fig.Panels {
		drawPNGPanel(p, panel, frames[i], fig.LineWidth)
	}

	var buf bytes.Buffer
	if err := p.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawPNGPanel(p *painter, panel plot.Panel, f plot.Frame, lineWidth float64) {
	p.setColor("#000000")
	if panel.Title != "" {
		p.text(panel.Title, 13, f.Left+f.Side/2, f.Top-10, 0.5, 0)
	}

	for i := 0; i < f.Grid; i++ {
		t := f.Tick(i)
		p.setColor(gridLineColor)
		p.line(f.Left+t, f.Top, f.Left+t, f.Bottom(), 0.8)
		p.line(f.Left, f.Top+t, f.Right(), f.Top+t, 0.8)

		p.setColor("#000000")
		label := fmt.Sprint(i)
		p.text(label, 10, f.Left+t, f.Bottom()+14, 0.5, 0)
		p.text(label, 10, f.Left-6, f.Top+t+3.5, 1, 0)
	}
	p.rect(f.Left, f.Top, f.Side, f.Side, "", "#000000")

	p.clip(f.Left, f.Top, f.Side, f.Side)
	for _, s := range panel.Series {
		p.setColor(s.Color)
		if s.Line && len(s.Points) > 1 {
			pts := make([][2]float64, len(s.Points))
			for i, pt := range s.Points {
				x, y := f.Map(pt)
				pts[i] = [2]float64{x, y}
			}
			p.polyline(pts, lineWidth)
		}
		for _, pt := range s.Points {
			x, y := f.Map(pt)
			p.marker(s.Marker, x, y, s.Size)
		}
	}

	p.dc.ResetClip()

	drawPNGLegend(p, panel.Legend(), f, lineWidth)
}

func drawPNGLegend(p *painter, entries []plot.LegendEntry, f plot.Frame, lineWidth float64) {
	if len(entries) == 0 {
		return
	}
	x, y, w, h := legendBox(entries, f, p.textWidth(11))
	p.rect(x, y, w, h, "#ffffff", "#cccccc")
	for i, e := range entries {
		cy := y + legendPad + legendRowHeight*float64(i) + legendRowHeight/2 - 2
		sx := x + legendPad
		p.setColor(e.Color)
		if e.Line {
			p.line(sx, cy, sx+legendSwatch, cy, lineWidth)
		}
		p.marker(e.Marker, sx+legendSwatch/2, cy, legendMarkerSize(e))
		p.setColor("#000000")
		p.text(e.Label, 11, sx+legendSwatch+legendPad, cy, 0, 0.35)
	}
}

// parseColor converts a #rrggbb string, falling back to black.
func parseColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Black
	}
	return c
}
