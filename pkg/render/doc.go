// Package render provides format conversion through external tools.
//
// [ToPDF] converts an SVG document to PDF by piping it through rsvg-convert
// (from librsvg). The PNG and SVG encoders live in the in-process
// [plot/sink] package; PDF is the one format that relies on an external
// binary.
//
//	svg := sink.RenderSVG(fig)
//	pdf, err := render.ToPDF(svg)
//
// When rsvg-convert is not installed, ToPDF returns an
// [errors.ErrCodeUnsupported] error with installation hints.
//
// [plot/sink]: github.com/matzehuels/routeviz/pkg/plot/sink
// [errors.ErrCodeUnsupported]: github.com/matzehuels/routeviz/pkg/errors
package render
