// Package sink encodes [plot.Figure] values into output formats.
//
// # Formats
//
//   - [RenderSVG]: hand-built SVG with grid, ticks, titles and legends
//   - [RenderPNG]: rasterised with fogleman/gg at a configurable scale
//   - [RenderPDF]: SVG converted by rsvg-convert (requires librsvg)
//   - [RenderText]: character grid, one block per panel, styled with lipgloss
//   - [ToDOT] / [RenderGraph]: Graphviz source with pinned node positions,
//     rendered in-process to SVG by go-graphviz
//
// All geometric sinks share [plot.Frames] so every format places grid
// cells, markers and legends identically.
//
// [plot.Figure]: github.com/matzehuels/routeviz/pkg/plot
// [plot.Frames]: github.com/matzehuels/routeviz/pkg/plot
package sink
