// Package plot turns routed nets into renderer-agnostic grid figures.
//
// # Overview
//
// A [Figure] is a list of [Panel]s, each a square grid with a title and an
// ordered list of [Series]. A series is either a polyline with circle
// markers (a net path or path segment) or a set of stand-alone markers
// (start, end and via markers). Series are kept in draw order; the legend of
// a panel is the labelled series in that order.
//
// Two builders produce the figures of a run:
//
//   - [Layers]: one panel per routing layer showing each net restricted to
//     that layer, with per-layer start and end markers
//   - [Combined]: one panel with each net's full path, every segment colored
//     by the layer of its later point
//
// Both overlay every via on every panel. Only the first via drawn carries
// the "Via" legend label.
//
// # Coordinates
//
// Grid rows and columns are transposed on screen: the horizontal axis shows
// the column (the data's y) and the vertical axis the row (the data's x),
// with row 0 at the top. Series points are stored already transposed, so
// [Point.X] is the column and [Point.Y] the row. [Frames] maps them to
// pixels for raster and vector sinks.
package plot
