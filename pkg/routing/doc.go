// Package routing holds routed-net data for two-layer grid routing and the
// via detector that runs over it.
//
// # Overview
//
// A router writes one row per grid cell it occupies: the net name, the grid
// row (x), the grid column (y) and the routing layer (1 or 2). Rows of the
// same net appear in physical path order. This package reads that table,
// groups it into per-net paths and derives the vias, the cells where a net
// switches layer.
//
// # Basic Usage
//
//	t, err := routing.Load("routed_output.csv")
//	if err != nil {
//	    return err
//	}
//	paths := t.Paths()
//	vias := routing.DetectVias(paths)
//
// [Load] and [Read] return a [errors.ErrCodeLoad] error when the source is
// missing, unreadable or lacks one of the required columns.
//
// # Vias
//
// [DetectVias] compares consecutive points of each [NetPath] and reports the
// coordinate of the later point whenever the layer changes. Vias are never
// deduplicated: two nets switching layer on the same cell produce two
// entries, in net order then point order.
//
// # Statistics
//
// [Summarize] reports per-net point, segment, via and wirelength counts
// together with the mean and standard deviation of wirelength across nets.
//
// [errors.ErrCodeLoad]: github.com/matzehuels/routeviz/pkg/errors
package routing
