package routing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/routeviz/pkg/errors"
)

// Required column names of the routed-point table.
const (
	ColumnNet   = "net"
	ColumnX     = "x"
	ColumnY     = "y"
	ColumnLayer = "layer"
)

var requiredColumns = []string{ColumnNet, ColumnX, ColumnY, ColumnLayer}

// ReadOptions configures [Read].
type ReadOptions struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// Name identifies the source in error messages.
	Name string
}

// Load reads a routed-point table from a file. Files ending in .tsv are read
// tab-separated, everything else comma-separated.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLoad, err, "open %s", path)
	}
	defer f.Close()

	opts := ReadOptions{Name: path}
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		opts.Comma = '\t'
	}
	return Read(f, opts)
}

// Read parses a routed-point table with a header row. The columns net, x, y
// and layer must be present; their order is irrelevant and extra columns are
// ignored. Layer values are not range-checked here.
func Read(r io.Reader, opts ReadOptions) (*Table, error) {
	name := opts.Name
	if name == "" {
		name = "input"
	}

	cr := csv.NewReader(r)
	cr.Comma = ','
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeLoad, "%s: empty file, expected header %s", name, strings.Join(requiredColumns, ","))
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLoad, err, "%s: read header", name)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLoad, err, "%s", name)
	}

	var points []Point
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeLoad, err, "%s", name)
		}
		line, _ := cr.FieldPos(0)
		p, err := parseRow(rec, cols)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeLoad, err, "%s: line %d", name, line)
		}
		points = append(points, p)
	}
	return NewTable(points), nil
}

type columns struct {
	net, x, y, layer int
}

func columnIndex(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}
	return columns{
		net:   idx[ColumnNet],
		x:     idx[ColumnX],
		y:     idx[ColumnY],
		layer: idx[ColumnLayer],
	}, nil
}

func parseRow(rec []string, c columns) (Point, error) {
	x, err := parseInt(rec[c.x], ColumnX)
	if err != nil {
		return Point{}, err
	}
	y, err := parseInt(rec[c.y], ColumnY)
	if err != nil {
		return Point{}, err
	}
	layer, err := parseInt(rec[c.layer], ColumnLayer)
	if err != nil {
		return Point{}, err
	}
	return Point{Net: strings.TrimSpace(rec[c.net]), X: x, Y: y, Layer: layer}, nil
}

func parseInt(s, column string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not an integer", column, s)
	}
	return v, nil
}
