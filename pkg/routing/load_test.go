package routing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/routeviz/pkg/errors"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Point
	}{
		{
			name:  "canonical header",
			input: "net,x,y,layer\nnet1,0,0,1\nnet1,0,1,2\n",
			want:  []Point{{Net: "net1", X: 0, Y: 0, Layer: 1}, {Net: "net1", X: 0, Y: 1, Layer: 2}},
		},
		{
			name:  "column order irrelevant",
			input: "layer,y,x,net\n2,3,4,a\n",
			want:  []Point{{Net: "a", X: 4, Y: 3, Layer: 2}},
		},
		{
			name:  "extra columns and whitespace",
			input: "net, x, y, layer, cost\n n1 , 1, 2, 1, 99\n",
			want:  []Point{{Net: "n1", X: 1, Y: 2, Layer: 1}},
		},
		{
			name:  "layer outside range accepted",
			input: "net,x,y,layer\nn,0,0,3\n",
			want:  []Point{{Net: "n", X: 0, Y: 0, Layer: 3}},
		},
		{
			name:  "header only",
			input: "net,x,y,layer\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Read(strings.NewReader(tt.input), ReadOptions{})
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, table.Points); diff != "" {
				t.Errorf("Read() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty", "", "empty file"},
		{"missing layer column", "net,x,y\nn,0,0\n", "layer"},
		{"missing several columns", "net\nn\n", "x, y, layer"},
		{"non-integer cell", "net,x,y,layer\nn,0,zero,1\n", "line 2"},
		{"wrong field count", "net,x,y,layer\nn,0,0\n", "wrong number of fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), ReadOptions{Name: "test.csv"})
			if err == nil {
				t.Fatal("Read() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeLoad) {
				t.Errorf("Read() error code = %s, want %s", errors.GetCode(err), errors.ErrCodeLoad)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Read() error = %q, want it to mention %q", err, tt.wantMsg)
			}
			if n := strings.Count(err.Error(), string(errors.ErrCodeLoad)); n != 1 {
				t.Errorf("Read() error = %q carries the code %d times, want once", err, n)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "routed_output.csv")
	if err := os.WriteFile(csvPath, []byte("net,x,y,layer\nnet1,0,0,1\nnet2,5,5,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := Load(csvPath)
	if err != nil {
		t.Fatalf("Load(csv) error: %v", err)
	}
	if diff := cmp.Diff([]string{"net1", "net2"}, table.Nets); diff != "" {
		t.Errorf("Nets mismatch (-want +got):\n%s", diff)
	}

	tsvPath := filepath.Join(dir, "routed_output.tsv")
	if err := os.WriteFile(tsvPath, []byte("net\tx\ty\tlayer\nnet1\t1\t2\t1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err = Load(tsvPath)
	if err != nil {
		t.Fatalf("Load(tsv) error: %v", err)
	}
	if len(table.Points) != 1 || table.Points[0].Y != 2 {
		t.Errorf("Load(tsv) points = %v", table.Points)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, errors.ErrCodeLoad) {
		t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeLoad)
	}
}
