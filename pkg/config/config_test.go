package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/routeviz/pkg/errors"
	"github.com/matzehuels/routeviz/pkg/plot"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultMatchesStyle(t *testing.T) {
	if diff := cmp.Diff(plot.DefaultStyle(), Default().Style()); diff != "" {
		t.Errorf("Default().Style() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
grid_size = 20

[titles]
combined = "Final routing"

[colors]
palette = ["#E41A1C", "#377eb8"]
layer2 = "#f0f"
background = "#FAFAFA"

[markers]
via_size = 18.0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	st := cfg.Style()

	want := plot.DefaultStyle()
	want.Grid = 20
	want.CombinedTitle = "Final routing"
	want.Palette = []string{"#e41a1c", "#377eb8"}
	want.LayerColors[2] = "#ff00ff"
	want.Background = "#fafafa"
	want.ViaSize = 18

	if diff := cmp.Diff(want, st); diff != "" {
		t.Errorf("Style() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `grid_size = `},
		{"unknown key", `grid = 5`},
		{"unknown table key", "[colors]\ngrid = \"#ffffff\""},
		{"bad color", "[colors]\nstart = \"green\""},
		{"bad palette entry", "[colors]\npalette = [\"#000000\", \"#zzzzzz\"]"},
		{"empty palette", "[colors]\npalette = []"},
		{"non-positive grid", `grid_size = 0`},
		{"non-positive size", "[figure]\nlayers_width = -1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestResolve(t *testing.T) {
	t.Run("defaults when nothing is found", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		cfg, path, err := Resolve("")
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if path != "" {
			t.Errorf("path = %q, want empty", path)
		}
		if cfg.GridSize != 10 {
			t.Errorf("GridSize = %d, want 10", cfg.GridSize)
		}
	})

	t.Run("discovered file", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		dir := filepath.Join(home, appName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		want := filepath.Join(dir, fileName)
		if err := os.WriteFile(want, []byte("grid_size = 12\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, path, err := Resolve("")
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if path != want {
			t.Errorf("path = %q, want %q", path, want)
		}
		if cfg.GridSize != 12 {
			t.Errorf("GridSize = %d, want 12", cfg.GridSize)
		}
	})

	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		explicit := writeConfig(t, "grid_size = 7\n")
		cfg, path, err := Resolve(explicit)
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if path != explicit || cfg.GridSize != 7 {
			t.Errorf("Resolve() = (%d, %q), want (7, %q)", cfg.GridSize, path, explicit)
		}
	})
}

func TestConfigDirFallback(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", appName); dir != want {
		t.Errorf("configDir() = %q, want %q", dir, want)
	}
}
