// Package config loads figure settings from a TOML file.
//
// A configuration file overrides any subset of the default style:
//
//	grid_size = 20
//
//	[titles]
//	combined = "Final routing"
//
//	[colors]
//	palette = ["#e41a1c", "#377eb8", "#4daf4a"]
//	layer2 = "#ff00ff"
//	background = "#fafafa"
//
//	[markers]
//	via_size = 18
//
// Keys that are not set keep their default values. Unknown keys and
// malformed colors are rejected with [errors.ErrCodeInvalidConfig].
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/routeviz/pkg/errors"
	"github.com/matzehuels/routeviz/pkg/plot"
	"github.com/matzehuels/routeviz/pkg/routing"
)

const (
	appName  = "routeviz"
	fileName = "config.toml"
)

// Config is the on-disk configuration.
type Config struct {
	GridSize int     `toml:"grid_size"`
	Titles   Titles  `toml:"titles"`
	Figure   Figure  `toml:"figure"`
	Colors   Colors  `toml:"colors"`
	Markers  Markers `toml:"markers"`
}

// Titles holds figure, panel and legend text.
type Titles struct {
	Layers   string `toml:"layers"`
	Layer1   string `toml:"layer1"`
	Layer2   string `toml:"layer2"`
	Combined string `toml:"combined"`
	Via      string `toml:"via"`
}

// Figure holds canvas sizes in pixels.
type Figure struct {
	LayersWidth    float64 `toml:"layers_width"`
	LayersHeight   float64 `toml:"layers_height"`
	CombinedWidth  float64 `toml:"combined_width"`
	CombinedHeight float64 `toml:"combined_height"`
	LineWidth      float64 `toml:"line_width"`
}

// Colors holds #rrggbb colors.
type Colors struct {
	Palette    []string `toml:"palette"`
	Layer1     string   `toml:"layer1"`
	Layer2     string   `toml:"layer2"`
	Start      string   `toml:"start"`
	End        string   `toml:"end"`
	Via        string   `toml:"via"`
	Background string   `toml:"background"`
}

// Markers holds marker sizes in pixels.
type Markers struct {
	PointSize float64 `toml:"point_size"`
	ViaSize   float64 `toml:"via_size"`
}

// Default returns the configuration matching [plot.DefaultStyle].
func Default() *Config {
	st := plot.DefaultStyle()
	return &Config{
		GridSize: st.Grid,
		Titles: Titles{
			Layers:   st.LayersTitle,
			Layer1:   st.LayerTitles[routing.Layer1],
			Layer2:   st.LayerTitles[routing.Layer2],
			Combined: st.CombinedTitle,
			Via:      st.ViaLabel,
		},
		Figure: Figure{
			LayersWidth:    st.LayersWidth,
			LayersHeight:   st.LayersHeight,
			CombinedWidth:  st.CombinedWidth,
			CombinedHeight: st.CombinedHeight,
			LineWidth:      st.LineWidth,
		},
		Colors: Colors{
			Palette:    st.Palette,
			Layer1:     st.LayerColors[routing.Layer1],
			Layer2:     st.LayerColors[routing.Layer2],
			Start:      st.StartColor,
			End:        st.EndColor,
			Via:        st.ViaColor,
			Background: st.Background,
		},
		Markers: Markers{
			PointSize: st.PointSize,
			ViaSize:   st.ViaSize,
		},
	}
}

// Load reads the file at path on top of [Default] and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key(s): %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads the explicit path when set, otherwise the discovered user
// configuration, otherwise the defaults. It returns the path that was read,
// or "" for defaults.
func Resolve(explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		path = Discover()
	}
	if path == "" {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// Discover returns the user configuration file if one exists:
// $XDG_CONFIG_HOME/routeviz/config.toml, else ~/.config/routeviz/config.toml.
func Discover() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, fileName)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return ""
	}
	return path
}

func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Validate checks sizes and colors and normalises colors to lower-case
// #rrggbb.
func (c *Config) Validate() error {
	if c.GridSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid_size must be positive, got %d", c.GridSize)
	}
	for name, v := range map[string]float64{
		"figure.layers_width":    c.Figure.LayersWidth,
		"figure.layers_height":   c.Figure.LayersHeight,
		"figure.combined_width":  c.Figure.CombinedWidth,
		"figure.combined_height": c.Figure.CombinedHeight,
		"figure.line_width":      c.Figure.LineWidth,
		"markers.point_size":     c.Markers.PointSize,
		"markers.via_size":       c.Markers.ViaSize,
	} {
		if v <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %g", name, v)
		}
	}

	if len(c.Colors.Palette) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "colors.palette must not be empty")
	}
	palette := make([]string, len(c.Colors.Palette))
	for i, s := range c.Colors.Palette {
		hex, err := normalizeColor(s)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "colors.palette[%d]", i)
		}
		palette[i] = hex
	}
	c.Colors.Palette = palette

	for _, f := range []struct {
		name string
		val  *string
	}{
		{"colors.layer1", &c.Colors.Layer1},
		{"colors.layer2", &c.Colors.Layer2},
		{"colors.start", &c.Colors.Start},
		{"colors.end", &c.Colors.End},
		{"colors.via", &c.Colors.Via},
		{"colors.background", &c.Colors.Background},
	} {
		hex, err := normalizeColor(*f.val)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", f.name)
		}
		*f.val = hex
	}
	return nil
}

func normalizeColor(s string) (string, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// Style converts the configuration to a figure style.
func (c *Config) Style() plot.Style {
	st := plot.DefaultStyle()
	st.Grid = c.GridSize

	st.LayersTitle = c.Titles.Layers
	st.LayerTitles = map[int]string{routing.Layer1: c.Titles.Layer1, routing.Layer2: c.Titles.Layer2}
	st.CombinedTitle = c.Titles.Combined
	st.ViaLabel = c.Titles.Via

	st.LayersWidth = c.Figure.LayersWidth
	st.LayersHeight = c.Figure.LayersHeight
	st.CombinedWidth = c.Figure.CombinedWidth
	st.CombinedHeight = c.Figure.CombinedHeight
	st.LineWidth = c.Figure.LineWidth

	st.Palette = append([]string(nil), c.Colors.Palette...)
	st.LayerColors = map[int]string{routing.Layer1: c.Colors.Layer1, routing.Layer2: c.Colors.Layer2}
	st.StartColor = c.Colors.Start
	st.EndColor = c.Colors.End
	st.ViaColor = c.Colors.Via
	st.Background = c.Colors.Background

	st.PointSize = c.Markers.PointSize
	st.ViaSize = c.Markers.ViaSize
	return st
}
