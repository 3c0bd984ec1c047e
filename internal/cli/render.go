package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/routeviz/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple outputs)
	views   []string // views: "layers", "combined"
	formats []string // output formats: "svg", "png", "pdf", "text", "dot", "graph"
	scale   float64  // PNG scale factor
	config  string   // TOML style configuration
}

// outputFile is one file written by the render command.
type outputFile struct {
	key  pipeline.ArtifactKey
	path string
}

// renderCommand creates the render command for generating visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var viewsStr, formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a routing table to layer and combined plots",
		Long: `Render reads a routing table (CSV or TSV with net, x, y and layer columns)
and draws the per-layer and combined views.

Files are named <base>_<view>.<ext>, where base is the --output path without
its extension (or the input path). With a single view and format the
--output path is used as given.`,
		Example: `  routeviz render routes.csv
  routeviz render routes.csv -t combined -f png --scale 3 -o final.png
  routeviz render routes.csv -f svg,text,dot -o out/routes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.views = parseViews(viewsStr)
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateViews(opts.views); err != nil {
				return err
			}
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single view/format) or base path (multiple)")
	cmd.Flags().StringVarP(&viewsStr, "view", "t", "", "view(s): layers, combined (comma-separated, default both)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, text, dot, graph (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	addConfigFlag(cmd, &opts.config)

	return cmd
}

// runRender executes the pipeline and writes one file per view and format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debug("rendering", "input", input, "views", opts.views, "formats", opts.formats)
	prog := newProgress(logger, input)

	popts, err := c.baseOptions(input, opts.config)
	if err != nil {
		return err
	}
	popts.Views = opts.views
	popts.Formats = opts.formats
	popts.Scale = opts.scale

	result, err := c.newRunner().Execute(ctx, popts)
	if err != nil {
		return err
	}

	files := outputFiles(input, opts.output, opts.views, opts.formats)
	for _, f := range files {
		data, ok := result.Artifacts[f.key]
		if !ok {
			return fmt.Errorf("missing artifact %s", f.key)
		}
		if err := writeFile(f.path, data); err != nil {
			return err
		}
		logger.Debugf("Wrote %s: %d bytes", f.path, len(data))
	}

	prog.done("Rendered", "files", len(files), "vias", result.Stats.ViaCount)
	for _, f := range files {
		printFile(f.path)
	}
	return nil
}

// outputFiles maps every requested view and format to its output path.
func outputFiles(input, output string, views, formats []string) []outputFile {
	if len(views) == 1 && len(formats) == 1 && output != "" {
		key := pipeline.ArtifactKey{View: views[0], Format: formats[0]}
		return []outputFile{{key: key, path: output}}
	}

	base := basePath(output, input)
	files := make([]outputFile, 0, len(views)*len(formats))
	for _, view := range views {
		for _, format := range formats {
			files = append(files, outputFile{
				key:  pipeline.ArtifactKey{View: view, Format: format},
				path: fmt.Sprintf("%s_%s.%s", base, view, pipeline.FileExtension(format)),
			})
		}
	}
	return files
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has an output extension (.svg, .txt, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	for _, format := range pipeline.Formats {
		if ext == pipeline.FileExtension(format) {
			return strings.TrimSuffix(output, "."+ext)
		}
	}
	return output
}

// writeFile writes data to path, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
