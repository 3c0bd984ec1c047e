package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/routeviz/internal/server"
	"github.com/matzehuels/routeviz/pkg/pipeline"
)

// shutdownGrace bounds how long in-flight requests may run after Ctrl-C.
const shutdownGrace = 5 * time.Second

// serveCommand creates the serve command that publishes the figures over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, configPath, formatsStr string
	var scale float64

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve the routing plots over HTTP",
		Long: `Serve renders every view once and serves the results until interrupted:

  /                        page with both views
  /plots/{view}.{format}   a single figure, e.g. /plots/combined.png
  /healthz                 liveness check`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseList(formatsStr, []string{pipeline.FormatSVG, pipeline.FormatPNG})
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), args[0], configPath, addr, formats, scale)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "formats to serve (comma-separated, default svg,png)")
	cmd.Flags().Float64Var(&scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	addConfigFlag(cmd, &configPath)
	return cmd
}

func (c *CLI) runServe(ctx context.Context, input, configPath, addr string, formats []string, scale float64) error {
	opts, err := c.baseOptions(input, configPath)
	if err != nil {
		return err
	}
	opts.Views = append([]string(nil), pipeline.Views...)
	opts.Formats = formats
	opts.Scale = scale

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}

	srv := server.New(addr, server.NewRouter(server.Site{
		Source:    input,
		Views:     opts.Views,
		Artifacts: result.Artifacts,
	}), c.Logger)

	printSuccess("Rendered %d figure(s) from %s", len(result.Artifacts), input)
	printInfo("Serving on %s", StyleLink.Render("http://"+srv.Addr()+"/"))
	return srv.Run(ctx, shutdownGrace)
}
