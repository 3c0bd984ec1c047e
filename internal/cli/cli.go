package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/routeviz/pkg/buildinfo"
	"github.com/matzehuels/routeviz/pkg/config"
	"github.com/matzehuels/routeviz/pkg/observability"
	"github.com/matzehuels/routeviz/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "routeviz"

	// defaultAddr is the listen address of the serve command.
	defaultAddr = "localhost:8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Routeviz visualizes two-layer maze routing results",
		Long:         `Routeviz is a CLI tool for visualizing the output of a two-layer grid router: per-layer net paths, vias, and a combined view of the final routing.`,
		Version:      buildinfo.Current().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := observability.NewLogHooks(c.Logger)
			observability.SetPipelineHooks(hooks)
			observability.SetServerHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viasCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// baseOptions resolves the configuration file and returns pipeline options
// for input carrying the configured style.
func (c *CLI) baseOptions(input, configPath string) (pipeline.Options, error) {
	cfg, path, err := config.Resolve(configPath)
	if err != nil {
		return pipeline.Options{}, err
	}
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	st := cfg.Style()
	opts := pipeline.Options{
		Source: input,
		Style:  &st,
		Logger: c.Logger,
	}
	opts.SetRenderDefaults()
	return opts, nil
}

// addConfigFlag registers the --config flag shared by all file commands.
func addConfigFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "config", "", "TOML style configuration (default: $XDG_CONFIG_HOME/routeviz/config.toml)")
}

// parseList splits a comma-separated flag value, dropping empty entries and
// surrounding spaces. It returns def when nothing remains.
func parseList(s string, def []string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), def...)
	}
	return out
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	return parseList(s, []string{pipeline.FormatSVG})
}

// parseViews parses the --view flag into a slice of views.
// If empty, defaults to every view.
func parseViews(s string) []string {
	return parseList(s, pipeline.Views)
}
