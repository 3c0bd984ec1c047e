package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/routeviz/pkg/pipeline"
	"github.com/matzehuels/routeviz/pkg/plot"
	"github.com/matzehuels/routeviz/pkg/plot/sink"
)

// Viewer styles
var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
	viewerHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// viewCommand creates the interactive terminal viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var configPath, viewsStr string

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse the routing plots in the terminal",
		Long: `View shows the layer and combined plots as character grids. Tab switches
between views, n and p focus the next or previous net, a shows all nets
again and q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			views := parseViews(viewsStr)
			if err := pipeline.ValidateViews(views); err != nil {
				return err
			}
			return c.runView(cmd.Context(), args[0], configPath, views)
		},
	}

	cmd.Flags().StringVarP(&viewsStr, "view", "t", "", "view(s) to browse: layers, combined (comma-separated, default both)")
	addConfigFlag(cmd, &configPath)
	return cmd
}

func (c *CLI) runView(ctx context.Context, input, configPath string, views []string) error {
	opts, err := c.baseOptions(input, configPath)
	if err != nil {
		return err
	}
	opts.Views = views

	result, err := c.newRunner().Prepare(ctx, opts)
	if err != nil {
		return err
	}

	figures := make([]plot.Figure, len(views))
	for i, view := range views {
		fig, err := pipeline.BuildFigure(view, result.Paths, result.Vias, *opts.Style)
		if err != nil {
			return err
		}
		figures[i] = fig
	}

	nets := make([]string, len(result.Paths))
	for i, p := range result.Paths {
		nets[i] = p.Net
	}

	m := newViewerModel(views, figures, nets, lipgloss.DefaultRenderer())
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// viewerModel - Interactive figure viewer
// =============================================================================

// viewerModel is the bubbletea model of the view command.
type viewerModel struct {
	views    []string
	figures  []plot.Figure
	nets     []string
	current  int
	focus    int // index into nets, -1 for none
	renderer *lipgloss.Renderer
}

func newViewerModel(views []string, figures []plot.Figure, nets []string, r *lipgloss.Renderer) viewerModel {
	return viewerModel{
		views:    views,
		figures:  figures,
		nets:     nets,
		focus:    -1,
		renderer: r,
	}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "right", "l":
		if len(m.views) > 0 {
			m.current = (m.current + 1) % len(m.views)
		}
	case "shift+tab", "left", "h":
		if len(m.views) > 0 {
			m.current = (m.current + len(m.views) - 1) % len(m.views)
		}
	case "n", "down", "j":
		if len(m.nets) > 0 {
			m.focus = (m.focus + 1) % len(m.nets)
		}
	case "p", "up", "k":
		if len(m.nets) > 0 {
			if m.focus <= 0 {
				m.focus = len(m.nets) - 1
			} else {
				m.focus--
			}
		}
	case "a":
		m.focus = -1
	}
	return m, nil
}

// focusedNet returns the highlighted net, or "" when all nets are shown.
func (m viewerModel) focusedNet() string {
	if m.focus < 0 || m.focus >= len(m.nets) {
		return ""
	}
	return m.nets[m.focus]
}

func (m viewerModel) View() string {
	var b strings.Builder

	tabs := make([]string, len(m.views))
	for i, v := range m.views {
		if i == m.current {
			tabs[i] = tabActiveStyle.Render(v)
		} else {
			tabs[i] = tabInactiveStyle.Render(v)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	if len(m.figures) > 0 {
		opts := []sink.TextOption{sink.WithRenderer(m.renderer)}
		if net := m.focusedNet(); net != "" {
			opts = append(opts, sink.WithHighlight(net))
		}
		b.WriteString(string(sink.RenderText(m.figures[m.current], opts...)))
		b.WriteString("\n")
	}

	status := "all nets"
	if net := m.focusedNet(); net != "" {
		status = fmt.Sprintf("net %s (%d/%d)", net, m.focus+1, len(m.nets))
	}
	b.WriteString(viewerHelpStyle.Render(status + "  ·  tab view  n/p net  a all  q quit"))
	return b.String()
}
