package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/routeviz/pkg/pipeline"
	"github.com/matzehuels/routeviz/pkg/routing"
)

// statsCommand creates the stats command that summarizes net paths.
func (c *CLI) statsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Summarize nets, vias and wirelength",
		Long: `Stats prints one row per net (points, segments, points per layer, vias and
Manhattan wirelength) followed by totals and the mean and standard deviation
of wirelength across nets.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
	return cmd
}

func (c *CLI) runStats(ctx context.Context, w io.Writer, input string) error {
	result, err := c.newRunner().Prepare(ctx, c.prepareOptions(input))
	if err != nil {
		return err
	}
	printSummary(w, routing.Summarize(result.Paths, result.Vias))
	return nil
}

// prepareOptions returns options for the load and detect stages only.
func (c *CLI) prepareOptions(input string) pipeline.Options {
	return pipeline.Options{Source: input, Logger: c.Logger}
}

// printSummary writes the per-net table and the aggregate values.
func printSummary(w io.Writer, s routing.Summary) {
	rows := make([][]string, len(s.Nets))
	for i, n := range s.Nets {
		rows[i] = []string{
			n.Net,
			strconv.Itoa(n.Points),
			strconv.Itoa(n.Segments),
			strconv.Itoa(n.PerLayer[routing.Layer1]),
			strconv.Itoa(n.PerLayer[routing.Layer2]),
			strconv.Itoa(n.Vias),
			strconv.Itoa(n.Wirelength),
		}
	}
	fmt.Fprintln(w, newTable(
		[]string{"Net", "Points", "Segments", "L1", "L2", "Vias", "Length"},
		rows, 1, 2, 3, 4, 5, 6,
	).Render())

	fprintKeyValue(w, "Nets", strconv.Itoa(len(s.Nets)))
	fprintKeyValue(w, "Points", strconv.Itoa(s.TotalPoints))
	fprintKeyValue(w, "Vias", strconv.Itoa(s.TotalVias))
	if s.DuplicateVias > 0 {
		fprintKeyValue(w, "Shared via cells", strconv.Itoa(s.DuplicateVias))
	}
	fprintKeyValue(w, "Wirelength", strconv.Itoa(s.TotalLength))
	fprintKeyValue(w, "Mean length", fmt.Sprintf("%.2f", s.MeanLength))
	fprintKeyValue(w, "Std dev length", fmt.Sprintf("%.2f", s.StdDevLength))
	fprintKeyValue(w, "Layers", formatLayers(s.LayersObserved))
}

// formatLayers lists layers in ascending order.
func formatLayers(layers []int) string {
	sorted := append([]int(nil), layers...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, l := range sorted {
		parts[i] = strconv.Itoa(l)
	}
	return strings.Join(parts, ", ")
}
