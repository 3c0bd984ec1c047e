package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/routeviz/pkg/errors"
	"github.com/matzehuels/routeviz/pkg/routing"
)

// viasCommand creates the vias command that lists detected layer transitions.
func (c *CLI) viasCommand() *cobra.Command {
	var net string
	cmd := &cobra.Command{
		Use:   "vias [file]",
		Short: "List the vias of a routing table",
		Long: `Vias prints every point where a net changes layer, in net order. A via
is reported at the coordinate of the point on the new layer. --net limits
the list to one net.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVias(cmd.Context(), cmd.OutOrStdout(), args[0], net)
		},
	}
	cmd.Flags().StringVar(&net, "net", "", "only list the vias of this net")
	return cmd
}

func (c *CLI) runVias(ctx context.Context, w io.Writer, input, net string) error {
	result, err := c.newRunner().Prepare(ctx, c.prepareOptions(input))
	if err != nil {
		return err
	}
	vias := result.Vias
	if net != "" {
		path, ok := result.Table.Path(net)
		if !ok {
			return errors.New(errors.ErrCodeInvalidInput, "net %q not found in %s", net, input)
		}
		vias = routing.DetectVias([]routing.NetPath{path})
	}
	printVias(w, vias)
	return nil
}

// printVias writes the via table followed by a count line.
func printVias(w io.Writer, vias []routing.Via) {
	if len(vias) == 0 {
		fmt.Fprintln(w, StyleDim.Render("no vias"))
		return
	}
	rows := make([][]string, len(vias))
	for i, v := range vias {
		rows[i] = []string{strconv.Itoa(i + 1), v.Net, strconv.Itoa(v.X), strconv.Itoa(v.Y)}
	}
	fmt.Fprintln(w, newTable([]string{"#", "Net", "X", "Y"}, rows, 0, 2, 3).Render())
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("%d via(s)", len(vias))))
}
