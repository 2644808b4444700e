// Package metrics implements the "metrics" command, which lists the
// service/metric combinations the catalog supports.
package metrics

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/cwgraph/internal/catalog"

	"github.com/spf13/cobra"
)

// NewCommand returns the "metrics" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "List supported service and metric combinations",
		Long: `List every service/metric combination cwgraph can graph, with the
raw CloudWatch metrics each formula references, the statistic applied to
them, and the derived unit.

Examples:
  cwgraph metrics`,
		Args:         cobra.ExactArgs(0),
		RunE:         runMetrics,
		SilenceUsage: true,
	}

	return cmd
}

func runMetrics(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tMETRIC\tUNIT\tSTAT\tRAW METRICS")
	for _, t := range catalog.Combinations() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.Service, t.Metric, t.Unit, t.Stat, strings.Join(t.RawMetrics, ", "))
	}
	return w.Flush()
}
