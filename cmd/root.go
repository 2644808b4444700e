package cmd

import (
	"os"

	cfgcmd "nathanbeddoewebdev/cwgraph/cmd/commands/config"
	"nathanbeddoewebdev/cwgraph/cmd/commands/metrics"
	"nathanbeddoewebdev/cwgraph/cmd/commands/url"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "cwgraph",
		Short: "Generate CloudWatch metric-math deep links for EBS, EFS, and EC2",
		Long: `cwgraph builds CloudWatch console URLs pre-populated with metric-math
graphs for storage and instance performance: throughput in MiB/s, IOPS,
latency in ms/op, and the EC2 network, packet, CPU, and status-check views.

It never calls AWS: the output is a single URL you can open or share.

Quick start:
  cwgraph url --service ebs --metric iops --region eu-west-1 \
    --from 2023-01-01T00:00:00.000Z --to 2023-01-01T23:00:00.000Z \
    --ids vol-aaa,vol-bbb
  cwgraph metrics                              # supported combinations
  cwgraph config set default-region eu-west-1  # skip --region next time`,
	}

	cmd.AddCommand(url.NewCommand())
	cmd.AddCommand(metrics.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
