// Package url implements the "url" command, the core pipeline: validate
// inputs, build the metric graph, encode it, and print the deep link.
package url

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"nathanbeddoewebdev/cwgraph/internal/config"
	"nathanbeddoewebdev/cwgraph/internal/console"
	"nathanbeddoewebdev/cwgraph/internal/domain"
	"nathanbeddoewebdev/cwgraph/internal/graph"
	"nathanbeddoewebdev/cwgraph/internal/tui"
	"nathanbeddoewebdev/cwgraph/internal/util"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewCommand returns the "url" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Generate a CloudWatch metric-math deep link",
		Long: `Generate a CloudWatch console URL whose graph computes derived
performance metrics (throughput, IOPS, latency, and the EC2 network and
status views) for one or more resources over a time window.

The tool makes no API calls and needs no credentials; it only prints the
URL. Resource ids are passed through verbatim and are not checked for
existence.

Run with no flags in a terminal (or with --interactive) to be prompted
for each input instead.

Examples:
  # Throughput for two EBS volumes
  cwgraph url --service ebs --metric mibs --region eu-west-1 \
    --from 2023-01-01T00:00:00.000Z --to 2023-01-01T23:00:00.000Z \
    --ids vol-aaa,vol-bbb

  # EFS IOPS with a 1-hour aggregation period
  cwgraph url --service efs --metric iops --region us-east-1 \
    --from 2023-01-01T00:00:00.000Z --to 2023-01-02T00:00:00.000Z \
    --ids fs-aaa --period 3600`,
		RunE:         runURL,
		SilenceUsage: true,
	}

	cmd.Flags().String("from", "", "Start time, ISO 8601 (e.g. 2023-01-01T00:00:00.000Z)")
	cmd.Flags().String("to", "", "End time, ISO 8601")
	cmd.Flags().String("ids", "", "Comma-separated resource ids (volume, filesystem, or instance ids)")
	cmd.Flags().String("service", "", "Service: ebs, efs, or ec2")
	cmd.Flags().String("metric", "", "Metric: mibs, iops, latency, packets, cpu, or statuscheck")
	cmd.Flags().String("region", "", "AWS region (falls back to config default-region)")
	cmd.Flags().Int("period", domain.DefaultPeriod.Seconds(), "Aggregation period in seconds, a positive multiple of 60")
	cmd.Flags().Bool("interactive", false, "Prompt for inputs instead of reading flags")

	return cmd
}

func runURL(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if useForm(cmd) {
		return runInteractive(cmd, cfg)
	}

	serviceFlag, _ := cmd.Flags().GetString("service")
	metricFlag, _ := cmd.Flags().GetString("metric")
	idsFlag, _ := cmd.Flags().GetString("ids")
	fromFlag, _ := cmd.Flags().GetString("from")
	toFlag, _ := cmd.Flags().GetString("to")

	required := []struct{ name, value string }{
		{"service", serviceFlag},
		{"metric", metricFlag},
		{"ids", idsFlag},
		{"from", fromFlag},
		{"to", toFlag},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("--%s is required (or run with --interactive)", f.name)
		}
	}

	service, err := domain.ParseServiceType(serviceFlag)
	if err != nil {
		return err
	}
	metric, err := domain.ParseMetricType(metricFlag)
	if err != nil {
		return err
	}
	timeRange, err := domain.NewTimeRange(fromFlag, toFlag)
	if err != nil {
		return err
	}

	region, err := resolveRegion(cmd, cfg)
	if err != nil {
		return err
	}
	period, err := resolvePeriod(cmd, cfg)
	if err != nil {
		return err
	}

	g, err := graph.Build(util.SplitResourceIDs(idsFlag), service, metric, period)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), console.URL(g, timeRange, region))
	return nil
}

// runInteractive collects inputs with the url form and runs the same
// pipeline as the flag path.
func runInteractive(cmd *cobra.Command, cfg *config.Config) error {
	prefill := tui.URLFormPrefill{Region: cfg.DefaultRegion}
	if seconds, err := strconv.Atoi(cfg.DefaultPeriod); err == nil {
		prefill.Period = seconds
	}

	result, err := tui.URLForm(prefill)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
			return nil
		}
		return err
	}

	g, err := graph.Build(result.ResourceIDs, result.Service, result.Metric, result.Period)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), console.URL(g, result.TimeRange, result.Region))
	return nil
}

// useForm reports whether the interactive form should run: either it was
// requested explicitly, or no input flag was passed and stdout is a
// terminal.
func useForm(cmd *cobra.Command) bool {
	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		return true
	}
	for _, name := range []string{"from", "to", "ids", "service", "metric", "region", "period"} {
		if cmd.Flags().Changed(name) {
			return false
		}
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// resolveRegion returns the --region value, falling back to the configured
// default when the flag was not passed.
func resolveRegion(cmd *cobra.Command, cfg *config.Config) (string, error) {
	region, _ := cmd.Flags().GetString("region")
	if region != "" {
		return region, nil
	}
	if cfg.DefaultRegion != "" {
		return cfg.DefaultRegion, nil
	}
	return "", fmt.Errorf("--region is required (or set a default with 'cwgraph config set default-region <region>')")
}

// resolvePeriod returns the validated --period value, falling back to the
// configured default when the flag was not passed.
func resolvePeriod(cmd *cobra.Command, cfg *config.Config) (domain.Period, error) {
	seconds, _ := cmd.Flags().GetInt("period")
	if !cmd.Flags().Changed("period") && cfg.DefaultPeriod != "" {
		parsed, err := strconv.Atoi(cfg.DefaultPeriod)
		if err != nil {
			return 0, fmt.Errorf("configured default-period %q is not a number", cfg.DefaultPeriod)
		}
		seconds = parsed
	}
	return domain.NewPeriod(seconds)
}
