// Package catalog maps (service, metric) pairs to the metric-math formula
// templates the console graph is built from. The set of formulas is closed
// and domain-defined; it is a fixed table, not a registry.
package catalog

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/cwgraph/internal/domain"
)

// Template describes how one resource's graph entry is built for a
// (service, metric) pair: which raw metrics to reference, the statistic to
// aggregate them with, and the expression combining them.
type Template struct {
	Service domain.ServiceType
	Metric  domain.MetricType

	// RawMetrics are the CloudWatch metric names referenced per resource,
	// in the order the expression pattern indexes them.
	RawMetrics []string

	// Stat is the statistic applied to every raw metric of this template.
	Stat string

	// Expr is a fmt pattern over the indexed raw-metric ids (%[1]s is the
	// id bound to RawMetrics[0], and so on). Empty means the raw metrics
	// are plotted directly with no expression entry.
	Expr string

	// Label is the per-resource label suffix, e.g. "throughput (MiB/s)".
	Label string

	// Unit is the derived unit shown in catalog listings.
	Unit string
}

// Expression instantiates the template's formula with concrete metric ids.
// It returns "" for raw-only templates.
func (t Template) Expression(ids []string) string {
	if t.Expr == "" {
		return ""
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return fmt.Sprintf(t.Expr, args...)
}

// templates is the authoritative table of supported combinations. Formulas
// aggregate counters with Sum over the period, so rates divide by
// PERIOD(m) and throughput additionally by 1048576 for MiB/s. EFS has no
// operation counters; its IOPS view counts samples of the byte metrics
// instead (one sample per I/O operation).
var templates = []Template{
	{
		Service:    domain.ServiceEBS,
		Metric:     domain.MetricThroughput,
		RawMetrics: []string{"VolumeReadBytes", "VolumeWriteBytes"},
		Stat:       "Sum",
		Expr:       "((%[1]s+%[2]s)/1048576)/PERIOD(%[1]s)",
		Label:      "throughput (MiB/s)",
		Unit:       "MiB/s",
	},
	{
		Service:    domain.ServiceEBS,
		Metric:     domain.MetricIOPS,
		RawMetrics: []string{"VolumeReadOps", "VolumeWriteOps"},
		Stat:       "Sum",
		Expr:       "(%[1]s+%[2]s)/PERIOD(%[1]s)",
		Label:      "IOPS",
		Unit:       "ops/s",
	},
	{
		Service: domain.ServiceEBS,
		Metric:  domain.MetricLatency,
		RawMetrics: []string{
			"VolumeTotalReadTime", "VolumeTotalWriteTime",
			"VolumeReadOps", "VolumeWriteOps",
		},
		Stat: "Sum",
		// Total time is in seconds; division by zero ops is left to the
		// console's math engine, which renders it as an undefined point.
		Expr:  "((%[1]s+%[2]s)/(%[3]s+%[4]s))*1000",
		Label: "avg latency (ms/op)",
		Unit:  "ms/op",
	},
	{
		Service:    domain.ServiceEFS,
		Metric:     domain.MetricThroughput,
		RawMetrics: []string{"DataReadIOBytes", "DataWriteIOBytes", "MetadataIOBytes"},
		Stat:       "Sum",
		Expr:       "((%[1]s+%[2]s+%[3]s)/1048576)/PERIOD(%[1]s)",
		Label:      "throughput (MiB/s)",
		Unit:       "MiB/s",
	},
	{
		Service:    domain.ServiceEFS,
		Metric:     domain.MetricIOPS,
		RawMetrics: []string{"DataReadIOBytes", "DataWriteIOBytes", "MetadataIOBytes"},
		Stat:       "SampleCount",
		Expr:       "(%[1]s+%[2]s+%[3]s)/PERIOD(%[1]s)",
		Label:      "IOPS",
		Unit:       "ops/s",
	},
	{
		Service:    domain.ServiceEC2,
		Metric:     domain.MetricThroughput,
		RawMetrics: []string{"NetworkIn", "NetworkOut"},
		Stat:       "Sum",
		Expr:       "((%[1]s+%[2]s)/1048576)/PERIOD(%[1]s)",
		Label:      "network (MiB/s)",
		Unit:       "MiB/s",
	},
	{
		Service: domain.ServiceEC2,
		Metric:  domain.MetricPackets,
		// The console's DIFF_TIME function with a Maximum statistic also
		// yields a packet rate; Sum over PERIOD keeps this row consistent
		// with the other rate formulas.
		RawMetrics: []string{"NetworkPacketsIn", "NetworkPacketsOut"},
		Stat:       "Sum",
		Expr:       "(%[1]s+%[2]s)/PERIOD(%[1]s)",
		Label:      "packets (pps)",
		Unit:       "pps",
	},
	{
		Service:    domain.ServiceEC2,
		Metric:     domain.MetricCPU,
		RawMetrics: []string{"CPUUtilization"},
		Stat:       "Maximum",
		Unit:       "percent",
	},
	{
		Service:    domain.ServiceEC2,
		Metric:     domain.MetricStatusCheck,
		RawMetrics: []string{"StatusCheckFailed_Instance", "StatusCheckFailed_System"},
		Stat:       "Average",
		Unit:       "count",
	},
}

// Lookup returns the formula template for the given combination, or an
// error wrapping domain.ErrUnsupportedCombination that lists the supported
// pairs.
func Lookup(service domain.ServiceType, metric domain.MetricType) (Template, error) {
	for _, t := range templates {
		if t.Service == service && t.Metric == metric {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%s/%s is not supported (supported: %s): %w",
		service, metric, supportedList(), domain.ErrUnsupportedCombination)
}

// Combinations returns all supported templates in display order.
func Combinations() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

func supportedList() string {
	pairs := make([]string, len(templates))
	for i, t := range templates {
		pairs[i] = fmt.Sprintf("%s/%s", t.Service, t.Metric)
	}
	return strings.Join(pairs, ", ")
}
