package domain

import (
	"fmt"
	"strings"
)

// MetricType enumerates the derived views the tool can graph. Not every
// combination with a ServiceType is valid; the catalog is authoritative.
type MetricType string

const (
	// MetricThroughput is data throughput in MiB/s.
	MetricThroughput MetricType = "mibs"
	// MetricIOPS is I/O operations per second.
	MetricIOPS MetricType = "iops"
	// MetricLatency is average latency in ms per operation.
	MetricLatency MetricType = "latency"
	// MetricPackets is network packets per second.
	MetricPackets MetricType = "packets"
	// MetricCPU is raw CPU utilization.
	MetricCPU MetricType = "cpu"
	// MetricStatusCheck is raw instance/system status-check failures.
	MetricStatusCheck MetricType = "statuscheck"
)

// MetricTypes lists all metric types in display order.
var MetricTypes = []MetricType{
	MetricThroughput,
	MetricIOPS,
	MetricLatency,
	MetricPackets,
	MetricCPU,
	MetricStatusCheck,
}

// ParseMetricType converts a CLI-facing metric name into a MetricType.
// Matching is case-insensitive after trimming whitespace.
func ParseMetricType(s string) (MetricType, error) {
	normalized := MetricType(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range MetricTypes {
		if normalized == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q (valid: mibs, iops, latency, packets, cpu, statuscheck)", s)
}
