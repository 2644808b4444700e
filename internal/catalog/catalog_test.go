package catalog

import (
	"errors"
	"strings"
	"testing"

	"nathanbeddoewebdev/cwgraph/internal/domain"
)

func TestLookup_SupportedPairs(t *testing.T) {
	tests := []struct {
		service domain.ServiceType
		metric  domain.MetricType
		unit    string
		stat    string
		raw     int
		derived bool
	}{
		{domain.ServiceEBS, domain.MetricThroughput, "MiB/s", "Sum", 2, true},
		{domain.ServiceEBS, domain.MetricIOPS, "ops/s", "Sum", 2, true},
		{domain.ServiceEBS, domain.MetricLatency, "ms/op", "Sum", 4, true},
		{domain.ServiceEFS, domain.MetricThroughput, "MiB/s", "Sum", 3, true},
		{domain.ServiceEFS, domain.MetricIOPS, "ops/s", "SampleCount", 3, true},
		{domain.ServiceEC2, domain.MetricThroughput, "MiB/s", "Sum", 2, true},
		{domain.ServiceEC2, domain.MetricPackets, "pps", "Sum", 2, true},
		{domain.ServiceEC2, domain.MetricCPU, "percent", "Maximum", 1, false},
		{domain.ServiceEC2, domain.MetricStatusCheck, "count", "Average", 2, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.service)+"/"+string(tt.metric), func(t *testing.T) {
			tmpl, err := Lookup(tt.service, tt.metric)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tmpl.RawMetrics) != tt.raw {
				t.Errorf("raw metric count = %d, want %d", len(tmpl.RawMetrics), tt.raw)
			}
			if tmpl.Unit != tt.unit {
				t.Errorf("unit = %q, want %q", tmpl.Unit, tt.unit)
			}
			if tmpl.Stat != tt.stat {
				t.Errorf("stat = %q, want %q", tmpl.Stat, tt.stat)
			}
			if derived := tmpl.Expr != ""; derived != tt.derived {
				t.Errorf("derived = %v, want %v", derived, tt.derived)
			}
		})
	}
}

func TestLookup_UnsupportedPairs(t *testing.T) {
	tests := []struct {
		service domain.ServiceType
		metric  domain.MetricType
	}{
		{domain.ServiceEFS, domain.MetricLatency},
		{domain.ServiceEC2, domain.MetricLatency},
		{domain.ServiceEC2, domain.MetricIOPS},
		{domain.ServiceEBS, domain.MetricPackets},
		{domain.ServiceEBS, domain.MetricCPU},
		{domain.ServiceEFS, domain.MetricStatusCheck},
	}
	for _, tt := range tests {
		t.Run(string(tt.service)+"/"+string(tt.metric), func(t *testing.T) {
			_, err := Lookup(tt.service, tt.metric)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, domain.ErrUnsupportedCombination) {
				t.Errorf("error %v is not ErrUnsupportedCombination", err)
			}
			// The message must tell the user what is allowed.
			if !strings.Contains(err.Error(), "ebs/mibs") {
				t.Errorf("error %q does not list supported combinations", err)
			}
		})
	}
}

func TestTemplateExpression(t *testing.T) {
	tests := []struct {
		name    string
		service domain.ServiceType
		metric  domain.MetricType
		ids     []string
		want    string
	}{
		{
			name:    "ebs throughput",
			service: domain.ServiceEBS, metric: domain.MetricThroughput,
			ids:  []string{"m1", "m2"},
			want: "((m1+m2)/1048576)/PERIOD(m1)",
		},
		{
			name:    "ebs iops",
			service: domain.ServiceEBS, metric: domain.MetricIOPS,
			ids:  []string{"m3", "m4"},
			want: "(m3+m4)/PERIOD(m3)",
		},
		{
			name:    "ebs latency",
			service: domain.ServiceEBS, metric: domain.MetricLatency,
			ids:  []string{"m1", "m2", "m3", "m4"},
			want: "((m1+m2)/(m3+m4))*1000",
		},
		{
			name:    "efs iops counts samples not bytes",
			service: domain.ServiceEFS, metric: domain.MetricIOPS,
			ids:  []string{"m1", "m2", "m3"},
			want: "(m1+m2+m3)/PERIOD(m1)",
		},
		{
			name:    "ec2 cpu has no expression",
			service: domain.ServiceEC2, metric: domain.MetricCPU,
			ids:  []string{"m1"},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Lookup(tt.service, tt.metric)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := tmpl.Expression(tt.ids); got != tt.want {
				t.Errorf("Expression(%v) = %q, want %q", tt.ids, got, tt.want)
			}
		})
	}
}

func TestCombinationsIsCopy(t *testing.T) {
	first := Combinations()
	first[0].Unit = "mutated"
	if Combinations()[0].Unit == "mutated" {
		t.Error("Combinations exposed the internal table for mutation")
	}
}
