package domain

// MetricRef is one concrete raw-metric reference in a graph: a metric name
// scoped to a single resource by its dimension, with the statistic and
// period the console should apply to it.
type MetricRef struct {
	ID             string // graph-unique identifier, m1..mN
	Namespace      string // e.g. "AWS/EBS"
	MetricName     string // e.g. "VolumeReadBytes"
	DimensionName  string // e.g. "VolumeId"
	DimensionValue string // the resource id
	Stat           string // e.g. "Sum"
	Visible        bool   // raw-only views plot the metric directly
}

// Entry is one resource's contribution to a graph: its raw metric
// references plus, for derived views, one metric-math expression over them.
type Entry struct {
	ResourceID string
	Metrics    []MetricRef

	// Expression is the metric-math formula, empty for raw-only views.
	ExpressionID string
	Expression   string
	Label        string
}

// Graph is the ordered set of entries for one deep link. Entry order
// follows input order; the console renders series in this order.
type Graph struct {
	Entries []Entry
	Period  Period
}
