// Package graph instantiates formula templates into a concrete metric
// graph, one entry per resource id.
package graph

import (
	"fmt"

	"nathanbeddoewebdev/cwgraph/internal/catalog"
	"nathanbeddoewebdev/cwgraph/internal/domain"
)

// Build looks up the formula for (service, metric) and instantiates it once
// per resource id, preserving input order. Metric ids are numbered m1..mN
// across the whole graph and expression ids e1..eR across all expression
// entries, so every reference is graph-unique.
//
// Build is a pure function of its inputs: identical calls yield identical
// graphs.
func Build(resourceIDs []string, service domain.ServiceType, metric domain.MetricType, period domain.Period) (*domain.Graph, error) {
	if len(resourceIDs) == 0 {
		return nil, fmt.Errorf("at least one resource id is required: %w", domain.ErrNoResourceIDs)
	}
	for i, id := range resourceIDs {
		if id == "" {
			return nil, fmt.Errorf("resource id %d is empty: %w", i+1, domain.ErrNoResourceIDs)
		}
	}

	tmpl, err := catalog.Lookup(service, metric)
	if err != nil {
		return nil, err
	}

	g := &domain.Graph{
		Entries: make([]domain.Entry, 0, len(resourceIDs)),
		Period:  period,
	}

	metricSeq := 0
	exprSeq := 0
	for _, resourceID := range resourceIDs {
		entry := domain.Entry{
			ResourceID: resourceID,
			Metrics:    make([]domain.MetricRef, 0, len(tmpl.RawMetrics)),
		}

		ids := make([]string, 0, len(tmpl.RawMetrics))
		for _, name := range tmpl.RawMetrics {
			metricSeq++
			id := fmt.Sprintf("m%d", metricSeq)
			ids = append(ids, id)
			entry.Metrics = append(entry.Metrics, domain.MetricRef{
				ID:             id,
				Namespace:      service.Namespace(),
				MetricName:     name,
				DimensionName:  service.DimensionName(),
				DimensionValue: resourceID,
				Stat:           tmpl.Stat,
				Visible:        tmpl.Expr == "",
			})
		}

		if expr := tmpl.Expression(ids); expr != "" {
			exprSeq++
			entry.ExpressionID = fmt.Sprintf("e%d", exprSeq)
			entry.Expression = expr
			entry.Label = fmt.Sprintf("%s %s", resourceID, tmpl.Label)
		}

		g.Entries = append(g.Entries, entry)
	}

	return g, nil
}
