package console

import (
	"fmt"
	"strconv"
	"strings"

	"nathanbeddoewebdev/cwgraph/internal/domain"
)

// URL serializes the graph, time range, and region into a complete console
// deep link. The fragment is assembled structurally first and escaped as a
// whole afterwards; only expression and label strings are pre-escaped in
// formula mode before insertion.
func URL(g *domain.Graph, tr domain.TimeRange, region string) string {
	return fmt.Sprintf("https://%s.console.aws.amazon.com/cloudwatch/home?region=%s#metricsV2:graph=%s",
		region, region, Fragment(g, tr, region))
}

// Fragment renders the escaped graph definition that follows the
// "#metricsV2:graph=" anchor.
func Fragment(g *domain.Graph, tr domain.TimeRange, region string) string {
	period := attribute(strconv.Itoa(g.Period.Seconds()))

	metrics := &clause{}
	for _, e := range g.Entries {
		for _, m := range e.Metrics {
			metrics.push(metricClause(m, period))
		}
		if e.Expression != "" {
			metrics.push(expressionClause(e))
		}
	}

	root := &clause{}
	root.push(
		typeStatement("metrics"),
		metrics,
		attribute("view"), value("timeSeries"),
		attribute("stacked"), attribute("false"),
		attribute("region"), value(region),
		attribute("start"), value(tr.Start),
		attribute("end"), value(tr.End),
		attribute("period"), period,
	)

	return escapeQuery(root.String(), false)
}

// metricClause renders one raw-metric reference:
//
//	~(~'AWS/EBS~'VolumeReadBytes~'VolumeId~'vol-aaa~(id~'m1~visible~false~stat~'Sum~period~300))
func metricClause(m domain.MetricRef, period attribute) *clause {
	visible := attribute("false")
	if m.Visible {
		visible = attribute("true")
	}

	id := &clause{}
	id.push(
		typeStatement("id"), value(m.ID),
		attribute("visible"), visible,
		attribute("stat"), value(m.Stat),
		attribute("period"), period,
	)

	c := &clause{}
	c.push(
		value(m.Namespace),
		value(m.MetricName),
		value(m.DimensionName),
		value(m.DimensionValue),
		id,
	)
	return c
}

// expressionClause renders one metric-math entry. Expression entries nest
// one clause deeper than raw-metric entries:
//
//	~(~(expression~'*28m1*2bm2*29*2fPERIOD*28m1*29~label~'vol-aaa*20IOPS~id~'e1))
func expressionClause(e domain.Entry) *clause {
	inner := &clause{}
	inner.push(
		typeStatement("expression"), value(escapeQuery(e.Expression, true)),
		attribute("label"), value(escapeQuery(e.Label, true)),
		attribute("id"), value(e.ExpressionID),
	)

	outer := &clause{}
	outer.push(inner)
	return outer
}

// escapeQuery percent-encodes s for the console fragment, using '*' instead
// of '%' and lowercase hex digits. Outside formula mode the structural
// characters ' ( ) * stay literal; formula mode encodes them too so that an
// expression's own parentheses cannot be mistaken for clause delimiters.
// Tilde is URL-unreserved and always passes through.
func escapeQuery(s string, formula bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSafeByte(c, formula) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "*%02x", c)
		}
	}
	return b.String()
}

func isSafeByte(c byte, formula bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	case formula:
		return false
	default:
		return c == '\'' || c == '(' || c == ')' || c == '*'
	}
}
