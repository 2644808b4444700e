// Package tui contains the interactive prompt used when cwgraph url is run
// without the required flags in a terminal.
package tui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"nathanbeddoewebdev/cwgraph/internal/catalog"
	"nathanbeddoewebdev/cwgraph/internal/domain"
	"nathanbeddoewebdev/cwgraph/internal/util"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels the form.
var ErrAborted = errors.New("aborted by user")

// timestampLayout renders prefilled timestamps the way the console does,
// with millisecond precision and a trailing Z.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// URLFormPrefill provides initial values for the url form.
type URLFormPrefill struct {
	Region string
	Period int
}

// URLFormResult holds the validated inputs collected from the form.
type URLFormResult struct {
	Service     domain.ServiceType
	Metric      domain.MetricType
	ResourceIDs []string
	Region      string
	TimeRange   domain.TimeRange
	Period      domain.Period
}

// URLForm runs an interactive wizard collecting everything the url pipeline
// needs: service, metric, resource ids, region, time range, and period.
// Every field is validated with the same rules the flag path uses, so the
// form can only produce inputs the builder accepts.
func URLForm(prefill URLFormPrefill) (*URLFormResult, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	now := time.Now().UTC()
	var (
		service = string(domain.ServiceEBS)
		metric  = string(domain.MetricThroughput)
		ids     string
		region  = prefill.Region
		start   = now.Add(-1 * time.Hour).Format(timestampLayout)
		end     = now.Format(timestampLayout)
		period  = strconv.Itoa(prefill.Period)
	)
	if prefill.Period == 0 {
		period = strconv.Itoa(domain.DefaultPeriod.Seconds())
	}

	serviceField := huh.NewSelect[string]().
		Title("Service").
		Options(serviceOptions()...).
		Value(&service)

	// Metric options depend on the selected service; rebuild them whenever
	// the service changes.
	metricField := huh.NewSelect[string]().
		Title("Metric").
		OptionsFunc(func() []huh.Option[string] {
			return metricOptions(domain.ServiceType(service))
		}, &service).
		Value(&metric)

	idsField := huh.NewInput().
		Title("Resource ids").
		Description("Comma-separated volume, filesystem, or instance ids").
		Validate(func(s string) error {
			parsed := util.SplitResourceIDs(s)
			if len(parsed) == 0 {
				return fmt.Errorf("at least one resource id is required")
			}
			for _, id := range parsed {
				if id == "" {
					return fmt.Errorf("resource ids must not be empty")
				}
			}
			return nil
		}).
		Value(&ids)

	regionField := huh.NewInput().
		Title("Region").
		Placeholder("eu-west-1").
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("region is required")
			}
			return nil
		}).
		Value(&region)

	startField := huh.NewInput().
		Title("Start time (ISO 8601)").
		Validate(func(s string) error {
			_, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
			return err
		}).
		Value(&start)

	endField := huh.NewInput().
		Title("End time (ISO 8601)").
		Validate(func(s string) error {
			_, err := domain.NewTimeRange(strings.TrimSpace(start), strings.TrimSpace(s))
			return err
		}).
		Value(&end)

	periodField := huh.NewInput().
		Title("Period (seconds)").
		Description("Positive multiple of 60").
		Validate(func(s string) error {
			seconds, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("period must be a number")
			}
			_, err = domain.NewPeriod(seconds)
			return err
		}).
		Value(&period)

	err := huh.NewForm(
		huh.NewGroup(serviceField, metricField),
		huh.NewGroup(idsField, regionField),
		huh.NewGroup(startField, endField, periodField),
	).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrAborted
		}
		return nil, err
	}

	timeRange, err := domain.NewTimeRange(strings.TrimSpace(start), strings.TrimSpace(end))
	if err != nil {
		return nil, err
	}
	seconds, _ := strconv.Atoi(strings.TrimSpace(period))
	validPeriod, err := domain.NewPeriod(seconds)
	if err != nil {
		return nil, err
	}

	return &URLFormResult{
		Service:     domain.ServiceType(service),
		Metric:      domain.MetricType(metric),
		ResourceIDs: util.SplitResourceIDs(ids),
		Region:      strings.TrimSpace(region),
		TimeRange:   timeRange,
		Period:      validPeriod,
	}, nil
}

// serviceOptions builds select options for every service in the catalog.
func serviceOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.ServiceTypes))
	for _, s := range domain.ServiceTypes {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", s, s.Namespace()), string(s)))
	}
	return options
}

// metricOptions builds select options for the metrics the catalog supports
// for the given service.
func metricOptions(service domain.ServiceType) []huh.Option[string] {
	var options []huh.Option[string]
	for _, t := range catalog.Combinations() {
		if t.Service != service {
			continue
		}
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", t.Metric, t.Unit), string(t.Metric)))
	}
	return options
}
