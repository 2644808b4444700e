package domain

import (
	"fmt"
	"time"
)

// TimeRange is a validated absolute time window. The original ISO 8601
// strings are retained so the encoder can re-emit them verbatim, with no
// timezone conversion or reformatting.
type TimeRange struct {
	Start string
	End   string
}

// NewTimeRange validates that start and end parse as ISO 8601 (RFC 3339)
// timestamps and that start is strictly before end.
func NewTimeRange(start, end string) (TimeRange, error) {
	startAt, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return TimeRange{}, fmt.Errorf("start time %q is not a valid ISO 8601 timestamp: %w", start, ErrMalformedTimeRange)
	}
	endAt, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return TimeRange{}, fmt.Errorf("end time %q is not a valid ISO 8601 timestamp: %w", end, ErrMalformedTimeRange)
	}
	if !startAt.Before(endAt) {
		return TimeRange{}, fmt.Errorf("start time %q must be before end time %q: %w", start, end, ErrMalformedTimeRange)
	}
	return TimeRange{Start: start, End: end}, nil
}
