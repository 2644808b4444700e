package domain

import "errors"

// Sentinel errors for input-validation failures. Callers wrap these so the
// CLI can classify failures uniformly without string matching.
//
//	return fmt.Errorf("period %d: %w", p, domain.ErrInvalidPeriod)
var (
	// ErrUnsupportedCombination indicates the requested (service, metric)
	// pair has no formula in the catalog.
	ErrUnsupportedCombination = errors.New("unsupported service/metric combination")

	// ErrNoResourceIDs indicates an empty or blank resource id list.
	ErrNoResourceIDs = errors.New("no resource ids")

	// ErrInvalidPeriod indicates a period that is not a positive
	// multiple of 60 seconds.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrMalformedTimeRange indicates a timestamp that does not parse, or
	// an end time that is not after the start time.
	ErrMalformedTimeRange = errors.New("malformed time range")
)
