package domain

import "fmt"

// DefaultPeriod is the aggregation window used when the caller does not
// supply one.
const DefaultPeriod Period = 300

// Period is the statistic aggregation window in seconds. CloudWatch only
// accepts whole minutes, so a Period must be a positive multiple of 60.
type Period int

// NewPeriod validates seconds and returns it as a Period.
func NewPeriod(seconds int) (Period, error) {
	if seconds <= 0 {
		return 0, fmt.Errorf("period must be positive, got %d: %w", seconds, ErrInvalidPeriod)
	}
	if seconds%60 != 0 {
		return 0, fmt.Errorf("period must be a multiple of 60 seconds, got %d: %w", seconds, ErrInvalidPeriod)
	}
	return Period(seconds), nil
}

// Seconds returns the period as a plain int.
func (p Period) Seconds() int { return int(p) }
