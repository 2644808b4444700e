package domain

import (
	"errors"
	"testing"
)

func TestNewPeriod_Valid(t *testing.T) {
	for _, seconds := range []int{60, 300, 3600, 86400} {
		p, err := NewPeriod(seconds)
		if err != nil {
			t.Errorf("NewPeriod(%d): unexpected error: %v", seconds, err)
			continue
		}
		if p.Seconds() != seconds {
			t.Errorf("NewPeriod(%d).Seconds() = %d", seconds, p.Seconds())
		}
	}
}

func TestNewPeriod_Invalid(t *testing.T) {
	for _, seconds := range []int{0, -60, -1, 90, 61, 59} {
		_, err := NewPeriod(seconds)
		if err == nil {
			t.Errorf("NewPeriod(%d): expected error, got nil", seconds)
			continue
		}
		if !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("NewPeriod(%d): error %v is not ErrInvalidPeriod", seconds, err)
		}
	}
}
