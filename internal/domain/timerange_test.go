package domain

import (
	"errors"
	"testing"
)

func TestNewTimeRange_Valid(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"millisecond precision", "2023-01-01T00:00:00.000Z", "2023-01-01T23:00:00.000Z"},
		{"whole seconds", "2023-10-10T00:40:00Z", "2023-10-10T18:28:00Z"},
		{"offset timezone", "2023-01-01T00:00:00+01:00", "2023-01-01T12:00:00+01:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTimeRange(tt.start, tt.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			// The original strings must survive untouched.
			if tr.Start != tt.start || tr.End != tt.end {
				t.Errorf("timestamps were rewritten: got (%q, %q)", tr.Start, tr.End)
			}
		})
	}
}

func TestNewTimeRange_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"start after end", "2023-01-02T00:00:00.000Z", "2023-01-01T00:00:00.000Z"},
		{"start equals end", "2023-01-01T00:00:00.000Z", "2023-01-01T00:00:00.000Z"},
		{"garbage start", "yesterday", "2023-01-01T00:00:00.000Z"},
		{"garbage end", "2023-01-01T00:00:00.000Z", "tomorrow"},
		{"date only", "2023-01-01", "2023-01-02"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTimeRange(tt.start, tt.end)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrMalformedTimeRange) {
				t.Errorf("error %v is not ErrMalformedTimeRange", err)
			}
		})
	}
}
