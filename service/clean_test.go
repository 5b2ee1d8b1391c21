package service_test

import (
	"testing"
	"time"

	"github.com/sanyokkme/fiyouai/service"
)

func TestCleanToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"int passthrough", 250, 250},
		{"float truncates", 250.9, 250},
		{"numeric string", "250", 250},
		{"string with unit", "250kcal", 250},
		{"garbage string", "abc", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"decimal string truncates", "12.7", 12},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := service.CleanToInt(tt.value); got != tt.want {
				t.Fatalf("CleanToInt(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestCleanToFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{"float passthrough", 12.5, 12.5},
		{"int widens", 12, 12},
		{"string with unit", "12.5g", 12.5},
		{"unknown marker", "невідомо", 0},
		{"garbage string", "abc", 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := service.CleanToFloat(tt.value); got != tt.want {
				t.Fatalf("CleanToFloat(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestSafeParseTimestampFormats(t *testing.T) {
	t.Parallel()

	// The same wall-clock moment in the formats found in stored rows must
	// land in the same calendar-day bucket.
	variants := []string{
		"2025-06-15T12:30:00",
		"2025-06-15T12:30:00.123456",
		"2025-06-15T12:30:00Z",
		"2025-06-15T12:30:00+02:00",
	}

	want := service.DayBucket(variants[0])
	for _, v := range variants {
		if got := service.DayBucket(v); got != want {
			t.Errorf("DayBucket(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestSafeParseTimestampConvertsToReferenceTZ(t *testing.T) {
	t.Parallel()

	parsed := service.SafeParseTimestamp("2025-06-15T12:30:00")
	if parsed.Location() != service.ReferenceTZ() {
		t.Fatalf("parsed location = %v, want reference timezone", parsed.Location())
	}
	// Warsaw is UTC+2 in June
	if parsed.Hour() != 14 {
		t.Fatalf("parsed hour = %d, want 14", parsed.Hour())
	}
}

func TestSafeParseTimestampFallsBackToNow(t *testing.T) {
	t.Parallel()

	before := time.Now().Add(-time.Minute)
	parsed := service.SafeParseTimestamp("not a timestamp")
	if parsed.Before(before) {
		t.Fatalf("fallback time %v predates the call", parsed)
	}
}

func TestIsInvalidUser(t *testing.T) {
	t.Parallel()

	invalid := []string{"", "null", "NULL", " undefined ", "None"}
	for _, id := range invalid {
		if !service.IsInvalidUser(id) {
			t.Errorf("IsInvalidUser(%q) = false, want true", id)
		}
	}

	if service.IsInvalidUser("5f6c9268-7ff4-4f0f-9e2c-0d3b3f3a1a11") {
		t.Error("IsInvalidUser rejected a real id")
	}
}
