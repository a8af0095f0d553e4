package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("2025-04-15")
	if err != nil || got != "2025-04-15" {
		t.Fatalf("expected valid date, got %q err=%v", got, err)
	}
	for _, bad := range []string{"", "04/15/2025", "2025-13-01", "2025-4-1"} {
		if _, err := NormalizeDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestTodayUsesLocation(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)
	ny := time.FixedZone("EST", -5*60*60)
	if got := Today(now, ny); got != "2024-01-01" {
		t.Fatalf("expected previous day in NY, got %s", got)
	}
	if got := Today(now, nil); got != "2024-01-02" {
		t.Fatalf("expected UTC day when location is nil, got %s", got)
	}
}

func TestLoadLocationFallsBack(t *testing.T) {
	if loc := LoadLocation("UTC"); loc.String() != "UTC" {
		t.Fatalf("expected UTC, got %s", loc)
	}
	if loc := LoadLocation("Not/AZone"); loc == nil {
		t.Fatal("expected fallback location")
	}
	if loc := LoadLocation(""); loc == nil {
		t.Fatal("expected default location")
	}
}
