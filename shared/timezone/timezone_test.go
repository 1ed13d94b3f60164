package timezone_test

import (
	"testing"
	"time"

	"clinic/shared/timezone"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	if now.IsZero() {
		t.Error("expected Now to return a non-zero time")
	}

	if now.Location() != timezone.GetLocation() {
		t.Errorf("expected Now location to be %v, got %v", timezone.GetLocation(), now.Location())
	}
}

func TestToAppTime(t *testing.T) {
	utc := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	converted := timezone.ToAppTime(utc)

	if !converted.Equal(utc) {
		t.Errorf("expected converted time to be the same instant, got %v vs %v", converted, utc)
	}
}

func TestParse(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if parsed.Year() != 2024 || parsed.Month() != time.June || parsed.Day() != 1 {
		t.Errorf("unexpected parse result: %v", parsed)
	}

	if _, err := timezone.Parse(time.RFC3339, "not a time"); err == nil {
		t.Error("expected error parsing invalid value")
	}
}

func TestFormat(t *testing.T) {
	instant := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	got := timezone.Format(instant, "2006-01-02")
	if got != "2024-06-01" {
		t.Errorf("expected 2024-06-01, got %s", got)
	}
}
