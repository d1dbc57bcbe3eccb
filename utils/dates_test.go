package utils

import (
	"testing"
	"time"
)

func TestBeginningOfDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	in := time.Date(2025, 6, 2, 15, 42, 7, 123, loc)
	got := BeginningOfDay(in)

	want := time.Date(2025, 6, 2, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("BeginningOfDay(%v) = %v, want %v", in, got, want)
	}
	if got.Location() != loc {
		t.Errorf("BeginningOfDay changed location to %v", got.Location())
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-02")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if got.Year() != 2025 || got.Month() != time.June || got.Day() != 2 {
		t.Errorf("ParseDate(2025-06-02) = %v", got)
	}

	for _, bad := range []string{"2025/06/02", "02-06-2025", "not-a-date", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) expected error", bad)
		}
	}
}
