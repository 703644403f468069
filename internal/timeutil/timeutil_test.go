package timeutil

import (
	"testing"
	"time"
)

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2025-01-19")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(parsed); got != "2025-01-19" {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestParseCompactDate(t *testing.T) {
	parsed, err := ParseCompactDate("20250119")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != 2025 || parsed.Month() != time.January || parsed.Day() != 19 {
		t.Fatalf("unexpected date: %v", parsed)
	}
	if got := FormatCompactDate(parsed); got != "20250119" {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestParseDateRejectsCompact(t *testing.T) {
	if _, err := ParseDate("20250119"); err == nil {
		t.Fatal("expected error for compact input")
	}
}

func TestSeasonForDate(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2025-01-19", "2024-2025-regular"},
		{"2024-10-22", "2024-2025-regular"},
		{"2024-09-30", "2023-2024-regular"},
		{"2025-04-13", "2024-2025-regular"},
	}
	for _, tc := range cases {
		parsed, err := ParseDate(tc.date)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.date, err)
		}
		if got := SeasonForDate(parsed); got != tc.want {
			t.Fatalf("season for %s: got %s want %s", tc.date, got, tc.want)
		}
	}
}
