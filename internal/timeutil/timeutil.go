package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CompactDateLayout is the date format embedded in upstream game IDs (YYYYMMDD).
const CompactDateLayout = "20060102"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseCompactDate parses a YYYYMMDD date string.
func ParseCompactDate(value string) (time.Time, error) {
	return time.Parse(CompactDateLayout, value)
}

// FormatCompactDate formats a time as YYYYMMDD in its current location.
func FormatCompactDate(t time.Time) string {
	return t.Format(CompactDateLayout)
}

// SeasonForDate derives the regular-season slug for a game date.
// NBA seasons span calendar years: games from October onward belong to the
// season starting that year, earlier games to the season started the year before.
func SeasonForDate(t time.Time) string {
	year := t.Year()
	if t.Month() >= time.October {
		return fmt.Sprintf("%d-%d-regular", year, year+1)
	}
	return fmt.Sprintf("%d-%d-regular", year-1, year)
}
