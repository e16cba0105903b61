package types

import (
	"fmt"
	"regexp"
	"time"
)

// monthLayout is the canonical month form. All month strings are exactly
// seven characters, zero-padded, so lexicographic order is chronological.
const monthLayout = "2006-01"

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsMonth reports whether s is a valid YYYY-MM month string.
func IsMonth(s string) bool {
	return monthPattern.MatchString(s)
}

// MonthRange returns every month from start to end inclusive.
// Returns ErrInvalidMonth for malformed bounds and ErrWindowInverted when
// start sorts after end.
func MonthRange(start, end string) ([]string, error) {
	if !IsMonth(start) || !IsMonth(end) {
		return nil, ErrInvalidMonth
	}
	if start > end {
		return nil, ErrWindowInverted
	}
	from, err := time.Parse(monthLayout, start)
	if err != nil {
		return nil, fmt.Errorf("parse start month: %w", err)
	}
	to, err := time.Parse(monthLayout, end)
	if err != nil {
		return nil, fmt.Errorf("parse end month: %w", err)
	}

	var months []string
	for m := from; !m.After(to); m = m.AddDate(0, 1, 0) {
		months = append(months, m.Format(monthLayout))
	}
	return months, nil
}

// PrevMonth returns the month immediately before the given one.
// Returns ErrInvalidMonth for malformed input.
func PrevMonth(month string) (string, error) {
	if !IsMonth(month) {
		return "", ErrInvalidMonth
	}
	m, err := time.Parse(monthLayout, month)
	if err != nil {
		return "", fmt.Errorf("parse month: %w", err)
	}
	return m.AddDate(0, -1, 0).Format(monthLayout), nil
}

// CurrentMonth returns the current calendar month in YYYY-MM form.
func CurrentMonth() string {
	return time.Now().Format(monthLayout)
}

// FormatMonth renders a month string for display, e.g. "2025-11" becomes
// "November 2025". Malformed input is returned unchanged.
func FormatMonth(month string) string {
	m, err := time.Parse(monthLayout, month)
	if err != nil {
		return month
	}
	return m.Format("January 2006")
}
