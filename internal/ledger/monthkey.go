package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthKey identifies a calendar month. The canonical string form is
// "2024-6": four-digit year, dash, 1-based month without zero padding.
// Grouping, the month selector, and query parameters all use this one
// form.
type MonthKey struct {
	Year  int
	Month time.Month
}

// AllMonths is the zero MonthKey and acts as the "no month filter"
// sentinel, serialized as "all".
var AllMonths = MonthKey{}

// MonthKeyOf returns the key for the month containing t (UTC)
func MonthKeyOf(t time.Time) MonthKey {
	u := t.UTC()
	return MonthKey{Year: u.Year(), Month: u.Month()}
}

// IsAll reports whether the key is the "all months" sentinel
func (k MonthKey) IsAll() bool {
	return k == AllMonths
}

// Contains reports whether t falls inside the keyed month.
// The sentinel contains every date.
func (k MonthKey) Contains(t time.Time) bool {
	if k.IsAll() {
		return true
	}
	u := t.UTC()
	return u.Year() == k.Year && u.Month() == k.Month
}

// String returns the canonical key form, or "all" for the sentinel
func (k MonthKey) String() string {
	if k.IsAll() {
		return "all"
	}
	return fmt.Sprintf("%d-%d", k.Year, int(k.Month))
}

// Label returns the human-readable month heading, e.g. "June 2024"
func (k MonthKey) Label() string {
	if k.IsAll() {
		return "All months"
	}
	return fmt.Sprintf("%s %d", k.Month.String(), k.Year)
}

// First returns midnight UTC on the first day of the keyed month
func (k MonthKey) First() time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC)
}

// ParseMonthKey parses the canonical "YYYY-M" form. "all" and the
// empty string yield the sentinel.
func ParseMonthKey(s string) (MonthKey, error) {
	if s == "" || s == "all" {
		return AllMonths, nil
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return AllMonths, fmt.Errorf("invalid month key %q, use YYYY-M", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return AllMonths, fmt.Errorf("invalid year in month key %q", s)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return AllMonths, fmt.Errorf("invalid month in month key %q", s)
	}

	return MonthKey{Year: year, Month: time.Month(month)}, nil
}
