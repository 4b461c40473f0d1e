// Package valueobject defines immutable domain value types.
package valueobject

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// monthKeyLayout is the canonical wire format of a month key.
const monthKeyLayout = "2006-01"

var monthKeyPattern = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])$`)

// ErrInvalidMonthKey is returned when a string is not a YYYY-MM month key.
var ErrInvalidMonthKey = errors.New("month key must have the format YYYY-MM")

// MonthKey identifies a calendar month. It is the partition key for ledgers,
// budgets and recurring instances.
type MonthKey struct {
	year  int
	month time.Month
}

// NewMonthKey builds a month key from a year and month, normalising overflow
// (month 13 becomes January of the next year).
func NewMonthKey(year int, month time.Month) MonthKey {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return MonthKey{year: t.Year(), month: t.Month()}
}

// ParseMonthKey parses the strict "YYYY-MM" form (zero-padded month).
func ParseMonthKey(s string) (MonthKey, error) {
	m := monthKeyPattern.FindStringSubmatch(s)
	if m == nil {
		return MonthKey{}, fmt.Errorf("%w: %q", ErrInvalidMonthKey, s)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return MonthKey{year: year, month: time.Month(month)}, nil
}

// MustParseMonthKey is ParseMonthKey for literals known to be valid.
func MustParseMonthKey(s string) MonthKey {
	mk, err := ParseMonthKey(s)
	if err != nil {
		panic(err)
	}
	return mk
}

// MonthKeyOf returns the month containing t, in t's own location.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{year: t.Year(), month: t.Month()}
}

// Year returns the calendar year.
func (m MonthKey) Year() int { return m.year }

// Month returns the calendar month.
func (m MonthKey) Month() time.Month { return m.month }

// IsZero reports whether m is the zero value.
func (m MonthKey) IsZero() bool { return m.year == 0 && m.month == 0 }

// String renders the key as "YYYY-MM".
func (m MonthKey) String() string {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).Format(monthKeyLayout)
}

// Start returns the first instant of the month at local midnight in loc.
func (m MonthKey) Start(loc *time.Location) time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, loc)
}

// Range returns the half-open interval [start, end) covering the month in loc.
// Every date filter over a month must use >= start AND < end.
func (m MonthKey) Range(loc *time.Location) (start, end time.Time) {
	start = m.Start(loc)
	end = time.Date(m.year, m.month+1, 1, 0, 0, 0, 0, loc)
	return start, end
}

// Contains reports whether t falls inside the month's range in loc.
func (m MonthKey) Contains(t time.Time, loc *time.Location) bool {
	start, end := m.Range(loc)
	return !t.Before(start) && t.Before(end)
}

// AddMonths shifts the key by n months (negative n goes back).
func (m MonthKey) AddMonths(n int) MonthKey {
	return NewMonthKey(m.year, m.month+time.Month(n))
}

// Before reports whether m is strictly earlier than other.
func (m MonthKey) Before(other MonthKey) bool {
	if m.year != other.year {
		return m.year < other.year
	}
	return m.month < other.month
}

// MarshalText implements encoding.TextMarshaler.
func (m MonthKey) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MonthKey) UnmarshalText(text []byte) error {
	parsed, err := ParseMonthKey(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
