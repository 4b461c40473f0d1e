// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date form accepted next to RFC 3339.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date is neither YYYY-MM-DD nor RFC 3339.
var ErrInvalidDate = errors.New("date must be YYYY-MM-DD or RFC 3339")

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// Money renders an amount with two decimal places.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Amount converts a JSON number into a two-place decimal.
func Amount(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

// ParseDate parses a request date. A bare calendar date is midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t.In(loc), nil
}

// FormatTime renders an instant as RFC 3339 in UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
