package valueobject

import (
	"errors"
	"testing"
	"time"
)

func TestParseMonthKey(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
		year    int
		month   time.Month
	}{
		{input: "2024-02", year: 2024, month: time.February},
		{input: "1999-12", year: 1999, month: time.December},
		{input: "2024-2", wantErr: true},
		{input: "2024-13", wantErr: true},
		{input: "2024-00", wantErr: true},
		{input: "24-02", wantErr: true},
		{input: "2024-02-01", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMonthKey(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMonthKey) {
					t.Fatalf("expected ErrInvalidMonthKey, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Year() != tt.year || got.Month() != tt.month {
				t.Errorf("got %d-%d, want %d-%d", got.Year(), got.Month(), tt.year, tt.month)
			}
			if got.String() != tt.input {
				t.Errorf("round trip: got %s, want %s", got, tt.input)
			}
		})
	}
}

func TestMonthKey_RangeIsHalfOpen(t *testing.T) {
	mk := MustParseMonthKey("2024-02")
	start, end := mk.Range(time.UTC)

	if !start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start %s", start)
	}
	if !end.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end %s", end)
	}

	if !mk.Contains(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), time.UTC) {
		t.Error("expected leap day 23:59:59 to be inside February")
	}
	if mk.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.UTC) {
		t.Error("expected first instant of March to be outside February")
	}
	if !mk.Contains(start, time.UTC) {
		t.Error("expected start to be inside the range")
	}
}

func TestMonthKey_RangeUsesLocation(t *testing.T) {
	loc := time.FixedZone("EAT", 3*60*60)
	start, end := MustParseMonthKey("2024-12").Range(loc)

	if start.Location() != loc || end.Location() != loc {
		t.Fatal("expected range in the given location")
	}
	if !end.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, loc)) {
		t.Errorf("expected year rollover, got %s", end)
	}
	if !start.Equal(time.Date(2024, 11, 30, 21, 0, 0, 0, time.UTC)) {
		t.Errorf("expected local midnight, got %s", start.UTC())
	}
}

func TestMonthKey_AddMonthsAndBefore(t *testing.T) {
	mk := MustParseMonthKey("2024-01")

	if got := mk.AddMonths(-3).String(); got != "2023-10" {
		t.Errorf("AddMonths(-3) = %s", got)
	}
	if got := mk.AddMonths(12).String(); got != "2025-01" {
		t.Errorf("AddMonths(12) = %s", got)
	}
	if !mk.AddMonths(-1).Before(mk) {
		t.Error("expected previous month to be before")
	}
	if mk.Before(mk) {
		t.Error("a month is not before itself")
	}
	if MustParseMonthKey("2025-01").Before(MustParseMonthKey("2024-12")) {
		t.Error("year ordering is wrong")
	}
}

func TestMonthKey_TextRoundTrip(t *testing.T) {
	var mk MonthKey
	if err := mk.UnmarshalText([]byte("2030-07")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, _ := mk.MarshalText()
	if string(text) != "2030-07" {
		t.Errorf("got %s", text)
	}
	if err := mk.UnmarshalText([]byte("July")); err == nil {
		t.Error("expected error for invalid text")
	}
}
