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

func TestFormatStamp(t *testing.T) {
	value := time.Date(2026, 1, 15, 19, 30, 0, 0, time.UTC)
	if got := FormatStamp(value); got != "2026-01-15 07:30 PM" {
		t.Fatalf("expected stamp, got %s", got)
	}
}

func TestLooksLikeClock(t *testing.T) {
	cases := map[string]bool{
		"7:30 PM":  true,
		"12:00 am": true,
		"TBD":      false,
		"BOS":      false,
		"730 PM":   false,
	}
	for in, want := range cases {
		if got := LooksLikeClock(in); got != want {
			t.Fatalf("LooksLikeClock(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"7:30 PM", 19*60 + 30, true},
		{"12:00 AM", 0, true},
		{"12:30 PM", 12*60 + 30, true},
		{"1:05 am", 65, true},
		{"TBD", 0, false},
		{"13:00 PM", 0, false},
		{"7:61 PM", 0, false},
	}
	for _, tc := range cases {
		got, ok := ClockMinutes(tc.in)
		if ok != tc.ok || got != tc.minutes {
			t.Fatalf("ClockMinutes(%q) = %d,%v want %d,%v", tc.in, got, ok, tc.minutes, tc.ok)
		}
	}
}
