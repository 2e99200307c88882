package flash

import (
	"testing"
	"time"
)

func TestActiveDecisionTable(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*3600)
	now := time.Date(2025, 9, 17, 12, 0, 0, 0, loc)

	tests := []struct {
		name     string
		isFlash  bool
		start    string
		end      string
		expected bool
	}{
		{"not flash", false, "", "", false},
		{"not flash with window", false, "2025-09-01", "2025-09-30", false},
		{"no dates", true, "", "", true},
		{"inside window", true, "2025-09-15", "2025-09-21", true},
		{"before window", true, "2025-09-18", "2025-09-21", false},
		{"after window", true, "2025-09-01", "2025-09-16", false},
		{"starts today", true, "2025-09-17", "2025-09-21", true},
		{"ends today", true, "2025-09-10", "2025-09-17", true},
		{"start only, started", true, "2025-09-17", "", true},
		{"start only, future", true, "2025-09-18", "", false},
		{"end only, open", true, "", "2025-09-17", true},
		{"end only, closed", true, "", "2025-09-16", false},
		{"garbage start", true, "soon", "", false},
		{"garbage end", true, "2025-09-01", "later", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Active(tt.isFlash, tt.start, tt.end, now); got != tt.expected {
				t.Errorf("Active(%v, %q, %q) = %v, expected %v", tt.isFlash, tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestActiveEndIsInclusiveThroughLastMillisecond(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	lastMs := time.Date(2025, 9, 21, 23, 59, 59, 999*int(time.Millisecond), loc)

	if !Active(true, "", "2025-09-21", lastMs) {
		t.Error("expected active at 23:59:59.999 of the end day")
	}
	// Sub-millisecond remainder is ignored, as in the browser.
	if !Active(true, "", "2025-09-21", lastMs.Add(500*time.Microsecond)) {
		t.Error("expected active within the final millisecond")
	}
	if Active(true, "", "2025-09-21", lastMs.Add(time.Millisecond)) {
		t.Error("expected inactive at midnight after the end day")
	}
}

func TestActiveUsesLocalCalendarDates(t *testing.T) {
	// 2025-09-15 00:30 in UTC+9 is still 2025-09-14 in UTC. A UTC parse of
	// the start date would report the sale as not yet started.
	tokyo := time.FixedZone("JST", 9*3600)
	now := time.Date(2025, 9, 15, 0, 30, 0, 0, tokyo)
	if !Active(true, "2025-09-15", "", now) {
		t.Error("expected sale to start at local midnight")
	}

	// 2025-09-21 23:30 in UTC-5 is already 2025-09-22 in UTC.
	ny := time.FixedZone("EST", -5*3600)
	late := time.Date(2025, 9, 21, 23, 30, 0, 0, ny)
	if !Active(true, "", "2025-09-21", late) {
		t.Error("expected sale to run until local end of day")
	}
}

func TestActiveWeekWindowScenario(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.Local)
	start := now.AddDate(0, 0, -1).Format("2006-01-02")
	end := now.AddDate(0, 0, 6).Format("2006-01-02")

	if !Active(true, start, end, now) {
		t.Fatalf("expected active between %s and %s", start, end)
	}

	after := time.Date(now.Year(), now.Month(), now.Day()+7, 0, 0, 0, 0, time.Local)
	if Active(true, start, end, after) {
		t.Errorf("expected inactive at %s", after)
	}
}
