package calendar

import (
	"testing"
	"time"
)

func presetByID(t *testing.T, id string) Preset {
	t.Helper()
	for _, p := range Presets() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("no preset %q", id)
	return Preset{}
}

func TestThisWeekOnAWednesday(t *testing.T) {
	// 2024-05-08 is a Wednesday.
	now := time.Date(2024, time.May, 8, 15, 30, 0, 0, time.Local)
	start, end := presetByID(t, "this_week").Range(now)

	if !start.Equal(date(2024, time.May, 5)) {
		t.Fatalf("start = %v, want preceding Sunday 2024-05-05 at start of day", start)
	}
	if !SameDay(end, date(2024, time.May, 11)) || end.Hour() != 23 {
		t.Fatalf("end = %v, want following Saturday 2024-05-11 at end of day", end)
	}
}

func TestThisWeekOnASunday(t *testing.T) {
	// 2024-05-05 is a Sunday: the week starts that same day.
	now := time.Date(2024, time.May, 5, 8, 0, 0, 0, time.Local)
	start, _ := presetByID(t, "this_week").Range(now)
	if !start.Equal(date(2024, time.May, 5)) {
		t.Fatalf("start = %v, want same-day Sunday", start)
	}
}

func TestPresetRanges(t *testing.T) {
	now := time.Date(2024, time.May, 8, 15, 30, 0, 0, time.Local)
	cases := []struct {
		id        string
		wantStart time.Time
		wantEnd   time.Time // compared by day
	}{
		{"today", date(2024, time.May, 8), date(2024, time.May, 8)},
		{"yesterday", date(2024, time.May, 7), date(2024, time.May, 7)},
		{"last_week", date(2024, time.April, 28), date(2024, time.May, 4)},
		{"last_7_days", date(2024, time.May, 2), date(2024, time.May, 8)},
		{"this_month", date(2024, time.May, 1), date(2024, time.May, 31)},
		{"last_3_months", date(2024, time.February, 8), date(2024, time.May, 8)},
		{"this_year", date(2024, time.January, 1), date(2024, time.December, 31)},
		{"last_year", date(2023, time.January, 1), date(2023, time.December, 31)},
	}
	for _, tc := range cases {
		start, end := presetByID(t, tc.id).Range(now)
		if !start.Equal(tc.wantStart) {
			t.Fatalf("%s start = %v, want %v", tc.id, start, tc.wantStart)
		}
		if !SameDay(end, tc.wantEnd) {
			t.Fatalf("%s end = %v, want day %v", tc.id, end, tc.wantEnd)
		}
		if end.Hour() != 23 || end.Minute() != 59 {
			t.Fatalf("%s end = %v, want end of day", tc.id, end)
		}
		if end.Before(start) {
			t.Fatalf("%s produced inverted range %v..%v", tc.id, start, end)
		}
	}
}

func TestPresetsArePureFunctionsOfNow(t *testing.T) {
	now := time.Date(2024, time.May, 8, 15, 30, 0, 0, time.Local)
	for _, p := range Presets() {
		s1, e1 := p.Range(now)
		s2, e2 := p.Range(now)
		if !s1.Equal(s2) || !e1.Equal(e2) {
			t.Fatalf("%s is not deterministic: %v..%v vs %v..%v", p.ID, s1, e1, s2, e2)
		}
	}
}
