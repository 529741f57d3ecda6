package calendar

import "time"

// Preset is a named date-range generator. Range is a pure function of "now":
// it returns a start-of-day start and an end-of-day end.
type Preset struct {
	ID    string
	Label string
	Range func(now time.Time) (time.Time, time.Time)
}

// Presets returns the built-in presets in display order. Weeks start on
// Sunday.
func Presets() []Preset {
	return []Preset{
		{ID: "today", Label: "Today", Range: func(now time.Time) (time.Time, time.Time) {
			return StartOfDay(now), EndOfDay(now)
		}},
		{ID: "yesterday", Label: "Yesterday", Range: func(now time.Time) (time.Time, time.Time) {
			y := now.AddDate(0, 0, -1)
			return StartOfDay(y), EndOfDay(y)
		}},
		{ID: "this_week", Label: "This Week", Range: func(now time.Time) (time.Time, time.Time) {
			sunday := StartOfDay(now).AddDate(0, 0, -int(now.Weekday()))
			return sunday, EndOfDay(sunday.AddDate(0, 0, 6))
		}},
		{ID: "last_week", Label: "Last Week", Range: func(now time.Time) (time.Time, time.Time) {
			sunday := StartOfDay(now).AddDate(0, 0, -int(now.Weekday())-7)
			return sunday, EndOfDay(sunday.AddDate(0, 0, 6))
		}},
		{ID: "last_7_days", Label: "Last 7 Days", Range: func(now time.Time) (time.Time, time.Time) {
			return StartOfDay(now.AddDate(0, 0, -6)), EndOfDay(now)
		}},
		{ID: "this_month", Label: "This Month", Range: func(now time.Time) (time.Time, time.Time) {
			first := startOfMonth(now)
			return first, EndOfDay(first.AddDate(0, 1, -1))
		}},
		{ID: "last_3_months", Label: "Last 3 Months", Range: func(now time.Time) (time.Time, time.Time) {
			return StartOfDay(addMonths(now, -3)), EndOfDay(now)
		}},
		{ID: "this_year", Label: "This Year", Range: func(now time.Time) (time.Time, time.Time) {
			jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
			return jan1, EndOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()))
		}},
		{ID: "last_year", Label: "Last Year", Range: func(now time.Time) (time.Time, time.Time) {
			jan1 := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())
			return jan1, EndOfDay(time.Date(now.Year()-1, time.December, 31, 0, 0, 0, 0, now.Location()))
		}},
	}
}
