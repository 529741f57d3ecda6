package calendar

import "time"

// DayCell is one renderable day of a month grid.
type DayCell struct {
	Date       time.Time
	InMonth    bool // belongs to the displayed month, not a leading/trailing filler
	Today      bool
	Selected   bool // the committed selection
	Selectable bool // inside the bounds
	Disabled   bool // not pickable, for any reason

	// Range-only flags, zero for a single-date calendar.
	InRange    bool // inside the committed span or the hover preview
	RangeStart bool
	RangeEnd   bool
}

// MonthCell is one renderable month of the months view.
type MonthCell struct {
	Month      time.Month
	Current    bool // the displayed month
	Selected   bool // month of the committed selection in the displayed year
	Selectable bool
	Disabled   bool
}

// YearCell is one renderable year of the years view.
type YearCell struct {
	Year       int
	Current    bool // the displayed year
	Selected   bool // year of the committed selection
	InWindow   bool
	Selectable bool
	Disabled   bool
}

// DayGrid projects the viewed month into six rows of seven cells, padded
// with the adjacent months' days so every row is full. Pure: no mutation.
func (c *Calendar) DayGrid() [][]DayCell {
	return dayGrid(c.current, c.selected, c.bounds, c.weekStart, c.now(), nil)
}

// MonthGrid projects the twelve months of the viewed year.
func (c *Calendar) MonthGrid() []MonthCell {
	return monthGrid(c.current, c.selected, c.bounds)
}

// YearGrid projects the active 12-year window.
func (c *Calendar) YearGrid() []YearCell {
	return yearGrid(c.current, c.selected, c.window, c.bounds)
}

// dayGrid is shared by the single and range calendars. extraDisabled, when
// non-nil, marks additional cells disabled beyond the bounds check.
func dayGrid(current time.Time, selected *time.Time, bounds Bounds, weekStart time.Weekday, now time.Time, extraDisabled func(time.Time) bool) [][]DayCell {
	first := startOfMonth(current)
	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7
	day := first.AddDate(0, 0, -lead)

	grid := make([][]DayCell, 0, 6)
	for row := 0; row < 6; row++ {
		week := make([]DayCell, 0, 7)
		for col := 0; col < 7; col++ {
			selectable := bounds.ContainsDay(day)
			disabled := !selectable
			if extraDisabled != nil && extraDisabled(day) {
				disabled = true
			}
			week = append(week, DayCell{
				Date:       day,
				InMonth:    sameMonth(day, current),
				Today:      SameDay(day, now),
				Selected:   selected != nil && SameDay(day, *selected),
				Selectable: selectable,
				Disabled:   disabled,
			})
			day = day.AddDate(0, 0, 1)
		}
		grid = append(grid, week)
	}
	return grid
}

func monthGrid(current time.Time, selected *time.Time, bounds Bounds) []MonthCell {
	year := current.Year()
	cells := make([]MonthCell, 0, 12)
	for m := time.January; m <= time.December; m++ {
		monthStart := time.Date(year, m, 1, 0, 0, 0, 0, current.Location())
		selectable := bounds.containsMonth(monthStart)
		cells = append(cells, MonthCell{
			Month:      m,
			Current:    m == current.Month(),
			Selected:   selected != nil && selected.Year() == year && selected.Month() == m,
			Selectable: selectable,
			Disabled:   !selectable,
		})
	}
	return cells
}

func yearGrid(current time.Time, selected *time.Time, window YearWindow, bounds Bounds) []YearCell {
	cells := make([]YearCell, 0, yearsPerWindow)
	for _, y := range window.Years() {
		selectable := bounds.YearSelectable(y)
		cells = append(cells, YearCell{
			Year:       y,
			Current:    y == current.Year(),
			Selected:   selected != nil && selected.Year() == y,
			InWindow:   true,
			Selectable: selectable,
			Disabled:   !selectable,
		})
	}
	return cells
}
