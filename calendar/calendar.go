package calendar

import "time"

// View selects which grid a calendar is showing and at which granularity
// clicks land.
type View int

const (
	ViewDays View = iota
	ViewMonths
	ViewYears
)

// Config seeds a single-date Calendar. Every field is optional; zero values
// mean "unconstrained, no selection, clock time".
type Config struct {
	// Value is the externally committed selection, if any. When it is in
	// bounds it seeds both the selection and the viewed month.
	Value *time.Time
	// Default seeds the viewed month when Value is absent or out of bounds.
	Default *time.Time
	// Min and Max are the optional selectable window, normalized per NewBounds.
	Min, Max *time.Time
	// EnableTime turns on time-of-day selection; commits are then deferred
	// until both a date and a time exist.
	EnableTime bool
	// WeekStart is the first weekday of a grid row. Defaults to Sunday.
	WeekStart time.Weekday
	// OnCommit, when non-nil, receives every committed value. nil disables
	// notification; absence is a valid, silent configuration.
	OnCommit func(*time.Time)
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Calendar is the single-date selection state machine. All state is owned by
// one overlay instance and mutated only through the methods below; a
// disallowed operation is a silent no-op.
type Calendar struct {
	current      time.Time
	selected     *time.Time
	selectedTime string // "HH:mm", "" when unset
	view         View
	window       YearWindow
	bounds       Bounds
	timeEnabled  bool
	weekStart    time.Weekday
	onCommit     func(*time.Time)
	now          func() time.Time
}

// New builds a Calendar in days view, seeded from the committed value when it
// is valid, else from the clamped default, else from the clamped current
// moment.
func New(cfg Config) *Calendar {
	c := &Calendar{
		bounds:      NewBounds(cfg.Min, cfg.Max),
		timeEnabled: cfg.EnableTime,
		weekStart:   cfg.WeekStart,
		onCommit:    cfg.OnCommit,
		now:         cfg.Now,
	}
	if c.now == nil {
		c.now = time.Now
	}
	switch {
	case cfg.Value != nil && c.bounds.Contains(*cfg.Value):
		v := *cfg.Value
		c.current = v
		c.selected = &v
		if c.timeEnabled {
			c.selectedTime = v.Format("15:04")
		}
	case cfg.Default != nil:
		c.current = c.bounds.Clamp(*cfg.Default)
	default:
		c.current = c.bounds.Clamp(c.now())
	}
	c.window = YearWindowFor(c.current)
	return c
}

// Current returns the viewed month anchor.
func (c *Calendar) Current() time.Time { return c.current }

// Selected returns the committed selection, or nil.
func (c *Calendar) Selected() *time.Time { return c.selected }

// SelectedTime returns the chosen "HH:mm" time, or "".
func (c *Calendar) SelectedTime() string { return c.selectedTime }

// View returns the active grid granularity.
func (c *Calendar) View() View { return c.view }

// Window returns the year window backing the years view.
func (c *Calendar) Window() YearWindow { return c.window }

// TimeEnabled reports whether time-of-day selection is on.
func (c *Calendar) TimeEnabled() bool { return c.timeEnabled }

// Bounds returns the calendar's selectable window.
func (c *Calendar) Bounds() Bounds { return c.bounds }

// Select picks a day. Out-of-bounds picks change nothing. In-bounds picks
// become the selection and the viewed month; without time selection the value
// commits immediately, with it the commit waits until a time exists too.
func (c *Calendar) Select(date time.Time) {
	if !c.bounds.Contains(date) {
		return
	}
	c.current = date
	if c.timeEnabled && c.selectedTime != "" {
		combined := combineDayTime(date, c.selectedTime)
		c.selected = &combined
		c.commit(&combined)
		return
	}
	d := date
	c.selected = &d
	if !c.timeEnabled {
		day := StartOfDay(date)
		c.selected = &day
		c.commit(&day)
	}
}

// SelectToday jumps to and selects the current day, returning to days view.
// No-op when today is out of bounds.
func (c *Calendar) SelectToday() {
	today := StartOfDay(c.now())
	if !c.bounds.Contains(today) {
		return
	}
	c.view = ViewDays
	c.Select(today)
}

// SelectMonth rewrites the viewed month, clamps the result into bounds, and
// drops back to days view. A structurally valid month that lands outside the
// bounds snaps to the nearest bound instead of being rejected.
func (c *Calendar) SelectMonth(m time.Month) {
	c.current = c.bounds.Clamp(withMonth(c.current, c.current.Year(), m))
	c.view = ViewDays
}

// SelectYear rewrites the viewed year with the same clamp-not-reject policy.
// Years wholly outside the bounds are ignored.
func (c *Calendar) SelectYear(year int) {
	if !c.bounds.YearSelectable(year) {
		return
	}
	c.current = c.bounds.Clamp(withMonth(c.current, year, c.current.Month()))
	c.view = ViewDays
}

// ToggleMonthsView switches between days and months views.
func (c *Calendar) ToggleMonthsView() {
	if c.view == ViewMonths {
		c.view = ViewDays
		return
	}
	c.view = ViewMonths
}

// ToggleYearsView switches between the current view and years view,
// recomputing the 12-year window from the viewed month on entry.
func (c *Calendar) ToggleYearsView() {
	if c.view == ViewYears {
		c.view = ViewDays
		return
	}
	c.view = ViewYears
	c.window = YearWindowFor(c.current)
}

// Navigate steps the active view one unit: a month in days view, a year in
// months view, a 12-year page in years view. Steps that would leave the
// bounds are silent no-ops.
func (c *Calendar) Navigate(dir Direction) {
	switch c.view {
	case ViewDays:
		if !c.bounds.CanStepMonth(dir, c.current) {
			return
		}
		c.current = addMonths(c.current, int(dir))
	case ViewMonths:
		year := c.current.Year() + int(dir)
		if !c.bounds.YearSelectable(year) {
			return
		}
		c.current = c.bounds.Clamp(withMonth(c.current, year, c.current.Month()))
	case ViewYears:
		if !c.bounds.CanStepYearWindow(dir, c.window) {
			return
		}
		c.window = c.window.step(dir)
	}
}

// SelectTime records the chosen "HH:mm" time. With a date already selected
// the combined instant commits; a time on its own is never emitted.
func (c *Calendar) SelectTime(hhmm string) {
	c.selectedTime = hhmm
	if c.selected == nil {
		return
	}
	combined := combineDayTime(*c.selected, hhmm)
	c.selected = &combined
	c.commit(&combined)
}

// SelectDateTime records a date and its clock time together and commits
// once. The text-field shell uses it for typed values that carry both; the
// grid flows go through Select and SelectTime instead.
func (c *Calendar) SelectDateTime(t time.Time) {
	if !c.bounds.Contains(t) {
		return
	}
	v := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	c.current = v
	c.selected = &v
	if c.timeEnabled {
		c.selectedTime = v.Format("15:04")
	}
	c.commit(&v)
}

// Clear drops the selection and notifies with nil.
func (c *Calendar) Clear() {
	c.selected = nil
	c.selectedTime = ""
	c.commit(nil)
}

func (c *Calendar) commit(v *time.Time) {
	if c.onCommit != nil {
		c.onCommit(v)
	}
}

// combineDayTime merges a calendar day with an "HH:mm" clock time, zeroing
// seconds and below. A malformed time string keeps the start of the day.
func combineDayTime(day time.Time, hhmm string) time.Time {
	clock, err := time.Parse("15:04", hhmm)
	if err != nil {
		return StartOfDay(day)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location())
}

// withMonth rewrites year and month, keeping the day-of-month where the
// target month is long enough and clamping it where it is not.
func withMonth(t time.Time, year int, m time.Month) time.Time {
	day := t.Day()
	if last := daysIn(year, m); day > last {
		day = last
	}
	return time.Date(year, m, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// addMonths steps whole calendar months without day-overflow spill: stepping
// forward from Jan 31 lands on Feb 28/29, not Mar 2.
func addMonths(t time.Time, months int) time.Time {
	first := startOfMonth(t).AddDate(0, months, 0)
	return withMonth(t, first.Year(), first.Month())
}

func daysIn(year int, m time.Month) int {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}
