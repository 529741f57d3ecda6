package calendar

import "time"

// Phase is the two-step range selection cycle: the first pick commits an
// anchor, the second resolves the range and returns to PhaseStart.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseEnd
)

// Side names one of the two linked calendar viewports.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// viewport is one side's independent view state.
type viewport struct {
	current time.Time
	view    View
	window  YearWindow
}

// RangeConfig seeds a Range machine.
type RangeConfig struct {
	// Start and End are the externally committed pair, if any.
	Start, End *time.Time
	// Default seeds the left viewport when Start is absent or out of bounds.
	Default *time.Time
	// Min and Max bound every pick and navigation.
	Min, Max *time.Time
	// WeekStart is the first weekday of a grid row. Defaults to Sunday.
	WeekStart time.Weekday
	// OnPick, when non-nil, observes every selection change: each completed
	// pick, preset application, and clear. The buffered Apply/Cancel commit
	// to the host is the shell's concern, not this observer's.
	OnPick func(start, end *time.Time)
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Range drives two linked calendar viewports sharing one selection. The right
// viewport stays at least one month ahead of the left; while neither side is
// browsing months or years it sits exactly one month ahead.
type Range struct {
	left, right viewport
	start, end  *time.Time // buffered pair, pending Apply
	// last pair the host has seen; Cancel reverts the buffer to these
	committedStart, committedEnd *time.Time
	hover                        *time.Time
	phase                        Phase
	special                      Side // which side, if any, owns the months/years view
	bounds                       Bounds
	weekStart                    time.Weekday
	onPick                       func(start, end *time.Time)
	now                          func() time.Time
}

// NewRange builds a Range in days view on both sides, seeded from the
// committed pair where valid.
func NewRange(cfg RangeConfig) *Range {
	r := &Range{
		bounds:    NewBounds(cfg.Min, cfg.Max),
		weekStart: cfg.WeekStart,
		onPick:    cfg.OnPick,
		now:       cfg.Now,
	}
	if r.now == nil {
		r.now = time.Now
	}
	if cfg.Start != nil && r.bounds.Contains(*cfg.Start) {
		s := *cfg.Start
		r.start, r.committedStart = &s, cloneTime(&s)
		r.left.current = s
	} else if cfg.Default != nil {
		r.left.current = r.bounds.Clamp(*cfg.Default)
	} else {
		r.left.current = r.bounds.Clamp(r.now())
	}
	if cfg.End != nil && r.bounds.Contains(*cfg.End) {
		e := *cfg.End
		r.end, r.committedEnd = &e, cloneTime(&e)
	}
	r.left.window = YearWindowFor(r.left.current)
	r.right.current = addMonths(r.left.current, 1)
	r.right.window = YearWindowFor(r.right.current)
	return r
}

// Start returns the buffered range start, or nil.
func (r *Range) Start() *time.Time { return r.start }

// End returns the buffered range end, or nil.
func (r *Range) End() *time.Time { return r.end }

// Committed returns the pair the host last saw.
func (r *Range) Committed() (*time.Time, *time.Time) {
	return r.committedStart, r.committedEnd
}

// Phase returns the selection phase.
func (r *Range) Phase() Phase { return r.phase }

// Hovered returns the preview day, or nil.
func (r *Range) Hovered() *time.Time { return r.hover }

// SpecialView returns which side is showing months or years, or SideNone.
func (r *Range) SpecialView() Side { return r.special }

// CurrentOf returns a side's viewed month anchor.
func (r *Range) CurrentOf(side Side) time.Time { return r.vp(side).current }

// ViewOf returns a side's active view.
func (r *Range) ViewOf(side Side) View { return r.vp(side).view }

// WindowOf returns a side's year window.
func (r *Range) WindowOf(side Side) YearWindow { return r.vp(side).window }

// Bounds returns the machine's selectable window.
func (r *Range) Bounds() Bounds { return r.bounds }

func (r *Range) vp(side Side) *viewport {
	if side == SideRight {
		return &r.right
	}
	return &r.left
}

// Pick runs the two-phase selection. Out-of-bounds days are ignored. The
// first pick anchors the range; the second either resolves it or, when it
// precedes the anchor, replaces the anchor instead of restarting — the old
// anchor is discarded and any previously resolved end is kept as-is.
func (r *Range) Pick(date time.Time) {
	if !r.bounds.Contains(date) {
		return
	}
	d := date
	if r.phase == PhaseEnd && r.start != nil {
		if dayBefore(d, *r.start) {
			r.start = &d
		} else {
			r.end = &d
		}
		r.phase = PhaseStart
		r.hover = nil
		r.notifyPick()
		return
	}
	// PhaseStart, or PhaseEnd left without an anchor: begin a new range.
	r.start = &d
	r.end = nil
	r.hover = nil
	r.phase = PhaseEnd
	r.notifyPick()
}

// Hover records a preview day. Only meaningful between the first and second
// pick; it never carries commitment semantics.
func (r *Range) Hover(date time.Time) {
	if r.phase != PhaseEnd || r.start == nil {
		return
	}
	d := date
	r.hover = &d
}

// ClearHover drops the preview day.
func (r *Range) ClearHover() { r.hover = nil }

// InSelectedRange reports whether day should render as part of the selection:
// the committed span when both ends exist, the chronological anchor-to-hover
// span while an end is pending, or the anchor day alone.
func (r *Range) InSelectedRange(day time.Time) bool {
	if r.start == nil {
		return false
	}
	if r.end != nil {
		return !dayBefore(day, *r.start) && !dayBefore(*r.end, day)
	}
	if r.hover != nil {
		lo, hi := *r.start, *r.hover
		if dayBefore(hi, lo) {
			lo, hi = hi, lo
		}
		return !dayBefore(day, lo) && !dayBefore(hi, day)
	}
	return SameDay(day, *r.start)
}

// SelectMonth rewrites a side's viewed month and returns it to days view,
// releasing the special-view marker. The right side may not land at or before
// the left's month; when it would, the left is pushed back in lockstep
// instead of the action being rejected.
func (r *Range) SelectMonth(side Side, m time.Month) {
	vp := r.vp(side)
	vp.current = r.bounds.Clamp(withMonth(vp.current, vp.current.Year(), m))
	r.exitSpecial(side)
}

// SelectYear rewrites a side's viewed year with the same policy. Years wholly
// out of bounds are ignored.
func (r *Range) SelectYear(side Side, year int) {
	if !r.bounds.YearSelectable(year) {
		return
	}
	vp := r.vp(side)
	vp.current = r.bounds.Clamp(withMonth(vp.current, year, vp.current.Month()))
	r.exitSpecial(side)
}

// ToggleMonthsView switches a side between days and months views. Only one
// side may hold a non-day view; the request is ignored while the other side
// holds it.
func (r *Range) ToggleMonthsView(side Side) {
	if r.special != SideNone && r.special != side {
		return
	}
	vp := r.vp(side)
	if vp.view == ViewMonths {
		vp.view = ViewDays
		r.exitSpecial(side)
		return
	}
	vp.view = ViewMonths
	r.special = side
}

// ToggleYearsView switches a side between its view and years view,
// recomputing the 12-year window on entry.
func (r *Range) ToggleYearsView(side Side) {
	if r.special != SideNone && r.special != side {
		return
	}
	vp := r.vp(side)
	if vp.view == ViewYears {
		vp.view = ViewDays
		r.exitSpecial(side)
		return
	}
	vp.view = ViewYears
	vp.window = YearWindowFor(vp.current)
	r.special = side
}

// Navigate steps a side's active view one unit, mirroring the single
// calendar's guards. Day-view steps move both viewports in lockstep, keeping
// the right exactly one month ahead of the left.
func (r *Range) Navigate(side Side, dir Direction) {
	vp := r.vp(side)
	switch vp.view {
	case ViewDays:
		if !r.bounds.CanStepMonth(dir, vp.current) {
			return
		}
		vp.current = addMonths(vp.current, int(dir))
		r.enforceOrder(side)
	case ViewMonths:
		year := vp.current.Year() + int(dir)
		if !r.bounds.YearSelectable(year) {
			return
		}
		vp.current = r.bounds.Clamp(withMonth(vp.current, year, vp.current.Month()))
	case ViewYears:
		if !r.bounds.CanStepYearWindow(dir, vp.window) {
			return
		}
		vp.window = vp.window.step(dir)
	}
}

// exitSpecial returns a side to days view, clears the marker when that side
// held it, and re-establishes cross-side month order.
func (r *Range) exitSpecial(side Side) {
	r.vp(side).view = ViewDays
	if r.special == side {
		r.special = SideNone
	}
	r.enforceOrder(side)
}

// enforceOrder re-establishes the lockstep invariant after one side's month
// changed: whichever side moved, the other is placed exactly one month away,
// so the right viewport is always exactly one month ahead once both sides are
// back in day view. A right-side request at or before the left therefore
// pushes the left back to requested − 1 month instead of being rejected.
func (r *Range) enforceOrder(changed Side) {
	if changed == SideRight {
		r.left.current = addMonths(r.right.current, -1)
		return
	}
	r.right.current = addMonths(r.left.current, 1)
}

// Apply promotes the buffered pair to the committed pair and returns it. The
// shell closes the overlay and notifies the host with the result.
func (r *Range) Apply() (*time.Time, *time.Time) {
	r.committedStart = cloneTime(r.start)
	r.committedEnd = cloneTime(r.end)
	r.phase = PhaseStart
	r.hover = nil
	return r.committedStart, r.committedEnd
}

// Cancel reverts the buffer to the last committed pair without notifying.
func (r *Range) Cancel() {
	r.start = cloneTime(r.committedStart)
	r.end = cloneTime(r.committedEnd)
	r.phase = PhaseStart
	r.hover = nil
}

// Clear resets both the buffered and committed pair and notifies
// immediately; clearing is not buffered behind Apply.
func (r *Range) Clear() {
	r.start, r.end = nil, nil
	r.committedStart, r.committedEnd = nil, nil
	r.phase = PhaseStart
	r.hover = nil
	r.notifyPick()
}

// ApplyPreset buffers a preset's output exactly as a completed two-pick
// selection would: single notification, phase back to start, left viewport
// moved to the preset's start month. Apply/Cancel still gate the commit.
func (r *Range) ApplyPreset(p Preset) {
	s, e := p.Range(r.now())
	s = r.bounds.Clamp(s)
	e = r.bounds.Clamp(e)
	r.start, r.end = &s, &e
	r.phase = PhaseStart
	r.hover = nil
	r.left.current = s
	r.left.view = ViewDays
	r.right.view = ViewDays
	r.special = SideNone
	r.enforceOrder(SideLeft)
	r.notifyPick()
}

// DayGrid projects a side's viewed month. Right-side days strictly before a
// pending anchor are rendered but disabled. Range membership flags come from
// InSelectedRange so committed spans and hover previews render identically.
func (r *Range) DayGrid(side Side) [][]DayCell {
	vp := r.vp(side)
	var extra func(time.Time) bool
	if side == SideRight && r.phase == PhaseEnd && r.start != nil {
		anchor := *r.start
		extra = func(d time.Time) bool { return dayBefore(d, anchor) }
	}
	grid := dayGrid(vp.current, r.start, r.bounds, r.weekStart, r.now(), extra)
	for i := range grid {
		for j := range grid[i] {
			cell := &grid[i][j]
			cell.InRange = r.InSelectedRange(cell.Date)
			cell.RangeStart = r.start != nil && SameDay(cell.Date, *r.start)
			cell.RangeEnd = r.end != nil && SameDay(cell.Date, *r.end)
			cell.Selected = cell.RangeStart || cell.RangeEnd
		}
	}
	return grid
}

// MonthGrid projects a side's months view.
func (r *Range) MonthGrid(side Side) []MonthCell {
	return monthGrid(r.vp(side).current, r.start, r.bounds)
}

// YearGrid projects a side's years view.
func (r *Range) YearGrid(side Side) []YearCell {
	vp := r.vp(side)
	return yearGrid(vp.current, r.start, vp.window, r.bounds)
}

func (r *Range) notifyPick() {
	if r.onPick != nil {
		r.onPick(cloneTime(r.start), cloneTime(r.end))
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
