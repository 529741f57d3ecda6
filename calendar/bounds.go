// Package calendar implements the selection state machines behind the
// datepick widgets: a single-date calendar with optional time-of-day, a
// two-viewport date-range calendar, and the pure date helpers they share.
// The package is framework-free; rendering and key handling live in the
// parent package.
package calendar

import "time"

// Direction steps a calendar backwards or forwards.
type Direction int

const (
	DirPrev Direction = -1
	DirNext Direction = 1
)

// yearsPerWindow is the page size of the year-selection view.
const yearsPerWindow = 12

// Bounds is an optional inclusive [min, max] window outside which no date is
// selectable. Construct with NewBounds; the zero value is unconstrained.
type Bounds struct {
	min, max *time.Time
}

// NewBounds normalizes the optional limits: min is floored to the start of
// its day, max is ceiled to the end of its day. A nil limit leaves that side
// unconstrained.
func NewBounds(min, max *time.Time) Bounds {
	var b Bounds
	if min != nil {
		t := StartOfDay(*min)
		b.min = &t
	}
	if max != nil {
		t := EndOfDay(*max)
		b.max = &t
	}
	return b
}

// Min returns the normalized lower bound, or nil.
func (b Bounds) Min() *time.Time { return b.min }

// Max returns the normalized upper bound, or nil.
func (b Bounds) Max() *time.Time { return b.max }

// Contains reports whether t falls inside the bounds, inclusive on both ends.
func (b Bounds) Contains(t time.Time) bool {
	if b.min != nil && t.Before(*b.min) {
		return false
	}
	if b.max != nil && t.After(*b.max) {
		return false
	}
	return true
}

// ContainsDay reports whether any instant of t's calendar day is in bounds.
func (b Bounds) ContainsDay(t time.Time) bool {
	if b.min != nil && EndOfDay(t).Before(*b.min) {
		return false
	}
	if b.max != nil && StartOfDay(t).After(*b.max) {
		return false
	}
	return true
}

// containsMonth reports whether any instant of t's calendar month is in bounds.
func (b Bounds) containsMonth(t time.Time) bool {
	first := startOfMonth(t)
	last := EndOfDay(first.AddDate(0, 1, -1))
	if b.min != nil && last.Before(*b.min) {
		return false
	}
	if b.max != nil && first.After(*b.max) {
		return false
	}
	return true
}

// YearSelectable reports whether any instant in the given calendar year is in
// bounds. Comparison is by year only, inclusive.
func (b Bounds) YearSelectable(year int) bool {
	if b.min != nil && year < b.min.Year() {
		return false
	}
	if b.max != nil && year > b.max.Year() {
		return false
	}
	return true
}

// Clamp snaps t to the nearest bound when it falls outside, otherwise
// returns t unchanged. Every mutation site that rewrites a month or year
// runs its result through Clamp so the snap behavior is uniform.
func (b Bounds) Clamp(t time.Time) time.Time {
	if b.min != nil && t.Before(*b.min) {
		return *b.min
	}
	if b.max != nil && t.After(*b.max) {
		return *b.max
	}
	return t
}

// CanStepMonth reports whether the month containing from can step one month
// in the given direction without leaving the bounds entirely. Stepping back
// is allowed as long as the previous month's last instant is not before min;
// stepping forward as long as the next month's first instant is not after max.
func (b Bounds) CanStepMonth(dir Direction, from time.Time) bool {
	if dir == DirPrev {
		if b.min == nil {
			return true
		}
		prevEnd := EndOfDay(startOfMonth(from).AddDate(0, 0, -1))
		return !prevEnd.Before(*b.min)
	}
	if b.max == nil {
		return true
	}
	nextStart := startOfMonth(from).AddDate(0, 1, 0)
	return !nextStart.After(*b.max)
}

// CanStepYearWindow reports whether the 12-year window can page in the given
// direction without moving wholly outside the bounds.
func (b Bounds) CanStepYearWindow(dir Direction, w YearWindow) bool {
	if dir == DirPrev {
		if b.min == nil {
			return true
		}
		return w.Start-yearsPerWindow >= b.min.Year()
	}
	if b.max == nil {
		return true
	}
	return w.End+1 <= b.max.Year()
}

// YearWindow is a fixed 12-year span used to paginate year selection.
// Windows are aligned so Start is always a multiple of 12.
type YearWindow struct {
	Start, End int
}

// YearWindowFor returns the aligned window containing the year of t.
func YearWindowFor(t time.Time) YearWindow {
	start := t.Year() / yearsPerWindow * yearsPerWindow
	return YearWindow{Start: start, End: start + yearsPerWindow - 1}
}

// step returns the adjacent window in the given direction.
func (w YearWindow) step(dir Direction) YearWindow {
	start := w.Start + int(dir)*yearsPerWindow
	return YearWindow{Start: start, End: start + yearsPerWindow - 1}
}

// Years lists the window's years in ascending order.
func (w YearWindow) Years() []int {
	out := make([]int, 0, yearsPerWindow)
	for y := w.Start; y <= w.End; y++ {
		out = append(out, y)
	}
	return out
}

// StartOfDay returns t with the clock zeroed, same location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// sameMonth reports whether a and b fall in the same calendar month.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// monthAtOrBefore reports whether a's month is the same as or earlier than
// b's month, ignoring days.
func monthAtOrBefore(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() < b.Year()
	}
	return a.Month() <= b.Month()
}

// dayBefore reports whether a's calendar day is strictly before b's.
func dayBefore(a, b time.Time) bool {
	return StartOfDay(a).Before(StartOfDay(b))
}
