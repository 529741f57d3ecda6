package datepick

import (
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/datepick/calendar"
)

// rangePane is the focus target inside an open range overlay.
type rangePane int

const (
	panePresets rangePane = iota
	paneLeftCal
	paneRightCal
	paneFooter
)

// RangePickerConfig configures a RangePicker.
type RangePickerConfig struct {
	Label string
	// Start and End are the externally committed pair the field starts with.
	Start *time.Time
	End   *time.Time
	Min   *time.Time
	Max   *time.Time
	// ShowPresets adds the filterable preset column.
	ShowPresets bool
	// Disabled renders the field muted and ignores all input.
	Disabled      bool
	DisplayFormat string
	WeekStart     time.Weekday
	Theme         *Theme
	// OnChange receives the committed pair on Apply and Clear only; picks
	// inside the overlay stay buffered. A nil handler is silent.
	OnChange func(start, end *time.Time)
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// RangePicker is the date-range input shell: a text field that opens two
// linked calendars with an optional preset column. Selections buffer inside
// the overlay; only Apply and Clear reach the host.
type RangePicker struct {
	cfg   RangePickerConfig
	theme Theme
	keys  keyMap
	now   func() time.Time

	committedStart *time.Time
	committedEnd   *time.Time

	open    bool
	focused bool
	rng     *calendar.Range

	pane       rangePane
	side       calendar.Side // which calendar pane holds the day cursor
	cursor     time.Time
	cellCursor int

	presets       []calendar.Preset
	presetQuery   string
	presetMatches []int // indices into presets, filter order
	presetCursor  int

	footerOnApply bool
}

// NewRangePicker builds a closed picker showing the committed pair.
func NewRangePicker(cfg RangePickerConfig) *RangePicker {
	if cfg.DisplayFormat == "" {
		cfg.DisplayFormat = DefaultDisplayFormat
	}
	theme := DefaultTheme()
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	p := &RangePicker{
		cfg:            cfg,
		theme:          theme,
		keys:           newKeyMap(),
		now:            now,
		committedStart: cloneValue(cfg.Start),
		committedEnd:   cloneValue(cfg.End),
		presets:        calendar.Presets(),
	}
	p.refilterPresets()
	return p
}

// Committed returns the pair the host last saw.
func (p *RangePicker) Committed() (*time.Time, *time.Time) {
	return cloneValue(p.committedStart), cloneValue(p.committedEnd)
}

// IsOpen reports whether the overlay is showing.
func (p *RangePicker) IsOpen() bool { return p.open }

// Focus gives the field keyboard focus.
func (p *RangePicker) Focus() { p.focused = true }

// Blur removes focus, dismissing an open overlay along the cancel path the
// way an outside click would.
func (p *RangePicker) Blur() {
	p.focused = false
	if p.open {
		p.cancel()
	}
}

// Open mounts a fresh range machine seeded from the committed pair.
func (p *RangePicker) Open() {
	if p.cfg.Disabled || p.open {
		return
	}
	p.rng = calendar.NewRange(calendar.RangeConfig{
		Start:     p.committedStart,
		End:       p.committedEnd,
		Min:       p.cfg.Min,
		Max:       p.cfg.Max,
		WeekStart: p.cfg.WeekStart,
		Now:       p.now,
	})
	p.pane = paneLeftCal
	if p.cfg.ShowPresets {
		p.pane = panePresets
	}
	p.side = calendar.SideLeft
	p.cursor = calendar.StartOfDay(p.rng.CurrentOf(calendar.SideLeft))
	p.cellCursor = 0
	p.presetQuery = ""
	p.presetCursor = 0
	p.refilterPresets()
	p.footerOnApply = true
	p.open = true
}

// cancel reverts the buffer to the last committed pair and closes without
// notifying. Used by esc, blur, and the Cancel footer action.
func (p *RangePicker) cancel() {
	if p.rng != nil {
		p.rng.Cancel()
	}
	p.close()
}

func (p *RangePicker) close() {
	p.open = false
	p.rng = nil
}

// Init implements tea.Model-style initialization.
func (p *RangePicker) Init() tea.Cmd { return nil }

// Update handles one message.
func (p *RangePicker) Update(msg tea.Msg) tea.Cmd {
	if p.cfg.Disabled || !p.focused {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if !p.open {
		p.updateClosed(keyMsg)
		return nil
	}
	p.updateOpen(keyMsg)
	return nil
}

func (p *RangePicker) updateClosed(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, p.keys.Enter) || msg.String() == " ":
		p.Open()
	case key.Matches(msg, p.keys.Clear):
		p.committedStart, p.committedEnd = nil, nil
		p.notify(nil, nil)
	}
}

func (p *RangePicker) updateOpen(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, p.keys.Close):
		p.cancel()
		return
	case key.Matches(msg, p.keys.Clear):
		// Clearing is immediate, never buffered behind Apply.
		p.rng.Clear()
		p.committedStart, p.committedEnd = nil, nil
		p.notify(nil, nil)
		return
	case key.Matches(msg, p.keys.NextPane):
		p.cyclePane(1)
		return
	case key.Matches(msg, p.keys.PrevPane):
		p.cyclePane(-1)
		return
	}
	switch p.pane {
	case panePresets:
		p.updatePresetPane(msg)
	case paneFooter:
		p.updateFooterPane(msg)
	default:
		p.updateCalendarPane(msg)
	}
}

func (p *RangePicker) cyclePane(dir int) {
	order := []rangePane{paneLeftCal, paneRightCal, paneFooter}
	if p.cfg.ShowPresets {
		order = []rangePane{panePresets, paneLeftCal, paneRightCal, paneFooter}
	}
	idx := 0
	for i, pane := range order {
		if pane == p.pane {
			idx = i
		}
	}
	p.pane = order[(idx+dir+len(order))%len(order)]
	p.rng.ClearHover()
	switch p.pane {
	case paneLeftCal:
		p.side = calendar.SideLeft
		p.snapCursor()
	case paneRightCal:
		p.side = calendar.SideRight
		p.snapCursor()
	}
}

// ---------------------------------------------------------------------------
// Preset pane
// ---------------------------------------------------------------------------

func (p *RangePicker) updatePresetPane(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, p.keys.Up):
		if p.presetCursor > 0 {
			p.presetCursor--
		}
	case key.Matches(msg, p.keys.Down):
		if p.presetCursor < len(p.presetMatches)-1 {
			p.presetCursor++
		}
	case key.Matches(msg, p.keys.Enter):
		if p.presetCursor >= 0 && p.presetCursor < len(p.presetMatches) {
			p.rng.ApplyPreset(p.presets[p.presetMatches[p.presetCursor]])
		}
	case msg.Type == tea.KeyBackspace:
		if p.presetQuery != "" {
			p.presetQuery = p.presetQuery[:len(p.presetQuery)-1]
			p.refilterPresets()
		}
	case msg.Type == tea.KeyRunes:
		p.presetQuery += string(msg.Runes)
		p.refilterPresets()
	}
}

// refilterPresets ranks presets against the typed query: substring matches
// first, then close fuzzy matches by edit distance.
func (p *RangePicker) refilterPresets() {
	p.presetMatches = filterPresets(p.presets, p.presetQuery)
	if p.presetCursor >= len(p.presetMatches) {
		p.presetCursor = 0
	}
}

type scoredPreset struct {
	index int
	score int
}

// filterPresets returns preset indices matching query, best first. An empty
// query keeps display order.
func filterPresets(presets []calendar.Preset, query string) []int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]int, len(presets))
		for i := range presets {
			out[i] = i
		}
		return out
	}
	var scored []scoredPreset
	for i, preset := range presets {
		label := strings.ToLower(preset.Label)
		switch {
		case strings.HasPrefix(label, q):
			scored = append(scored, scoredPreset{index: i, score: 0})
		case strings.Contains(label, q):
			scored = append(scored, scoredPreset{index: i, score: 1})
		default:
			if dist := levenshtein.ComputeDistance(label, q); dist <= len(label)/2 {
				scored = append(scored, scoredPreset{index: i, score: 2 + dist})
			}
		}
	}
	sort.SliceStable(scored, func(a, b int) bool { return scored[a].score < scored[b].score })
	out := make([]int, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.index)
	}
	return out
}

// ---------------------------------------------------------------------------
// Calendar panes
// ---------------------------------------------------------------------------

func (p *RangePicker) updateCalendarPane(msg tea.KeyMsg) {
	switch p.rng.ViewOf(p.side) {
	case calendar.ViewMonths:
		p.updateCellPane(msg, func(i int) { p.rng.SelectMonth(p.side, time.Month(i+1)) })
	case calendar.ViewYears:
		p.updateCellPane(msg, func(i int) { p.rng.SelectYear(p.side, p.rng.WindowOf(p.side).Years()[i]) })
	default:
		p.updateDaysPane(msg)
	}
}

func (p *RangePicker) updateDaysPane(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, p.keys.Left):
		p.moveCursor(-1)
	case key.Matches(msg, p.keys.Right):
		p.moveCursor(1)
	case key.Matches(msg, p.keys.Up):
		p.moveCursor(-7)
	case key.Matches(msg, p.keys.Down):
		p.moveCursor(7)
	case key.Matches(msg, p.keys.PrevPage):
		p.rng.Navigate(p.side, calendar.DirPrev)
		p.snapCursor()
	case key.Matches(msg, p.keys.NextPage):
		p.rng.Navigate(p.side, calendar.DirNext)
		p.snapCursor()
	case key.Matches(msg, p.keys.Months):
		p.rng.ToggleMonthsView(p.side)
		p.cellCursor = int(p.rng.CurrentOf(p.side).Month()) - 1
	case key.Matches(msg, p.keys.Years):
		p.rng.ToggleYearsView(p.side)
		p.cellCursor = p.rng.CurrentOf(p.side).Year() - p.rng.WindowOf(p.side).Start
	case key.Matches(msg, p.keys.Enter):
		p.rng.Pick(p.cursor)
		p.rng.ClearHover()
	}
}

func (p *RangePicker) updateCellPane(msg tea.KeyMsg, pick func(int)) {
	switch {
	case key.Matches(msg, p.keys.Left):
		if p.cellCursor > 0 {
			p.cellCursor--
		}
	case key.Matches(msg, p.keys.Right):
		if p.cellCursor < 11 {
			p.cellCursor++
		}
	case key.Matches(msg, p.keys.Up):
		if p.cellCursor >= 3 {
			p.cellCursor -= 3
		}
	case key.Matches(msg, p.keys.Down):
		if p.cellCursor < 9 {
			p.cellCursor += 3
		}
	case key.Matches(msg, p.keys.PrevPage):
		p.rng.Navigate(p.side, calendar.DirPrev)
	case key.Matches(msg, p.keys.NextPage):
		p.rng.Navigate(p.side, calendar.DirNext)
	case key.Matches(msg, p.keys.Months):
		p.rng.ToggleMonthsView(p.side)
	case key.Matches(msg, p.keys.Years):
		p.rng.ToggleYearsView(p.side)
	case key.Matches(msg, p.keys.Enter):
		pick(p.cellCursor)
		p.snapCursor()
	}
}

// moveCursor shifts the day cursor on the focused side, dragging that side's
// month along at the edges, and feeds the hover preview while an end pick is
// pending.
func (p *RangePicker) moveCursor(days int) {
	target := p.cursor.AddDate(0, 0, days)
	if !p.rng.Bounds().ContainsDay(target) {
		return
	}
	if !sameMonth(target, p.rng.CurrentOf(p.side)) {
		if target.Before(p.rng.CurrentOf(p.side)) {
			p.rng.Navigate(p.side, calendar.DirPrev)
		} else {
			p.rng.Navigate(p.side, calendar.DirNext)
		}
	}
	p.cursor = target
	p.rng.Hover(target)
}

func (p *RangePicker) snapCursor() {
	p.cursor = calendar.StartOfDay(p.rng.CurrentOf(p.side))
}

// ---------------------------------------------------------------------------
// Footer pane
// ---------------------------------------------------------------------------

func (p *RangePicker) updateFooterPane(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, p.keys.Left), key.Matches(msg, p.keys.Right):
		p.footerOnApply = !p.footerOnApply
	case key.Matches(msg, p.keys.Enter):
		if p.footerOnApply {
			p.apply()
		} else {
			p.cancel()
		}
	}
}

// apply commits the buffered pair to the host and closes.
func (p *RangePicker) apply() {
	start, end := p.rng.Apply()
	p.committedStart = cloneValue(start)
	p.committedEnd = cloneValue(end)
	p.notify(start, end)
	p.close()
}

func (p *RangePicker) notify(start, end *time.Time) {
	if p.cfg.OnChange != nil {
		p.cfg.OnChange(cloneValue(start), cloneValue(end))
	}
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

// View renders the field, with the overlay inline underneath while open.
func (p *RangePicker) View() string {
	field := p.fieldView()
	if !p.open {
		return field
	}
	return field + "\n" + p.DropdownView()
}

func (p *RangePicker) fieldView() string {
	style := p.theme.Field
	if p.cfg.Disabled {
		style = p.theme.FieldDisabled
	} else if p.focused {
		style = p.theme.FieldFocused
	}
	label := ""
	if p.cfg.Label != "" {
		label = style.Render(p.cfg.Label + ": ")
	}
	text := p.fieldText()
	if text == "" {
		return label + p.theme.Placeholder.Render(p.cfg.DisplayFormat+" — "+p.cfg.DisplayFormat)
	}
	return label + style.Render(text)
}

func (p *RangePicker) fieldText() string {
	if p.committedStart == nil {
		return ""
	}
	text := p.committedStart.Format(p.cfg.DisplayFormat)
	if p.committedEnd != nil {
		text += " — " + p.committedEnd.Format(p.cfg.DisplayFormat)
	}
	return text
}

// DropdownView renders the open overlay card: preset column, two calendars,
// Apply/Cancel footer.
func (p *RangePicker) DropdownView() string {
	if !p.open {
		return ""
	}
	columns := make([]string, 0, 3)
	if p.cfg.ShowPresets {
		columns = append(columns, p.presetColumnView(), "  ")
	}
	columns = append(columns,
		p.calendarView(calendar.SideLeft), "   ",
		p.calendarView(calendar.SideRight))
	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	footer := renderFooter(p.theme,
		p.pane == paneFooter && p.footerOnApply,
		p.pane == paneFooter && !p.footerOnApply)
	return p.theme.Container.Render(body + "\n" + footer)
}

func (p *RangePicker) presetColumnView() string {
	lines := make([]string, 0, len(p.presetMatches)+1)
	filter := p.theme.ListFilter.Render("/" + p.presetQuery)
	if p.presetQuery == "" {
		filter = p.theme.ListItem.Render("Presets")
	}
	lines = append(lines, filter)
	for i, idx := range p.presetMatches {
		prefix := "  "
		style := p.theme.ListItem
		if p.pane == panePresets && i == p.presetCursor {
			prefix = p.theme.ListCursor.Render("> ")
			style = p.theme.ListCursor
		}
		lines = append(lines, prefix+style.Render(p.presets[idx].Label))
	}
	return strings.Join(lines, "\n")
}

func (p *RangePicker) calendarView(side calendar.Side) string {
	// The side that does not own an active special view hides its chevrons
	// instead of offering a second concurrent month/year browser.
	showNav := p.rng.SpecialView() == calendar.SideNone || p.rng.SpecialView() == side
	header := renderHeader(p.theme, p.rng.CurrentOf(side), p.rng.ViewOf(side), p.rng.WindowOf(side), showNav)
	var body string
	switch p.rng.ViewOf(side) {
	case calendar.ViewMonths:
		body = renderMonthGrid(p.theme, p.rng.MonthGrid(side), p.cellCursorFor(side))
	case calendar.ViewYears:
		body = renderYearGrid(p.theme, p.rng.YearGrid(side), p.cellCursorFor(side))
	default:
		var cursor *time.Time
		if p.focusedSide() == side && p.rng.ViewOf(side) == calendar.ViewDays {
			c := p.cursor
			cursor = &c
		}
		body = renderWeekdayRow(p.theme, p.cfg.WeekStart) + "\n" +
			renderDayGrid(p.theme, p.rng.DayGrid(side), cursor)
	}
	return header + "\n" + body
}

func (p *RangePicker) cellCursorFor(side calendar.Side) int {
	if p.focusedSide() == side {
		return p.cellCursor
	}
	return -1
}

func (p *RangePicker) focusedSide() calendar.Side {
	switch p.pane {
	case paneLeftCal:
		return calendar.SideLeft
	case paneRightCal:
		return calendar.SideRight
	default:
		return calendar.SideNone
	}
}
