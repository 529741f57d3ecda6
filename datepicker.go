// Package datepick provides calendar-picker widgets for bubbletea programs:
// a single-date picker with optional time-of-day and a two-calendar
// date-range picker, both themed through a lipgloss design-token set. The
// selection logic lives in the calendar subpackage; this package renders it
// and speaks the host's commit/cancel contracts.
package datepick

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/datepick/calendar"
)

// DefaultDisplayFormat is the Go layout used to render and parse committed
// dates when the host does not configure one.
const DefaultDisplayFormat = "2006-01-02"

// datePane is the focus target inside an open single-date overlay.
type datePane int

const (
	paneCalendar datePane = iota
	paneTime
	paneInput
)

// DatePickerConfig configures a DatePicker. Zero values mean "no bound, no
// time selection, default format and theme".
type DatePickerConfig struct {
	Label string
	// Value is the externally committed selection the field starts with.
	Value *time.Time
	// Default seeds the viewed month when Value is absent.
	Default *time.Time
	Min     *time.Time
	Max     *time.Time
	// EnableTime adds the time column; commits then carry date and time.
	EnableTime   bool
	TimeMin      string // "HH:mm", default 00:00
	TimeMax      string // "HH:mm", default 23:30
	TimeInterval int    // minutes, default 30
	// ShowToday enables the today shortcut key.
	ShowToday bool
	// Disabled renders the field muted and ignores all input.
	Disabled bool
	// DisplayFormat is the Go layout for the field text, also the parse
	// format for typed input.
	DisplayFormat string
	WeekStart     time.Weekday
	Theme         *Theme
	// OnChange receives every committed value; nil on explicit clear.
	// A nil handler is a valid, silent configuration.
	OnChange func(*time.Time)
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// DatePicker is the single-date input shell: a text field that opens a
// calendar dropdown. All calendar state is created fresh on Open and
// discarded on Close; only the committed value survives.
type DatePicker struct {
	cfg   DatePickerConfig
	theme Theme
	keys  keyMap
	input textinput.Model
	now   func() time.Time

	committed *time.Time

	open       bool
	focused    bool
	cal        *calendar.Calendar
	cursor     time.Time
	pane       datePane
	cellCursor int // months/years grid cursor
	timeOpts   []calendar.TimeOption
	timeCursor int
}

// NewDatePicker builds a closed picker showing the committed value.
func NewDatePicker(cfg DatePickerConfig) *DatePicker {
	if cfg.DisplayFormat == "" {
		cfg.DisplayFormat = DefaultDisplayFormat
		if cfg.EnableTime {
			cfg.DisplayFormat = DefaultDisplayFormat + " 15:04"
		}
	}
	if cfg.TimeMin == "" {
		cfg.TimeMin = "00:00"
	}
	if cfg.TimeMax == "" {
		cfg.TimeMax = "23:30"
	}
	if cfg.TimeInterval <= 0 {
		cfg.TimeInterval = 30
	}
	theme := DefaultTheme()
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	input := textinput.New()
	input.Placeholder = cfg.DisplayFormat
	input.Prompt = ""
	input.PlaceholderStyle = theme.Placeholder
	input.TextStyle = theme.Field

	p := &DatePicker{
		cfg:       cfg,
		theme:     theme,
		keys:      newKeyMap(),
		input:     input,
		now:       now,
		committed: cloneValue(cfg.Value),
	}
	p.refreshField()
	return p
}

// Value returns the committed value, or nil.
func (p *DatePicker) Value() *time.Time { return cloneValue(p.committed) }

// IsOpen reports whether the dropdown is showing.
func (p *DatePicker) IsOpen() bool { return p.open }

// Focus gives the field keyboard focus.
func (p *DatePicker) Focus() { p.focused = true }

// Blur removes focus. An open dropdown is dismissed the same way an outside
// click would dismiss it.
func (p *DatePicker) Blur() {
	p.focused = false
	if p.open {
		p.Close()
	}
}

// Open mounts a fresh calendar seeded from the committed value and shows the
// dropdown. No-op when disabled.
func (p *DatePicker) Open() {
	if p.cfg.Disabled || p.open {
		return
	}
	p.cal = calendar.New(calendar.Config{
		Value:      p.committed,
		Default:    p.cfg.Default,
		Min:        p.cfg.Min,
		Max:        p.cfg.Max,
		EnableTime: p.cfg.EnableTime,
		WeekStart:  p.cfg.WeekStart,
		OnCommit:   p.handleCommit,
		Now:        p.now,
	})
	p.cursor = calendar.StartOfDay(p.cal.Current())
	p.pane = paneCalendar
	p.cellCursor = 0
	p.timeOpts = calendar.TimeOptions(p.cfg.TimeMin, p.cfg.TimeMax, p.cfg.TimeInterval)
	p.timeCursor = p.timeOptionIndex()
	p.input.SetValue(p.fieldText())
	p.open = true
}

// Close discards the dropdown state, reverting any unparsed field text to
// the committed value.
func (p *DatePicker) Close() {
	p.open = false
	p.cal = nil
	p.input.Blur()
	p.refreshField()
}

// Init implements tea.Model-style initialization; the picker has no
// startup commands.
func (p *DatePicker) Init() tea.Cmd { return nil }

// Update handles one message. Only key messages are consumed; everything
// else falls through to the embedded text input while it is editing.
func (p *DatePicker) Update(msg tea.Msg) tea.Cmd {
	if p.cfg.Disabled || !p.focused {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.open && p.pane == paneInput {
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return cmd
		}
		return nil
	}
	if !p.open {
		return p.updateClosed(keyMsg)
	}
	return p.updateOpen(keyMsg)
}

func (p *DatePicker) updateClosed(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Enter) || msg.String() == " ":
		p.Open()
	case key.Matches(msg, p.keys.Clear):
		p.commitExternal(nil)
	case msg.Type == tea.KeyRunes:
		// Typing straight into the closed field opens the overlay in edit
		// mode and forwards the keystroke.
		p.Open()
		p.enterInputPane()
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}
	return nil
}

func (p *DatePicker) updateOpen(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, p.keys.Close) {
		p.Close()
		return nil
	}
	if p.pane == paneInput {
		return p.updateInputPane(msg)
	}
	if key.Matches(msg, p.keys.NextPane) {
		p.cyclePane(1)
		return nil
	}
	if key.Matches(msg, p.keys.PrevPane) {
		p.cyclePane(-1)
		return nil
	}
	if p.pane == paneTime {
		p.updateTimePane(msg)
		return nil
	}
	p.updateCalendarPane(msg)
	return nil
}

func (p *DatePicker) updateInputPane(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Enter):
		p.parseField()
		return nil
	case key.Matches(msg, p.keys.NextPane):
		p.cyclePane(1)
		return nil
	case key.Matches(msg, p.keys.PrevPane):
		p.cyclePane(-1)
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *DatePicker) updateTimePane(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, p.keys.Up):
		if p.timeCursor > 0 {
			p.timeCursor--
		}
	case key.Matches(msg, p.keys.Down):
		if p.timeCursor < len(p.timeOpts)-1 {
			p.timeCursor++
		}
	case key.Matches(msg, p.keys.Enter):
		if p.timeCursor >= 0 && p.timeCursor < len(p.timeOpts) {
			p.cal.SelectTime(p.timeOpts[p.timeCursor].Value)
		}
	}
}

func (p *DatePicker) updateCalendarPane(msg tea.KeyMsg) {
	switch p.cal.View() {
	case calendar.ViewDays:
		p.updateDaysPane(msg)
	case calendar.ViewMonths:
		p.updateCellPane(msg, func(i int) { p.cal.SelectMonth(time.Month(i + 1)) })
	case calendar.ViewYears:
		p.updateCellPane(msg, func(i int) { p.cal.SelectYear(p.cal.Window().Years()[i]) })
	}
}

func (p *DatePicker) updateDaysPane(msg tea.KeyMsg) {
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
		p.cal.Navigate(calendar.DirPrev)
		p.snapCursor()
	case key.Matches(msg, p.keys.NextPage):
		p.cal.Navigate(calendar.DirNext)
		p.snapCursor()
	case key.Matches(msg, p.keys.Months):
		p.cal.ToggleMonthsView()
		p.cellCursor = int(p.cal.Current().Month()) - 1
	case key.Matches(msg, p.keys.Years):
		p.cal.ToggleYearsView()
		p.cellCursor = p.cal.Current().Year() - p.cal.Window().Start
	case key.Matches(msg, p.keys.Today) && p.cfg.ShowToday:
		p.cal.SelectToday()
		p.snapCursor()
	case key.Matches(msg, p.keys.Clear):
		p.cal.Clear()
	case key.Matches(msg, p.keys.Enter):
		p.cal.Select(p.cursor)
	}
}

// updateCellPane drives the shared 12-cell months/years grids.
func (p *DatePicker) updateCellPane(msg tea.KeyMsg, pick func(int)) {
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
		p.cal.Navigate(calendar.DirPrev)
	case key.Matches(msg, p.keys.NextPage):
		p.cal.Navigate(calendar.DirNext)
	case key.Matches(msg, p.keys.Months):
		p.cal.ToggleMonthsView()
	case key.Matches(msg, p.keys.Years):
		p.cal.ToggleYearsView()
	case key.Matches(msg, p.keys.Enter):
		pick(p.cellCursor)
		p.snapCursor()
	}
}

// moveCursor shifts the day cursor, dragging the viewed month along when the
// cursor crosses a month edge. Out-of-bounds targets are ignored.
func (p *DatePicker) moveCursor(days int) {
	target := p.cursor.AddDate(0, 0, days)
	if !p.cal.Bounds().ContainsDay(target) {
		return
	}
	p.cursor = target
	if !sameMonth(target, p.cal.Current()) {
		if target.Before(p.cal.Current()) {
			p.cal.Navigate(calendar.DirPrev)
		} else {
			p.cal.Navigate(calendar.DirNext)
		}
	}
}

// snapCursor re-homes the day cursor after a navigation or selection changed
// the viewed month underneath it.
func (p *DatePicker) snapCursor() {
	if sel := p.cal.Selected(); sel != nil && sameMonth(*sel, p.cal.Current()) {
		p.cursor = calendar.StartOfDay(*sel)
		return
	}
	p.cursor = calendar.StartOfDay(p.cal.Current())
}

func (p *DatePicker) cyclePane(dir int) {
	panes := []datePane{paneCalendar, paneInput}
	if p.cfg.EnableTime {
		panes = []datePane{paneCalendar, paneTime, paneInput}
	}
	idx := 0
	for i, pane := range panes {
		if pane == p.pane {
			idx = i
		}
	}
	next := panes[(idx+dir+len(panes))%len(panes)]
	if next == paneInput {
		p.enterInputPane()
		return
	}
	p.input.Blur()
	p.pane = next
}

func (p *DatePicker) enterInputPane() {
	p.pane = paneInput
	p.input.Focus()
	p.input.CursorEnd()
}

// parseField applies the text-field parse contract: parse against the
// display format; out-of-format or out-of-bounds input reverts the visible
// text to the last committed value without notifying; valid input commits
// exactly as a calendar pick would.
func (p *DatePicker) parseField() {
	raw := strings.TrimSpace(p.input.Value())
	parsed, err := time.ParseInLocation(p.cfg.DisplayFormat, raw, time.Local)
	if err != nil || !p.cal.Bounds().Contains(parsed) {
		p.input.SetValue(p.fieldText())
		return
	}
	if p.cfg.EnableTime {
		p.cal.SelectDateTime(parsed)
		return
	}
	p.cal.Select(parsed)
}

// handleCommit is the calendar's observer: record, notify the host, close.
func (p *DatePicker) handleCommit(v *time.Time) {
	p.commitExternal(v)
	if p.open {
		p.Close()
	}
}

func (p *DatePicker) commitExternal(v *time.Time) {
	p.committed = cloneValue(v)
	p.refreshField()
	if p.cfg.OnChange != nil {
		p.cfg.OnChange(cloneValue(v))
	}
}

func (p *DatePicker) refreshField() {
	p.input.SetValue(p.fieldText())
}

func (p *DatePicker) fieldText() string {
	if p.committed == nil {
		return ""
	}
	return p.committed.Format(p.cfg.DisplayFormat)
}

func (p *DatePicker) timeOptionIndex() int {
	want := p.cal.SelectedTime()
	for i, opt := range p.timeOpts {
		if opt.Value == want {
			return i
		}
	}
	return 0
}

// View renders the field, with the dropdown inline underneath while open.
// Hosts that want a floating dropdown can composite DropdownView with
// ComposeOverlay instead.
func (p *DatePicker) View() string {
	field := p.fieldView()
	if !p.open {
		return field
	}
	return field + "\n" + p.DropdownView()
}

func (p *DatePicker) fieldView() string {
	style := p.theme.Field
	if p.cfg.Disabled {
		style = p.theme.FieldDisabled
	} else if p.focused {
		style = p.theme.FieldFocused
	}
	label := ""
	if p.cfg.Label != "" {
		label = style.Render(p.cfg.Label+": ")
	}
	if p.open && p.pane == paneInput {
		return label + p.input.View()
	}
	text := p.fieldText()
	if text == "" {
		return label + p.theme.Placeholder.Render(p.cfg.DisplayFormat)
	}
	return label + style.Render(text)
}

// DropdownView renders the open calendar card.
func (p *DatePicker) DropdownView() string {
	if !p.open {
		return ""
	}
	header := renderHeader(p.theme, p.cal.Current(), p.cal.View(), p.cal.Window(), true)
	var body string
	switch p.cal.View() {
	case calendar.ViewMonths:
		body = renderMonthGrid(p.theme, p.cal.MonthGrid(), p.cellCursor)
	case calendar.ViewYears:
		body = renderYearGrid(p.theme, p.cal.YearGrid(), p.cellCursor)
	default:
		cursor := p.cursor
		body = renderWeekdayRow(p.theme, p.cfg.WeekStart) + "\n" +
			renderDayGrid(p.theme, p.cal.DayGrid(), &cursor)
	}
	card := header + "\n" + body
	if p.cfg.EnableTime && p.cal.View() == calendar.ViewDays {
		times := renderTimeColumn(p.theme, p.timeOpts, p.timeCursor, p.cal.SelectedTime())
		card = lipgloss.JoinHorizontal(lipgloss.Top, card, "  ", times)
	}
	return p.theme.Container.Render(card)
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func cloneValue(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
