package datepick

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func pickerNow() time.Time {
	return time.Date(2024, time.May, 15, 12, 0, 0, 0, time.Local)
}

func press(p *DatePicker, keys ...tea.KeyMsg) {
	for _, k := range keys {
		p.Update(k)
	}
}

func keyEnter() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.KeyMsg    { return tea.KeyMsg{Type: tea.KeyEsc} }
func keyTab() tea.KeyMsg    { return tea.KeyMsg{Type: tea.KeyTab} }
func keyUp() tea.KeyMsg     { return tea.KeyMsg{Type: tea.KeyUp} }
func keyDown() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyDown} }
func keyLeft() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyLeft} }
func keyRight() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyRight} }
func keyCtrlX() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyCtrlX} }
func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDatePickerOpenAndPickCommits(t *testing.T) {
	var got *time.Time
	calls := 0
	p := NewDatePicker(DatePickerConfig{
		Now:      pickerNow,
		OnChange: func(v *time.Time) { got = v; calls++ },
	})
	p.Focus()

	press(p, keyEnter())
	if !p.IsOpen() {
		t.Fatal("enter should open the dropdown")
	}
	press(p, keyEnter())
	if calls != 1 {
		t.Fatalf("commits = %d, want 1", calls)
	}
	if got == nil || got.Year() != 2024 || got.Month() != time.May || got.Day() != 15 {
		t.Errorf("committed = %v, want 2024-05-15", got)
	}
	if got.Hour() != 0 {
		t.Errorf("date-only commit hour = %d, want 0", got.Hour())
	}
	if p.IsOpen() {
		t.Error("commit should close the dropdown")
	}
}

func TestDatePickerEscDiscards(t *testing.T) {
	seed := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.Local)
	calls := 0
	p := NewDatePicker(DatePickerConfig{
		Value:    &seed,
		Now:      pickerNow,
		OnChange: func(*time.Time) { calls++ },
	})
	p.Focus()

	press(p, keyEnter(), keyRight(), keyRight(), keyEsc())
	if p.IsOpen() {
		t.Fatal("esc should close")
	}
	if calls != 0 {
		t.Errorf("commits = %d, want 0", calls)
	}
	if v := p.Value(); v == nil || !v.Equal(seed) {
		t.Errorf("value = %v, want unchanged %v", v, seed)
	}
}

func TestDatePickerBlurActsAsOutsideClick(t *testing.T) {
	calls := 0
	p := NewDatePicker(DatePickerConfig{
		Now:      pickerNow,
		OnChange: func(*time.Time) { calls++ },
	})
	p.Focus()
	press(p, keyEnter())

	p.Blur()
	if p.IsOpen() {
		t.Error("blur should dismiss the dropdown")
	}
	if calls != 0 {
		t.Errorf("commits = %d, want 0", calls)
	}
}

func TestDatePickerClearWhileClosed(t *testing.T) {
	seed := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.Local)
	calls := 0
	var got *time.Time
	p := NewDatePicker(DatePickerConfig{
		Value:    &seed,
		Now:      pickerNow,
		OnChange: func(v *time.Time) { got = v; calls++ },
	})
	p.Focus()

	press(p, keyCtrlX())
	if calls != 1 {
		t.Fatalf("commits = %d, want 1", calls)
	}
	if got != nil {
		t.Errorf("cleared commit = %v, want nil", got)
	}
	if p.Value() != nil {
		t.Error("value should be nil after clear")
	}
}

func TestDatePickerTypedValueCommits(t *testing.T) {
	var got *time.Time
	p := NewDatePicker(DatePickerConfig{
		Now:      pickerNow,
		OnChange: func(v *time.Time) { got = v },
	})
	p.Focus()

	press(p, keyRunes("2024-06-01"), keyEnter())
	if got == nil || got.Month() != time.June || got.Day() != 1 {
		t.Errorf("committed = %v, want 2024-06-01", got)
	}
	if p.IsOpen() {
		t.Error("typed commit should close the dropdown")
	}
}

func TestDatePickerTypedGarbageRevertsField(t *testing.T) {
	seed := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.Local)
	calls := 0
	p := NewDatePicker(DatePickerConfig{
		Value:    &seed,
		Now:      pickerNow,
		OnChange: func(*time.Time) { calls++ },
	})
	p.Focus()

	press(p, keyRunes("not a date"), keyEnter())
	if calls != 0 {
		t.Errorf("commits = %d, want 0", calls)
	}
	if v := p.Value(); v == nil || !v.Equal(seed) {
		t.Errorf("value = %v, want unchanged %v", v, seed)
	}
	if p.input.Value() != "2024-05-10" {
		t.Errorf("field text = %q, want reverted display value", p.input.Value())
	}
}

func TestDatePickerTypedOutOfBoundsReverts(t *testing.T) {
	min := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.Local)
	calls := 0
	p := NewDatePicker(DatePickerConfig{
		Min:      &min,
		Now:      pickerNow,
		OnChange: func(*time.Time) { calls++ },
	})
	p.Focus()

	press(p, keyRunes("2023-01-01"), keyEnter())
	if calls != 0 {
		t.Errorf("commits = %d, want 0", calls)
	}
	if p.Value() != nil {
		t.Errorf("value = %v, want nil", p.Value())
	}
}

func TestDatePickerDisabledIgnoresInput(t *testing.T) {
	p := NewDatePicker(DatePickerConfig{Disabled: true, Now: pickerNow})
	p.Focus()
	press(p, keyEnter())
	if p.IsOpen() {
		t.Error("disabled picker should not open")
	}
}

func TestDatePickerTimeFlowDefersCommit(t *testing.T) {
	var got *time.Time
	calls := 0
	p := NewDatePicker(DatePickerConfig{
		EnableTime:   true,
		TimeMin:      "09:00",
		TimeMax:      "10:00",
		TimeInterval: 30,
		Now:          pickerNow,
		OnChange:     func(v *time.Time) { got = v; calls++ },
	})
	p.Focus()

	press(p, keyEnter())
	press(p, keyEnter()) // day pick alone must not commit
	if calls != 0 {
		t.Fatalf("commits after day pick = %d, want 0", calls)
	}
	if !p.IsOpen() {
		t.Fatal("dropdown should stay open awaiting a time")
	}

	press(p, keyTab(), keyDown(), keyEnter())
	if calls != 1 {
		t.Fatalf("commits = %d, want 1", calls)
	}
	if got == nil || got.Hour() != 9 || got.Minute() != 30 {
		t.Errorf("committed = %v, want 09:30", got)
	}
	if got.Day() != 15 {
		t.Errorf("committed day = %d, want 15", got.Day())
	}
	if p.IsOpen() {
		t.Error("combined commit should close the dropdown")
	}
}

func TestDatePickerMonthViewRoundTrip(t *testing.T) {
	p := NewDatePicker(DatePickerConfig{Now: pickerNow})
	p.Focus()
	press(p, keyEnter(), keyRunes("m"))

	view := p.DropdownView()
	if view == "" {
		t.Fatal("dropdown should render in months view")
	}
	press(p, keyLeft(), keyEnter()) // pick April, back to days
	if !p.IsOpen() {
		t.Fatal("month pick should keep the dropdown open")
	}
	press(p, keyEnter())
	v := p.Value()
	if v == nil || v.Month() != time.April {
		t.Errorf("value = %v, want an April day", v)
	}
}

func TestDatePickerTodayShortcut(t *testing.T) {
	var got *time.Time
	p := NewDatePicker(DatePickerConfig{
		ShowToday: true,
		Default:   timePtr(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)),
		Now:       pickerNow,
		OnChange:  func(v *time.Time) { got = v },
	})
	p.Focus()
	press(p, keyEnter(), keyRunes("t"))
	if got == nil || got.Day() != 15 || got.Month() != time.May {
		t.Errorf("committed = %v, want today 2024-05-15", got)
	}
}

func TestDatePickerCursorDragsMonth(t *testing.T) {
	p := NewDatePicker(DatePickerConfig{
		Default: timePtr(time.Date(2024, time.May, 31, 0, 0, 0, 0, time.Local)),
		Now:     pickerNow,
	})
	p.Focus()
	press(p, keyEnter(), keyRight(), keyEnter())
	v := p.Value()
	if v == nil || v.Month() != time.June || v.Day() != 1 {
		t.Errorf("value = %v, want 2024-06-01", v)
	}
}
