package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/datepick"
	"github.com/jask/datepick/internal/config"
)

// demoModel hosts the three picker variants on one screen: a plain date
// field, a date+time field, and a range field with presets.
type demoModel struct {
	cfg     config.Config
	pickers []field
	focus   int
	status  string
}

type field interface {
	Focus()
	Blur()
	Update(tea.Msg) tea.Cmd
	View() string
	IsOpen() bool
}

func newDemoModel(cfg config.Config) *demoModel {
	m := &demoModel{cfg: cfg}

	date := datepick.NewDatePicker(datepick.DatePickerConfig{
		Label:         "Date",
		Min:           cfg.Bounds.Min,
		Max:           cfg.Bounds.Max,
		ShowToday:     cfg.UI.ShowTodayShortcut,
		DisplayFormat: cfg.UI.DateFormat,
		WeekStart:     cfg.UI.WeekStart,
		OnChange: func(v *time.Time) {
			m.status = "date: " + formatValue(v, cfg.UI.DateFormat)
		},
	})

	appt := datepick.NewDatePicker(datepick.DatePickerConfig{
		Label:         "Appointment",
		Min:           cfg.Bounds.Min,
		Max:           cfg.Bounds.Max,
		EnableTime:    true,
		TimeMin:       cfg.UI.TimeMin,
		TimeMax:       cfg.UI.TimeMax,
		TimeInterval:  cfg.UI.TimeInterval,
		ShowToday:     cfg.UI.ShowTodayShortcut,
		DisplayFormat: cfg.UI.DateFormat,
		WeekStart:     cfg.UI.WeekStart,
		OnChange: func(v *time.Time) {
			m.status = "appointment: " + formatValue(v, cfg.UI.DateFormat+" "+cfg.UI.TimeFormat)
		},
	})

	rng := datepick.NewRangePicker(datepick.RangePickerConfig{
		Label:         "Period",
		Min:           cfg.Bounds.Min,
		Max:           cfg.Bounds.Max,
		ShowPresets:   cfg.UI.ShowPresets,
		DisplayFormat: cfg.UI.DateFormat,
		WeekStart:     cfg.UI.WeekStart,
		OnChange: func(start, end *time.Time) {
			m.status = fmt.Sprintf("period: %s — %s",
				formatValue(start, cfg.UI.DateFormat), formatValue(end, cfg.UI.DateFormat))
		},
	})

	m.pickers = []field{date, appt, rng}
	m.pickers[0].Focus()
	return m
}

func formatValue(v *time.Time, layout string) string {
	if v == nil {
		return "(none)"
	}
	return v.Format(layout)
}

func (m *demoModel) Init() tea.Cmd { return nil }

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "q":
			if !m.pickers[m.focus].IsOpen() {
				return m, tea.Quit
			}
		case "tab":
			// Field-to-field focus moves only while no overlay is open;
			// inside an overlay tab cycles panes instead.
			if !m.pickers[m.focus].IsOpen() {
				m.pickers[m.focus].Blur()
				m.focus = (m.focus + 1) % len(m.pickers)
				m.pickers[m.focus].Focus()
				return m, nil
			}
		}
	}
	return m, m.pickers[m.focus].Update(msg)
}

func (m *demoModel) View() string {
	var b strings.Builder
	b.WriteString("datepick demo  (tab: next field, q: quit)\n\n")
	for _, p := range m.pickers {
		b.WriteString(p.View())
		b.WriteString("\n\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	return b.String()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	p := tea.NewProgram(newDemoModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "datepick: %v\n", err)
		os.Exit(1)
	}
}
