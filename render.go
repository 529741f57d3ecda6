package datepick

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/datepick/calendar"
)

// Rendering is a pure projection of machine state: nothing in this file
// mutates a calendar.

// renderHeader draws one calendar's title row. showNav hides the chevrons on
// the side that does not own the active special view.
func renderHeader(th Theme, current time.Time, view calendar.View, window calendar.YearWindow, showNav bool) string {
	var title string
	switch view {
	case calendar.ViewMonths:
		title = fmt.Sprintf("%d", current.Year())
	case calendar.ViewYears:
		title = fmt.Sprintf("%d – %d", window.Start, window.End)
	default:
		title = current.Format("January 2006")
	}
	left, right := "  ", "  "
	if showNav {
		left = th.Chevron.Render("‹ ")
		right = th.Chevron.Render(" ›")
	}
	return left + th.Header.Render(title) + right
}

// renderWeekdayRow draws the Su Mo Tu ... header starting at weekStart.
func renderWeekdayRow(th Theme, weekStart time.Weekday) string {
	parts := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(weekStart) + i) % 7)
		parts = append(parts, th.Weekday.Render(wd.String()[:2]))
	}
	return strings.Join(parts, " ")
}

// renderDayGrid draws six week rows. cursor, when non-nil, highlights the
// keyboard cursor cell.
func renderDayGrid(th Theme, grid [][]calendar.DayCell, cursor *time.Time) string {
	rows := make([]string, 0, len(grid))
	for _, week := range grid {
		cells := make([]string, 0, len(week))
		for _, cell := range week {
			label := fmt.Sprintf("%2d", cell.Date.Day())
			cells = append(cells, dayStyle(th, cell, cursor).Render(label))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

func dayStyle(th Theme, cell calendar.DayCell, cursor *time.Time) lipgloss.Style {
	switch {
	case cursor != nil && calendar.SameDay(cell.Date, *cursor):
		return th.DayCursor
	case cell.Selected:
		return th.DaySelected
	case cell.InRange:
		return th.DayInRange
	case cell.Disabled:
		return th.DayDisabled
	case cell.Today:
		return th.DayToday
	case !cell.InMonth:
		return th.DayAdjacent
	default:
		return th.Day
	}
}

// renderMonthGrid draws the months view as four rows of three.
func renderMonthGrid(th Theme, cells []calendar.MonthCell, cursor int) string {
	rows := make([]string, 0, 4)
	for row := 0; row < 4; row++ {
		parts := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			i := row*3 + col
			cell := cells[i]
			style := cellStyle(th, cell.Selected, cell.Current, cell.Disabled, i == cursor)
			parts = append(parts, style.Render(cell.Month.String()[:3]))
		}
		rows = append(rows, strings.Join(parts, " "))
	}
	return strings.Join(rows, "\n")
}

// renderYearGrid draws the 12-year window as four rows of three.
func renderYearGrid(th Theme, cells []calendar.YearCell, cursor int) string {
	rows := make([]string, 0, 4)
	for row := 0; row < 4; row++ {
		parts := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			i := row*3 + col
			cell := cells[i]
			style := cellStyle(th, cell.Selected, cell.Current, cell.Disabled, i == cursor)
			parts = append(parts, style.Render(fmt.Sprintf("%d", cell.Year)))
		}
		rows = append(rows, strings.Join(parts, " "))
	}
	return strings.Join(rows, "\n")
}

func cellStyle(th Theme, selected, current, disabled, cursor bool) lipgloss.Style {
	switch {
	case cursor:
		return th.CellSelected
	case selected:
		return th.CellSelected
	case disabled:
		return th.CellDisabled
	case current:
		return th.CellCurrent
	default:
		return th.Cell
	}
}

// renderTimeColumn draws the pickable time slots with a cursor marker.
func renderTimeColumn(th Theme, opts []calendar.TimeOption, cursor int, selected string) string {
	lines := make([]string, 0, len(opts))
	for i, opt := range opts {
		prefix := "  "
		style := th.ListItem
		if i == cursor {
			prefix = th.ListCursor.Render("> ")
			style = th.ListCursor
		}
		label := opt.Label
		if opt.Value == selected {
			label += " •"
		}
		lines = append(lines, prefix+style.Render(label))
	}
	return strings.Join(lines, "\n")
}

// renderFooter draws the Apply / Cancel actions, highlighting the focused one.
func renderFooter(th Theme, applyFocused, cancelFocused bool) string {
	apply := th.FooterAction.Render("Apply")
	if applyFocused {
		apply = th.FooterSelected.Render("Apply")
	}
	cancel := th.FooterAction.Render("Cancel")
	if cancelFocused {
		cancel = th.FooterSelected.Render("Cancel")
	}
	return apply + " " + cancel
}
