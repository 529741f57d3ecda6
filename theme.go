package datepick

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRosewater lipgloss.Color = "#f5e0dc"
	colorFlamingo  lipgloss.Color = "#f2cdcd"
	colorPink      lipgloss.Color = "#f5c2e7"
	colorMauve     lipgloss.Color = "#cba6f7"
	colorRed       lipgloss.Color = "#f38ba8"
	colorMaroon    lipgloss.Color = "#eba0ac"
	colorPeach     lipgloss.Color = "#fab387"
	colorYellow    lipgloss.Color = "#f9e2af"
	colorGreen     lipgloss.Color = "#a6e3a1"
	colorTeal      lipgloss.Color = "#94e2d5"
	colorSky       lipgloss.Color = "#89dceb"
	colorSapphire  lipgloss.Color = "#74c7ec"
	colorBlue      lipgloss.Color = "#89b4fa"
	colorLavender  lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay2 lipgloss.Color = "#9399b2"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
	colorCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorOverlay0
)

// AllPaletteColors returns every Catppuccin Mocha color for testing purposes.
func AllPaletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorRosewater, colorFlamingo, colorPink, colorMauve,
		colorRed, colorMaroon, colorPeach, colorYellow,
		colorGreen, colorTeal, colorSky, colorSapphire,
		colorBlue, colorLavender,
		colorText, colorSubtext1, colorSubtext0,
		colorOverlay2, colorOverlay1, colorOverlay0,
		colorSurface2, colorSurface1, colorSurface0,
		colorBase, colorMantle, colorCrust,
	}
}

// ---------------------------------------------------------------------------
// Widget theme
// ---------------------------------------------------------------------------

// Theme is the design-token set the pickers render with. Embedding programs
// may replace any style; DefaultTheme is the Catppuccin Mocha set.
type Theme struct {
	Container lipgloss.Style // the dropdown card
	Header    lipgloss.Style // "May 2024" / "2024" / "2016-2027"
	Chevron   lipgloss.Style // navigation arrows
	Weekday   lipgloss.Style // Su Mo Tu ... row

	Day         lipgloss.Style // plain in-month day
	DayAdjacent lipgloss.Style // leading/trailing filler day
	DayToday    lipgloss.Style
	DaySelected lipgloss.Style
	DayInRange  lipgloss.Style // committed span or hover preview interior
	DayDisabled lipgloss.Style
	DayCursor   lipgloss.Style // keyboard cursor

	Cell         lipgloss.Style // month/year cell
	CellCurrent  lipgloss.Style
	CellSelected lipgloss.Style
	CellDisabled lipgloss.Style

	ListItem       lipgloss.Style // presets, time options
	ListCursor     lipgloss.Style
	ListFilter     lipgloss.Style
	FooterAction   lipgloss.Style // Apply / Cancel
	FooterSelected lipgloss.Style

	Field         lipgloss.Style // the closed text field
	FieldFocused  lipgloss.Style
	FieldDisabled lipgloss.Style
	Placeholder   lipgloss.Style
}

// DefaultTheme returns the stock token set.
func DefaultTheme() Theme {
	return Theme{
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1),
		Header:  lipgloss.NewStyle().Foreground(colorText).Bold(true),
		Chevron: lipgloss.NewStyle().Foreground(colorSubtext0),
		Weekday: lipgloss.NewStyle().Foreground(colorOverlay1).Bold(true),

		Day:         lipgloss.NewStyle().Foreground(colorText),
		DayAdjacent: lipgloss.NewStyle().Foreground(colorSurface2),
		DayToday:    lipgloss.NewStyle().Foreground(colorSapphire).Bold(true),
		DaySelected: lipgloss.NewStyle().Foreground(colorBase).Background(colorAccent).Bold(true),
		DayInRange:  lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1),
		DayDisabled: lipgloss.NewStyle().Foreground(colorMuted),
		DayCursor:   lipgloss.NewStyle().Foreground(colorBase).Background(colorFocus).Bold(true),

		Cell:         lipgloss.NewStyle().Foreground(colorText).Padding(0, 1),
		CellCurrent:  lipgloss.NewStyle().Foreground(colorSapphire).Bold(true).Padding(0, 1),
		CellSelected: lipgloss.NewStyle().Foreground(colorBase).Background(colorAccent).Padding(0, 1),
		CellDisabled: lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1),

		ListItem:       lipgloss.NewStyle().Foreground(colorSubtext1),
		ListCursor:     lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		ListFilter:     lipgloss.NewStyle().Foreground(colorYellow),
		FooterAction:   lipgloss.NewStyle().Foreground(colorSubtext0).Padding(0, 1),
		FooterSelected: lipgloss.NewStyle().Foreground(colorBase).Background(colorFocus).Bold(true).Padding(0, 1),

		Field:         lipgloss.NewStyle().Foreground(colorText),
		FieldFocused:  lipgloss.NewStyle().Foreground(colorText).BorderForeground(colorFocus),
		FieldDisabled: lipgloss.NewStyle().Foreground(colorMuted),
		Placeholder:   lipgloss.NewStyle().Foreground(colorOverlay1),
	}
}
