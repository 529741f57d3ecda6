package datepick

import "github.com/charmbracelet/bubbles/key"

// keyMap binds the picker overlay keys. One map serves both shells; bindings
// that do not apply to a shell are simply never matched.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Close    key.Binding
	Months   key.Binding
	Years    key.Binding
	Today    key.Binding
	Clear    key.Binding
	NextPane key.Binding
	PrevPane key.Binding
	PrevPage key.Binding
	NextPage key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Months:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "months")),
		Years:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "years")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
		NextPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevPane: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		PrevPage: key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("pgup", "prev month")),
		NextPage: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("pgdn", "next month")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Today, k.Months, k.Years, k.Close}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Today, k.Months, k.Years},
		{k.PrevPage, k.NextPage, k.Clear, k.Close},
	}
}
