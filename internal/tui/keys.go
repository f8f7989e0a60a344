package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Natural key.Binding
	Sharps  key.Binding
	Flats   key.Binding
	Cycle   key.Binding
	Start   key.Binding
	Answer  key.Binding
	Submit  key.Binding
	Back    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Natural: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "natural"),
	),
	Sharps: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "sharps"),
	),
	Flats: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "flats"),
	),
	Cycle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next mode"),
	),
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "new note"),
	),
	Answer: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "answer"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "next field / check"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave fields"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// menuHelp is shown while keystrokes drive the menu.
type menuHelp struct{}

func (menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.Natural, keys.Sharps, keys.Flats, keys.Cycle, keys.Start, keys.Answer, keys.Quit}
}

func (h menuHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

// inputHelp is shown while an answer field has focus.
type inputHelp struct{}

func (inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.Submit, keys.Back}
}

func (h inputHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
