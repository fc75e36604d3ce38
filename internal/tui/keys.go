package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Jump       key.Binding
	Search     key.Binding
	NextWord   key.Binding
	PrevWord   key.Binding
	Toggle     key.Binding
	Clear      key.Binding
	Retry      key.Binding
	Quit       key.Binding
	Submit     key.Binding
	Cancel     key.Binding
	Up         key.Binding
	Down       key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	ToggleMode key.Binding
	Speaker    key.Binding
	Edit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:       key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n", "next")),
		Prev:       key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p", "prev")),
		Jump:       key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "jump")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextWord:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next word")),
		PrevWord:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev word")),
		Toggle:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Retry:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		NextPage:   key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next page")),
		PrevPage:   key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev page")),
		ToggleMode: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "mode")),
		Speaker:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "speaker")),
		Edit:       key.NewBinding(key.WithKeys("/", "i"), key.WithHelp("/", "edit query")),
	}
}
