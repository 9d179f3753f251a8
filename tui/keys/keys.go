package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Quit     key.Binding
	Refresh  key.Binding
	Tab      key.Binding
	Search   key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Help     key.Binding
	Settings key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Escape   key.Binding
	Enter    key.Binding
}

// DefaultKeyMap provides the default set of key bindings.
var DefaultKeyMap = KeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	NextPage: key.NewBinding(key.WithKeys("n", "right", "l"), key.WithHelp("n", "next page")),
	PrevPage: key.NewBinding(key.WithKeys("p", "left", "h"), key.WithHelp("p", "prev page")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous")),
	Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
}
