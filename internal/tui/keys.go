package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	refresh key.Binding
	trust   key.Binding
	logout  key.Binding
	quit    key.Binding
	yes     key.Binding
	no      key.Binding
	space   key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	refresh: key.NewBinding(key.WithKeys("r")),
	trust:   key.NewBinding(key.WithKeys("t")),
	logout:  key.NewBinding(key.WithKeys("l")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
	space:   key.NewBinding(key.WithKeys(" ")),
}
