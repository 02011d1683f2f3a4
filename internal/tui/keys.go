package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit  key.Binding
	clear key.Binding
	top   key.Binding
}

var keys = keyMap{
	quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	clear: key.NewBinding(key.WithKeys("c")),
	top:   key.NewBinding(key.WithKeys("g", "home")),
}
