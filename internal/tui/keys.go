package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	top       key.Binding
	refresh   key.Binding
	nextTab   key.Binding
	favourite key.Binding
	boost     key.Binding
	bookmark  key.Binding
	delete    key.Binding
	copy      key.Binding
	compose   key.Binding
	reply     key.Binding
	edit      key.Binding
	follow    key.Binding
	vote      key.Binding
	open      key.Binding
	back      key.Binding
	info      key.Binding
	quit      key.Binding

	yes key.Binding
	no  key.Binding

	submit     key.Binding
	accept     key.Binding
	nextSugg   key.Binding
	prevSugg   key.Binding
	visibility key.Binding
	attach     key.Binding
	focusNext  key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	top:       key.NewBinding(key.WithKeys("g", "home")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	nextTab:   key.NewBinding(key.WithKeys("tab")),
	favourite: key.NewBinding(key.WithKeys("f")),
	boost:     key.NewBinding(key.WithKeys("b")),
	bookmark:  key.NewBinding(key.WithKeys("m")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	compose:   key.NewBinding(key.WithKeys("n")),
	reply:     key.NewBinding(key.WithKeys("R")),
	edit:      key.NewBinding(key.WithKeys("e")),
	follow:    key.NewBinding(key.WithKeys("F")),
	vote:      key.NewBinding(key.WithKeys("1", "2", "3", "4")),
	open:      key.NewBinding(key.WithKeys("enter")),
	back:      key.NewBinding(key.WithKeys("esc", "backspace")),
	info:      key.NewBinding(key.WithKeys("i")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),

	yes: key.NewBinding(key.WithKeys("y")),
	no:  key.NewBinding(key.WithKeys("n", "esc")),

	submit:     key.NewBinding(key.WithKeys("ctrl+s")),
	accept:     key.NewBinding(key.WithKeys("tab")),
	nextSugg:   key.NewBinding(key.WithKeys("ctrl+n")),
	prevSugg:   key.NewBinding(key.WithKeys("ctrl+p")),
	visibility: key.NewBinding(key.WithKeys("ctrl+v")),
	attach:     key.NewBinding(key.WithKeys("ctrl+o")),
	focusNext:  key.NewBinding(key.WithKeys("tab")),
}
