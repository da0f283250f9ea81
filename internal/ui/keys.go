package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keybindings for the application.
type keyMap struct {
	// Global
	Quit      key.Binding
	Help      key.Binding
	Theme     key.Binding
	NextView  key.Binding
	Clients   key.Binding
	Calendar  key.Binding
	WaitingRm key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Client list
	Search   key.Binding
	Register key.Binding
	Edit     key.Binding
	Delete   key.Binding

	// Registration form
	NextField  key.Binding
	PrevField  key.Binding
	CycleLeft  key.Binding
	CycleRight key.Binding
	Toggle     key.Binding
	AddPet     key.Binding
	RemovePet  key.Binding
	Submit     key.Binding
	Cancel     key.Binding

	// Calendar
	PrevMonth key.Binding
	NextMonth key.Binding
	EventType key.Binding

	// Confirmation
	Confirm key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Theme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Clients: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clients"),
		),
		Calendar: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "appointments"),
		),
		WaitingRm: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "waiting room"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Register: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new client"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		CycleLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev option"),
		),
		CycleRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next option"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		AddPet: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "add pet"),
		),
		RemovePet: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove pet"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("[", "left"),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]", "right"),
			key.WithHelp("]", "next month"),
		),
		EventType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "event type"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "confirm"),
		),
	}
}
