package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	ForceQuit  key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	Jump       key.Binding
	Escape     key.Binding

	// Scrolling
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Home
	Open key.Binding

	// Listings and map
	CycleCategory key.Binding
	CycleRating   key.Binding
	ResetFilters  key.Binding
	PrevMarker    key.Binding
	NextMarker    key.Binding
	Select        key.Binding
	Close         key.Binding
	ToggleMarkers key.Binding

	// Forms
	NextField key.Binding
	PrevField key.Binding
	Toggle    key.Binding
	Submit    key.Binding
	ResetForm key.Binding

	// Admin and reports
	NextTab        key.Binding
	PrevTab        key.Binding
	CycleDateRange key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?/f1", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab", "ctrl+n"),
			key.WithHelp("tab", "Next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab", "ctrl+p"),
			key.WithHelp("shift+tab", "Previous page"),
		),
		Jump: key.NewBinding(
			key.WithKeys(":", "ctrl+o"),
			key.WithHelp(":", "Jump to page"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),

		Open: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Open link"),
		),

		CycleCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cycle category"),
		),
		CycleRating: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Cycle rating"),
		),
		ResetFilters: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "Show all"),
		),
		PrevMarker: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/left", "Previous marker"),
		),
		NextMarker: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("l/right", "Next marker"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Select"),
		),
		Close: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x", "Close details"),
		),
		ToggleMarkers: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "ASCII markers"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Choose option"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Submit"),
		),
		ResetForm: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "Clear form"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("l/right", "Next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/left", "Previous tab"),
		),
		CycleDateRange: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Date range"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.Jump, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPage, k.PrevPage, k.Jump, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.Open, k.CycleCategory, k.CycleRating, k.ResetFilters},
		{k.PrevMarker, k.NextMarker, k.Select, k.Close, k.ToggleMarkers},
		{k.NextField, k.PrevField, k.Toggle, k.Submit, k.ResetForm},
		{k.PrevTab, k.NextTab, k.CycleDateRange},
		{k.CycleTheme, k.Help, k.Quit, k.ForceQuit},
	}
}

// helpTitles names the FullHelp groups in the help overlay.
var helpTitles = []string{
	"Navigation",
	"Scrolling",
	"Home and Dining",
	"Map",
	"Forms",
	"Admin and Reports",
	"General",
}
