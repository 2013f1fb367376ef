package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	version key.Binding
	edit    key.Binding
	delete  key.Binding
	copy    key.Binding
	reload  key.Binding
	toggle  key.Binding
	yes     key.Binding
	no      key.Binding

	add           key.Binding
	addExperience key.Binding
	addEducation  key.Binding
	skills        key.Binding
	signup        key.Binding
	current       key.Binding
	save          key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q")),
	logout:  key.NewBinding(key.WithKeys("x")),
	version: key.NewBinding(key.WithKeys("v")),
	edit:    key.NewBinding(key.WithKeys("e")),
	delete:  key.NewBinding(key.WithKeys("d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	reload:  key.NewBinding(key.WithKeys("r")),
	toggle:  key.NewBinding(key.WithKeys(" ", "space")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),

	add:           key.NewBinding(key.WithKeys("a")),
	addExperience: key.NewBinding(key.WithKeys("a")),
	addEducation:  key.NewBinding(key.WithKeys("b")),
	skills:        key.NewBinding(key.WithKeys("s")),
	signup:        key.NewBinding(key.WithKeys("ctrl+n")),
	current:       key.NewBinding(key.WithKeys("ctrl+t")),
	save:          key.NewBinding(key.WithKeys("ctrl+s")),
}

// navKeys are the page hotkeys of the navigation bar, active on pages that
// do not capture text input.
var navKeys = []struct {
	key   string
	page  string
	label string
}{
	{key: "1", page: PageHome, label: "home"},
	{key: "2", page: PageProfile, label: "profile"},
	{key: "3", page: PageNetwork, label: "network"},
	{key: "4", page: PageJobs, label: "jobs"},
	{key: "5", page: PageMessages, label: "messages"},
	{key: "6", page: PageNotifications, label: "notifications"},
	{key: "7", page: PageDirectory, label: "directory"},
	{key: "8", page: PageSalaries, label: "salaries"},
	{key: "9", page: PageFeedPreferences, label: "feed"},
}
