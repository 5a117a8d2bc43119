package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Sort        key.Binding
	Filter      key.Binding
	Search      key.Binding
	ClearFilter key.Binding
	Refresh     key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "order"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "state filter"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapWith applies user overrides from the config: action name mapped to
// a comma separated key list, e.g. {"sort": "s,o"}. Unknown actions are
// ignored.
func KeyMapWith(bindings map[string]string) KeyMap {
	keys := DefaultKeyMap()
	targets := map[string]*key.Binding{
		"up":      &keys.Up,
		"down":    &keys.Down,
		"top":     &keys.Top,
		"bottom":  &keys.Bottom,
		"sort":    &keys.Sort,
		"filter":  &keys.Filter,
		"search":  &keys.Search,
		"clear":   &keys.ClearFilter,
		"refresh": &keys.Refresh,
		"help":    &keys.Help,
		"quit":    &keys.Quit,
	}
	for action, value := range bindings {
		binding, ok := targets[strings.ToLower(action)]
		if !ok {
			continue
		}
		overrides := splitKeys(value)
		if len(overrides) == 0 {
			continue
		}
		binding.SetKeys(overrides...)
		binding.SetHelp(strings.Join(overrides, "/"), binding.Help().Desc)
	}
	return keys
}

func splitKeys(value string) []string {
	parts := strings.Split(value, ",")
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}
	return keys
}
