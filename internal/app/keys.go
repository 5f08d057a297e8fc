package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/henri123lemoine/buki/internal/config"
	"github.com/henri123lemoine/buki/internal/ui"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Actions
	Find   key.Binding
	Reload key.Binding
	Open   key.Binding

	// General
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Find: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find in page"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload content"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "export and open in browser"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "keep matches"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear find"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if cfg.Find != "" {
		km.Find = key.NewBinding(
			key.WithKeys(config.SplitKeys(cfg.Find)...),
			key.WithHelp(cfg.Find, "find in page"),
		)
	}
	if cfg.Reload != "" {
		km.Reload = key.NewBinding(
			key.WithKeys(config.SplitKeys(cfg.Reload)...),
			key.WithHelp(cfg.Reload, "reload content"),
		)
	}
	if cfg.Open != "" {
		km.Open = key.NewBinding(
			key.WithKeys(config.SplitKeys(cfg.Open)...),
			key.WithHelp(cfg.Open, "export and open in browser"),
		)
	}
	if cfg.Help != "" {
		km.Help = key.NewBinding(
			key.WithKeys(config.SplitKeys(cfg.Help)...),
			key.WithHelp(cfg.Help, "help"),
		)
	}
	if cfg.Quit != "" {
		km.Quit = key.NewBinding(
			key.WithKeys(config.SplitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		)
	}

	return km
}

// HelpBindings returns the bindings shown on the help screen.
func (k KeyMap) HelpBindings() []ui.HelpBinding {
	return helpBindings(k.Find, k.Confirm, k.Cancel, k.Reload, k.Open, k.Help, k.Quit)
}

// FooterBindings returns the bindings summarized under the page.
func (k KeyMap) FooterBindings() []ui.HelpBinding {
	return helpBindings(k.Find, k.Reload, k.Open, k.Help, k.Quit)
}

// ErrorBindings returns the bindings usable while the page is unavailable.
func (k KeyMap) ErrorBindings() []ui.HelpBinding {
	return helpBindings(k.Reload, k.Quit)
}

func helpBindings(keys ...key.Binding) []ui.HelpBinding {
	bindings := make([]ui.HelpBinding, 0, len(keys))
	for _, b := range keys {
		h := b.Help()
		bindings = append(bindings, ui.HelpBinding{Keys: h.Key, Desc: h.Desc})
	}
	return bindings
}
