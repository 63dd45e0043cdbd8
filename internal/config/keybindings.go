package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Keybinding actions.
const (
	ActionNewWindow     = "new_window"
	ActionCloseSelector = "close_selector"
	ActionToggleHelp    = "toggle_help"
	ActionQuit          = "quit"
	// ActionToggleWindowPrefix is followed by the 1-based taskbar position.
	ActionToggleWindowPrefix = "toggle_window_"
)

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// DefaultKeybindings returns the default action to keys mapping.
func DefaultKeybindings() map[string][]string {
	kb := map[string][]string{
		ActionNewWindow:     {"n"},
		ActionCloseSelector: {"esc"},
		ActionToggleHelp:    {"?"},
		ActionQuit:          {"q", "ctrl+c"},
	}
	for i := 1; i <= 9; i++ {
		kb[fmt.Sprintf("%s%d", ActionToggleWindowPrefix, i)] = []string{fmt.Sprint(i)}
	}
	return kb
}

// KeybindRegistry resolves pressed keys to actions.
type KeybindRegistry struct {
	actions map[string][]string
	keys    map[string]string
}

// NewKeybindRegistry builds a registry from an action to keys mapping. When
// two actions claim the same key the one that sorts first wins.
func NewKeybindRegistry(bindings map[string][]string) *KeybindRegistry {
	r := &KeybindRegistry{
		actions: make(map[string][]string, len(bindings)),
		keys:    make(map[string]string),
	}
	for _, action := range slices.Sorted(maps.Keys(bindings)) {
		keys := bindings[action]
		r.actions[action] = slices.Clone(keys)
		for _, k := range keys {
			k = normalizeKey(k)
			if _, taken := r.keys[k]; !taken {
				r.keys[k] = action
			}
		}
	}
	return r
}

// Action returns the action bound to key.
func (r *KeybindRegistry) Action(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	action, ok := r.keys[normalizeKey(key)]
	return action, ok
}

// Keys returns the keys bound to action.
func (r *KeybindRegistry) Keys(action string) []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.actions[action])
}

// GetKeysForDisplay returns the keys of action joined for the help overlay.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := r.Keys(action)
	for i, k := range keys {
		keys[i] = displayKey(k)
	}
	return strings.Join(keys, ", ")
}

// Conflicts lists keys bound to more than one action.
func Conflicts(bindings map[string][]string) map[string][]string {
	owners := make(map[string][]string)
	for action, keys := range bindings {
		for _, k := range keys {
			owners[normalizeKey(k)] = append(owners[normalizeKey(k)], action)
		}
	}
	for k, actions := range owners {
		if len(actions) < 2 {
			delete(owners, k)
			continue
		}
		slices.Sort(actions)
	}
	return owners
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func displayKey(k string) string {
	parts := strings.Split(k, "+")
	for i, p := range parts {
		switch p {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		case "esc":
			parts[i] = "Esc"
		}
	}
	return strings.Join(parts, "+")
}

// GetKeybindings returns all keybinding sections for the help overlay.
// If registry is nil, the defaults are shown.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(DefaultKeybindings())
	}

	var sections []KeybindingSection

	windows := KeybindingSection{Title: "WINDOWS"}
	addBinding(&windows, registry, ActionNewWindow, "New window")
	for i := 1; i <= 9; i++ {
		addBinding(&windows, registry, fmt.Sprintf("%s%d", ActionToggleWindowPrefix, i),
			fmt.Sprintf("Toggle taskbar window %d", i))
	}
	if len(windows.Bindings) > 0 {
		sections = append(sections, windows)
	}

	general := KeybindingSection{Title: "GENERAL"}
	addBinding(&general, registry, ActionCloseSelector, "Close dock selector")
	addBinding(&general, registry, ActionToggleHelp, "Toggle help")
	addBinding(&general, registry, ActionQuit, "Quit")
	if len(general.Bindings) > 0 {
		sections = append(sections, general)
	}

	return append(sections, mouseHelpSection())
}

// addBinding adds a keybinding to a section if the action has keys configured
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action, description string) {
	keys := registry.GetKeysForDisplay(action)
	if keys != "" {
		section.Bindings = append(section.Bindings, Keybinding{
			Key:         keys,
			Description: description,
		})
	}
}

func mouseHelpSection() KeybindingSection {
	return KeybindingSection{
		Title: "MOUSE",
		Bindings: []Keybinding{
			{"Click taskbar", "Show or hide a window"},
			{"Right-click taskbar", "Choose a dock"},
			{"Drag taskbar entry", "Drop a window on a dock"},
			{"Drag dock edge", "Resize a dock"},
			{"Drag window title", "Move a floating window"},
			{"Drag window border", "Resize a floating window"},
		},
	}
}
