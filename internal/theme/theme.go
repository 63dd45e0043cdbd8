// Package theme maps bubbletint palettes onto the colour roles of the
// dock desktop: taskbar, docks, drop zones, the center window and the
// placement selector.
package theme

import (
	"image/color"
	"slices"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry and selects themeName. Custom
// themes from the themes directory are registered first so they can be
// selected by name. An empty name disables theming and the fallback
// palette is used.
func Initialize(themeName string, logger *log.Logger) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir, logger); err != nil && logger != nil {
			logger.Warn("error loading custom themes", "dir", themesDir, "err", err)
		}
	}

	if !tint.SetTintID(themeName) {
		if logger != nil {
			logger.Warn("unknown theme, using default", "theme", themeName)
		}
		tint.SetTintID("default")
	}
	return nil
}

// IsEnabled returns true if theming is enabled.
func IsEnabled() bool {
	return enabled
}

// Current returns the active theme, or nil when theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Available lists the registered theme ids, sorted.
func Available() []string {
	if !enabled {
		tint.NewDefaultRegistry()
		if dir, err := GetThemesDir(); err == nil {
			_, _ = LoadCustomThemes(dir, nil)
		}
	}
	ids := tint.TintIDs()
	slices.Sort(ids)
	return ids
}

// fallback is the palette used while theming is disabled. Custom themes
// take the colours they leave out from it.
var fallback = &tint.Tint{
	ID:           "dockwm",
	DisplayName:  "dockwm",
	Fg:           tint.FromHex("#e5e5e5"),
	Bg:           tint.FromHex("#101018"),
	Cursor:       tint.FromHex("#e5e5e5"),
	Black:        tint.FromHex("#000000"),
	Red:          tint.FromHex("#cd0000"),
	Green:        tint.FromHex("#00cd00"),
	Yellow:       tint.FromHex("#cdcd00"),
	Blue:         tint.FromHex("#5c5cff"),
	Purple:       tint.FromHex("#cd00cd"),
	Cyan:         tint.FromHex("#00cdcd"),
	White:        tint.FromHex("#e5e5e5"),
	BrightBlack:  tint.FromHex("#7f7f7f"),
	BrightRed:    tint.FromHex("#ff0000"),
	BrightGreen:  tint.FromHex("#00ff00"),
	BrightYellow: tint.FromHex("#ffff00"),
	BrightBlue:   tint.FromHex("#8787ff"),
	BrightPurple: tint.FromHex("#ff00ff"),
	BrightCyan:   tint.FromHex("#00ffff"),
	BrightWhite:  tint.FromHex("#ffffff"),
}

// pick returns the colour chosen by role from the active theme, or from
// the fallback palette without one.
func pick(role func(*tint.Tint) color.Color) color.Color {
	t := Current()
	if t == nil {
		t = fallback
	}
	return role(t)
}

// ScreenBg is the desktop background.
func ScreenBg() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.Bg })
}

// ScreenFg is the default text colour.
func ScreenFg() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.Fg })
}

// TaskbarBg is the taskbar background.
func TaskbarBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// TaskbarFg is the colour of closed taskbar items.
func TaskbarFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

// TaskbarOpen marks taskbar items whose window is in a dock.
func TaskbarOpen() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.BrightGreen })
}

// TaskbarPressed highlights the item being pressed or dragged.
func TaskbarPressed() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.BrightYellow })
}

// DockBorder outlines occupied edge docks.
func DockBorder() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.Blue })
}

// DockAnchor is the colour of a dock's resize edge.
func DockAnchor() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.BrightBlue })
}

// DropZone is the colour of an empty dock's drop affordance.
func DropZone() color.Color {
	return lipgloss.Color("#808090")
}

// DropZoneHover is the drop affordance while an accepted drag is over it.
func DropZoneHover() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.BrightCyan })
}

// WindowBorder outlines the floating center window.
func WindowBorder() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.BrightCyan })
}

// WindowTitle is the colour of window titles.
func WindowTitle() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.BrightWhite })
}

// SelectorBg is the placement popup background.
func SelectorBg() color.Color {
	return lipgloss.Color("#1a1a2e")
}

// SelectorFg is the placement popup text colour.
func SelectorFg() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.Fg })
}

// SelectorHighlight marks the dock the window is currently in.
func SelectorHighlight() color.Color {
	return pick(func(t *tint.Tint) color.Color { return t.Yellow })
}

// StatusText is the colour of the empty-center status line.
func StatusText() color.Color {
	return lipgloss.Color("#808090")
}

// Swatches returns the named colours shown by a theme preview.
func Swatches(t *tint.Tint) []Swatch {
	if t == nil {
		return nil
	}
	out := make([]Swatch, 0, len(slotNames))
	for i, c := range slots(t) {
		out = append(out, Swatch{Name: slotNames[i], Color: *c})
	}
	return out
}

var slotNames = [...]string{
	"fg", "bg", "cursor",
	"black", "red", "green", "yellow", "blue", "purple", "cyan", "white",
	"bright_black", "bright_red", "bright_green", "bright_yellow",
	"bright_blue", "bright_purple", "bright_cyan", "bright_white",
}

// Offsets of the normal and bright ANSI colours in slots.
const (
	normalSlot = 3
	brightSlot = 11
	ansiColors = 8
)

// slots returns the palette entries of t in slotNames order.
func slots(t *tint.Tint) []**tint.Color {
	return []**tint.Color{
		&t.Fg, &t.Bg, &t.Cursor,
		&t.Black, &t.Red, &t.Green, &t.Yellow, &t.Blue, &t.Purple, &t.Cyan, &t.White,
		&t.BrightBlack, &t.BrightRed, &t.BrightGreen, &t.BrightYellow,
		&t.BrightBlue, &t.BrightPurple, &t.BrightCyan, &t.BrightWhite,
	}
}

// Swatch is one named palette entry.
type Swatch struct {
	Name  string
	Color *tint.Color
}
