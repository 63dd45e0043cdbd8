// Package config provides configuration constants, keybinding management, and user settings.
package config

import (
	"charm.land/lipgloss/v2"
)

// =============================================================================
// Window Defaults
// =============================================================================

const (
	// DefaultWindowWidth is the floating frame width of a new window
	DefaultWindowWidth = 40

	// DefaultWindowHeight is the floating frame height of a new window
	DefaultWindowHeight = 12

	// MinWindowWidth is the minimum width a window can be resized to
	MinWindowWidth = 12

	// MinWindowHeight is the minimum height a window can be resized to
	MinWindowHeight = 4
)

// =============================================================================
// Dock Defaults
// =============================================================================

const (
	// DefaultTopDock is the initial height of the top dock in cells
	DefaultTopDock = 6

	// DefaultLeftDock is the initial width of the left dock in cells
	DefaultLeftDock = 24

	// DefaultBottomDock is the initial height of the bottom dock in cells
	DefaultBottomDock = 6

	// DefaultRightDock is the initial width of the right dock in cells
	DefaultRightDock = 24

	// DefaultDropZone is the thickness of an empty dock shown as a drop target
	DefaultDropZone = 2

	// DefaultTaskbarHeight is the number of rows reserved for the taskbar
	DefaultTaskbarHeight = 1

	// MaxTaskbarHeight is the largest accepted taskbar height
	MaxTaskbarHeight = 3
)

// =============================================================================
// Z-Index Layers
// =============================================================================

const (
	// ZIndexBackground is the z-index for the screen background
	ZIndexBackground = 0

	// ZIndexDock is the z-index for dock contents and drop zones
	ZIndexDock = 10

	// ZIndexCenterWindow is the z-index for the topmost center window
	ZIndexCenterWindow = 20

	// ZIndexTaskbar is the z-index for the taskbar
	ZIndexTaskbar = 100

	// ZIndexSelector is the z-index for the dock selector popup
	ZIndexSelector = 500

	// ZIndexHelp is the z-index for the help overlay
	ZIndexHelp = 1000
)

// =============================================================================
// Global Appearance State
// =============================================================================

// UseASCIIOnly replaces box drawing and symbol glyphs with ASCII
var UseASCIIOnly = false

// BorderStyle is the active border style name
var BorderStyle = "rounded"

// TaskbarHeight is the active taskbar height
var TaskbarHeight = DefaultTaskbarHeight

// ShowStatus toggles the screen size line in an empty center dock
var ShowStatus = true

// =============================================================================
// Glyphs
// =============================================================================

const (
	// TaskbarOpenMarker prefixes the taskbar entry of a shown window
	TaskbarOpenMarker = "●"
	// TaskbarClosedMarker prefixes the taskbar entry of a hidden window
	TaskbarClosedMarker = "○"
	// DropZoneFill is the pattern drawn inside an empty dock during a drag
	DropZoneFill = "░"
	// SelectorCurrentMarker marks the dock a window is in inside the selector
	SelectorCurrentMarker = "▸"

	// TaskbarOpenMarkerASCII is the ASCII fallback for TaskbarOpenMarker
	TaskbarOpenMarkerASCII = "*"
	// TaskbarClosedMarkerASCII is the ASCII fallback for TaskbarClosedMarker
	TaskbarClosedMarkerASCII = "-"
	// DropZoneFillASCII is the ASCII fallback for DropZoneFill
	DropZoneFillASCII = "."
	// SelectorCurrentMarkerASCII is the ASCII fallback for SelectorCurrentMarker
	SelectorCurrentMarkerASCII = ">"
)

// GetBorderForStyle returns the lipgloss Border for the current style
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "rounded":
		fallthrough
	default:
		return lipgloss.RoundedBorder()
	}
}

// GetTaskbarMarker returns the taskbar prefix for an open or hidden window
func GetTaskbarMarker(open bool) string {
	switch {
	case UseASCIIOnly && open:
		return TaskbarOpenMarkerASCII
	case UseASCIIOnly:
		return TaskbarClosedMarkerASCII
	case open:
		return TaskbarOpenMarker
	default:
		return TaskbarClosedMarker
	}
}

// GetDropZoneFill returns the drop zone pattern character
func GetDropZoneFill() string {
	if UseASCIIOnly {
		return DropZoneFillASCII
	}
	return DropZoneFill
}

// GetSelectorMarker returns the selector's current-dock marker
func GetSelectorMarker() string {
	if UseASCIIOnly {
		return SelectorCurrentMarkerASCII
	}
	return SelectorCurrentMarker
}

// GetAnchorLine returns the glyph drawn along a dock's resize edge.
func GetAnchorLine(horizontal bool) string {
	switch {
	case UseASCIIOnly && horizontal:
		return "="
	case UseASCIIOnly:
		return "#"
	case horizontal:
		return lipgloss.ThickBorder().Top
	default:
		return lipgloss.ThickBorder().Left
	}
}

// ValidBorderStyles lists the accepted border_style values.
var ValidBorderStyles = []string{"rounded", "normal", "thick", "double", "hidden", "ascii"}
