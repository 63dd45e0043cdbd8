package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/charmbracelet/log"
)

// ValidationIssue describes one problem found in the user config.
type ValidationIssue struct {
	Field   string
	Key     string
	Message string
}

// ValidationResult collects errors, which abort loading, and warnings,
// which are logged.
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether any error was found.
func (r *ValidationResult) HasErrors() bool { return len(r.Errors) > 0 }

// HasWarnings reports whether any warning was found.
func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

func (r *ValidationResult) addError(field, key, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(field, key, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

// ValidateConfig checks a filled config.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	result := &ValidationResult{}

	if !slices.Contains(ValidBorderStyles, cfg.Appearance.BorderStyle) {
		result.addWarning("appearance", "border_style",
			"unknown style %q, using rounded (valid: %s)", cfg.Appearance.BorderStyle, strings.Join(ValidBorderStyles, ", "))
	}
	if h := cfg.Appearance.TaskbarHeight; h < 1 || h > MaxTaskbarHeight {
		result.addError("appearance", "taskbar_height", "must be between 1 and %d, got %d", MaxTaskbarHeight, h)
	}

	sizes := map[string]int{
		"top":    cfg.Docks.Top,
		"left":   cfg.Docks.Left,
		"bottom": cfg.Docks.Bottom,
		"right":  cfg.Docks.Right,
	}
	for _, key := range slices.Sorted(maps.Keys(sizes)) {
		if sizes[key] < 0 {
			result.addError("docks", key, "dock size cannot be negative, got %d", sizes[key])
		}
	}
	if cfg.Docks.DropZone < 0 {
		result.addError("docks", "drop_zone", "cannot be negative, got %d", cfg.Docks.DropZone)
	}
	if d, err := dock.Parse(cfg.Docks.DefaultDock); err != nil || d == dock.None {
		result.addError("docks", "default_dock", "unknown dock %q (valid: top, left, bottom, right, center)", cfg.Docks.DefaultDock)
	}

	if cfg.Windows.MinWidth < 1 {
		result.addError("windows", "min_width", "must be at least 1, got %d", cfg.Windows.MinWidth)
	}
	if cfg.Windows.MinHeight < 1 {
		result.addError("windows", "min_height", "must be at least 1, got %d", cfg.Windows.MinHeight)
	}
	if cfg.Windows.DefaultWidth < cfg.Windows.MinWidth {
		result.addWarning("windows", "default_width",
			"%d is below min_width %d, new windows will be clamped", cfg.Windows.DefaultWidth, cfg.Windows.MinWidth)
	}
	if cfg.Windows.DefaultHeight < cfg.Windows.MinHeight {
		result.addWarning("windows", "default_height",
			"%d is below min_height %d, new windows will be clamped", cfg.Windows.DefaultHeight, cfg.Windows.MinHeight)
	}

	if cfg.Logging.Level != "off" {
		if _, err := log.ParseLevel(cfg.Logging.Level); err != nil {
			result.addError("logging", "level", "unknown level %q (valid: debug, info, warn, error, off)", cfg.Logging.Level)
		}
	}

	known := DefaultKeybindings()
	for _, action := range slices.Sorted(maps.Keys(cfg.Keybindings)) {
		if _, ok := known[action]; !ok {
			result.addWarning("keybindings", action, "unknown action, ignoring")
		}
	}
	conflicts := Conflicts(cfg.Keybindings)
	for _, key := range slices.Sorted(maps.Keys(conflicts)) {
		result.addWarning("keybindings", key, "bound to several actions: %s", strings.Join(conflicts[key], ", "))
	}

	return result
}
