package config

import (
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/dockwm/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of box drawing glyphs
	ASCIIOnly bool

	// BorderStyle overrides the border style
	BorderStyle string

	// TaskbarHeight overrides the taskbar height (0 means use default)
	TaskbarHeight int

	// HideStatus hides the screen size line
	HideStatus bool

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig, logger *log.Logger) {
	if overrides.ASCIIOnly || (userConfig != nil && userConfig.Appearance.ASCIIOnly) {
		UseASCIIOnly = true
	}

	// Border Style - CLI flag takes precedence, otherwise use user config
	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
	} else if userConfig != nil && userConfig.Appearance.BorderStyle != "" {
		BorderStyle = userConfig.Appearance.BorderStyle
	}

	// Taskbar Height - clamped to the supported range
	if overrides.TaskbarHeight > 0 {
		TaskbarHeight = min(overrides.TaskbarHeight, MaxTaskbarHeight)
	} else if userConfig != nil && userConfig.Appearance.TaskbarHeight > 0 {
		TaskbarHeight = min(userConfig.Appearance.TaskbarHeight, MaxTaskbarHeight)
	}

	// Show Status - hidden by flag or by config
	ShowStatus = !overrides.HideStatus
	if ShowStatus && userConfig != nil && userConfig.Appearance.ShowStatus != nil {
		ShowStatus = *userConfig.Appearance.ShowStatus
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil && userConfig.Appearance.Theme != "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		if err := theme.Initialize(themeName, logger); err != nil && logger != nil {
			logger.Warn("failed to load theme", "theme", themeName, "err", err)
		}
	}
}
