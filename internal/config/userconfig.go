package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the config path relative to the XDG config directories.
const ConfigFile = "dockwm/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance  AppearanceConfig    `toml:"appearance" yaml:"appearance" json:"appearance"`
	Docks       DocksConfig         `toml:"docks" yaml:"docks" json:"docks"`
	Windows     WindowsConfig       `toml:"windows" yaml:"windows" json:"windows"`
	Logging     LoggingConfig       `toml:"logging" yaml:"logging" json:"logging"`
	Keybindings map[string][]string `toml:"keybindings" yaml:"keybindings" json:"keybindings"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	Theme         string `toml:"theme" yaml:"theme" json:"theme"`                            // Color theme name (e.g., dracula, nord, my-custom-theme)
	BorderStyle   string `toml:"border_style" yaml:"border_style" json:"border_style"`       // Border style: rounded, normal, thick, double, hidden, ascii
	TaskbarHeight int    `toml:"taskbar_height" yaml:"taskbar_height" json:"taskbar_height"` // Rows reserved for the taskbar (1-3)
	ShowStatus    *bool  `toml:"show_status" yaml:"show_status" json:"show_status"`          // Show the screen size when the center dock is empty (default: true)
	ASCIIOnly     bool   `toml:"ascii_only" yaml:"ascii_only" json:"ascii_only"`             // Use ASCII instead of box drawing characters
}

// DocksConfig holds the initial dock layout
type DocksConfig struct {
	Top         int    `toml:"top" yaml:"top" json:"top"`                            // Initial height of the top dock in cells
	Left        int    `toml:"left" yaml:"left" json:"left"`                         // Initial width of the left dock in cells
	Bottom      int    `toml:"bottom" yaml:"bottom" json:"bottom"`                   // Initial height of the bottom dock in cells
	Right       int    `toml:"right" yaml:"right" json:"right"`                      // Initial width of the right dock in cells
	DefaultDock string `toml:"default_dock" yaml:"default_dock" json:"default_dock"` // Dock used for windows created without one
	DropZone    int    `toml:"drop_zone" yaml:"drop_zone" json:"drop_zone"`          // Thickness of an empty dock's drop zone
}

// WindowsConfig holds window defaults
type WindowsConfig struct {
	DefaultWidth  int    `toml:"default_width" yaml:"default_width" json:"default_width"`    // Floating frame width of a new window
	DefaultHeight int    `toml:"default_height" yaml:"default_height" json:"default_height"` // Floating frame height of a new window
	MinWidth      int    `toml:"min_width" yaml:"min_width" json:"min_width"`                // Smallest width a window can be resized to
	MinHeight     int    `toml:"min_height" yaml:"min_height" json:"min_height"`             // Smallest height a window can be resized to
	MaxIDs        uint64 `toml:"max_ids" yaml:"max_ids" json:"max_ids"`                      // Bound on window ids, 0 for unbounded
}

// LoggingConfig holds log settings
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level" json:"level"` // debug, info, warn, error, off
	File  string `toml:"file" yaml:"file" json:"file"`    // Log file, empty for $XDG_STATE_HOME/dockwm/dockwm.log
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	showStatus := true
	return &UserConfig{
		Appearance: AppearanceConfig{
			Theme:         "",
			BorderStyle:   "rounded",
			TaskbarHeight: DefaultTaskbarHeight,
			ShowStatus:    &showStatus,
		},
		Docks: DocksConfig{
			Top:         DefaultTopDock,
			Left:        DefaultLeftDock,
			Bottom:      DefaultBottomDock,
			Right:       DefaultRightDock,
			DefaultDock: "center",
			DropZone:    DefaultDropZone,
		},
		Windows: WindowsConfig{
			DefaultWidth:  DefaultWindowWidth,
			DefaultHeight: DefaultWindowHeight,
			MinWidth:      MinWindowWidth,
			MinHeight:     MinWindowHeight,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Keybindings: DefaultKeybindings(),
	}
}

// LoadUserConfig loads the user configuration from the XDG config
// directories, writing a commented default file when none exists.
func LoadUserConfig(logger *log.Logger) (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(ConfigFile)
	if err != nil {
		path, err := xdg.ConfigFile(ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		return createDefaultConfig(path)
	}
	return LoadUserConfigFrom(configPath, logger)
}

// LoadUserConfigFrom reads, completes and validates the config at path.
func LoadUserConfigFrom(path string, logger *log.Logger) (*UserConfig, error) {
	// #nosec G304 - path is the user's own config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingDocks(&cfg, defaultCfg)
	fillMissingWindows(&cfg, defaultCfg)
	fillMissingLogging(&cfg, defaultCfg)
	fillMapDefaults(&cfg.Keybindings, defaultCfg.Keybindings)

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		for _, e := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Config error in [%s]: %s - %s\n", e.Field, e.Key, e.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s), please fix and restart", len(validation.Errors))
	}
	if logger != nil {
		for _, w := range validation.Warnings {
			logger.Warn("config warning", "section", w.Field, "key", w.Key, "msg", w.Message)
		}
	}
	return &cfg, nil
}

// createDefaultConfig writes the default config with a comment header.
func createDefaultConfig(configPath string) (*UserConfig, error) {
	cfg := DefaultConfig()

	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# dockwm configuration file\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("# Run `dockwm config reset` to restore these defaults.\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# theme: bubbletint theme id, empty for the built-in palette.\n")
	sb.WriteString("#   Custom themes: ~/.config/dockwm/themes/*.json\n")
	sb.WriteString("# border_style: rounded, normal, thick, double, hidden, ascii\n")
	sb.WriteString("# taskbar_height: 1 to 3 rows\n")
	sb.WriteString("#\n")
	sb.WriteString("# DOCKS\n")
	sb.WriteString("# top/left/bottom/right: initial dock sizes in cells\n")
	sb.WriteString("# default_dock: top, left, bottom, right or center\n")
	sb.WriteString("# drop_zone: thickness of an empty dock while it waits for a drop\n")
	sb.WriteString("#\n")
	sb.WriteString("# WINDOWS\n")
	sb.WriteString("# max_ids: stop creating windows after this many ids, 0 for no limit\n")
	sb.WriteString("#\n")
	sb.WriteString("# KEYBINDINGS\n")
	sb.WriteString("# action = [\"key\", ...]; run `dockwm keybinds` for the action list\n")
	sb.WriteString("# ============================================================================\n\n")
	sb.Write(data)

	if err := os.WriteFile(configPath, []byte(sb.String()), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}
	return cfg, nil
}

// ResetConfig overwrites the config file with the defaults.
func ResetConfig() (string, error) {
	path, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := createDefaultConfig(path); err != nil {
		return "", err
	}
	return path, nil
}

func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
	if cfg.Appearance.TaskbarHeight == 0 {
		cfg.Appearance.TaskbarHeight = defaultCfg.Appearance.TaskbarHeight
	}
	if cfg.Appearance.ShowStatus == nil {
		cfg.Appearance.ShowStatus = defaultCfg.Appearance.ShowStatus
	}
}

// fillMissingDocks only fills the default dock; a dock size of 0 is a
// valid choice.
func fillMissingDocks(cfg, defaultCfg *UserConfig) {
	if cfg.Docks.DefaultDock == "" {
		cfg.Docks.DefaultDock = defaultCfg.Docks.DefaultDock
	}
}

func fillMissingWindows(cfg, defaultCfg *UserConfig) {
	if cfg.Windows.DefaultWidth == 0 {
		cfg.Windows.DefaultWidth = defaultCfg.Windows.DefaultWidth
	}
	if cfg.Windows.DefaultHeight == 0 {
		cfg.Windows.DefaultHeight = defaultCfg.Windows.DefaultHeight
	}
	if cfg.Windows.MinWidth == 0 {
		cfg.Windows.MinWidth = defaultCfg.Windows.MinWidth
	}
	if cfg.Windows.MinHeight == 0 {
		cfg.Windows.MinHeight = defaultCfg.Windows.MinHeight
	}
}

func fillMissingLogging(cfg, defaultCfg *UserConfig) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultCfg.Logging.Level
	}
}

func fillMapDefaults(target *map[string][]string, defaults map[string][]string) {
	if *target == nil {
		*target = make(map[string][]string, len(defaults))
	}
	for k, v := range defaults {
		if _, exists := (*target)[k]; !exists {
			(*target)[k] = v
		}
	}
}

// GetConfigPath returns the path to the config file, or where it would be
// created.
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(ConfigFile)
	if err != nil {
		return xdg.ConfigFile(ConfigFile)
	}
	return path, nil
}
