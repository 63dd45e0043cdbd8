// Package main implements dockwm, a dock-based window manager for the
// terminal. Windows live in one of five docks (top, left, bottom, right,
// center) and are moved between them by dragging taskbar entries, through
// the dock selector, or from a tape script.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode     bool
	logLevel      string
	asciiOnly     bool
	themeName     string
	borderStyle   string
	taskbarHeight int
	hideStatus    bool
	demoWindows   int
	mcpAddr       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dockwm",
		Short: "Dock window manager for the terminal",
		Long: `dockwm - Dock window manager for the terminal

Windows are shown in one of five docks: top, left, bottom, right and
center. Click a taskbar entry to show or hide its window, drag it onto a
dock to move it there, or right-click it to pick a dock from a menu.
Dock edges and floating center windows can be resized with the mouse.`,
		Example: `  # Run dockwm
  dockwm

  # Start with three demo windows
  dockwm --windows 3

  # Run with debug logging
  dockwm --debug

  # Run with a specific theme
  dockwm --theme dracula

  # List all available themes
  dockwm themes list

  # Play a tape script
  dockwm tape play demo.tape

  # Let agents drive the screen over MCP
  dockwm --mcp-addr localhost:7777`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLocal("")
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, off (default: from config or info)")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of box drawing glyphs")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Border style: rounded, normal, thick, double, hidden, ascii (default: from config or rounded)")
	rootCmd.PersistentFlags().IntVar(&taskbarHeight, "taskbar-height", 0, "Taskbar height in rows, 1 to 3 (default: from config or 1)")
	rootCmd.PersistentFlags().BoolVar(&hideStatus, "hide-status", false, "Hide the screen size line in an empty center dock")
	rootCmd.PersistentFlags().StringVar(&mcpAddr, "mcp-addr", "", "Serve MCP control tools over HTTP on this address (e.g., localhost:7777)")
	rootCmd.Flags().IntVar(&demoWindows, "windows", 0, "Number of demo windows to create at startup")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dockwm configuration",
		Long:  `Manage dockwm configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the dockwm configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the dockwm configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	var resetYes bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the dockwm configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults(resetYes)
		},
	}
	configResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")

	configValidateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file",
		Long:  `Load the configuration file and report errors and warnings`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return validateConfigFile()
		},
	}

	var showFormat string
	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration dockwm runs with: the config file with every
missing setting filled in from the defaults.`,
		Example: `  # Print as TOML
  dockwm config show

  # Print as YAML
  dockwm config show --format yaml`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return showConfig(showFormat)
		},
	}
	configShowCmd.Flags().StringVarP(&showFormat, "format", "f", "toml", "Output format: toml, yaml, json")

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd, configValidateCmd, configShowCmd)

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "List and preview color themes",
	}

	themesListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all available themes",
		Long: `List the built-in themes and any custom JSON themes found in
the themes directory (see 'dockwm themes dir').`,
		Example: `  # Interactively select a theme with fzf and preview
  dockwm --theme $(dockwm themes list | fzf --preview 'dockwm themes preview {}')`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listThemes()
		},
	}

	themesPreviewCmd := &cobra.Command{
		Use:   "preview <theme>",
		Short: "Preview a theme's colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return previewThemeColors(args[0])
		},
	}

	themesDirCmd := &cobra.Command{
		Use:   "dir",
		Short: "Show the custom themes directory path",
		RunE: func(_ *cobra.Command, _ []string) error {
			return showThemesDirectory()
		},
	}

	themesCmd.AddCommand(themesListCmd, themesPreviewCmd, themesDirCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
		Long:    `View and inspect dockwm keybinding configuration`,
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	tapeCmd := &cobra.Command{
		Use:   "tape",
		Short: "Run and check .tape automation scripts",
		Long: `Run and check .tape automation scripts for dockwm

Tape files drive the screen through the same commands the host bridge
offers: NewWindow, MoveWindow, ToggleWindow, ResizeDock, OpenSelector,
CloseSelector, ResizeWindow and Resize, plus Sleep between steps.`,
		Example: `  # Run tape with the TUI visible
  dockwm tape play demo.tape

  # Validate tape file syntax
  dockwm tape validate demo.tape`,
	}

	tapePlayCmd := &cobra.Command{
		Use:   "play <file.tape>",
		Short: "Run a tape file in interactive mode",
		Long: `Execute a tape script while displaying the dockwm TUI

The script starts once the screen is up. The TUI stays open after the
last command; press q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runLocal(args[0])
		},
	}

	tapeValidateCmd := &cobra.Command{
		Use:   "validate <file.tape>",
		Short: "Validate a tape file without running it",
		Long:  `Check if a tape file is syntactically correct`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return validateTapeFile(args[0])
		},
	}

	tapeCmd.AddCommand(tapePlayCmd, tapeValidateCmd)

	rootCmd.AddCommand(configCmd, themesCmd, keybindsCmd, tapeCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
