package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadUserConfigFromFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
[appearance]
theme = "nord"

[docks]
left = 30
`)
	cfg, err := LoadUserConfigFrom(path, nil)
	if err != nil {
		t.Fatalf("LoadUserConfigFrom: %v", err)
	}

	if cfg.Appearance.Theme != "nord" {
		t.Errorf("theme = %q, want nord", cfg.Appearance.Theme)
	}
	if cfg.Appearance.BorderStyle != "rounded" {
		t.Errorf("border style = %q, want rounded", cfg.Appearance.BorderStyle)
	}
	if cfg.Appearance.ShowStatus == nil || !*cfg.Appearance.ShowStatus {
		t.Error("show_status should default to true")
	}
	if cfg.Docks.Left != 30 || cfg.Docks.DefaultDock != "center" {
		t.Errorf("docks = %+v", cfg.Docks)
	}
	if cfg.Windows.MinWidth != MinWindowWidth || cfg.Windows.DefaultHeight != DefaultWindowHeight {
		t.Errorf("windows = %+v", cfg.Windows)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level = %q, want info", cfg.Logging.Level)
	}
	if got := cfg.Keybindings[ActionQuit]; len(got) != 2 {
		t.Errorf("quit keys = %v, want defaults", got)
	}
}

func TestLoadUserConfigFromKeepsUserKeybindings(t *testing.T) {
	path := writeConfig(t, `
[keybindings]
new_window = ["ctrl+n"]
`)
	cfg, err := LoadUserConfigFrom(path, nil)
	if err != nil {
		t.Fatalf("LoadUserConfigFrom: %v", err)
	}
	if got := cfg.Keybindings[ActionNewWindow]; len(got) != 1 || got[0] != "ctrl+n" {
		t.Errorf("new_window = %v, want [ctrl+n]", got)
	}
	if _, ok := cfg.Keybindings[ActionCloseSelector]; !ok {
		t.Error("missing actions should be filled from defaults")
	}
}

func TestLoadUserConfigFromErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "syntax", body: "[docks\n", want: "failed to parse"},
		{name: "negative dock", body: "[docks]\ntop = -1\n", want: "1 error(s)"},
		{name: "bad default dock", body: "[docks]\ndefault_dock = \"middle\"\n", want: "1 error(s)"},
		{name: "bad level", body: "[logging]\nlevel = \"loud\"\n", want: "1 error(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadUserConfigFrom(writeConfig(t, tt.body), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadUserConfigFromLogsWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	path := writeConfig(t, "[appearance]\nborder_style = \"wavy\"\n")

	if _, err := LoadUserConfigFrom(path, logger); err != nil {
		t.Fatalf("LoadUserConfigFrom: %v", err)
	}
	if !strings.Contains(buf.String(), "border_style") {
		t.Errorf("warning not logged, got %q", buf.String())
	}
}

func TestCreateDefaultConfigRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if _, err := createDefaultConfig(path); err != nil {
		t.Fatalf("createDefaultConfig: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "# dockwm configuration file") {
		t.Error("default config is missing its header")
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("default config does not parse: %v", err)
	}
	if cfg.Docks.Right != DefaultRightDock {
		t.Errorf("right dock = %d, want %d", cfg.Docks.Right, DefaultRightDock)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Docks.DefaultDock = "left"
	cfg.Windows.DefaultWidth = 5
	cfg.Windows.MaxIDs = 3

	opts := EngineOptions(cfg)
	if opts.Sizes != [dock.EdgeCount]int{DefaultTopDock, DefaultLeftDock, DefaultBottomDock, DefaultRightDock} {
		t.Errorf("sizes = %v", opts.Sizes)
	}
	if opts.DefaultDock != dock.Left {
		t.Errorf("default dock = %v, want left", opts.DefaultDock)
	}
	if opts.Frame.Width != MinWindowWidth {
		t.Errorf("frame width = %d, want it raised to %d", opts.Frame.Width, MinWindowWidth)
	}
	if opts.MaxIDs != 3 {
		t.Errorf("max ids = %d, want 3", opts.MaxIDs)
	}

	if EngineOptions(nil).DefaultDock != dock.Center {
		t.Error("nil config should give the default options")
	}
}

func TestApplyOverrides(t *testing.T) {
	t.Cleanup(func() {
		UseASCIIOnly = false
		BorderStyle = "rounded"
		TaskbarHeight = DefaultTaskbarHeight
		ShowStatus = true
	})

	cfg := DefaultConfig()
	cfg.Appearance.BorderStyle = "double"
	cfg.Appearance.TaskbarHeight = 2

	ApplyOverrides(Overrides{TaskbarHeight: 9, HideStatus: true}, cfg, nil)

	if BorderStyle != "double" {
		t.Errorf("BorderStyle = %q, want the config value", BorderStyle)
	}
	if TaskbarHeight != MaxTaskbarHeight {
		t.Errorf("TaskbarHeight = %d, want clamp to %d", TaskbarHeight, MaxTaskbarHeight)
	}
	if ShowStatus {
		t.Error("HideStatus flag should win over config")
	}

	ApplyOverrides(Overrides{BorderStyle: "thick", ASCIIOnly: true}, cfg, nil)
	if BorderStyle != "thick" || !UseASCIIOnly {
		t.Errorf("flags not applied: border %q ascii %v", BorderStyle, UseASCIIOnly)
	}
	if GetTaskbarMarker(true) != TaskbarOpenMarkerASCII {
		t.Error("ASCII mode should switch glyphs")
	}
	if GetBorderForStyle().TopLeft != "+" {
		t.Error("ASCII mode should use the ASCII border")
	}
}
