package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	tint "github.com/lrstanley/bubbletint/v2"
)

// ErrNoThemeID is returned for a theme file whose id cannot be derived.
var ErrNoThemeID = errors.New("theme has no id")

// GetThemesDir returns the custom themes directory
// (~/.config/dockwm/themes), creating it if needed.
func GetThemesDir() (string, error) {
	keepFile, err := xdg.ConfigFile("dockwm/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to get themes directory: %w", err)
	}
	return filepath.Dir(keepFile), nil
}

// LoadCustomThemes registers every *.json theme in dir with bubbletint and
// returns the ids it registered. Files that fail to load are logged and
// skipped.
func LoadCustomThemes(dir string, logger *log.Logger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		t, err := LoadCustomThemeFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			if logger != nil {
				logger.Warn("skipping custom theme", "file", entry.Name(), "err", err)
			}
			continue
		}
		tint.Register(t)
		loaded = append(loaded, t.ID)
	}
	return loaded, nil
}

// LoadCustomThemeFile reads one JSON theme. The id defaults to the file
// name and the display name to the id. Missing colours are filled in by
// fillDefaults.
func LoadCustomThemeFile(path string) (*tint.Tint, error) {
	// #nosec G304 - path comes from the user's themes directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t tint.Tint
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	if t.ID == "" {
		base := filepath.Base(path)
		t.ID = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if t.ID == "" {
		return nil, ErrNoThemeID
	}
	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}

	fillDefaults(&t)
	return &t, nil
}

// fillDefaults completes a partial theme. The cursor follows fg and a
// bright colour its normal variant; anything still missing comes from the
// fallback palette.
func fillDefaults(t *tint.Tint) {
	if t.Fg == nil {
		t.Fg = copyColor(fallback.Fg)
	}
	if t.Cursor == nil {
		t.Cursor = copyColor(t.Fg)
	}

	have, want := slots(t), slots(fallback)
	for i := range ansiColors {
		if bright := have[brightSlot+i]; *bright == nil {
			*bright = copyColor(*have[normalSlot+i])
		}
	}
	for i, c := range have {
		if *c == nil {
			*c = copyColor(*want[i])
		}
	}
}

func copyColor(c *tint.Color) *tint.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
