package main

import (
	"bufio"
	"errors"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/colorprofile"

	"github.com/Gaurav-Gosain/dockwm/internal/config"
	"github.com/Gaurav-Gosain/dockwm/internal/theme"
)

var errNoEditor = errors.New("no editor found: set $EDITOR or $VISUAL")

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor, nil
		}
	}
	for _, editor := range []string{"vim", "vi", "nano", "emacs"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path, nil
		}
	}
	return "", errNoEditor
}

func editConfigFile() error {
	// Loading creates the file with defaults when it does not exist yet.
	if _, err := config.LoadUserConfig(stderrLogger()); err != nil {
		stderrLogger().Warn("current config has problems", "err", err)
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	editor, err := findEditor()
	if err != nil {
		return err
	}

	fields := strings.Fields(editor)
	// #nosec G204 - the editor is chosen by the user
	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}
	return validateConfigFile()
}

func resetConfigToDefaults(skipConfirm bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if !skipConfirm {
		fmt.Printf("This will overwrite %s with the defaults. Continue? [y/N] ", path)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}
	path, err = config.ResetConfig()
	if err != nil {
		return fmt.Errorf("failed to reset config: %w", err)
	}
	fmt.Printf("Configuration reset: %s\n", path)
	return nil
}

func validateConfigFile() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("No configuration file at %s, defaults are used.\n", path)
		return nil
	}
	if _, err := config.LoadUserConfigFrom(path, stderrLogger()); err != nil {
		return err
	}
	fmt.Printf("Configuration OK: %s\n", path)
	return nil
}

func showConfig(format string) error {
	data, err := config.Marshal(loadConfig(), format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func listThemes() error {
	for _, id := range theme.Available() {
		fmt.Println(id)
	}
	return nil
}

func showThemesDirectory() error {
	dir, err := theme.GetThemesDir()
	if err != nil {
		return err
	}
	fmt.Println(dir)
	return nil
}

// previewThemeColors prints the palette of a theme as coloured swatches,
// downsampled to what the terminal supports.
func previewThemeColors(name string) error {
	if err := theme.Initialize(name, stderrLogger()); err != nil {
		return fmt.Errorf("failed to load theme %q: %w", name, err)
	}
	t := theme.Current()
	if t == nil {
		return fmt.Errorf("theme %q not found", name)
	}

	w := colorprofile.NewWriter(os.Stdout, os.Environ())
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Fg).Background(t.Bg).Padding(0, 1)
	if _, err := fmt.Fprintln(w, title.Render(t.DisplayName)); err != nil {
		return err
	}
	for _, sw := range theme.Swatches(t) {
		if sw.Color == nil {
			continue
		}
		block := lipgloss.NewStyle().Background(sw.Color).Render("      ")
		hex := fmt.Sprintf("#%02x%02x%02x", sw.Color.R, sw.Color.G, sw.Color.B)
		if _, err := fmt.Fprintf(w, "%s %-14s %s\n", block, sw.Name, hex); err != nil {
			return err
		}
	}
	return nil
}

func listKeybindings() error {
	userConfig := loadConfig()
	registry := config.NewKeybindRegistry(userConfig.Keybindings)

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	w := colorprofile.NewWriter(os.Stdout, os.Environ())

	for _, section := range config.GetKeybindings(registry) {
		rows := make([][]string, 0, len(section.Bindings))
		for _, b := range section.Bindings {
			rows = append(rows, []string{b.Key, b.Description})
		}
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers(section.Title, "").
			Rows(rows...).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return header
				}
				return cell
			})
		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
	}

	if conflicts := config.Conflicts(userConfig.Keybindings); len(conflicts) > 0 {
		fmt.Fprintln(os.Stderr, "Conflicting keys:")
		for _, key := range slices.Sorted(maps.Keys(conflicts)) {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", key, strings.Join(conflicts[key], ", "))
		}
	}
	return nil
}
