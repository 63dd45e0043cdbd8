package config

import (
	"reflect"
	"testing"
)

func TestKeybindRegistryAction(t *testing.T) {
	r := NewKeybindRegistry(DefaultKeybindings())

	tests := []struct {
		key    string
		action string
		ok     bool
	}{
		{"n", ActionNewWindow, true},
		{"ctrl+c", ActionQuit, true},
		{" Q ", ActionQuit, true},
		{"3", "toggle_window_3", true},
		{"z", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, ok := r.Action(tt.key)
			if action != tt.action || ok != tt.ok {
				t.Errorf("Action(%q) = (%q, %v), want (%q, %v)", tt.key, action, ok, tt.action, tt.ok)
			}
		})
	}
}

func TestKeybindRegistryFirstActionWins(t *testing.T) {
	r := NewKeybindRegistry(map[string][]string{
		ActionQuit:      {"x"},
		ActionNewWindow: {"x"},
	})
	if action, _ := r.Action("x"); action != ActionNewWindow {
		t.Errorf("Action(x) = %q, want %q", action, ActionNewWindow)
	}

	want := map[string][]string{"x": {ActionNewWindow, ActionQuit}}
	if got := Conflicts(map[string][]string{ActionQuit: {"x"}, ActionNewWindow: {"X"}}); !reflect.DeepEqual(got, want) {
		t.Errorf("Conflicts = %v, want %v", got, want)
	}
}

func TestNilRegistry(t *testing.T) {
	var r *KeybindRegistry
	if _, ok := r.Action("q"); ok {
		t.Error("nil registry should bind nothing")
	}
	if r.GetKeysForDisplay(ActionQuit) != "" {
		t.Error("nil registry should display nothing")
	}
}

func TestGetKeybindings(t *testing.T) {
	sections := GetKeybindings(nil)
	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}

	general := sections[1]
	if general.Title != "GENERAL" {
		t.Fatalf("second section = %q, want GENERAL", general.Title)
	}
	var quit string
	for _, b := range general.Bindings {
		if b.Description == "Quit" {
			quit = b.Key
		}
	}
	if quit != "q, Ctrl+c" {
		t.Errorf("quit keys = %q, want %q", quit, "q, Ctrl+c")
	}

	r := NewKeybindRegistry(map[string][]string{ActionQuit: {"q"}})
	if got := GetKeybindings(r); len(got) != 2 {
		t.Errorf("got %d sections for a sparse registry, want GENERAL and MOUSE", len(got))
	}
}

func TestValidateConfig(t *testing.T) {
	cfg := DefaultConfig()
	if res := ValidateConfig(cfg); res.HasErrors() || res.HasWarnings() {
		t.Fatalf("defaults should validate cleanly: %+v", res)
	}

	cfg.Windows.MinWidth = 0
	cfg.Keybindings["fly"] = []string{"f"}
	cfg.Keybindings[ActionNewWindow] = []string{"q"}

	res := ValidateConfig(cfg)
	if len(res.Errors) != 1 || res.Errors[0].Key != "min_width" {
		t.Errorf("errors = %+v, want min_width", res.Errors)
	}

	keys := make([]string, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		keys = append(keys, w.Key)
	}
	want := []string{"fly", "q"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("warning keys = %v, want %v", keys, want)
	}
}
