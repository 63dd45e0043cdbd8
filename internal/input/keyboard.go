package input

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/dockwm/internal/config"
	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/screen"
)

// HandleKeyPress resolves a key to its configured action and runs it.
func HandleKeyPress(msg tea.KeyPressMsg, s *screen.Screen) (tea.Model, tea.Cmd) {
	key := msg.String()
	action, ok := s.Keys.Action(key)
	if !ok {
		// Any unbound key dismisses the help overlay.
		s.ShowHelp = false
		return s, nil
	}

	switch {
	case action == config.ActionQuit:
		s.Destroy()
		return s, tea.Quit

	case action == config.ActionToggleHelp:
		s.ShowHelp = !s.ShowHelp

	case action == config.ActionCloseSelector:
		s.ShowHelp = false
		s.Engine.CloseSelector()
		s.DnD.Cancel()
		s.Press = nil

	case action == config.ActionNewWindow:
		newWindow(s)

	case strings.HasPrefix(action, config.ActionToggleWindowPrefix):
		n, err := strconv.Atoi(strings.TrimPrefix(action, config.ActionToggleWindowPrefix))
		taskbar := s.Layout().Taskbar
		if err == nil && n >= 1 && n <= len(taskbar) {
			_ = s.Engine.ToggleWindow(taskbar[n-1].ID)
		}
	}

	s.Sync()
	return s, nil
}

// newWindow creates a window and shows it in its dock.
func newWindow(s *screen.Screen) {
	n := s.Engine.Len() + 1
	w, err := s.Engine.NewWindow(dock.Init{
		Title: fmt.Sprintf("Window %d", n),
		Dock:  dock.None,
	})
	if err != nil {
		s.Logger.Warn("failed to create window", "err", err)
		return
	}
	_ = s.Engine.ToggleWindow(w.ID)
	s.Logger.Debug("window created from keyboard", "id", w.ID, "dock", w.Last)
}
