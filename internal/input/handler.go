// Package input routes Bubble Tea key and mouse messages into the screen:
// mouse reports become raw pointer input for the gesture trackers, taskbar
// presses become clicks or drag and drop, and keys resolve to actions.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/dockwm/internal/screen"
)

// HandleInput is the main input coordinator that routes messages to appropriate handlers
func HandleInput(msg tea.Msg, s *screen.Screen) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, s)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, s)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, s)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, s)
	}
	return s, nil
}
