package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/pointer"
	"github.com/Gaurav-Gosain/dockwm/internal/screen"
)

// origin names the screen as the target of terminal mouse input.
const origin pointer.Target = "screen"

// buttonBits maps a Bubble Tea button to the held-buttons mask.
func buttonBits(b tea.MouseButton) uint16 {
	switch b {
	case tea.MouseLeft:
		return pointer.ButtonPrimary
	case tea.MouseRight:
		return pointer.ButtonSecondary
	case tea.MouseMiddle:
		return pointer.ButtonAuxiliary
	default:
		return 0
	}
}

// MouseInput converts a Bubble Tea mouse message into raw mouse input. A
// release reports no held buttons; motion reports the button held during
// it. Wheel messages are not pointer input.
func MouseInput(msg tea.MouseMsg) (*pointer.MouseInput, bool) {
	m := msg.Mouse()
	var in *pointer.MouseInput
	switch msg.(type) {
	case tea.MouseClickMsg:
		in = pointer.NewMouse(pointer.MouseDown, m.X, m.Y, buttonBits(m.Button))
	case tea.MouseMotionMsg:
		in = pointer.NewMouse(pointer.MouseMove, m.X, m.Y, buttonBits(m.Button))
	case tea.MouseReleaseMsg:
		in = pointer.NewMouse(pointer.MouseUp, m.X, m.Y, 0)
	default:
		return nil, false
	}
	in.Origin = origin
	return in, true
}

// dropTarget returns the dock under (x, y), or dock.None over the taskbar
// and outside the screen.
func dropTarget(s *screen.Screen, x, y int) dock.Dock {
	if s.Regions().Taskbar.Contains(x, y) {
		return dock.None
	}
	d, ok := s.Regions().DockAt(x, y)
	if !ok {
		return dock.None
	}
	return d
}

// handleMouseClick handles mouse click events
func handleMouseClick(msg tea.MouseClickMsg, s *screen.Screen) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	X, Y := mouse.X, mouse.Y

	if s.ShowHelp {
		s.ShowHelp = false
		return s, nil
	}

	// The selector is modal: a click picks a dock or dismisses it.
	if sel, open := s.Engine.Selector(); open {
		box, _ := s.SelectorBox()
		if d, ok := s.SelectorItemAt(X, Y); ok && mouse.Button == tea.MouseLeft {
			if err := s.Engine.MoveWindow(sel.ID, d); err == nil {
				s.Logger.Debug("window moved from selector", "id", sel.ID, "dock", d)
			}
		} else if !box.Contains(X, Y) {
			s.Engine.CloseSelector()
		}
		s.Sync()
		return s, nil
	}

	if item, ok := s.TaskbarItemAt(X, Y); ok {
		switch mouse.Button {
		case tea.MouseLeft:
			s.Press = &screen.TaskbarPress{ID: item.ID, X: X, Y: Y}
		case tea.MouseRight:
			_ = s.Engine.OpenSelector(item.ID, X, s.Regions().Taskbar.Bottom())
			s.Sync()
		}
		return s, nil
	}

	if mouse.Button != tea.MouseLeft {
		return s, nil
	}
	in, _ := MouseInput(msg)
	s.PressAnchor(in)
	return s, nil
}

// handleMouseMotion feeds motion to the gesture trackers and drives a
// taskbar drag and drop.
func handleMouseMotion(msg tea.MouseMotionMsg, s *screen.Screen) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	X, Y := mouse.X, mouse.Y

	if p := s.Press; p != nil {
		switch {
		case mouse.Button == tea.MouseNone:
			// The release was lost: a drag drops here, a click is abandoned.
			if p.Dragging {
				drop(s, X, Y)
			}
			s.Press = nil
		case !p.Dragging && (X != p.X || Y != p.Y):
			p.Dragging = true
			s.DnD.Begin(p.ID)
			s.DnD.Move(dropTarget(s, X, Y))
		case p.Dragging:
			s.DnD.Move(dropTarget(s, X, Y))
		}
	}

	in, _ := MouseInput(msg)
	s.Dispatch(in)
	return s, nil
}

// handleMouseRelease ends taskbar presses and gestures.
func handleMouseRelease(msg tea.MouseReleaseMsg, s *screen.Screen) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	X, Y := mouse.X, mouse.Y

	if p := s.Press; p != nil {
		s.Press = nil
		if p.Dragging {
			drop(s, X, Y)
		} else if item, ok := s.TaskbarItemAt(X, Y); ok && item.ID == p.ID {
			_ = s.Engine.ToggleWindow(p.ID)
		}
	}

	in, _ := MouseInput(msg)
	s.Dispatch(in)
	return s, nil
}

func drop(s *screen.Screen, x, y int) {
	d := dropTarget(s, x, y)
	if s.DnD.Drop(d, s.Engine) {
		s.Logger.Debug("window dropped", "dock", d)
	}
}
