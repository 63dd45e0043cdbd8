package input

import (
	"io"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/pointer"
	"github.com/Gaurav-Gosain/dockwm/internal/screen"
)

// newTestScreen returns a 100x30 screen with a one row taskbar and 2 cell
// drop zones. Empty edge docks therefore occupy: top rows 1-2, bottom rows
// 28-29, left columns 0-1, right columns 98-99.
func newTestScreen(t *testing.T) *screen.Screen {
	t.Helper()
	opts := dock.DefaultOptions()
	opts.Sizes = [dock.EdgeCount]int{4, 20, 4, 20}
	s := screen.New(screen.Options{
		Engine:  opts,
		Regions: dock.RegionOptions{TaskbarHeight: 1, DropZone: 2},
		Logger:  log.New(io.Discard),
	})
	s.Resize(100, 30)
	return s
}

func addWindow(t *testing.T, s *screen.Screen, title string, d dock.Dock) dock.ID {
	t.Helper()
	w, err := s.Engine.NewWindow(dock.Init{Title: title, Dock: d})
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	s.Sync()
	return w.ID
}

func click(s *screen.Screen, x, y int, b tea.MouseButton) {
	HandleInput(tea.MouseClickMsg{X: x, Y: y, Button: b}, s)
}

func motion(s *screen.Screen, x, y int, b tea.MouseButton) {
	HandleInput(tea.MouseMotionMsg{X: x, Y: y, Button: b}, s)
}

func release(s *screen.Screen, x, y int) {
	HandleInput(tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}, s)
}

func press(s *screen.Screen, key string) tea.Cmd {
	var msg tea.KeyPressMsg
	switch key {
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	case "ctrl+c":
		msg = tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		r := []rune(key)[0]
		msg = tea.KeyPressMsg{Code: r, Text: key}
	}
	_, cmd := HandleInput(msg, s)
	return cmd
}

func current(s *screen.Screen, id dock.ID) dock.Dock {
	w, _ := s.Engine.Window(id)
	return w.Current
}

func TestMouseInput(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.MouseMsg
		typ     string
		buttons uint16
	}{
		{"left click", tea.MouseClickMsg{X: 3, Y: 4, Button: tea.MouseLeft}, pointer.MouseDown, pointer.ButtonPrimary},
		{"right click", tea.MouseClickMsg{X: 3, Y: 4, Button: tea.MouseRight}, pointer.MouseDown, pointer.ButtonSecondary},
		{"drag motion", tea.MouseMotionMsg{X: 3, Y: 4, Button: tea.MouseLeft}, pointer.MouseMove, pointer.ButtonPrimary},
		{"hover motion", tea.MouseMotionMsg{X: 3, Y: 4}, pointer.MouseMove, 0},
		{"release", tea.MouseReleaseMsg{X: 3, Y: 4, Button: tea.MouseLeft}, pointer.MouseUp, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, ok := MouseInput(tt.msg)
			if !ok {
				t.Fatal("MouseInput rejected a pointer message")
			}
			if in.Type() != tt.typ || in.Buttons != tt.buttons {
				t.Errorf("got %s buttons=%d, want %s buttons=%d", in.Type(), in.Buttons, tt.typ, tt.buttons)
			}
			ev := pointer.MustNormalize(in)
			if ev.ClientX() != 3 || ev.ClientY() != 4 || ev.Target() != origin {
				t.Errorf("event at (%d, %d) from %q", ev.ClientX(), ev.ClientY(), ev.Target())
			}
		})
	}

	if _, ok := MouseInput(tea.MouseWheelMsg{Button: tea.MouseWheelUp}); ok {
		t.Error("wheel messages are not pointer input")
	}
}

func TestTaskbarClickToggles(t *testing.T) {
	s := newTestScreen(t)
	id := addWindow(t, s, "alpha", dock.Left)

	click(s, 2, 0, tea.MouseLeft)
	if s.Press == nil || s.Press.ID != id {
		t.Fatalf("Press = %+v, want press on %v", s.Press, id)
	}
	release(s, 2, 0)

	if s.Press != nil {
		t.Error("press should be cleared on release")
	}
	if current(s, id) != dock.Left {
		t.Errorf("window in %v after click, want left", current(s, id))
	}

	click(s, 2, 0, tea.MouseLeft)
	release(s, 2, 0)
	if current(s, id) != dock.None {
		t.Errorf("second click should hide the window, got %v", current(s, id))
	}
}

func TestTaskbarDragAndDrop(t *testing.T) {
	s := newTestScreen(t)
	id := addWindow(t, s, "alpha", dock.Center)

	click(s, 2, 0, tea.MouseLeft)
	motion(s, 1, 15, tea.MouseLeft)
	if !s.DnD.Active() {
		t.Fatal("moving a pressed taskbar entry should start a drag")
	}
	if d, ok := s.DnD.Hovered(); !ok || d != dock.Left {
		t.Errorf("hovered = %v, %v, want left", d, ok)
	}

	motion(s, 99, 15, tea.MouseLeft)
	if d, _ := s.DnD.Hovered(); d != dock.Right {
		t.Errorf("hovered = %v, want right", d)
	}
	release(s, 99, 15)

	if current(s, id) != dock.Right {
		t.Errorf("window in %v after drop, want right", current(s, id))
	}
	if s.DnD.Active() || s.Press != nil {
		t.Error("drag state should be cleared after the drop")
	}
}

func TestDropOnTaskbarIsIgnored(t *testing.T) {
	s := newTestScreen(t)
	id := addWindow(t, s, "alpha", dock.Center)

	click(s, 2, 0, tea.MouseLeft)
	motion(s, 30, 0, tea.MouseLeft)
	release(s, 30, 0)

	if current(s, id) != dock.None {
		t.Errorf("drop on the taskbar moved the window to %v", current(s, id))
	}
}

func TestLostReleaseDrops(t *testing.T) {
	s := newTestScreen(t)
	id := addWindow(t, s, "alpha", dock.Center)

	click(s, 2, 0, tea.MouseLeft)
	motion(s, 50, 1, tea.MouseLeft)
	// The button came up outside the terminal.
	motion(s, 50, 1, tea.MouseNone)

	if current(s, id) != dock.Top {
		t.Errorf("window in %v, want top", current(s, id))
	}
	if s.DnD.Active() {
		t.Error("drag should end on a buttonless motion")
	}
}

func TestSelector(t *testing.T) {
	s := newTestScreen(t)
	id := addWindow(t, s, "alpha", dock.Center)

	click(s, 2, 0, tea.MouseRight)
	box, ok := s.SelectorBox()
	if !ok {
		t.Fatal("right click on the taskbar should open the selector")
	}

	// Rows inside the box follow dock order: top, left, bottom, right, center.
	click(s, box.X+2, box.Y+1+int(dock.Bottom), tea.MouseLeft)
	if current(s, id) != dock.Bottom {
		t.Errorf("window in %v, want bottom", current(s, id))
	}
	if _, open := s.Engine.Selector(); open {
		t.Error("moving from the selector should close it")
	}

	click(s, 2, 0, tea.MouseRight)
	click(s, 60, 20, tea.MouseLeft)
	if _, open := s.Engine.Selector(); open {
		t.Error("click outside should close the selector")
	}
}

func TestDockResizeByMouse(t *testing.T) {
	s := newTestScreen(t)
	id := addWindow(t, s, "alpha", dock.Left)
	if err := s.Engine.MoveWindow(id, dock.Left); err != nil {
		t.Fatal(err)
	}
	s.Sync()

	click(s, 19, 10, tea.MouseLeft)
	motion(s, 15, 10, tea.MouseLeft)
	motion(s, 12, 10, tea.MouseLeft)
	release(s, 12, 10)

	if got := s.Engine.DockSize(dock.Left); got != 13 {
		t.Errorf("left dock size = %d, want 13", got)
	}
	if s.Surface.Len() != 0 {
		t.Errorf("%d listeners left after the drag", s.Surface.Len())
	}
}

func TestKeys(t *testing.T) {
	s := newTestScreen(t)

	press(s, "n")
	press(s, "n")
	if s.Engine.Len() != 2 {
		t.Fatalf("got %d windows, want 2", s.Engine.Len())
	}
	for _, w := range s.Engine.Windows() {
		if w.Current != dock.Center {
			t.Errorf("window %v in %v, want center", w.ID, w.Current)
		}
	}
	if top, _ := s.Engine.Topmost(dock.Center); top != 1 {
		t.Errorf("topmost = %v, want 1", top)
	}

	press(s, "2")
	if top, _ := s.Engine.Topmost(dock.Center); top != 0 {
		t.Errorf("topmost after hiding window 2 = %v, want 0", top)
	}
	press(s, "9")

	press(s, "?")
	if !s.ShowHelp {
		t.Error("? should show help")
	}
	press(s, "esc")
	if s.ShowHelp {
		t.Error("esc should hide help")
	}

	if cmd := press(s, "ctrl+c"); cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if !s.Destroyed() {
		t.Error("quit should destroy the screen")
	}
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	s := newTestScreen(t)
	s.ShowHelp = true
	if cmd := press(s, "z"); cmd != nil {
		t.Error("unbound key returned a command")
	}
	if s.ShowHelp {
		t.Error("unbound key should dismiss help")
	}
	if s.Engine.Len() != 0 {
		t.Errorf("unbound key created %d windows", s.Engine.Len())
	}
}
