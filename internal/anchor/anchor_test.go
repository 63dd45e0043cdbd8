package anchor

import (
	"testing"

	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/events"
	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
	"github.com/Gaurav-Gosain/dockwm/internal/pointer"
)

func press(x, y int) pointer.Input {
	return pointer.NewMouse(pointer.MouseDown, x, y, pointer.ButtonPrimary)
}

func drag(x, y int) pointer.Input {
	return pointer.NewMouse(pointer.MouseMove, x, y, pointer.ButtonPrimary)
}

func release(x, y int) pointer.Input {
	return pointer.NewMouse(pointer.MouseUp, x, y, 0)
}

func TestDockAnchorResizesDock(t *testing.T) {
	surface := events.NewTarget("window")
	e := dock.NewEngine(dock.DefaultOptions())

	a := ForDock(surface, dock.Right, e)
	a.Bounds = DockEdge(geometry.Rect{X: 80, Y: 2, Width: 20, Height: 10}, dock.Right)

	if a.Down(press(50, 5)) {
		t.Fatal("press outside the anchor started a drag")
	}
	if !a.Down(press(80, 5)) {
		t.Fatal("press on the anchor did not start a drag")
	}
	surface.Dispatch(drag(75, 5))
	surface.Dispatch(release(75, 5))

	// Dragging the right dock's edge to the left grows it.
	if got := e.DockSize(dock.Right); got != 105 {
		t.Errorf("DockSize(right) = %d, want 105", got)
	}
	if surface.Len() != 0 {
		t.Errorf("surface has %d listeners after the drag, want 0", surface.Len())
	}
}

func TestDestroyMidDrag(t *testing.T) {
	surface := events.NewTarget("window")
	e := dock.NewEngine(dock.DefaultOptions())

	a := ForDock(surface, dock.Top, e)
	a.Bounds = geometry.Rect{X: 0, Y: 0, Width: 10, Height: 1}
	a.Down(press(1, 0))
	surface.Dispatch(drag(1, 2))
	a.Destroy()

	if surface.Len() != 0 {
		t.Errorf("surface has %d listeners after Destroy, want 0", surface.Len())
	}
	surface.Dispatch(drag(1, 9))
	if got := e.DockSize(dock.Top); got != 52 {
		t.Errorf("DockSize(top) = %d, want 52", got)
	}
	if a.Hit(1, 0) {
		t.Error("destroyed anchor still hit-tests")
	}
}

func TestDockEdge(t *testing.T) {
	r := geometry.Rect{X: 10, Y: 5, Width: 20, Height: 8}
	tests := []struct {
		d    dock.Dock
		want geometry.Rect
	}{
		{dock.Top, geometry.Rect{X: 10, Y: 12, Width: 20, Height: 1}},
		{dock.Bottom, geometry.Rect{X: 10, Y: 5, Width: 20, Height: 1}},
		{dock.Left, geometry.Rect{X: 29, Y: 5, Width: 1, Height: 8}},
		{dock.Right, geometry.Rect{X: 10, Y: 5, Width: 1, Height: 8}},
		{dock.Center, geometry.Rect{}},
	}
	for _, tt := range tests {
		if got := DockEdge(r, tt.d); got != tt.want {
			t.Errorf("DockEdge(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
	if got := DockEdge(geometry.Rect{}, dock.Top); got != (geometry.Rect{}) {
		t.Errorf("empty region gave edge %v", got)
	}
}

func TestWindowSetCornerResize(t *testing.T) {
	surface := events.NewTarget("window")
	opts := dock.DefaultOptions()
	opts.Frame = geometry.Rect{X: 0, Y: 0, Width: 20, Height: 10}
	opts.MinWidth, opts.MinHeight = 4, 3
	e := dock.NewEngine(opts)
	w, _ := e.NewWindow(dock.Init{Dock: dock.Center, RequestCenter: true})

	s := NewWindowSet(surface, w.ID, e)
	// The center region starts at (5, 2) on screen.
	s.Place(w.Frame.Translate(5, 2))

	// Bottom-right corner is at (24, 11).
	if !s.Down(press(24, 11)) {
		t.Fatal("press on the corner missed")
	}
	if !s.Dragging() {
		t.Error("set not dragging")
	}
	surface.Dispatch(drag(27, 13))
	surface.Dispatch(release(27, 13))

	got, _ := e.Window(w.ID)
	want := geometry.Rect{X: 0, Y: 0, Width: 23, Height: 12}
	if got.Frame != want {
		t.Errorf("Frame = %v, want %v", got.Frame, want)
	}
}

func TestWindowSetTitleMoves(t *testing.T) {
	surface := events.NewTarget("window")
	opts := dock.DefaultOptions()
	opts.Frame = geometry.Rect{X: 3, Y: 3, Width: 20, Height: 10}
	e := dock.NewEngine(opts)
	w, _ := e.NewWindow(dock.Init{Dock: dock.None})

	s := NewWindowSet(surface, w.ID, e)
	s.Place(w.Frame)
	if !s.Down(press(10, 4)) {
		t.Fatal("press on the title missed")
	}
	surface.Dispatch(release(14, 2))

	got, _ := e.Window(w.ID)
	if got.Frame != (geometry.Rect{X: 7, Y: 1, Width: 20, Height: 10}) {
		t.Errorf("Frame = %v after title drag", got.Frame)
	}

	s.Destroy()
	if s.Down(press(10, 4)) {
		t.Error("destroyed set accepted a press")
	}
}
