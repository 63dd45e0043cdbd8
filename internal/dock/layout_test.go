package dock

import (
	"testing"

	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
)

func TestLayoutFacts(t *testing.T) {
	e := newTestEngine(t, 4)
	e.Resize(120, 40)
	_ = e.MoveWindow(0, Left)
	_ = e.MoveWindow(1, Center)
	_ = e.MoveWindow(2, Center)
	_ = e.OpenSelector(3, 10, 2)

	l := e.Layout()
	if l.Width != 120 || l.Height != 40 {
		t.Errorf("container = %dx%d, want 120x40", l.Width, l.Height)
	}

	left := l.Edge(Left)
	if !left.Occupied || left.Size != 100 || !left.HasTopmost || left.Topmost != 0 {
		t.Errorf("left facts = %+v", left)
	}
	top := l.Edge(Top)
	if top.Occupied || top.Size != 0 || !top.DropZone() {
		t.Errorf("empty top dock should collapse to a drop zone, got %+v", top)
	}

	if !l.HasCenter || l.Center != 2 {
		t.Errorf("center topmost = %v, %v; want 2", l.Center, l.HasCenter)
	}

	if len(l.Taskbar) != 4 {
		t.Fatalf("taskbar has %d items, want 4", len(l.Taskbar))
	}
	wantOpen := []bool{true, true, true, false}
	for i, item := range l.Taskbar {
		if item.ID != ID(i) || item.Open != wantOpen[i] || item.Payload != ID(i).String() {
			t.Errorf("taskbar[%d] = %+v", i, item)
		}
	}

	if l.Selector == nil || l.Selector.ID != 3 {
		t.Errorf("Selector = %+v, want window 3", l.Selector)
	}
}

func TestLayoutIsSnapshot(t *testing.T) {
	e := newTestEngine(t, 1)
	_ = e.MoveWindow(0, Top)
	l := e.Layout()
	l.Edges[Top].Stack[0] = 99
	if got := e.Stack(Top); got[0] != 0 {
		t.Error("mutating a layout changed the engine")
	}
}

func TestRegions(t *testing.T) {
	opts := DefaultOptions()
	opts.Sizes = [EdgeCount]int{5, 20, 4, 10}
	e := NewEngine(opts)
	for range 3 {
		_, _ = e.NewWindow(Init{Dock: None})
	}
	e.Resize(100, 30)
	_ = e.MoveWindow(0, Top)
	_ = e.MoveWindow(1, Left)
	_ = e.MoveWindow(2, Bottom)

	r := e.Layout().Regions(RegionOptions{TaskbarHeight: 1, DropZone: 2})

	want := map[Dock]geometry.Rect{
		Top:    {X: 0, Y: 1, Width: 100, Height: 5},
		Bottom: {X: 0, Y: 26, Width: 100, Height: 4},
		Left:   {X: 0, Y: 6, Width: 20, Height: 20},
		Right:  {X: 98, Y: 6, Width: 2, Height: 20},
		Center: {X: 20, Y: 6, Width: 78, Height: 20},
	}
	for d, rect := range want {
		if got := r.Dock(d); got != rect {
			t.Errorf("region %v = %v, want %v", d, got, rect)
		}
	}
	if r.Taskbar != (geometry.Rect{X: 0, Y: 0, Width: 100, Height: 1}) {
		t.Errorf("taskbar = %v", r.Taskbar)
	}

	if d, ok := r.DockAt(99, 10); !ok || d != Right {
		t.Errorf("DockAt(99, 10) = %v, %v; want right", d, ok)
	}
	if d, ok := r.DockAt(50, 10); !ok || d != Center {
		t.Errorf("DockAt(50, 10) = %v, %v; want center", d, ok)
	}
}

func TestRegionsClampToContainer(t *testing.T) {
	e := NewEngine(DefaultOptions())
	for range 4 {
		_, _ = e.NewWindow(Init{Dock: None})
	}
	for i, d := range Edges() {
		_ = e.MoveWindow(ID(i), d)
	}
	e.Resize(30, 10)

	r := e.Layout().Regions(RegionOptions{TaskbarHeight: 1})
	for _, d := range All() {
		got := r.Dock(d)
		if got.Width < 0 || got.Height < 0 || got.Right() > 30 || got.Bottom() > 10 {
			t.Errorf("region %v = %v leaves the 30x10 container", d, got)
		}
	}
	if r.Dock(Center).Width != 0 || r.Dock(Center).Height != 0 {
		t.Errorf("oversized docks should squeeze center to nothing, got %v", r.Dock(Center))
	}
}
