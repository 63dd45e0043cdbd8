package dock

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
)

func newTestEngine(t *testing.T, n int) *Engine {
	t.Helper()
	opts := DefaultOptions()
	seq := 0
	opts.NewHandle = func() Handle {
		seq++
		return Handle(fmt.Sprintf("handle-%d", seq))
	}
	e := NewEngine(opts)
	for i := range n {
		if _, err := e.NewWindow(Init{Title: fmt.Sprintf("w%d", i), Dock: None}); err != nil {
			t.Fatalf("NewWindow() error = %v", err)
		}
	}
	return e
}

func stacks(e *Engine) [Count][]ID {
	var out [Count][]ID
	for _, d := range All() {
		out[d] = e.Stack(d)
	}
	return out
}

func TestNewWindowIsHidden(t *testing.T) {
	e := newTestEngine(t, 0)

	w, err := e.NewWindow(Init{Title: "editor", Icon: "E", Dock: Left})
	if err != nil {
		t.Fatalf("NewWindow() error = %v", err)
	}
	if w.ID != 0 {
		t.Errorf("first id = %v, want 0", w.ID)
	}
	if !w.Hidden() || w.Last != Left {
		t.Errorf("new window Current=%v Last=%v, want none and left", w.Current, w.Last)
	}
	if w.Handle != "handle-1" {
		t.Errorf("Handle = %q, want handle-1", w.Handle)
	}
	for _, d := range All() {
		if len(e.Stack(d)) != 0 {
			t.Errorf("dock %v not empty after NewWindow", d)
		}
	}

	w2, _ := e.NewWindow(Init{Dock: None})
	if w2.ID != 1 || w2.Last != Center {
		t.Errorf("second window id=%v last=%v, want 1 and center", w2.ID, w2.Last)
	}
}

func TestNewWindowRequestCenter(t *testing.T) {
	e := newTestEngine(t, 0)
	w, err := e.NewWindow(Init{Dock: Right, RequestCenter: true})
	if err != nil {
		t.Fatalf("NewWindow() error = %v", err)
	}
	if w.Current != Center || w.Last != Right {
		t.Errorf("Current=%v Last=%v, want center and right", w.Current, w.Last)
	}
	if top, ok := e.Topmost(Center); !ok || top != w.ID {
		t.Errorf("Topmost(center) = %v, %v", top, ok)
	}
}

func TestNewWindowInvalidDock(t *testing.T) {
	e := newTestEngine(t, 0)
	if _, err := e.NewWindow(Init{Dock: Dock(9)}); !errors.Is(err, ErrInvalidDock) {
		t.Errorf("error = %v, want ErrInvalidDock", err)
	}
	if e.Len() != 0 {
		t.Error("failed NewWindow created a window")
	}
}

func TestBoundedIDs(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxIDs = 2
	e := NewEngine(opts)
	for range 2 {
		if _, err := e.NewWindow(Init{Dock: None}); err != nil {
			t.Fatalf("NewWindow() error = %v", err)
		}
	}
	if _, err := e.NewWindow(Init{Dock: None}); !errors.Is(err, ErrOutOfIDs) {
		t.Errorf("third NewWindow error = %v, want ErrOutOfIDs", err)
	}
	if e.Len() != 2 {
		t.Errorf("Len() = %d, want 2", e.Len())
	}
}

func TestMoveWindow(t *testing.T) {
	e := newTestEngine(t, 3)

	steps := []struct {
		id   ID
		dock Dock
	}{
		{0, Left},
		{1, Left},
		{2, Center},
		{0, Top},
		{1, Left},
	}
	for _, s := range steps {
		if err := e.MoveWindow(s.id, s.dock); err != nil {
			t.Fatalf("MoveWindow(%v, %v) error = %v", s.id, s.dock, err)
		}
	}

	want := [Count][]ID{Top: {0}, Left: {1}, Center: {2}}
	got := stacks(e)
	for _, d := range All() {
		if len(got[d]) == 0 && len(want[d]) == 0 {
			continue
		}
		if !reflect.DeepEqual(got[d], want[d]) {
			t.Errorf("stack %v = %v, want %v", d, got[d], want[d])
		}
	}

	w0, _ := e.Window(0)
	if w0.Current != Top || w0.Last != Left {
		t.Errorf("window 0 Current=%v Last=%v, want top and left", w0.Current, w0.Last)
	}
}

func TestMoveWindowToSameDockRaises(t *testing.T) {
	e := newTestEngine(t, 2)
	_ = e.MoveWindow(0, Center)
	_ = e.MoveWindow(1, Center)
	_ = e.MoveWindow(0, Center)

	if got := e.Stack(Center); !reflect.DeepEqual(got, []ID{1, 0}) {
		t.Errorf("center stack = %v, want [1 0]", got)
	}
	if top, _ := e.Topmost(Center); top != 0 {
		t.Errorf("Topmost(center) = %v, want 0", top)
	}
}

func TestMoveWindowUnknownID(t *testing.T) {
	e := newTestEngine(t, 2)
	_ = e.MoveWindow(0, Left)
	_ = e.OpenSelector(1, 3, 4)
	before := stacks(e)
	beforeWindows := e.Windows()

	err := e.MoveWindow(9999, Top)
	if !errors.Is(err, ErrUnknownWindow) {
		t.Fatalf("error = %v, want ErrUnknownWindow", err)
	}
	if !reflect.DeepEqual(stacks(e), before) {
		t.Error("dock stacks changed after unknown-id move")
	}
	if !reflect.DeepEqual(e.Windows(), beforeWindows) {
		t.Error("window records changed after unknown-id move")
	}
	if _, ok := e.Selector(); !ok {
		t.Error("failed move closed the selector")
	}
}

func TestMoveWindowInvalidDock(t *testing.T) {
	e := newTestEngine(t, 1)
	for _, d := range []Dock{None, Dock(5), Dock(-7)} {
		if err := e.MoveWindow(0, d); !errors.Is(err, ErrInvalidDock) {
			t.Errorf("MoveWindow(0, %v) error = %v, want ErrInvalidDock", d, err)
		}
	}
	if w, _ := e.Window(0); !w.Hidden() {
		t.Error("window shown after invalid move")
	}
}

func TestToggleWindow(t *testing.T) {
	e := newTestEngine(t, 0)
	w, _ := e.NewWindow(Init{Dock: Bottom})

	// hidden -> shown at the creation dock
	if err := e.ToggleWindow(w.ID); err != nil {
		t.Fatalf("ToggleWindow() error = %v", err)
	}
	got, _ := e.Window(w.ID)
	if got.Current != Bottom {
		t.Fatalf("Current = %v, want bottom", got.Current)
	}

	_ = e.MoveWindow(w.ID, Right)

	// shown -> hidden remembers the dock it was in
	_ = e.ToggleWindow(w.ID)
	got, _ = e.Window(w.ID)
	if !got.Hidden() || got.Last != Right {
		t.Errorf("after hide Current=%v Last=%v, want none and right", got.Current, got.Last)
	}
	if len(e.Stack(Right)) != 0 {
		t.Error("hidden window still in right stack")
	}

	_ = e.ToggleWindow(w.ID)
	got, _ = e.Window(w.ID)
	if got.Current != Right {
		t.Errorf("after show Current = %v, want right", got.Current)
	}

	if err := e.ToggleWindow(42); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("ToggleWindow(42) error = %v, want ErrUnknownWindow", err)
	}
}

// A window id is in a stack exactly when it is shown, and in one stack at
// most.
func TestStackMembershipInvariant(t *testing.T) {
	e := newTestEngine(t, 4)
	ops := []func(){
		func() { _ = e.MoveWindow(0, Top) },
		func() { _ = e.ToggleWindow(1) },
		func() { _ = e.MoveWindow(2, Center) },
		func() { _ = e.ToggleWindow(0) },
		func() { _ = e.MoveWindow(1, Left) },
		func() { _ = e.ToggleWindow(0) },
		func() { _ = e.MoveWindow(3, Center) },
		func() { _ = e.ToggleWindow(2) },
		func() { _ = e.MoveWindow(2, Right) },
	}
	for i, op := range ops {
		op()
		seen := map[ID]Dock{}
		for _, d := range All() {
			for _, id := range e.Stack(d) {
				if prev, dup := seen[id]; dup {
					t.Fatalf("step %d: id %v in both %v and %v", i, id, prev, d)
				}
				seen[id] = d
			}
		}
		for _, w := range e.Windows() {
			d, inStack := seen[w.ID]
			if w.Hidden() == inStack {
				t.Fatalf("step %d: window %v hidden=%v but inStack=%v", i, w.ID, w.Hidden(), inStack)
			}
			if inStack && d != w.Current {
				t.Fatalf("step %d: window %v Current=%v but in %v stack", i, w.ID, w.Current, d)
			}
		}
	}
}

func TestResizeDock(t *testing.T) {
	tests := []struct {
		name   string
		dock   Dock
		dx, dy int
		want   int
	}{
		{"top follows dy", Top, 99, 10, 60},
		{"left follows dx", Left, -30, 99, 70},
		{"bottom inverts dy", Bottom, 0, 10, 40},
		{"right inverts dx", Right, -20, 0, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(DefaultOptions())
			e.ResizeDock(tt.dock, tt.dx, tt.dy)
			if got := e.DockSize(tt.dock); got != tt.want {
				t.Errorf("DockSize(%v) = %d, want %d", tt.dock, got, tt.want)
			}
		})
	}
}

func TestResizeDockFloor(t *testing.T) {
	e := NewEngine(DefaultOptions())
	for range 5 {
		e.ResizeDock(Left, -1_000_000_000, 0)
		if got := e.DockSize(Left); got != 0 {
			t.Fatalf("DockSize(left) = %d, want 0", got)
		}
	}
	e.ResizeDock(Left, 3, 0)
	if got := e.DockSize(Left); got != 3 {
		t.Errorf("DockSize(left) = %d after growing from 0, want 3", got)
	}
}

func TestResizeDockCenterIsNoop(t *testing.T) {
	e := NewEngine(DefaultOptions())
	before := [EdgeCount]int{}
	for _, d := range Edges() {
		before[d] = e.DockSize(d)
	}
	e.ResizeDock(Center, 10, 10)
	e.ResizeDock(None, 10, 10)
	for _, d := range Edges() {
		if e.DockSize(d) != before[d] {
			t.Errorf("DockSize(%v) changed", d)
		}
	}
	if e.DockSize(Center) != 0 {
		t.Error("center reports a size")
	}
}

func TestSelector(t *testing.T) {
	e := newTestEngine(t, 2)

	if _, ok := e.Selector(); ok {
		t.Fatal("selector open on a fresh engine")
	}
	_ = e.OpenSelector(0, 5, 6)
	_ = e.OpenSelector(1, 7, 8)
	s, ok := e.Selector()
	if !ok || s != (Selector{ID: 1, X: 7, Y: 8}) {
		t.Errorf("Selector() = %+v, %v, want the second one", s, ok)
	}

	_ = e.MoveWindow(1, Top)
	if _, ok := e.Selector(); ok {
		t.Error("MoveWindow did not close the selector")
	}

	_ = e.OpenSelector(0, 1, 1)
	e.CloseSelector()
	e.CloseSelector()
	if _, ok := e.Selector(); ok {
		t.Error("CloseSelector did not close the selector")
	}

	if err := e.OpenSelector(77, 0, 0); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("OpenSelector(77) error = %v, want ErrUnknownWindow", err)
	}
}

func TestResizeWindow(t *testing.T) {
	opts := DefaultOptions()
	opts.Frame = geometry.Rect{X: 50, Y: 50, Width: 100, Height: 100}
	opts.MinWidth, opts.MinHeight = 0, 0
	e := NewEngine(opts)
	w, _ := e.NewWindow(Init{Dock: None})

	if err := e.ResizeWindow(w.ID, geometry.NW, 20, 10); err != nil {
		t.Fatalf("ResizeWindow() error = %v", err)
	}
	got, _ := e.Window(w.ID)
	want := geometry.Rect{X: 70, Y: 60, Width: 80, Height: 90}
	if got.Frame != want {
		t.Errorf("Frame = %v, want %v", got.Frame, want)
	}

	if err := e.ResizeWindow(5, geometry.SE, 1, 1); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("ResizeWindow(5) error = %v, want ErrUnknownWindow", err)
	}
}

func TestParseDock(t *testing.T) {
	tests := []struct {
		in      string
		want    Dock
		wantErr bool
	}{
		{"top", Top, false},
		{"LEFT", Left, false},
		{"4", Center, false},
		{"2", Bottom, false},
		{"5", None, true},
		{"-1", None, true},
		{"sideways", None, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("Parse(%q) = %v, %v; want %v, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidDock) {
			t.Errorf("Parse(%q) error %v is not ErrInvalidDock", tt.in, err)
		}
	}
}
