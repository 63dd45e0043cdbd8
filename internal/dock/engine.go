package dock

import (
	"fmt"
	"slices"

	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
)

// Selector is the open placement popup for one window, anchored at a
// screen point.
type Selector struct {
	ID   ID
	X, Y int
}

// Engine owns every window and its dock assignment. It is not safe for
// concurrent use; all commands run on the event loop.
type Engine struct {
	opts Options
	ids  allocator

	windows []*Window
	index   map[ID]*Window

	stacks   [Count][]ID
	sizes    [EdgeCount]int
	selector *Selector

	width, height int
}

// NewEngine creates an empty engine.
func NewEngine(opts Options) *Engine {
	opts.fillMissing()
	return &Engine{
		opts:  opts,
		ids:   allocator{limit: opts.MaxIDs},
		index: make(map[ID]*Window),
		sizes: opts.Sizes,
	}
}

// Options returns the options the engine was built with.
func (e *Engine) Options() Options { return e.opts }

// Resize records the container size.
func (e *Engine) Resize(width, height int) {
	e.width, e.height = max(width, 0), max(height, 0)
}

// Container returns the last recorded container size.
func (e *Engine) Container() (width, height int) { return e.width, e.height }

// NewWindow creates a hidden window that will first show in init.Dock.
// With RequestCenter set it is shown in the center dock immediately.
func (e *Engine) NewWindow(init Init) (Window, error) {
	last := init.Dock
	if last == None {
		last = e.opts.DefaultDock
	}
	if !last.Valid() {
		return Window{}, fmt.Errorf("new window: %w", ErrInvalidDock)
	}

	id, err := e.ids.allocate()
	if err != nil {
		return Window{}, fmt.Errorf("new window: %w", err)
	}

	frame := e.opts.Frame
	if init.Width > 0 {
		frame.Width = max(init.Width, e.opts.MinWidth)
	}
	if init.Height > 0 {
		frame.Height = max(init.Height, e.opts.MinHeight)
	}

	w := &Window{
		ID:        id,
		Title:     init.Title,
		Icon:      init.Icon,
		Handle:    e.opts.NewHandle(),
		Current:   None,
		Last:      last,
		Frame:     frame,
		MinWidth:  e.opts.MinWidth,
		MinHeight: e.opts.MinHeight,
	}
	e.windows = append(e.windows, w)
	e.index[id] = w

	if init.RequestCenter {
		e.push(w, Center)
	}
	return *w, nil
}

// Window returns a copy of the window record.
func (e *Engine) Window(id ID) (Window, bool) {
	w, ok := e.index[id]
	if !ok {
		return Window{}, false
	}
	return *w, true
}

// Windows returns copies of every window in creation order.
func (e *Engine) Windows() []Window {
	out := make([]Window, len(e.windows))
	for i, w := range e.windows {
		out[i] = *w
	}
	return out
}

// Len returns the number of windows.
func (e *Engine) Len() int { return len(e.windows) }

// pop removes w from its current stack and remembers the dock.
func (e *Engine) pop(w *Window) {
	if w.Current == None {
		return
	}
	stack := e.stacks[w.Current]
	if i := slices.Index(stack, w.ID); i >= 0 {
		e.stacks[w.Current] = slices.Delete(stack, i, i+1)
	}
	w.Last = w.Current
	w.Current = None
}

// push puts w on top of d's stack.
func (e *Engine) push(w *Window, d Dock) {
	w.Current = d
	e.stacks[d] = append(e.stacks[d], w.ID)
}

// MoveWindow puts the window on top of dock d, taking it out of the dock
// it was in. Moving also closes the selector.
func (e *Engine) MoveWindow(id ID, d Dock) error {
	if !d.Valid() {
		return fmt.Errorf("move window %s: %w", id, ErrInvalidDock)
	}
	w, ok := e.index[id]
	if !ok {
		return fmt.Errorf("move window %s: %w", id, ErrUnknownWindow)
	}
	e.pop(w)
	e.push(w, d)
	e.selector = nil
	return nil
}

// ToggleWindow hides a shown window or shows a hidden one in the dock it
// was last in.
func (e *Engine) ToggleWindow(id ID) error {
	w, ok := e.index[id]
	if !ok {
		return fmt.Errorf("toggle window %s: %w", id, ErrUnknownWindow)
	}
	if w.Current != None {
		e.pop(w)
		return nil
	}
	e.push(w, w.Last)
	return nil
}

// ResizeDock grows or shrinks an edge dock by a drag delta on its inner
// edge. Top and Left follow the delta, Bottom and Right invert it. Sizes
// never drop below zero; the center dock has no size and is ignored.
func (e *Engine) ResizeDock(d Dock, dx, dy int) {
	var delta int
	switch d {
	case Top:
		delta = dy
	case Left:
		delta = dx
	case Bottom:
		delta = -dy
	case Right:
		delta = -dx
	default:
		return
	}
	e.sizes[d] = max(e.sizes[d]+delta, 0)
}

// DockSize returns the configured extent of an edge dock, whether or not
// it is occupied. Center and invalid docks report 0.
func (e *Engine) DockSize(d Dock) int {
	if !d.IsEdge() {
		return 0
	}
	return e.sizes[d]
}

// OpenSelector opens the placement popup for a window at (x, y),
// replacing any popup already open.
func (e *Engine) OpenSelector(id ID, x, y int) error {
	if _, ok := e.index[id]; !ok {
		return fmt.Errorf("open selector %s: %w", id, ErrUnknownWindow)
	}
	e.selector = &Selector{ID: id, X: x, Y: y}
	return nil
}

// CloseSelector closes the placement popup if one is open.
func (e *Engine) CloseSelector() { e.selector = nil }

// Selector returns the open placement popup.
func (e *Engine) Selector() (Selector, bool) {
	if e.selector == nil {
		return Selector{}, false
	}
	return *e.selector, true
}

// Stack returns the ids in dock d, bottom first.
func (e *Engine) Stack(d Dock) []ID {
	if !d.Valid() {
		return nil
	}
	return slices.Clone(e.stacks[d])
}

// Topmost returns the most recently pushed window of dock d.
func (e *Engine) Topmost(d Dock) (ID, bool) {
	if !d.Valid() || len(e.stacks[d]) == 0 {
		return 0, false
	}
	s := e.stacks[d]
	return s[len(s)-1], true
}

// ResizeWindow applies a drag on a window anchor to the window's floating
// frame, keeping the corner opposite the anchor in place.
func (e *Engine) ResizeWindow(id ID, anchor geometry.Anchor, dx, dy int) error {
	w, ok := e.index[id]
	if !ok {
		return fmt.Errorf("resize window %s: %w", id, ErrUnknownWindow)
	}
	w.Frame = geometry.Resize(w.Frame, anchor, dx, dy, w.MinWidth, w.MinHeight)
	return nil
}
