// Package anchor provides resize handles: screen areas that start a drag
// gesture when pressed and turn its motion into dock or window resizes.
//
// An Anchor owns its gesture tracker. Destroying the anchor mid-drag
// releases the tracker's global listeners.
package anchor

import (
	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/events"
	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
	"github.com/Gaurav-Gosain/dockwm/internal/gesture"
	"github.com/Gaurav-Gosain/dockwm/internal/pointer"
)

// Anchor is a pressable resize handle.
type Anchor struct {
	Name   string
	Bounds geometry.Rect

	tracker   *gesture.Tracker
	destroyed bool
}

// New creates an anchor whose drags are reported to h.
func New(name string, surface *events.Target, h gesture.Handler) *Anchor {
	return &Anchor{Name: name, tracker: gesture.New(surface, h)}
}

// Hit reports whether (x, y) is on the anchor.
func (a *Anchor) Hit(x, y int) bool {
	return !a.destroyed && a.Bounds.Contains(x, y)
}

// Down starts a drag if the press is on the anchor and reports whether it
// was.
func (a *Anchor) Down(in pointer.Input) bool {
	ev, err := pointer.Normalize(in)
	if err != nil || !a.Hit(ev.ClientX(), ev.ClientY()) {
		return false
	}
	a.tracker.Down(in)
	return true
}

// Dragging reports whether the anchor's gesture is in progress.
func (a *Anchor) Dragging() bool { return a.tracker.Dragging() }

// Destroy tears the anchor down, ending any drag without notifying the
// handler.
func (a *Anchor) Destroy() {
	a.destroyed = true
	a.tracker.Close()
}

// DockResizer applies a drag on a dock's inner edge.
type DockResizer interface {
	ResizeDock(d dock.Dock, dx, dy int)
}

// WindowResizer applies a drag on one of a window's anchors.
type WindowResizer interface {
	ResizeWindow(id dock.ID, a geometry.Anchor, dx, dy int) error
}

// ForDock creates the handle on the inner edge of dock d.
func ForDock(surface *events.Target, d dock.Dock, r DockResizer) *Anchor {
	return New("dock:"+d.String(), surface, gesture.Funcs{
		Move: func(_ pointer.Event, dx, dy int) { r.ResizeDock(d, dx, dy) },
	})
}

// DockEdge returns the inner edge of a dock region, the row or column
// facing the center.
func DockEdge(region geometry.Rect, d dock.Dock) geometry.Rect {
	if region.Empty() {
		return geometry.Rect{}
	}
	switch d {
	case dock.Top:
		return geometry.Rect{X: region.X, Y: region.Bottom() - 1, Width: region.Width, Height: 1}
	case dock.Bottom:
		return geometry.Rect{X: region.X, Y: region.Y, Width: region.Width, Height: 1}
	case dock.Left:
		return geometry.Rect{X: region.Right() - 1, Y: region.Y, Width: 1, Height: region.Height}
	case dock.Right:
		return geometry.Rect{X: region.X, Y: region.Y, Width: 1, Height: region.Height}
	default:
		return geometry.Rect{}
	}
}

// ForWindow creates the handle at position a of window id.
func ForWindow(surface *events.Target, id dock.ID, a geometry.Anchor, r WindowResizer) *Anchor {
	return New("window:"+id.String()+":"+a.String(), surface, gesture.Funcs{
		Move: func(_ pointer.Event, dx, dy int) { _ = r.ResizeWindow(id, a, dx, dy) },
	})
}
