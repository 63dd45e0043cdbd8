package anchor

import (
	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/events"
	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
	"github.com/Gaurav-Gosain/dockwm/internal/pointer"
)

// WindowSet holds the title, edge and corner handles of one window.
type WindowSet struct {
	ID      dock.ID
	anchors []*Anchor
	kinds   []geometry.Anchor
}

// NewWindowSet creates every handle of window id.
func NewWindowSet(surface *events.Target, id dock.ID, r WindowResizer) *WindowSet {
	s := &WindowSet{ID: id}
	for _, a := range geometry.Anchors() {
		s.anchors = append(s.anchors, ForWindow(surface, id, a, r))
		s.kinds = append(s.kinds, a)
	}
	return s
}

// Place positions the handles on frame, given in screen coordinates.
func (s *WindowSet) Place(frame geometry.Rect) {
	for i, a := range s.anchors {
		a.Bounds = s.kinds[i].Bounds(frame)
	}
}

// Down starts a drag on the handle under the press. Corners are tried
// before edges and edges before the title.
func (s *WindowSet) Down(in pointer.Input) bool {
	for _, want := range []geometry.Anchor{
		geometry.NW, geometry.NE, geometry.SW, geometry.SE,
		geometry.N, geometry.S, geometry.W, geometry.E, geometry.Title,
	} {
		for i, a := range s.anchors {
			if s.kinds[i] == want && a.Down(in) {
				return true
			}
		}
	}
	return false
}

// Dragging reports whether any handle is being dragged.
func (s *WindowSet) Dragging() bool {
	for _, a := range s.anchors {
		if a.Dragging() {
			return true
		}
	}
	return false
}

// Destroy tears every handle down.
func (s *WindowSet) Destroy() {
	for _, a := range s.anchors {
		a.Destroy()
	}
}
