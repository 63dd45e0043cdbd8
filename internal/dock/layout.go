package dock

import "github.com/Gaurav-Gosain/dockwm/internal/geometry"

// EdgeFacts describes one edge dock for rendering.
type EdgeFacts struct {
	Dock     Dock
	Occupied bool
	// Size is the extent to draw: the configured size when occupied, 0
	// when the dock is empty and shows a drop zone instead.
	Size       int
	Stack      []ID
	Topmost    ID
	HasTopmost bool
}

// DropZone reports whether the dock shows a drop zone instead of content.
func (f EdgeFacts) DropZone() bool { return !f.Occupied }

// TaskbarItem is one taskbar entry. Every window gets one, shown or not.
type TaskbarItem struct {
	ID     ID
	Title  string
	Icon   string
	Handle Handle
	// Open is set while the window is in a dock.
	Open bool
	Dock Dock
	// Payload is the drag payload carried when the item is dragged.
	Payload string
}

// Layout is a snapshot of everything the renderer needs.
type Layout struct {
	Width, Height int

	Edges [EdgeCount]EdgeFacts

	// Center is the topmost center window, the only one drawn there.
	Center      ID
	HasCenter   bool
	CenterFrame geometry.Rect

	Taskbar  []TaskbarItem
	Selector *Selector
}

// Layout derives the render facts from the current state.
func (e *Engine) Layout() Layout {
	l := Layout{Width: e.width, Height: e.height}

	for _, d := range Edges() {
		f := EdgeFacts{Dock: d, Stack: e.Stack(d)}
		f.Occupied = len(f.Stack) > 0
		if f.Occupied {
			f.Size = e.sizes[d]
			f.Topmost, f.HasTopmost = e.Topmost(d)
		}
		l.Edges[d] = f
	}

	if id, ok := e.Topmost(Center); ok {
		l.Center, l.HasCenter = id, true
		l.CenterFrame = e.index[id].Frame
	}

	l.Taskbar = make([]TaskbarItem, 0, len(e.windows))
	for _, w := range e.windows {
		l.Taskbar = append(l.Taskbar, TaskbarItem{
			ID:      w.ID,
			Title:   w.Title,
			Icon:    w.Icon,
			Handle:  w.Handle,
			Open:    w.Current != None,
			Dock:    w.Current,
			Payload: w.ID.String(),
		})
	}

	if e.selector != nil {
		s := *e.selector
		l.Selector = &s
	}
	return l
}

// Edge returns the facts of an edge dock.
func (l Layout) Edge(d Dock) EdgeFacts {
	if !d.IsEdge() {
		return EdgeFacts{Dock: d}
	}
	return l.Edges[d]
}

// RegionOptions control how a layout is projected onto the container.
type RegionOptions struct {
	// TaskbarHeight is the height of the taskbar row(s) at the top.
	TaskbarHeight int
	// DropZone is the thickness given to an empty edge dock so it can
	// still receive drops.
	DropZone int
}

// Regions are the rectangles of the taskbar and the five docks.
type Regions struct {
	Taskbar geometry.Rect
	Docks   [Count]geometry.Rect
}

// Dock returns the rectangle of d.
func (r Regions) Dock(d Dock) geometry.Rect {
	if !d.Valid() {
		return geometry.Rect{}
	}
	return r.Docks[d]
}

// DockAt returns the dock under (x, y).
func (r Regions) DockAt(x, y int) (Dock, bool) {
	// Edges first: they are drawn over the center.
	for _, d := range []Dock{Top, Bottom, Left, Right, Center} {
		if r.Docks[d].Contains(x, y) {
			return d, true
		}
	}
	return None, false
}

// Regions projects the layout onto the container. Top and Bottom span the
// full width below the taskbar; Left and Right fill the height between
// them; Center takes what is left. Extents are clamped so regions never
// overlap or leave the container.
func (l Layout) Regions(opts RegionOptions) Regions {
	w, h := max(l.Width, 0), max(l.Height, 0)
	var r Regions

	tb := min(max(opts.TaskbarHeight, 0), h)
	r.Taskbar = geometry.Rect{X: 0, Y: 0, Width: w, Height: tb}

	extent := func(d Dock) int {
		f := l.Edges[d]
		if f.Occupied {
			return f.Size
		}
		return max(opts.DropZone, 0)
	}

	bodyH := h - tb
	top := min(extent(Top), bodyH)
	bottom := min(extent(Bottom), bodyH-top)
	midY := tb + top
	midH := bodyH - top - bottom
	left := min(extent(Left), w)
	right := min(extent(Right), w-left)

	r.Docks[Top] = geometry.Rect{X: 0, Y: tb, Width: w, Height: top}
	r.Docks[Bottom] = geometry.Rect{X: 0, Y: h - bottom, Width: w, Height: bottom}
	r.Docks[Left] = geometry.Rect{X: 0, Y: midY, Width: left, Height: midH}
	r.Docks[Right] = geometry.Rect{X: w - right, Y: midY, Width: right, Height: midH}
	r.Docks[Center] = geometry.Rect{X: left, Y: midY, Width: w - left - right, Height: midH}
	return r
}
