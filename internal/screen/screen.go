// Package screen is the composition root of the desktop: a Bubble Tea model
// that owns the dock layout engine, the global input surface, the resize
// anchors and the drag-and-drop coordinator, and applies commands arriving
// from the host bridge.
package screen

import (
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/dockwm/internal/anchor"
	"github.com/Gaurav-Gosain/dockwm/internal/config"
	"github.com/Gaurav-Gosain/dockwm/internal/dnd"
	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/events"
	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
	"github.com/Gaurav-Gosain/dockwm/internal/pointer"
)

// ContentFunc renders the body of a window into a width x height area.
type ContentFunc func(w dock.Window, width, height int) string

// Options configure a new Screen.
type Options struct {
	Engine  dock.Options
	Regions dock.RegionOptions
	Keys    *config.KeybindRegistry
	Logger  *log.Logger
	// Content renders window bodies. Defaults to a short description of
	// the window.
	Content ContentFunc
	// ShowStatus shows the screen size in an empty center dock.
	ShowStatus bool
}

// TaskbarPress is a left press on a taskbar entry that has not yet become
// a click or a drag.
type TaskbarPress struct {
	ID   dock.ID
	X, Y int
	// Dragging is set once the press moved and started a drag and drop.
	Dragging bool
}

// Screen is the desktop model.
type Screen struct {
	Engine  *dock.Engine
	Surface *events.Target
	DnD     *dnd.Coordinator
	Keys    *config.KeybindRegistry
	Logger  *log.Logger

	Width, Height int
	ShowHelp      bool
	ShowStatus    bool
	Press         *TaskbarPress

	regionOpts  dock.RegionOptions
	content     ContentFunc
	layout      dock.Layout
	regions     dock.Regions
	dockAnchors [dock.EdgeCount]*anchor.Anchor
	windowSet   *anchor.WindowSet
	destroyed   bool
}

// New creates a screen with an empty engine.
func New(opts Options) *Screen {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	keys := opts.Keys
	if keys == nil {
		keys = config.NewKeybindRegistry(config.DefaultKeybindings())
	}
	content := opts.Content
	if content == nil {
		content = DefaultContent
	}

	s := &Screen{
		Engine:     dock.NewEngine(opts.Engine),
		Surface:    events.NewTarget("screen"),
		DnD:        dnd.NewCoordinator(),
		Keys:       keys,
		Logger:     logger,
		ShowStatus: opts.ShowStatus,
		regionOpts: opts.Regions,
		content:    content,
	}
	for _, d := range dock.Edges() {
		s.dockAnchors[d] = anchor.ForDock(s.Surface, d, s.Engine)
	}
	s.Sync()
	return s
}

// Resize records a new container size.
func (s *Screen) Resize(width, height int) {
	s.Width, s.Height = width, height
	s.Engine.Resize(width, height)
	s.Sync()
}

// Sync recomputes the render facts and moves the anchors onto them. It
// must run after every engine mutation.
func (s *Screen) Sync() {
	s.layout = s.Engine.Layout()
	s.regions = s.layout.Regions(s.regionOpts)

	for _, d := range dock.Edges() {
		a := s.dockAnchors[d]
		if s.layout.Edge(d).Occupied {
			a.Bounds = anchor.DockEdge(s.regions.Dock(d), d)
		} else {
			a.Bounds = geometry.Rect{}
		}
	}

	if !s.layout.HasCenter {
		s.dropWindowSet()
		return
	}
	if s.windowSet == nil || s.windowSet.ID != s.layout.Center {
		s.dropWindowSet()
		s.windowSet = anchor.NewWindowSet(s.Surface, s.layout.Center, s.Engine)
	}
	frame, _ := s.CenterFrame()
	s.windowSet.Place(frame)
}

func (s *Screen) dropWindowSet() {
	if s.windowSet != nil {
		s.windowSet.Destroy()
		s.windowSet = nil
	}
}

// Layout returns the render facts as of the last Sync.
func (s *Screen) Layout() dock.Layout { return s.layout }

// Regions returns the screen rectangles as of the last Sync.
func (s *Screen) Regions() dock.Regions { return s.regions }

// CenterFrame returns the on-screen frame of the topmost center window.
func (s *Screen) CenterFrame() (geometry.Rect, bool) {
	if !s.layout.HasCenter {
		return geometry.Rect{}, false
	}
	center := s.regions.Dock(dock.Center)
	return s.layout.CenterFrame.Translate(center.X, center.Y).ClampInto(center), true
}

// DockAnchor returns the resize handle of an edge dock.
func (s *Screen) DockAnchor(d dock.Dock) *anchor.Anchor {
	if !d.IsEdge() {
		return nil
	}
	return s.dockAnchors[d]
}

// WindowAnchors returns the handles of the topmost center window, if any.
func (s *Screen) WindowAnchors() *anchor.WindowSet { return s.windowSet }

// PressAnchor starts a resize drag when the press is on a handle. Window
// handles take precedence over dock handles since the window is drawn on
// top.
func (s *Screen) PressAnchor(in pointer.Input) bool {
	if s.destroyed {
		return false
	}
	if s.windowSet != nil && s.windowSet.Down(in) {
		return true
	}
	for _, a := range s.dockAnchors {
		if a.Down(in) {
			return true
		}
	}
	return false
}

// Dragging reports whether a resize drag is in progress.
func (s *Screen) Dragging() bool {
	if s.windowSet != nil && s.windowSet.Dragging() {
		return true
	}
	for _, a := range s.dockAnchors {
		if a.Dragging() {
			return true
		}
	}
	return false
}

// Dispatch delivers raw input to the global surface and resyncs.
func (s *Screen) Dispatch(in pointer.Input) int {
	if s.destroyed {
		return 0
	}
	n := s.Surface.Dispatch(in)
	s.Sync()
	return n
}

// Destroy tears the screen down: every anchor is destroyed, releasing any
// listener of a drag in progress, and the drag and drop is abandoned.
func (s *Screen) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	for _, a := range s.dockAnchors {
		a.Destroy()
	}
	s.dropWindowSet()
	s.DnD.Cancel()
	s.Press = nil
	s.Logger.Debug("screen destroyed", "windows", s.Engine.Len())
}

// Destroyed reports whether Destroy was called.
func (s *Screen) Destroyed() bool { return s.destroyed }
