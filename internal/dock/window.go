package dock

import "github.com/Gaurav-Gosain/dockwm/internal/geometry"

// Init describes a window to create.
type Init struct {
	Title string
	Icon  string
	// Dock is where the window goes when first shown. None selects the
	// engine default.
	Dock Dock
	// RequestCenter shows the window in the center dock right away.
	RequestCenter bool
	// Width and Height override the default floating frame size when
	// positive.
	Width, Height int
}

// Window is a window record. Copies are handed out; the engine owns the
// original.
type Window struct {
	ID     ID
	Title  string
	Icon   string
	Handle Handle

	// Current is the dock the window is shown in, or None when hidden.
	Current Dock
	// Last is the dock the window returns to when shown again.
	Last Dock

	// Frame is the floating rectangle, relative to the center region,
	// used while the window is topmost in the center dock.
	Frame     geometry.Rect
	MinWidth  int
	MinHeight int
}

// Hidden reports whether the window is in no dock.
func (w Window) Hidden() bool { return w.Current == None }
